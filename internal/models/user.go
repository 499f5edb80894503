package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email"`
	Name       string             `json:"name" bson:"name"`
	Age        int                `json:"age" bson:"age"`
	Phone      string             `json:"phone" bson:"phone"`
	BloodGroup string             `json:"blood_group" bson:"blood_group"`
	Address    string             `json:"address" bson:"address"`
	Password   string             `json:"-" bson:"password"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}
