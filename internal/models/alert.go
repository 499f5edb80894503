package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Alert is an SOS alert. User holds the reporter's email, or nil when the
// alert was sent anonymously.
type Alert struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Location  string             `json:"location" bson:"location"`
	Message   string             `json:"message" bson:"message"`
	User      *string            `json:"user" bson:"user"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

func (a *Alert) ReportedBy(email string) bool {
	return a.User != nil && *a.User == email
}
