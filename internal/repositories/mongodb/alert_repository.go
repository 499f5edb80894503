package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
	"helpize/pkg/database"
)

type alertRepository struct {
	collection *mongo.Collection
}

func NewAlertRepository(db *mongo.Database) interfaces.AlertRepository {
	return &alertRepository{
		collection: db.Collection(database.AlertsCollection),
	}
}

func (r *alertRepository) Create(ctx context.Context, alert *models.Alert) error {
	alert.ID = primitive.NewObjectID()
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, alert); err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	return nil
}

func (r *alertRepository) List(ctx context.Context) ([]*models.Alert, error) {
	return r.find(ctx, bson.M{})
}

func (r *alertRepository) ListByUser(ctx context.Context, email string) ([]*models.Alert, error) {
	return r.find(ctx, bson.M{"user": email})
}

// find returns matches in insertion order; ObjectIDs grow with creation time.
func (r *alertRepository) find(ctx context.Context, filter bson.M) ([]*models.Alert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer cursor.Close(ctx)

	alerts := make([]*models.Alert, 0)
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, fmt.Errorf("failed to decode alerts: %w", err)
	}

	return alerts, nil
}
