package interfaces

import (
	"context"

	"helpize/internal/models"
)

// AlertRepository is append-only. List results are in submission order.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	List(ctx context.Context) ([]*models.Alert, error)
	ListByUser(ctx context.Context, email string) ([]*models.Alert, error)
}
