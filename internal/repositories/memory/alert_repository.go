package memory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
)

type alertRepository struct {
	mu     sync.RWMutex
	alerts []models.Alert
}

func NewAlertRepository() interfaces.AlertRepository {
	return &alertRepository{}
}

func (r *alertRepository) Create(ctx context.Context, alert *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert.ID = primitive.NewObjectID()
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	r.alerts = append(r.alerts, *alert)

	return nil
}

func (r *alertRepository) List(ctx context.Context) ([]*models.Alert, error) {
	return r.filter(func(*models.Alert) bool { return true }), nil
}

func (r *alertRepository) ListByUser(ctx context.Context, email string) ([]*models.Alert, error) {
	return r.filter(func(a *models.Alert) bool { return a.ReportedBy(email) }), nil
}

// filter returns copies so callers cannot reach into the log.
func (r *alertRepository) filter(keep func(*models.Alert) bool) []*models.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Alert, 0, len(r.alerts))
	for i := range r.alerts {
		if !keep(&r.alerts[i]) {
			continue
		}
		alert := r.alerts[i]
		if alert.User != nil {
			user := *alert.User
			alert.User = &user
		}
		out = append(out, &alert)
	}
	return out
}
