package interfaces

import (
	"context"

	"helpize/internal/models"
)

// UserRepository is the user directory. Email is the unique key.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}
