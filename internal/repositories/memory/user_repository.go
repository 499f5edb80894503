package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepository returns a process-local user directory keyed by email.
func NewUserRepository() interfaces.UserRepository {
	return &userRepository{users: make(map[string]models.User)}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return fmt.Errorf("user %s: %w", user.Email, interfaces.ErrDuplicateKey)
	}

	user.ID = primitive.NewObjectID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.Email] = *user

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, interfaces.ErrNotFound)
	}
	return &user, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
