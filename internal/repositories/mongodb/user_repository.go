package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
	"helpize/internal/utils"
	"helpize/pkg/database"
)

type userRepository struct {
	collection *mongo.Collection
	cache      CacheService
	cacheTTL   time.Duration
}

// cachedUser keeps the password hash, which models.User hides from JSON.
type cachedUser struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

// NewUserRepository returns a Mongo-backed user directory. cache may be nil.
func NewUserRepository(db *mongo.Database, cache CacheService, cacheTTL time.Duration) interfaces.UserRepository {
	if cacheTTL <= 0 {
		cacheTTL = utils.CacheUserTTL
	}
	return &userRepository{
		collection: db.Collection(database.UsersCollection),
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("user %s: %w", user.Email, interfaces.ErrDuplicateKey)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.cacheUser(ctx, user)

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user := r.getUserFromCache(ctx, email); user != nil {
		return user, nil
	}

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s: %w", email, interfaces.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	r.cacheUser(ctx, &user)

	return &user, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *userRepository) cacheUser(ctx context.Context, user *models.User) {
	if r.cache == nil {
		return
	}
	entry := cachedUser{User: *user, PasswordHash: user.Password}
	r.cache.Set(ctx, userCacheKey(user.Email), entry, r.cacheTTL)
}

func (r *userRepository) getUserFromCache(ctx context.Context, email string) *models.User {
	if r.cache == nil {
		return nil
	}

	var entry cachedUser
	if err := r.cache.Get(ctx, userCacheKey(email), &entry); err != nil {
		return nil
	}

	user := entry.User
	user.Password = entry.PasswordHash
	return &user
}

func userCacheKey(email string) string {
	return utils.CacheUserPrefix + email
}
