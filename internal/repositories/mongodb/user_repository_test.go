package mongodb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpize/internal/models"
	"helpize/pkg/cache"
)

type mapCache struct {
	entries map[string][]byte
}

func (m *mapCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *mapCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *mapCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func TestUserCache_KeepsPasswordHash(t *testing.T) {
	store := &mapCache{entries: map[string][]byte{}}
	repo := &userRepository{cache: store, cacheTTL: time.Minute}

	user := &models.User{Email: "a@b.c", Name: "A", Password: "$2a$10$hash"}
	repo.cacheUser(context.Background(), user)

	cached := repo.getUserFromCache(context.Background(), "a@b.c")
	require.NotNil(t, cached)
	assert.Equal(t, "A", cached.Name)
	assert.Equal(t, "$2a$10$hash", cached.Password)

	assert.Nil(t, repo.getUserFromCache(context.Background(), "missing@b.c"))
}

func TestUserCache_NilCache(t *testing.T) {
	repo := &userRepository{}
	repo.cacheUser(context.Background(), &models.User{Email: "a@b.c"})
	assert.Nil(t, repo.getUserFromCache(context.Background(), "a@b.c"))
}
