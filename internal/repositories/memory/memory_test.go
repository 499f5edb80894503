package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
	"helpize/internal/utils"
)

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Email: "a@b.c", Name: "A"}))
	err := repo.Create(ctx, &models.User{Email: "a@b.c", Name: "Other"})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateKey)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	user, err := repo.GetByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)
	assert.False(t, user.ID.IsZero())
}

func TestUserRepository_NotFound(t *testing.T) {
	_, err := NewUserRepository().GetByEmail(context.Background(), "nobody@b.c")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestAlertRepository_OrderAndFilter(t *testing.T) {
	repo := NewAlertRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Alert{Location: "Hall", Message: "fire"}))
	require.NoError(t, repo.Create(ctx, &models.Alert{Location: "Park", Message: "flood", User: utils.StringPtr("a@b.c")}))
	require.NoError(t, repo.Create(ctx, &models.Alert{Location: "Mall", Message: "help", User: utils.StringPtr("x@y.z")}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Hall", "Park", "Mall"}, []string{all[0].Location, all[1].Location, all[2].Location})
	assert.Nil(t, all[0].User)

	mine, err := repo.ListByUser(ctx, "a@b.c")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Park", mine[0].Location)
}

func TestAlertRepository_ListReturnsCopies(t *testing.T) {
	repo := NewAlertRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Alert{Location: "Hall", User: utils.StringPtr("a@b.c")}))

	first, _ := repo.List(ctx)
	first[0].Location = "changed"
	*first[0].User = "changed@b.c"

	second, _ := repo.List(ctx)
	assert.Equal(t, "Hall", second[0].Location)
	assert.Equal(t, "a@b.c", *second[0].User)
}

func TestAlertRepository_ConcurrentCreate(t *testing.T) {
	repo := NewAlertRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, &models.Alert{Location: fmt.Sprintf("loc-%d", i)})
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestContentRepositories(t *testing.T) {
	ctx := context.Background()

	resources, err := NewResourceRepository(DefaultResources()).List(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "Emergency Kit Guide", resources[0].Title)

	blog := NewBlogRepository(DefaultBlogPosts())
	post, err := blog.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Helping in Disasters", post.Title)

	_, err = blog.GetByID(ctx, 99)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}
