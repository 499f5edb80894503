package interfaces

import (
	"context"

	"helpize/internal/models"
)

type ResourceRepository interface {
	List(ctx context.Context) ([]*models.Resource, error)
}

type BlogRepository interface {
	List(ctx context.Context) ([]*models.BlogPost, error)
	GetByID(ctx context.Context, id int) (*models.BlogPost, error)
}
