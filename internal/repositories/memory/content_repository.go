package memory

import (
	"context"
	"fmt"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
)

type resourceRepository struct {
	resources []models.Resource
}

// NewResourceRepository serves a fixed resource catalogue.
func NewResourceRepository(resources []models.Resource) interfaces.ResourceRepository {
	return &resourceRepository{resources: append([]models.Resource(nil), resources...)}
}

func (r *resourceRepository) List(ctx context.Context) ([]*models.Resource, error) {
	out := make([]*models.Resource, len(r.resources))
	for i := range r.resources {
		resource := r.resources[i]
		out[i] = &resource
	}
	return out, nil
}

type blogRepository struct {
	posts []models.BlogPost
}

func NewBlogRepository(posts []models.BlogPost) interfaces.BlogRepository {
	return &blogRepository{posts: append([]models.BlogPost(nil), posts...)}
}

func (r *blogRepository) List(ctx context.Context) ([]*models.BlogPost, error) {
	out := make([]*models.BlogPost, len(r.posts))
	for i := range r.posts {
		out[i] = copyPost(r.posts[i])
	}
	return out, nil
}

func (r *blogRepository) GetByID(ctx context.Context, id int) (*models.BlogPost, error) {
	for i := range r.posts {
		if r.posts[i].ID == id {
			return copyPost(r.posts[i]), nil
		}
	}
	return nil, fmt.Errorf("blog post %d: %w", id, interfaces.ErrNotFound)
}

func copyPost(post models.BlogPost) *models.BlogPost {
	post.Comments = append([]models.Comment(nil), post.Comments...)
	return &post
}
