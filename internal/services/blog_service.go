package services

import (
	"context"
	"fmt"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
)

type BlogService interface {
	List(ctx context.Context) ([]*models.BlogPost, error)
	Get(ctx context.Context, id int) (*models.BlogPost, error)
}

type blogService struct {
	blogRepo interfaces.BlogRepository
}

func NewBlogService(blogRepo interfaces.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) List(ctx context.Context) ([]*models.BlogPost, error) {
	posts, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) Get(ctx context.Context, id int) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}
