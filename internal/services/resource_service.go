package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
	"helpize/internal/utils"
	"helpize/pkg/logger"
	"helpize/pkg/storage"
)

type ResourceService interface {
	// List returns resources whose category contains filter. An empty
	// filter returns everything.
	List(ctx context.Context, filter string) ([]*models.Resource, error)
	// Upload stores one file under its sanitized base name.
	Upload(ctx context.Context, filename string, content io.Reader, size int64, contentType string) (*storage.UploadResponse, error)
	ListUploads(ctx context.Context) ([]*storage.FileInfo, error)
}

type resourceService struct {
	resourceRepo interfaces.ResourceRepository
	storage      storage.StorageProvider
	logger       *logger.Logger
}

func NewResourceService(resourceRepo interfaces.ResourceRepository, store storage.StorageProvider, log *logger.Logger) ResourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		storage:      store,
		logger:       log,
	}
}

func (s *resourceService) List(ctx context.Context, filter string) ([]*models.Resource, error) {
	resources, err := s.resourceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	if filter == "" {
		return resources, nil
	}

	filtered := make([]*models.Resource, 0, len(resources))
	for _, r := range resources {
		if strings.Contains(r.Category, filter) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *resourceService) Upload(ctx context.Context, filename string, content io.Reader, size int64, contentType string) (*storage.UploadResponse, error) {
	key := utils.SanitizeFilename(filename)
	if key == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	resp, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      content,
		Size:        size,
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"key":  resp.Key,
		"size": resp.Size,
	}).Info("Resource file uploaded")

	return resp, nil
}

func (s *resourceService) ListUploads(ctx context.Context) ([]*storage.FileInfo, error) {
	files, err := s.storage.ListFiles(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	return files, nil
}
