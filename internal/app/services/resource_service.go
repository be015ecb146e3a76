package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mertcan/eduportal/internal/app/models"
	"github.com/mertcan/eduportal/internal/app/models/dto"
	"github.com/mertcan/eduportal/internal/pkg/apperrors"
	"github.com/mertcan/eduportal/internal/pkg/cache"
)

const resourcesCacheKey = "resources"

// resourceStore is the repository contract the service depends on.
type resourceStore interface {
	ListResources(ctx context.Context) ([]*models.Resource, error)
	CreateResource(ctx context.Context, resource *models.Resource) error
	GetResourceByID(ctx context.Context, id uuid.UUID) (*models.Resource, error)
	DeleteResource(ctx context.Context, id, ownerID uuid.UUID) error
	CountResources(ctx context.Context) (int64, error)
}

// ResourceService defines the interface for resource operations
type ResourceService interface {
	ListResources(ctx context.Context) ([]*models.Resource, error)
	CreateResource(ctx context.Context, req *dto.CreateResourceRequest, acting models.Principal) (*models.Resource, error)
	DeleteResource(ctx context.Context, id uuid.UUID, acting models.Principal) error
}

type resourceServiceImpl struct {
	repo  resourceStore
	cache *cache.Store
}

// NewResourceService creates a new resource service instance
func NewResourceService(repo resourceStore, store *cache.Store) ResourceService {
	return &resourceServiceImpl{
		repo:  repo,
		cache: store,
	}
}

// ListResources returns all resources, newest first, through the list cache.
func (s *resourceServiceImpl) ListResources(ctx context.Context) ([]*models.Resource, error) {
	if cached, ok := s.cache.Get(resourcesCacheKey); ok {
		if resources, ok := cached.([]*models.Resource); ok {
			return resources, nil
		}
	}

	resources, err := s.repo.ListResources(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "failed to load resources")
	}

	s.cache.Set(resourcesCacheKey, resources)
	return resources, nil
}

// CreateResource validates input, stamps the acting principal as owner and
// invalidates the cached list on success. Only faculty may create.
func (s *resourceServiceImpl) CreateResource(ctx context.Context, req *dto.CreateResourceRequest, acting models.Principal) (*models.Resource, error) {
	if !acting.Role.CanWrite() {
		return nil, apperrors.ErrNotFaculty
	}

	// Required fields are checked before any remote call.
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Link) == "" {
		return nil, fmt.Errorf("%w: link cannot be empty", apperrors.ErrValidationFailed)
	}

	resource := &models.Resource{
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Link:         strings.TrimSpace(req.Link),
		UploadedBy:   acting.ID,
		UploaderName: acting.FullName,
	}

	if err := s.repo.CreateResource(ctx, resource); err != nil {
		return nil, apperrors.NewStoreError(err, "failed to add resource")
	}

	s.cache.Invalidate(resourcesCacheKey)
	return resource, nil
}

// DeleteResource removes a resource. The acting principal must own the row;
// the store's owner-scoped delete enforces the same rule server-side.
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, id uuid.UUID, acting models.Principal) error {
	if !acting.Role.CanWrite() {
		return apperrors.ErrNotFaculty
	}

	resource, err := s.repo.GetResourceByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return apperrors.NewStoreError(err, "failed to load resource")
	}

	if resource.OwnerID() != acting.ID {
		return apperrors.ErrNotOwner
	}

	if err := s.repo.DeleteResource(ctx, id, acting.ID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return apperrors.NewStoreError(err, "failed to delete resource")
	}

	s.cache.Invalidate(resourcesCacheKey)
	return nil
}
