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

const scholarshipsCacheKey = "scholarships"

// scholarshipStore is the repository contract the service depends on.
type scholarshipStore interface {
	ListScholarships(ctx context.Context) ([]*models.Scholarship, error)
	CreateScholarship(ctx context.Context, scholarship *models.Scholarship) error
	GetScholarshipByID(ctx context.Context, id uuid.UUID) (*models.Scholarship, error)
	DeleteScholarship(ctx context.Context, id, ownerID uuid.UUID) error
	CountScholarships(ctx context.Context) (int64, error)
}

// ScholarshipService defines the interface for scholarship operations
type ScholarshipService interface {
	ListScholarships(ctx context.Context) ([]*models.Scholarship, error)
	CreateScholarship(ctx context.Context, req *dto.CreateScholarshipRequest, acting models.Principal) (*models.Scholarship, error)
	DeleteScholarship(ctx context.Context, id uuid.UUID, acting models.Principal) error
}

type scholarshipServiceImpl struct {
	repo  scholarshipStore
	cache *cache.Store
}

// NewScholarshipService creates a new scholarship service instance
func NewScholarshipService(repo scholarshipStore, store *cache.Store) ScholarshipService {
	return &scholarshipServiceImpl{
		repo:  repo,
		cache: store,
	}
}

// ListScholarships returns all scholarships, newest first, through the list cache.
func (s *scholarshipServiceImpl) ListScholarships(ctx context.Context) ([]*models.Scholarship, error) {
	if cached, ok := s.cache.Get(scholarshipsCacheKey); ok {
		if scholarships, ok := cached.([]*models.Scholarship); ok {
			return scholarships, nil
		}
	}

	scholarships, err := s.repo.ListScholarships(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "failed to load scholarships")
	}

	s.cache.Set(scholarshipsCacheKey, scholarships)
	return scholarships, nil
}

// CreateScholarship validates input and stamps the acting principal as
// owner. Name, description and link are all required here.
func (s *scholarshipServiceImpl) CreateScholarship(ctx context.Context, req *dto.CreateScholarshipRequest, acting models.Principal) (*models.Scholarship, error) {
	if !acting.Role.CanWrite() {
		return nil, apperrors.ErrNotFaculty
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Link) == "" {
		return nil, fmt.Errorf("%w: link cannot be empty", apperrors.ErrValidationFailed)
	}

	scholarship := &models.Scholarship{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Link:        strings.TrimSpace(req.Link),
		AddedBy:     acting.ID,
		AdderName:   acting.FullName,
	}

	if err := s.repo.CreateScholarship(ctx, scholarship); err != nil {
		return nil, apperrors.NewStoreError(err, "failed to add scholarship")
	}

	s.cache.Invalidate(scholarshipsCacheKey)
	return scholarship, nil
}

// DeleteScholarship removes a scholarship owned by the acting principal.
func (s *scholarshipServiceImpl) DeleteScholarship(ctx context.Context, id uuid.UUID, acting models.Principal) error {
	if !acting.Role.CanWrite() {
		return apperrors.ErrNotFaculty
	}

	scholarship, err := s.repo.GetScholarshipByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrScholarshipNotFound) {
			return apperrors.ErrScholarshipNotFound
		}
		return apperrors.NewStoreError(err, "failed to load scholarship")
	}

	if scholarship.OwnerID() != acting.ID {
		return apperrors.ErrNotOwner
	}

	if err := s.repo.DeleteScholarship(ctx, id, acting.ID); err != nil {
		if errors.Is(err, apperrors.ErrScholarshipNotFound) {
			return apperrors.ErrScholarshipNotFound
		}
		return apperrors.NewStoreError(err, "failed to delete scholarship")
	}

	s.cache.Invalidate(scholarshipsCacheKey)
	return nil
}
