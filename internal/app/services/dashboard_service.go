package services

import (
	"context"

	"github.com/mertcan/eduportal/internal/app/models/dto"
	"github.com/mertcan/eduportal/internal/pkg/apperrors"
)

// DashboardService provides the portal's entity counts.
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardServiceImpl struct {
	resources    resourceStore
	scholarships scholarshipStore
	timetable    timetableStore
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(resources resourceStore, scholarships scholarshipStore, timetable timetableStore) DashboardService {
	return &dashboardServiceImpl{
		resources:    resources,
		scholarships: scholarships,
		timetable:    timetable,
	}
}

// Stats returns the counts shown on the dashboard cards.
func (s *dashboardServiceImpl) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	resources, err := s.resources.CountResources(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "failed to count resources")
	}

	classes, err := s.timetable.CountEntries(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "failed to count classes")
	}

	scholarships, err := s.scholarships.CountScholarships(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "failed to count scholarships")
	}

	return &dto.DashboardStatsResponse{
		Resources:    resources,
		Classes:      classes,
		Scholarships: scholarships,
	}, nil
}
