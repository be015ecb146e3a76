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
	"github.com/mertcan/eduportal/internal/pkg/schedule"
)

const timetableCacheKey = "timetable"

// timetableStore is the repository contract the service depends on.
type timetableStore interface {
	ListEntries(ctx context.Context) ([]*models.TimetableEntry, error)
	CreateEntry(ctx context.Context, entry *models.TimetableEntry) error
	GetEntryByID(ctx context.Context, id uuid.UUID) (*models.TimetableEntry, error)
	DeleteEntry(ctx context.Context, id, ownerID uuid.UUID) error
	CountEntries(ctx context.Context) (int64, error)
}

// TimetableService defines the interface for class schedule operations
type TimetableService interface {
	ListGrouped(ctx context.Context) ([]models.DaySchedule, error)
	CreateEntry(ctx context.Context, req *dto.CreateTimetableEntryRequest, acting models.Principal) (*models.TimetableEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID, acting models.Principal) error
}

type timetableServiceImpl struct {
	repo  timetableStore
	cache *cache.Store
}

// NewTimetableService creates a new timetable service instance
func NewTimetableService(repo timetableStore, store *cache.Store) TimetableService {
	return &timetableServiceImpl{
		repo:  repo,
		cache: store,
	}
}

// ListGrouped returns the timetable grouped into the seven weekday buckets
// in Monday..Sunday order. Rows come back from the store sorted by weekday
// then start time, and grouping preserves that order.
func (s *timetableServiceImpl) ListGrouped(ctx context.Context) ([]models.DaySchedule, error) {
	if cached, ok := s.cache.Get(timetableCacheKey); ok {
		if entries, ok := cached.([]*models.TimetableEntry); ok {
			return models.GroupByDay(entries), nil
		}
	}

	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "failed to load timetable")
	}

	s.cache.Set(timetableCacheKey, entries)
	return models.GroupByDay(entries), nil
}

// CreateEntry validates input, appends the automatic break to the entered
// end time and persists the adjusted value. The raw end time is discarded.
func (s *timetableServiceImpl) CreateEntry(ctx context.Context, req *dto.CreateTimetableEntryRequest, acting models.Principal) (*models.TimetableEntry, error) {
	if !acting.Role.CanWrite() {
		return nil, apperrors.ErrNotFaculty
	}

	if strings.TrimSpace(req.Subject) == "" {
		return nil, fmt.Errorf("%w: subject cannot be empty", apperrors.ErrValidationFailed)
	}

	day, err := models.ParseWeekday(req.Day)
	if err != nil {
		return nil, err
	}

	start, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}

	rawEnd, err := schedule.ParseClock(req.EndTime)
	if err != nil {
		return nil, err
	}
	end := schedule.AdjustEndTime(rawEnd, schedule.DefaultBreakMinutes)

	entry := &models.TimetableEntry{
		Day:         day,
		StartTime:   start.String(),
		EndTime:     end.String(),
		Subject:     strings.TrimSpace(req.Subject),
		FacultyID:   acting.ID,
		FacultyName: acting.FullName,
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, apperrors.NewStoreError(err, "failed to add class")
	}

	s.cache.Invalidate(timetableCacheKey)
	return entry, nil
}

// DeleteEntry removes a scheduled class owned by the acting principal.
func (s *timetableServiceImpl) DeleteEntry(ctx context.Context, id uuid.UUID, acting models.Principal) error {
	if !acting.Role.CanWrite() {
		return apperrors.ErrNotFaculty
	}

	entry, err := s.repo.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTimetableEntryNotFound) {
			return apperrors.ErrTimetableEntryNotFound
		}
		return apperrors.NewStoreError(err, "failed to load timetable entry")
	}

	if entry.OwnerID() != acting.ID {
		return apperrors.ErrNotOwner
	}

	if err := s.repo.DeleteEntry(ctx, id, acting.ID); err != nil {
		if errors.Is(err, apperrors.ErrTimetableEntryNotFound) {
			return apperrors.ErrTimetableEntryNotFound
		}
		return apperrors.NewStoreError(err, "failed to delete class")
	}

	s.cache.Invalidate(timetableCacheKey)
	return nil
}
