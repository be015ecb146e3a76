package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/eduportal/internal/app/models"
	"github.com/mertcan/eduportal/internal/app/models/dto"
	"github.com/mertcan/eduportal/internal/pkg/apperrors"
	"github.com/mertcan/eduportal/internal/pkg/cache"
)

// fakeTimetableStore keeps entries ordered the way the real repository
// does: weekday calendar index, then start time.
type fakeTimetableStore struct {
	entries     []*models.TimetableEntry
	createCalls int
	deleteCalls int
}

func (f *fakeTimetableStore) ListEntries(ctx context.Context) ([]*models.TimetableEntry, error) {
	sorted := append([]*models.TimetableEntry{}, f.entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day.Index() < sorted[j].Day.Index()
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})
	return sorted, nil
}

func (f *fakeTimetableStore) CreateEntry(ctx context.Context, entry *models.TimetableEntry) error {
	f.createCalls++
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeTimetableStore) GetEntryByID(ctx context.Context, id uuid.UUID) (*models.TimetableEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrTimetableEntryNotFound
}

func (f *fakeTimetableStore) DeleteEntry(ctx context.Context, id, ownerID uuid.UUID) error {
	f.deleteCalls++
	for i, e := range f.entries {
		if e.ID == id && e.FacultyID == ownerID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrTimetableEntryNotFound
}

func (f *fakeTimetableStore) CountEntries(ctx context.Context) (int64, error) {
	return int64(len(f.entries)), nil
}

func TestCreateEntryPersistsAdjustedEndTime(t *testing.T) {
	store := &fakeTimetableStore{}
	svc := NewTimetableService(store, cache.New(time.Minute))

	entry, err := svc.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day:       "Monday",
		StartTime: "09:00",
		EndTime:   "10:00",
		Subject:   "Algebra",
	}, faculty())
	require.NoError(t, err)

	// The persisted end time includes the 15-minute break; the raw 10:00
	// entered by the user is gone.
	assert.Equal(t, "10:15", entry.EndTime)
	assert.Equal(t, "09:00", entry.StartTime)
	assert.Equal(t, models.Monday, entry.Day)
}

func TestCreateEntryMidnightWrapKeepsWeekday(t *testing.T) {
	store := &fakeTimetableStore{}
	svc := NewTimetableService(store, cache.New(time.Minute))

	entry, err := svc.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day:       "Friday",
		StartTime: "22:30",
		EndTime:   "23:50",
		Subject:   "Astronomy Lab",
	}, faculty())
	require.NoError(t, err)

	// Wraps past midnight but stays on Friday.
	assert.Equal(t, "00:05", entry.EndTime)
	assert.Equal(t, models.Friday, entry.Day)
}

func TestCreateEntryValidation(t *testing.T) {
	store := &fakeTimetableStore{}
	svc := NewTimetableService(store, cache.New(time.Minute))
	acting := faculty()

	tests := []struct {
		name string
		req  dto.CreateTimetableEntryRequest
	}{
		{"bad day", dto.CreateTimetableEntryRequest{Day: "Someday", StartTime: "09:00", EndTime: "10:00", Subject: "X"}},
		{"bad start", dto.CreateTimetableEntryRequest{Day: "Monday", StartTime: "9am", EndTime: "10:00", Subject: "X"}},
		{"bad end", dto.CreateTimetableEntryRequest{Day: "Monday", StartTime: "09:00", EndTime: "26:00", Subject: "X"}},
		{"empty subject", dto.CreateTimetableEntryRequest{Day: "Monday", StartTime: "09:00", EndTime: "10:00", Subject: " "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEntry(context.Background(), &tt.req, acting)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
	assert.Equal(t, 0, store.createCalls)
}

func TestFacultyCreatesStudentSeesGrouped(t *testing.T) {
	store := &fakeTimetableStore{}
	svc := NewTimetableService(store, cache.New(time.Minute))
	prof := faculty()

	_, err := svc.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day:       "Monday",
		StartTime: "09:00",
		EndTime:   "10:00",
		Subject:   "Algebra",
	}, prof)
	require.NoError(t, err)

	// A student cannot create, but sees the grouped schedule.
	_, err = svc.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day:       "Monday",
		StartTime: "11:00",
		EndTime:   "12:00",
		Subject:   "Sneaky",
	}, student())
	assert.ErrorIs(t, err, apperrors.ErrNotFaculty)

	grouped, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)
	require.Len(t, grouped, 7)
	assert.Equal(t, models.Monday, grouped[0].Day)
	require.Len(t, grouped[0].Entries, 1)
	assert.Equal(t, "Algebra", grouped[0].Entries[0].Subject)
	assert.Equal(t, "10:15", grouped[0].Entries[0].EndTime)
	for _, bucket := range grouped[1:] {
		assert.Empty(t, bucket.Entries)
	}
}

func TestDeleteEntryOwnershipGate(t *testing.T) {
	store := &fakeTimetableStore{}
	svc := NewTimetableService(store, cache.New(time.Minute))
	owner := faculty()

	entry, err := svc.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day:       "Tuesday",
		StartTime: "14:00",
		EndTime:   "15:00",
		Subject:   "Physics",
	}, owner)
	require.NoError(t, err)

	err = svc.DeleteEntry(context.Background(), entry.ID, faculty())
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	assert.Equal(t, 0, store.deleteCalls)

	err = svc.DeleteEntry(context.Background(), entry.ID, student())
	assert.ErrorIs(t, err, apperrors.ErrNotFaculty)

	require.NoError(t, svc.DeleteEntry(context.Background(), entry.ID, owner))
}

func TestDeleteMissingEntry(t *testing.T) {
	svc := NewTimetableService(&fakeTimetableStore{}, cache.New(time.Minute))

	err := svc.DeleteEntry(context.Background(), uuid.New(), faculty())
	assert.ErrorIs(t, err, apperrors.ErrTimetableEntryNotFound)
}
