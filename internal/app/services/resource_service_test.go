package services

import (
	"context"
	"errors"
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

// fakeResourceStore is an in-memory resourceStore that counts calls.
type fakeResourceStore struct {
	resources   []*models.Resource
	listCalls   int
	createCalls int
	deleteCalls int
	listErr     error
	createErr   error
}

func (f *fakeResourceStore) ListResources(ctx context.Context) ([]*models.Resource, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.resources, nil
}

func (f *fakeResourceStore) CreateResource(ctx context.Context, resource *models.Resource) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	resource.ID = uuid.New()
	resource.CreatedAt = time.Now()
	f.resources = append([]*models.Resource{resource}, f.resources...)
	return nil
}

func (f *fakeResourceStore) GetResourceByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	for _, r := range f.resources {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeResourceStore) DeleteResource(ctx context.Context, id, ownerID uuid.UUID) error {
	f.deleteCalls++
	for i, r := range f.resources {
		if r.ID == id && r.UploadedBy == ownerID {
			f.resources = append(f.resources[:i], f.resources[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (f *fakeResourceStore) CountResources(ctx context.Context) (int64, error) {
	return int64(len(f.resources)), nil
}

func faculty() models.Principal {
	return models.Principal{ID: uuid.New(), FullName: "Dr. Jane Doe", Role: models.RoleFaculty}
}

func student() models.Principal {
	return models.Principal{ID: uuid.New(), FullName: "John Student", Role: models.RoleStudent}
}

func TestCreateResourceRequiresLink(t *testing.T) {
	store := &fakeResourceStore{}
	svc := NewResourceService(store, cache.New(time.Minute))

	_, err := svc.CreateResource(context.Background(), &dto.CreateResourceRequest{
		Title: "Intro to Go",
		Link:  "  ",
	}, faculty())

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	// Validation failures never reach the store.
	assert.Equal(t, 0, store.createCalls)
}

func TestCreateResourceRejectsNonFaculty(t *testing.T) {
	store := &fakeResourceStore{}
	svc := NewResourceService(store, cache.New(time.Minute))

	for _, p := range []models.Principal{student(), {ID: uuid.New(), Role: models.RoleUnknown}} {
		_, err := svc.CreateResource(context.Background(), &dto.CreateResourceRequest{
			Title: "Intro to Go",
			Link:  "https://example.com/go",
		}, p)
		assert.ErrorIs(t, err, apperrors.ErrNotFaculty)
	}
	assert.Equal(t, 0, store.createCalls)
}

func TestDeleteResourceRejectsNonOwner(t *testing.T) {
	owner := faculty()
	other := faculty()

	store := &fakeResourceStore{}
	svc := NewResourceService(store, cache.New(time.Minute))

	created, err := svc.CreateResource(context.Background(), &dto.CreateResourceRequest{
		Title: "Lecture Notes",
		Link:  "https://example.com/notes",
	}, owner)
	require.NoError(t, err)

	// Another faculty member is gated out before any store call.
	err = svc.DeleteResource(context.Background(), created.ID, other)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	assert.Equal(t, 0, store.deleteCalls)

	require.NoError(t, svc.DeleteResource(context.Background(), created.ID, owner))
	assert.Equal(t, 1, store.deleteCalls)
}

func TestListResourcesUsesCacheUntilInvalidated(t *testing.T) {
	owner := faculty()
	store := &fakeResourceStore{}
	svc := NewResourceService(store, cache.New(time.Minute))

	_, err := svc.ListResources(context.Background())
	require.NoError(t, err)
	_, err = svc.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)

	// A successful mutation invalidates the cached list.
	_, err = svc.CreateResource(context.Background(), &dto.CreateResourceRequest{
		Title: "Slides",
		Link:  "https://example.com/slides",
	}, owner)
	require.NoError(t, err)

	listed, err := svc.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, store.listCalls)
	require.Len(t, listed, 1)
	assert.Equal(t, "Slides", listed[0].Title)
	assert.Equal(t, owner.ID, listed[0].UploadedBy)
}

func TestCreateResourceKeepsPermissionDeniedMapping(t *testing.T) {
	// A store-side authorization denial must stay distinguishable from a
	// generic store failure even after the service wraps it.
	store := &fakeResourceStore{createErr: apperrors.ErrPermissionDenied}
	svc := NewResourceService(store, cache.New(time.Minute))

	_, err := svc.CreateResource(context.Background(), &dto.CreateResourceRequest{
		Title: "Intro to Go",
		Link:  "https://example.com/go",
	}, faculty())

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
}

func TestListResourcesSurfacesStoreFailure(t *testing.T) {
	store := &fakeResourceStore{listErr: errors.New("connection refused")}
	svc := NewResourceService(store, cache.New(time.Minute))

	listed, err := svc.ListResources(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
	// A failure is an error, never an empty result.
	assert.Nil(t, listed)
}
