package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mertcan/eduportal/internal/app/models"
	"github.com/mertcan/eduportal/internal/pkg/apperrors"
	"github.com/mertcan/eduportal/internal/pkg/cache"
)

// fakeRoleReader returns scripted results, one per call, repeating the last.
type fakeRoleReader struct {
	roles []models.Role
	errs  []error
	calls int
}

func (f *fakeRoleReader) GetRoleByID(ctx context.Context, id uuid.UUID) (models.Role, error) {
	i := f.calls
	if i >= len(f.roles) {
		i = len(f.roles) - 1
	}
	f.calls++
	return f.roles[i], f.errs[i]
}

func newTestResolver(reader *fakeRoleReader) *RoleResolver {
	return NewRoleResolver(reader, cache.New(time.Minute), RoleResolverConfig{
		Attempts: 3,
		Backoff:  time.Millisecond,
		CacheTTL: time.Minute,
	})
}

func TestResolveFromProfile(t *testing.T) {
	reader := &fakeRoleReader{roles: []models.Role{models.RoleFaculty}, errs: []error{nil}}
	resolver := newTestResolver(reader)

	// Metadata says student, but the profile row wins.
	role := resolver.Resolve(context.Background(), uuid.New(), "student")
	assert.Equal(t, models.RoleFaculty, role)
	assert.Equal(t, 1, reader.calls)
}

func TestResolveRetriesThenSucceeds(t *testing.T) {
	reader := &fakeRoleReader{
		roles: []models.Role{models.RoleUnknown, models.RoleStudent},
		errs:  []error{apperrors.ErrProfileNotFound, nil},
	}
	resolver := newTestResolver(reader)

	role := resolver.Resolve(context.Background(), uuid.New(), "")
	assert.Equal(t, models.RoleStudent, role)
	assert.Equal(t, 2, reader.calls)
}

func TestResolveFallsBackToMetadata(t *testing.T) {
	reader := &fakeRoleReader{
		roles: []models.Role{models.RoleUnknown},
		errs:  []error{apperrors.ErrProfileNotFound},
	}
	resolver := newTestResolver(reader)

	role := resolver.Resolve(context.Background(), uuid.New(), "student")
	assert.Equal(t, models.RoleStudent, role)
	// Retries exhausted before the fallback was consulted.
	assert.Equal(t, 3, reader.calls)
}

func TestResolveUnknownWhenMetadataRejected(t *testing.T) {
	reader := &fakeRoleReader{
		roles: []models.Role{models.RoleUnknown},
		errs:  []error{apperrors.ErrProfileNotFound},
	}
	resolver := newTestResolver(reader)

	// "admin" is not one of the two accepted literals.
	role := resolver.Resolve(context.Background(), uuid.New(), "admin")
	assert.Equal(t, models.RoleUnknown, role)
}

func TestResolveInvalidProfileValueSkipsRetries(t *testing.T) {
	// The row exists but holds garbage; retrying cannot help, fall through
	// to metadata immediately.
	reader := &fakeRoleReader{roles: []models.Role{models.RoleUnknown}, errs: []error{nil}}
	resolver := newTestResolver(reader)

	role := resolver.Resolve(context.Background(), uuid.New(), "faculty")
	assert.Equal(t, models.RoleFaculty, role)
	assert.Equal(t, 1, reader.calls)
}

func TestResolveCachesPerSession(t *testing.T) {
	reader := &fakeRoleReader{roles: []models.Role{models.RoleFaculty}, errs: []error{nil}}
	resolver := newTestResolver(reader)
	id := uuid.New()

	assert.Equal(t, models.RoleFaculty, resolver.Resolve(context.Background(), id, ""))
	assert.Equal(t, models.RoleFaculty, resolver.Resolve(context.Background(), id, ""))
	assert.Equal(t, 1, reader.calls)

	resolver.Forget(id)
	assert.Equal(t, models.RoleFaculty, resolver.Resolve(context.Background(), id, ""))
	assert.Equal(t, 2, reader.calls)
}

func TestResolveDoesNotCacheUnknown(t *testing.T) {
	reader := &fakeRoleReader{
		roles: []models.Role{models.RoleUnknown, models.RoleUnknown, models.RoleUnknown, models.RoleFaculty},
		errs:  []error{apperrors.ErrProfileNotFound, apperrors.ErrProfileNotFound, apperrors.ErrProfileNotFound, nil},
	}
	resolver := newTestResolver(reader)
	id := uuid.New()

	// First pass exhausts retries and degrades to unknown.
	assert.Equal(t, models.RoleUnknown, resolver.Resolve(context.Background(), id, ""))
	// A later request can still pick up the provisioned row.
	assert.Equal(t, models.RoleFaculty, resolver.Resolve(context.Background(), id, ""))
}
