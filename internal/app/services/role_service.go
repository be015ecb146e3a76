package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mertcan/eduportal/internal/app/models"
	"github.com/mertcan/eduportal/internal/pkg/cache"
	"github.com/mertcan/eduportal/internal/pkg/logger"
)

// profileRoleReader reads the role field of a persisted profile.
type profileRoleReader interface {
	GetRoleByID(ctx context.Context, id uuid.UUID) (models.Role, error)
}

// RoleResolverConfig controls the bounded retry against the profile store.
// Profile rows are provisioned asynchronously after registration, so the
// first read can race the row's creation; retrying with a short backoff
// covers that window without a fixed sleep.
type RoleResolverConfig struct {
	Attempts int
	Backoff  time.Duration
	CacheTTL time.Duration
}

// RoleResolver determines a principal's role. The persisted profile field
// is authoritative; the identity provider's metadata role is only consulted
// after profile reads exhaust their retries, and only the two literal role
// values are accepted from it. Resolution never returns an error: anything
// unresolvable degrades to RoleUnknown, which is read-only.
type RoleResolver struct {
	profiles profileRoleReader
	cache    *cache.Store
	config   RoleResolverConfig
}

// NewRoleResolver creates a new RoleResolver.
func NewRoleResolver(profiles profileRoleReader, store *cache.Store, config RoleResolverConfig) *RoleResolver {
	if config.Attempts < 1 {
		config.Attempts = 3
	}
	if config.Backoff <= 0 {
		config.Backoff = 200 * time.Millisecond
	}
	return &RoleResolver{
		profiles: profiles,
		cache:    store,
		config:   config,
	}
}

func roleCacheKey(id uuid.UUID) string {
	return "role:" + id.String()
}

// Resolve returns the principal's role, cached per session. metadataRole is
// the role claim from the identity provider's metadata bag.
func (r *RoleResolver) Resolve(ctx context.Context, principalID uuid.UUID, metadataRole string) models.Role {
	if cached, ok := r.cache.Get(roleCacheKey(principalID)); ok {
		if role, ok := cached.(models.Role); ok {
			return role
		}
	}

	role := r.resolve(ctx, principalID, metadataRole)
	if role != models.RoleUnknown {
		r.cache.SetWithTTL(roleCacheKey(principalID), role, r.config.CacheTTL)
	}
	return role
}

func (r *RoleResolver) resolve(ctx context.Context, principalID uuid.UUID, metadataRole string) models.Role {
	var lastErr error
	for attempt := 0; attempt < r.config.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(r.config.Backoff):
			case <-ctx.Done():
				return models.RoleUnknown
			}
		}

		role, err := r.profiles.GetRoleByID(ctx, principalID)
		if err == nil {
			if role == models.RoleUnknown {
				// The row exists but holds an unexpected value;
				// retrying will not change that.
				break
			}
			return role
		}
		lastErr = err
	}

	if lastErr != nil {
		logger.Warn().Err(lastErr).Str("principalID", principalID.String()).
			Msg("Profile role unavailable after retries, falling back to identity metadata")
	}

	// Only the two literal values are accepted from the metadata bag.
	if fallback := models.ParseRole(metadataRole); fallback != models.RoleUnknown {
		return fallback
	}
	return models.RoleUnknown
}

// Forget clears the cached role for a principal, called on sign-out and on
// session change so the next request re-derives it.
func (r *RoleResolver) Forget(principalID uuid.UUID) {
	r.cache.Invalidate(roleCacheKey(principalID))
}
