package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mertcan/eduportal/internal/app/models"
	"github.com/mertcan/eduportal/internal/pkg/apperrors"
	"github.com/mertcan/eduportal/internal/pkg/dberrors"
	"github.com/mertcan/eduportal/internal/pkg/logger"
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateProfile inserts a new profile row.
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	sql, args, err := r.sb.Insert("profiles").
		Columns("id", "full_name", "email", "password", "role").
		Values(profile.ID, profile.FullName, profile.Email, profile.Password, profile.Role).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create profile query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create profile query")
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetProfileByID retrieves a profile by principal identifier.
func (r *ProfileRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	sql, args, err := r.sb.Select("id", "full_name", "email", "password", "role", "created_at", "updated_at").
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile := &models.Profile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.ID, &profile.FullName, &profile.Email, &profile.Password,
		&profile.Role, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("profileID", id.String()).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile by ID: %w", err)
	}

	return profile, nil
}

// GetProfileByEmail retrieves a profile by email.
func (r *ProfileRepository) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	sql, args, err := r.sb.Select("id", "full_name", "email", "password", "role", "created_at", "updated_at").
		From("profiles").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile by email query: %w", err)
	}

	profile := &models.Profile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.ID, &profile.FullName, &profile.Email, &profile.Password,
		&profile.Role, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Msg("Error scanning profile row by email")
		return nil, fmt.Errorf("error getting profile by email: %w", err)
	}

	return profile, nil
}

// GetRoleByID reads only the role field of a profile. Returns
// apperrors.ErrProfileNotFound when the row has not been provisioned yet,
// which the role resolver treats as a retryable condition.
func (r *ProfileRepository) GetRoleByID(ctx context.Context, id uuid.UUID) (models.Role, error) {
	sql, args, err := r.sb.Select("role").
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.RoleUnknown, fmt.Errorf("failed to build get role query: %w", err)
	}

	var role string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.RoleUnknown, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("profileID", id.String()).Msg("Error reading profile role")
		return models.RoleUnknown, fmt.Errorf("error reading profile role: %w", err)
	}

	return models.ParseRole(role), nil
}
