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

// ResourceRepository handles resource database operations
type ResourceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListResources retrieves all resources joined with the uploader's display
// name, newest first. A failed query is an error, never an empty list.
func (r *ResourceRepository) ListResources(ctx context.Context) ([]*models.Resource, error) {
	sql, args, err := r.sb.Select(
		"r.id", "r.title", "r.description", "r.link", "r.uploaded_by",
		"COALESCE(p.full_name, 'Unknown') AS uploader_name", "r.created_at",
	).
		From("resources r").
		LeftJoin("profiles p ON p.id = r.uploaded_by").
		OrderBy("r.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list resources query")
		return nil, fmt.Errorf("error querying resources: %w", err)
	}
	defer rows.Close()

	resources := []*models.Resource{}
	for rows.Next() {
		res := &models.Resource{}
		if err := rows.Scan(&res.ID, &res.Title, &res.Description, &res.Link,
			&res.UploadedBy, &res.UploaderName, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}

	return resources, nil
}

// CreateResource inserts a resource stamped with its owner.
func (r *ResourceRepository) CreateResource(ctx context.Context, resource *models.Resource) error {
	if resource.ID == uuid.Nil {
		resource.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("resources").
		Columns("id", "title", "description", "link", "uploaded_by").
		Values(resource.ID, resource.Title, resource.Description, resource.Link, resource.UploadedBy).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create resource query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&resource.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProfileNotFound
		}
		if dberrors.IsPermissionDenied(err) {
			return apperrors.ErrPermissionDenied
		}
		logger.Error().Err(err).Msg("Error executing create resource query")
		return fmt.Errorf("error creating resource: %w", err)
	}

	return nil
}

// GetResourceByID retrieves a single resource, used for ownership checks.
func (r *ResourceRepository) GetResourceByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "link", "uploaded_by", "created_at").
		From("resources").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get resource query: %w", err)
	}

	res := &models.Resource{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&res.ID, &res.Title, &res.Description, &res.Link, &res.UploadedBy, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("resourceID", id.String()).Msg("Error scanning resource row")
		return nil, fmt.Errorf("error getting resource by ID: %w", err)
	}

	return res, nil
}

// DeleteResource deletes a resource by id. The owner condition is the
// store-side second line of defense behind the service's ownership gate.
func (r *ResourceRepository) DeleteResource(ctx context.Context, id, ownerID uuid.UUID) error {
	sql, args, err := r.sb.Delete("resources").
		Where(squirrel.Eq{"id": id, "uploaded_by": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsPermissionDenied(err) {
			return apperrors.ErrPermissionDenied
		}
		logger.Error().Err(err).Str("resourceID", id.String()).Msg("Error executing delete resource query")
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// CountResources returns the number of resource rows.
func (r *ResourceRepository) CountResources(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("resources").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count resources query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting resources: %w", err)
	}
	return count, nil
}
