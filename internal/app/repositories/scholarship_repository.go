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

// ScholarshipRepository handles scholarship database operations
type ScholarshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScholarshipRepository creates a new ScholarshipRepository
func NewScholarshipRepository(db *pgxpool.Pool) *ScholarshipRepository {
	return &ScholarshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListScholarships retrieves all scholarships joined with the adder's
// display name, newest first.
func (r *ScholarshipRepository) ListScholarships(ctx context.Context) ([]*models.Scholarship, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.name", "s.description", "s.link", "s.added_by",
		"COALESCE(p.full_name, 'Unknown') AS adder_name", "s.created_at",
	).
		From("scholarships s").
		LeftJoin("profiles p ON p.id = s.added_by").
		OrderBy("s.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list scholarships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list scholarships query")
		return nil, fmt.Errorf("error querying scholarships: %w", err)
	}
	defer rows.Close()

	scholarships := []*models.Scholarship{}
	for rows.Next() {
		sch := &models.Scholarship{}
		if err := rows.Scan(&sch.ID, &sch.Name, &sch.Description, &sch.Link,
			&sch.AddedBy, &sch.AdderName, &sch.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning scholarship row: %w", err)
		}
		scholarships = append(scholarships, sch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scholarship rows: %w", err)
	}

	return scholarships, nil
}

// CreateScholarship inserts a scholarship stamped with its owner.
func (r *ScholarshipRepository) CreateScholarship(ctx context.Context, scholarship *models.Scholarship) error {
	if scholarship.ID == uuid.Nil {
		scholarship.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("scholarships").
		Columns("id", "name", "description", "link", "added_by").
		Values(scholarship.ID, scholarship.Name, scholarship.Description, scholarship.Link, scholarship.AddedBy).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create scholarship query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&scholarship.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProfileNotFound
		}
		if dberrors.IsPermissionDenied(err) {
			return apperrors.ErrPermissionDenied
		}
		logger.Error().Err(err).Msg("Error executing create scholarship query")
		return fmt.Errorf("error creating scholarship: %w", err)
	}

	return nil
}

// GetScholarshipByID retrieves a single scholarship, used for ownership checks.
func (r *ScholarshipRepository) GetScholarshipByID(ctx context.Context, id uuid.UUID) (*models.Scholarship, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "link", "added_by", "created_at").
		From("scholarships").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get scholarship query: %w", err)
	}

	sch := &models.Scholarship{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&sch.ID, &sch.Name, &sch.Description, &sch.Link, &sch.AddedBy, &sch.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScholarshipNotFound
		}
		logger.Error().Err(err).Str("scholarshipID", id.String()).Msg("Error scanning scholarship row")
		return nil, fmt.Errorf("error getting scholarship by ID: %w", err)
	}

	return sch, nil
}

// DeleteScholarship deletes a scholarship by id, owner-gated store-side.
func (r *ScholarshipRepository) DeleteScholarship(ctx context.Context, id, ownerID uuid.UUID) error {
	sql, args, err := r.sb.Delete("scholarships").
		Where(squirrel.Eq{"id": id, "added_by": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete scholarship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsPermissionDenied(err) {
			return apperrors.ErrPermissionDenied
		}
		logger.Error().Err(err).Str("scholarshipID", id.String()).Msg("Error executing delete scholarship query")
		return fmt.Errorf("error deleting scholarship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScholarshipNotFound
	}

	return nil
}

// CountScholarships returns the number of scholarship rows.
func (r *ScholarshipRepository) CountScholarships(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("scholarships").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count scholarships query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting scholarships: %w", err)
	}
	return count, nil
}
