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

// weekdayOrder sorts day names in calendar order rather than
// alphabetically. Grouping downstream relies on this ordering and performs
// no re-sorting of its own.
const weekdayOrder = `CASE t.day
	WHEN 'Monday' THEN 0
	WHEN 'Tuesday' THEN 1
	WHEN 'Wednesday' THEN 2
	WHEN 'Thursday' THEN 3
	WHEN 'Friday' THEN 4
	WHEN 'Saturday' THEN 5
	WHEN 'Sunday' THEN 6
	ELSE 7 END`

// TimetableRepository handles timetable database operations
type TimetableRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListEntries retrieves all timetable entries joined with the scheduling
// faculty member's display name, ordered by weekday then start time.
func (r *TimetableRepository) ListEntries(ctx context.Context) ([]*models.TimetableEntry, error) {
	sql, args, err := r.sb.Select(
		"t.id", "t.day", "t.start_time", "t.end_time", "t.subject", "t.faculty_id",
		"COALESCE(p.full_name, 'Unknown') AS faculty_name", "t.created_at",
	).
		From("timetable t").
		LeftJoin("profiles p ON p.id = t.faculty_id").
		OrderBy(weekdayOrder, "t.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list timetable query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list timetable query")
		return nil, fmt.Errorf("error querying timetable: %w", err)
	}
	defer rows.Close()

	entries := []*models.TimetableEntry{}
	for rows.Next() {
		entry := &models.TimetableEntry{}
		var day string
		if err := rows.Scan(&entry.ID, &day, &entry.StartTime, &entry.EndTime,
			&entry.Subject, &entry.FacultyID, &entry.FacultyName, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning timetable row: %w", err)
		}
		entry.Day = models.Weekday(day)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timetable rows: %w", err)
	}

	return entries, nil
}

// CreateEntry inserts a timetable entry stamped with its owner. EndTime
// must already include the break adjustment.
func (r *TimetableRepository) CreateEntry(ctx context.Context, entry *models.TimetableEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("timetable").
		Columns("id", "day", "start_time", "end_time", "subject", "faculty_id").
		Values(entry.ID, entry.Day, entry.StartTime, entry.EndTime, entry.Subject, entry.FacultyID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create timetable entry query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&entry.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProfileNotFound
		}
		if dberrors.IsPermissionDenied(err) {
			return apperrors.ErrPermissionDenied
		}
		logger.Error().Err(err).Msg("Error executing create timetable entry query")
		return fmt.Errorf("error creating timetable entry: %w", err)
	}

	return nil
}

// GetEntryByID retrieves a single entry, used for ownership checks.
func (r *TimetableRepository) GetEntryByID(ctx context.Context, id uuid.UUID) (*models.TimetableEntry, error) {
	sql, args, err := r.sb.Select("id", "day", "start_time", "end_time", "subject", "faculty_id", "created_at").
		From("timetable").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get timetable entry query: %w", err)
	}

	entry := &models.TimetableEntry{}
	var day string
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&entry.ID, &day, &entry.StartTime, &entry.EndTime,
		&entry.Subject, &entry.FacultyID, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimetableEntryNotFound
		}
		logger.Error().Err(err).Str("entryID", id.String()).Msg("Error scanning timetable row")
		return nil, fmt.Errorf("error getting timetable entry by ID: %w", err)
	}
	entry.Day = models.Weekday(day)

	return entry, nil
}

// DeleteEntry deletes a timetable entry by id, owner-gated store-side.
func (r *TimetableRepository) DeleteEntry(ctx context.Context, id, ownerID uuid.UUID) error {
	sql, args, err := r.sb.Delete("timetable").
		Where(squirrel.Eq{"id": id, "faculty_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete timetable entry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsPermissionDenied(err) {
			return apperrors.ErrPermissionDenied
		}
		logger.Error().Err(err).Str("entryID", id.String()).Msg("Error executing delete timetable entry query")
		return fmt.Errorf("error deleting timetable entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimetableEntryNotFound
	}

	return nil
}

// CountEntries returns the number of scheduled classes.
func (r *TimetableRepository) CountEntries(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("timetable").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count timetable query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting timetable entries: %w", err)
	}
	return count, nil
}
