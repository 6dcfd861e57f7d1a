package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// FacultyRepository handles faculty reads. Every faculty write can touch
// room occupancy or needs to be atomic with one that does, so the write
// paths live in the allocation store.
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var facultyColumns = []string{"id", "name", "post", "department_id", "contact", "date_of_join", "room_no"}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	faculty := &models.Faculty{}
	err := row.Scan(
		&faculty.ID,
		&faculty.Name,
		&faculty.Post,
		&faculty.DepartmentID,
		&faculty.Contact,
		&faculty.DateOfJoin,
		&faculty.RoomNo,
	)
	if err != nil {
		return nil, err
	}
	return faculty, nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error getting faculty")
		return nil, fmt.Errorf("error getting faculty: %w", err)
	}

	return faculty, nil
}

// List retrieves faculty matching the filter, ordered by name
func (r *FacultyRepository) List(ctx context.Context, filter models.FacultyFilter) ([]*models.Faculty, error) {
	query := r.sb.Select(facultyColumns...).
		From("faculty").
		OrderBy("name ASC")

	if filter.DepartmentID != 0 {
		query = query.Where(squirrel.Eq{"department_id": filter.DepartmentID})
	}
	if filter.NameContains != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.NameContains + "%"})
	}
	if filter.UnassignedOnly {
		query = query.Where(squirrel.Eq{"room_no": nil})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying faculty")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	members := []*models.Faculty{}
	for rows.Next() {
		faculty, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		members = append(members, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return members, nil
}

