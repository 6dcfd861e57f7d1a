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
	"github.com/okanc/campusspace/internal/pkg/dberrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// DepartmentRepository handles database operations for departments,
// including head-of-department bookkeeping. A partial unique index on
// hod_id backs the head-at-most-one-department rule, so concurrent
// SetHead calls cannot both land.
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Insert("departments").
		Columns("name", "hod_id").
		Values(department.Name, department.HodID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&department.ID); err != nil {
		if dberrors.IsUniqueConstraintViolation(err, "departments_hod_id_key") {
			return apperrors.ErrAlreadyHeadsDepartment
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("name", department.Name).Msg("Error creating department")
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

const departmentSelect = `
	d.id, d.name, d.hod_id, f.name,
	(SELECT COUNT(*) FROM faculty fc WHERE fc.department_id = d.id)`

func scanDepartment(row pgx.Row) (*models.Department, error) {
	department := &models.Department{}
	err := row.Scan(
		&department.ID,
		&department.Name,
		&department.HodID,
		&department.HodName,
		&department.FacultyCount,
	)
	if err != nil {
		return nil, err
	}
	return department, nil
}

// GetByID retrieves a department with its head's name and faculty count
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select(departmentSelect).
		From("departments d").
		LeftJoin("faculty f ON d.hod_id = f.id").
		Where(squirrel.Eq{"d.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department, err := scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error getting department")
		return nil, fmt.Errorf("error getting department: %w", err)
	}

	return department, nil
}

// List retrieves all departments ordered by name
func (r *DepartmentRepository) List(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.sb.Select(departmentSelect).
		From("departments d").
		LeftJoin("faculty f ON d.hod_id = f.id").
		OrderBy("d.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying departments")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// UpdateName renames a department
func (r *DepartmentRepository) UpdateName(ctx context.Context, id int64, name string) error {
	sql, args, err := r.sb.Update("departments").
		Set("name", name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error updating department")
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// SetHead sets or clears a department's head. A nil facultyID clears it.
func (r *DepartmentRepository) SetHead(ctx context.Context, id int64, facultyID *int64) error {
	sql, args, err := r.sb.Update("departments").
		Set("hod_id", facultyID).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set head query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyHeadsDepartment
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error setting department head")
		return fmt.Errorf("error setting department head: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete removes a department; blocked while faculty still belong to it
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	existsSql, existsArgs, err := r.sb.Select("1").
		From("faculty").
		Where(squirrel.Eq{"department_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build department faculty query: %w", err)
	}

	var hasFaculty bool
	if err := r.db.QueryRow(ctx, existsSql, existsArgs...).Scan(&hasFaculty); err != nil {
		return fmt.Errorf("error checking department faculty: %w", err)
	}
	if hasFaculty {
		return apperrors.ErrDepartmentHasFaculty
	}

	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentHasFaculty
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error deleting department")
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// ListHeadCandidates retrieves department members eligible to become
// head: they must belong to the department and not head any department.
func (r *DepartmentRepository) ListHeadCandidates(ctx context.Context, id int64) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"department_id": id}).
		Where("id NOT IN (SELECT hod_id FROM departments WHERE hod_id IS NOT NULL)").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build head candidates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error querying head candidates")
		return nil, fmt.Errorf("error querying head candidates: %w", err)
	}
	defer rows.Close()

	candidates := []*models.Faculty{}
	for rows.Next() {
		faculty, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning head candidate row: %w", err)
		}
		candidates = append(candidates, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating head candidate rows: %w", err)
	}

	return candidates, nil
}
