package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/app/services"
	"github.com/okanc/campusspace/internal/db"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
	"github.com/okanc/campusspace/internal/pkg/dberrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// AllocationRepository is the only write path for the
// (faculty.room_no, rooms.occupied) pair. Every mutation runs inside a
// single transaction with the touched rows locked via
// SELECT ... FOR UPDATE, so the pair moves together or not at all.
type AllocationRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewAllocationRepository creates a new AllocationRepository
func NewAllocationRepository(database *db.PostgresDB) *AllocationRepository {
	return &AllocationRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var _ services.AllocationStore = (*AllocationRepository)(nil)

// InTx runs fn inside a database transaction
func (r *AllocationRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx services.AllocationTx) error) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &allocationTx{tx: tx, sb: r.sb})
	})
}

type allocationTx struct {
	tx pgx.Tx
	sb squirrel.StatementBuilderType
}

// RoomForUpdate reads a room and locks its row for the transaction
func (t *allocationTx) RoomForUpdate(ctx context.Context, roomNo int64) (*models.Room, error) {
	sql, args, err := t.sb.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"room_no": roomNo}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build room lock query: %w", err)
	}

	room, err := scanRoom(t.tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error locking room: %w", err)
	}

	return room, nil
}

// FacultyForUpdate reads a faculty member and locks their row for the
// transaction
func (t *allocationTx) FacultyForUpdate(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := t.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty lock query: %w", err)
	}

	faculty, err := scanFaculty(t.tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error locking faculty: %w", err)
	}

	return faculty, nil
}

// SetRoomOccupied writes a room's occupancy flag
func (t *allocationTx) SetRoomOccupied(ctx context.Context, roomNo int64, occupied bool) error {
	sql, args, err := t.sb.Update("rooms").
		Set("occupied", occupied).
		Where(squirrel.Eq{"room_no": roomNo}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build occupancy update query: %w", err)
	}

	cmdTag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating room occupancy: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// SetFacultyRoom writes a faculty member's room link. A nil roomNo
// clears it.
func (t *allocationTx) SetFacultyRoom(ctx context.Context, facultyID int64, roomNo *int64) error {
	sql, args, err := t.sb.Update("faculty").
		Set("room_no", roomNo).
		Where(squirrel.Eq{"id": facultyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build faculty room update query: %w", err)
	}

	cmdTag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			// faculty.room_no is unique: two members cannot share a room
			return apperrors.ErrRoomOccupied
		}
		return fmt.Errorf("error updating faculty room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// InsertFaculty inserts a new faculty member within the transaction, so
// a create-with-room can claim the room atomically
func (t *allocationTx) InsertFaculty(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := t.sb.Insert("faculty").
		Columns("name", "post", "department_id", "contact", "date_of_join", "room_no").
		Values(faculty.Name, faculty.Post, faculty.DepartmentID, faculty.Contact, faculty.DateOfJoin, faculty.RoomNo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert faculty query: %w", err)
	}

	if err := t.tx.QueryRow(ctx, sql, args...).Scan(&faculty.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoomOccupied
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Str("name", faculty.Name).Msg("Error inserting faculty")
		return fmt.Errorf("error inserting faculty: %w", err)
	}

	return nil
}

// UpdateProfile changes profile fields within the transaction, so a
// profile edit combined with a room change commits or rolls back as one.
// Room assignment is deliberately absent from the column set.
func (t *allocationTx) UpdateProfile(ctx context.Context, id int64, name *string, post *models.Post, departmentID *int64, contact *string, dateOfJoin *time.Time) error {
	query := t.sb.Update("faculty").Where(squirrel.Eq{"id": id})

	changed := false
	if name != nil {
		query = query.Set("name", *name)
		changed = true
	}
	if post != nil {
		query = query.Set("post", *post)
		changed = true
	}
	if departmentID != nil {
		query = query.Set("department_id", *departmentID)
		changed = true
	}
	if contact != nil {
		query = query.Set("contact", *contact)
		changed = true
	}
	if dateOfJoin != nil {
		query = query.Set("date_of_join", *dateOfJoin)
		changed = true
	}
	if !changed {
		return nil
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error updating faculty")
		return fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// DeleteFaculty removes a faculty member within the transaction, after
// the caller has released their room and head-of-department links
func (t *allocationTx) DeleteFaculty(ctx context.Context, id int64) error {
	sql, args, err := t.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// ClearDepartmentHead drops any head-of-department link held by the
// given faculty member. Clearing nothing is not an error.
func (t *allocationTx) ClearDepartmentHead(ctx context.Context, facultyID int64) error {
	sql, args, err := t.sb.Update("departments").
		Set("hod_id", nil).
		Where(squirrel.Eq{"hod_id": facultyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear head query: %w", err)
	}

	if _, err := t.tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error clearing department head: %w", err)
	}

	return nil
}
