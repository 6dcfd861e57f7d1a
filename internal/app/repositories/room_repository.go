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

// RoomRepository handles room catalog reads and the metadata writes that
// do not touch occupancy. Occupancy transitions go through the
// allocation store exclusively.
type RoomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var roomColumns = []string{"room_no", "location_code", "room_type", "occupied", "floor_no"}

func scanRoom(row pgx.Row) (*models.Room, error) {
	room := &models.Room{}
	err := row.Scan(&room.RoomNo, &room.LocationCode, &room.Type, &room.Occupied, &room.FloorNo)
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Create inserts a new room. New rooms always start vacant.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	room.Occupied = false

	sql, args, err := r.sb.Insert("rooms").
		Columns(roomColumns...).
		Values(room.RoomNo, room.LocationCode, room.Type, room.Occupied, room.FloorNo).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create room query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoomAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFloorNotFound
		}
		logger.Error().Err(err).Int64("roomNo", room.RoomNo).Msg("Error creating room")
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// GetByRoomNo retrieves a room by its number
func (r *RoomRepository) GetByRoomNo(ctx context.Context, roomNo int64) (*models.Room, error) {
	sql, args, err := r.sb.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"room_no": roomNo}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	room, err := scanRoom(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		logger.Error().Err(err).Int64("roomNo", roomNo).Msg("Error getting room")
		return nil, fmt.Errorf("error getting room: %w", err)
	}

	return room, nil
}

// List retrieves rooms matching the filter, ordered by room number
func (r *RoomRepository) List(ctx context.Context, filter models.RoomFilter) ([]*models.Room, error) {
	query := r.sb.Select(roomColumns...).
		From("rooms").
		OrderBy("room_no ASC")

	if filter.FloorNo != 0 {
		query = query.Where(squirrel.Eq{"floor_no": filter.FloorNo})
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"room_type": filter.Type})
	}
	if filter.AvailableOnly {
		query = query.Where(squirrel.Eq{"occupied": false})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying rooms")
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}

// Update changes room attributes, including the room number itself; the
// faculty reference follows a renumber through ON UPDATE CASCADE.
// Occupancy is deliberately absent from the column set.
func (r *RoomRepository) Update(ctx context.Context, roomNo int64, upd models.RoomUpdate) error {
	query := r.sb.Update("rooms").Where(squirrel.Eq{"room_no": roomNo})

	changed := false
	if upd.RoomNo != nil {
		query = query.Set("room_no", *upd.RoomNo)
		changed = true
	}
	if upd.FloorNo != nil {
		query = query.Set("floor_no", *upd.FloorNo)
		changed = true
	}
	if upd.LocationCode != nil {
		query = query.Set("location_code", *upd.LocationCode)
		changed = true
	}
	if upd.Type != nil {
		query = query.Set("room_type", *upd.Type)
		changed = true
	}
	if !changed {
		return nil
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update room query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoomAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFloorNotFound
		}
		logger.Error().Err(err).Int64("roomNo", roomNo).Msg("Error updating room")
		return fmt.Errorf("error updating room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// Delete removes a room. Occupied rooms and rooms still referenced by a
// faculty member are rejected.
func (r *RoomRepository) Delete(ctx context.Context, roomNo int64) error {
	room, err := r.GetByRoomNo(ctx, roomNo)
	if err != nil {
		return err
	}
	if room.Occupied {
		return apperrors.ErrRoomHeld
	}

	sql, args, err := r.sb.Delete("rooms").
		Where(squirrel.Eq{"room_no": roomNo}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete room query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRoomHeld
		}
		logger.Error().Err(err).Int64("roomNo", roomNo).Msg("Error deleting room")
		return fmt.Errorf("error deleting room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}
