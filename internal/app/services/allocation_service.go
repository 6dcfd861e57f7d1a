package services

import (
	"context"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// AllocationService is the single authority over room occupancy. All
// transitions of the (faculty room, room occupied) pair go through it;
// no other service writes either side.
type AllocationService interface {
	Assign(ctx context.Context, cap models.Capability, facultyID int64, roomNo int64) error
	Unassign(ctx context.Context, cap models.Capability, facultyID int64) error
	Transfer(ctx context.Context, cap models.Capability, facultyID int64, roomNo int64) error
}

type allocationServiceImpl struct {
	store AllocationStore
}

// NewAllocationService creates a new AllocationService
func NewAllocationService(store AllocationStore) AllocationService {
	return &allocationServiceImpl{store: store}
}

// Assign gives a vacant room to a faculty member who holds none.
// Re-assigning the room a member already holds is a no-op; any other
// occupied state is a conflict.
func (s *allocationServiceImpl) Assign(ctx context.Context, cap models.Capability, facultyID int64, roomNo int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can assign rooms")
	}

	err := s.store.InTx(ctx, func(ctx context.Context, tx AllocationTx) error {
		faculty, err := tx.FacultyForUpdate(ctx, facultyID)
		if err != nil {
			return err
		}
		room, err := tx.RoomForUpdate(ctx, roomNo)
		if err != nil {
			return err
		}

		if faculty.RoomNo != nil {
			if *faculty.RoomNo == roomNo {
				return nil
			}
			return apperrors.ErrFacultyHasRoom
		}
		if room.Occupied {
			return apperrors.ErrRoomOccupied
		}

		if err := tx.SetRoomOccupied(ctx, roomNo, true); err != nil {
			return err
		}
		return tx.SetFacultyRoom(ctx, facultyID, &roomNo)
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int64("facultyID", facultyID).
		Int64("roomNo", roomNo).
		Str("actor", cap.Username).
		Msg("Room assigned")
	return nil
}

// Unassign releases whatever room the faculty member holds. A member
// with no room is left untouched.
func (s *allocationServiceImpl) Unassign(ctx context.Context, cap models.Capability, facultyID int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can release rooms")
	}

	var released *int64
	err := s.store.InTx(ctx, func(ctx context.Context, tx AllocationTx) error {
		var err error
		released, err = applyUnassign(ctx, tx, facultyID)
		return err
	})
	if err != nil {
		return err
	}

	if released != nil {
		logger.Info().
			Int64("facultyID", facultyID).
			Int64("roomNo", *released).
			Str("actor", cap.Username).
			Msg("Room released")
	}
	return nil
}

// Transfer moves a faculty member to another vacant room, releasing the
// old one in the same transaction. A member without a room is assigned
// directly; a transfer to the room already held is a no-op.
func (s *allocationServiceImpl) Transfer(ctx context.Context, cap models.Capability, facultyID int64, roomNo int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can transfer rooms")
	}

	err := s.store.InTx(ctx, func(ctx context.Context, tx AllocationTx) error {
		return applyTransfer(ctx, tx, facultyID, roomNo)
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int64("facultyID", facultyID).
		Int64("roomNo", roomNo).
		Str("actor", cap.Username).
		Msg("Room transferred")
	return nil
}

// applyUnassign releases whatever room the faculty member holds, inside
// the caller's transaction. It reports the released room, nil when the
// member held none.
func applyUnassign(ctx context.Context, tx AllocationTx, facultyID int64) (*int64, error) {
	faculty, err := tx.FacultyForUpdate(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if faculty.RoomNo == nil {
		return nil, nil
	}
	roomNo := *faculty.RoomNo

	if _, err := tx.RoomForUpdate(ctx, roomNo); err != nil {
		return nil, err
	}
	if err := tx.SetRoomOccupied(ctx, roomNo, false); err != nil {
		return nil, err
	}
	if err := tx.SetFacultyRoom(ctx, facultyID, nil); err != nil {
		return nil, err
	}
	return &roomNo, nil
}

// applyTransfer moves the faculty member to the target room, releasing
// any held room, inside the caller's transaction.
func applyTransfer(ctx context.Context, tx AllocationTx, facultyID, roomNo int64) error {
	faculty, err := tx.FacultyForUpdate(ctx, facultyID)
	if err != nil {
		return err
	}
	if faculty.RoomNo != nil && *faculty.RoomNo == roomNo {
		return nil
	}

	// Lock rooms in ascending order so concurrent transfers on the
	// same pair cannot deadlock.
	if faculty.RoomNo != nil && *faculty.RoomNo < roomNo {
		if _, err := tx.RoomForUpdate(ctx, *faculty.RoomNo); err != nil {
			return err
		}
	}
	target, err := tx.RoomForUpdate(ctx, roomNo)
	if err != nil {
		return err
	}
	if faculty.RoomNo != nil && *faculty.RoomNo > roomNo {
		if _, err := tx.RoomForUpdate(ctx, *faculty.RoomNo); err != nil {
			return err
		}
	}

	if target.Occupied {
		return apperrors.ErrRoomOccupied
	}

	if faculty.RoomNo != nil {
		if err := tx.SetRoomOccupied(ctx, *faculty.RoomNo, false); err != nil {
			return err
		}
	}
	if err := tx.SetRoomOccupied(ctx, roomNo, true); err != nil {
		return err
	}
	return tx.SetFacultyRoom(ctx, facultyID, &roomNo)
}
