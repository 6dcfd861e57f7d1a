package services

import (
	"context"
	"strings"
	"time"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// FacultyService manages faculty records. Room assignment changes are
// routed through the allocation coordinator; this service never writes
// the occupancy pair outside an allocation transaction.
type FacultyService interface {
	CreateFaculty(ctx context.Context, cap models.Capability, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	GetFaculty(ctx context.Context, id int64) (*models.Faculty, error)
	ListFaculty(ctx context.Context, filter models.FacultyFilter) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, cap models.Capability, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, cap models.Capability, id int64) error
}

type facultyServiceImpl struct {
	facultyStore    FacultyStore
	allocationStore AllocationStore
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(facultyStore FacultyStore, allocationStore AllocationStore) FacultyService {
	return &facultyServiceImpl{
		facultyStore:    facultyStore,
		allocationStore: allocationStore,
	}
}

// CreateFaculty adds a faculty member. When a room is requested the
// member row and the room's occupancy land in one transaction: a
// conflict on the room means no member is created at all.
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, cap models.Capability, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can create faculty")
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "faculty name must not be empty")
	}
	post := models.Post(req.Post)
	if !post.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown post")
	}

	dateOfJoin := time.Now()
	if req.DateOfJoin != nil {
		dateOfJoin = *req.DateOfJoin
	}

	faculty := &models.Faculty{
		Name:         strings.TrimSpace(req.Name),
		Post:         post,
		DepartmentID: req.DepartmentID,
		Contact:      req.Contact,
		DateOfJoin:   dateOfJoin,
	}

	err := s.allocationStore.InTx(ctx, func(ctx context.Context, tx AllocationTx) error {
		if req.RoomNo != nil {
			room, err := tx.RoomForUpdate(ctx, *req.RoomNo)
			if err != nil {
				return err
			}
			if room.Occupied {
				return apperrors.ErrRoomOccupied
			}
			faculty.RoomNo = req.RoomNo
			if err := tx.SetRoomOccupied(ctx, room.RoomNo, true); err != nil {
				return err
			}
		}
		return tx.InsertFaculty(ctx, faculty)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("facultyID", faculty.ID).
		Str("name", faculty.Name).
		Str("actor", cap.Username).
		Msg("Faculty created")
	return faculty, nil
}

// GetFaculty retrieves a faculty member by ID
func (s *facultyServiceImpl) GetFaculty(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.facultyStore.GetByID(ctx, id)
}

// ListFaculty retrieves faculty matching the filter
func (s *facultyServiceImpl) ListFaculty(ctx context.Context, filter models.FacultyFilter) ([]*models.Faculty, error) {
	return s.facultyStore.List(ctx, filter)
}

// UpdateFaculty changes profile fields and any requested room change in
// one transaction: a conflict on the room rolls the profile write back
// with it.
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, cap models.Capability, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can update faculty")
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "faculty name must not be empty")
	}
	var post *models.Post
	if req.Post != nil {
		p := models.Post(*req.Post)
		if !p.Valid() {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown post")
		}
		post = &p
	}
	if req.RoomNo != nil && req.ClearRoom {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "cannot both set and clear a room")
	}

	err := s.allocationStore.InTx(ctx, func(ctx context.Context, tx AllocationTx) error {
		if err := tx.UpdateProfile(ctx, id, req.Name, post, req.DepartmentID, req.Contact, nil); err != nil {
			return err
		}
		switch {
		case req.RoomNo != nil:
			return applyTransfer(ctx, tx, id, *req.RoomNo)
		case req.ClearRoom:
			_, err := applyUnassign(ctx, tx, id)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("facultyID", id).Str("actor", cap.Username).Msg("Faculty updated")
	return s.facultyStore.GetByID(ctx, id)
}

// DeleteFaculty removes a faculty member. The held room is released and
// any head-of-department link is cleared in the same transaction.
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, cap models.Capability, id int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can delete faculty")
	}

	err := s.allocationStore.InTx(ctx, func(ctx context.Context, tx AllocationTx) error {
		faculty, err := tx.FacultyForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if faculty.RoomNo != nil {
			if _, err := tx.RoomForUpdate(ctx, *faculty.RoomNo); err != nil {
				return err
			}
			if err := tx.SetRoomOccupied(ctx, *faculty.RoomNo, false); err != nil {
				return err
			}
		}
		if err := tx.ClearDepartmentHead(ctx, id); err != nil {
			return err
		}
		return tx.DeleteFaculty(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("facultyID", id).Str("actor", cap.Username).Msg("Faculty deleted")
	return nil
}
