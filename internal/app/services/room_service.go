package services

import (
	"context"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// RoomService manages the room catalog: metadata, never occupancy
type RoomService interface {
	CreateRoom(ctx context.Context, cap models.Capability, req *dto.CreateRoomRequest) (*models.Room, error)
	GetRoom(ctx context.Context, roomNo int64) (*models.Room, string, error)
	ListRooms(ctx context.Context, filter models.RoomFilter) ([]*models.Room, error)
	UpdateRoom(ctx context.Context, cap models.Capability, roomNo int64, req *dto.UpdateRoomRequest) (*models.Room, error)
	DeleteRoom(ctx context.Context, cap models.Capability, roomNo int64) error
}

type roomServiceImpl struct {
	roomStore       RoomStore
	locationService LocationService
}

// NewRoomService creates a new RoomService
func NewRoomService(roomStore RoomStore, locationService LocationService) RoomService {
	return &roomServiceImpl{
		roomStore:       roomStore,
		locationService: locationService,
	}
}

// CreateRoom registers a new vacant room. When no location code is
// supplied one is derived from the floor's ancestor chain and stamped
// on the room.
func (s *roomServiceImpl) CreateRoom(ctx context.Context, cap models.Capability, req *dto.CreateRoomRequest) (*models.Room, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can create rooms")
	}

	roomType := models.RoomType(req.Type)
	if !roomType.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown room type")
	}

	locationCode := req.LocationCode
	if locationCode == "" {
		code, err := s.locationService.LocationCode(ctx, req.FloorNo)
		if err != nil {
			return nil, err
		}
		locationCode = code
	}

	room := &models.Room{
		RoomNo:       req.RoomNo,
		LocationCode: locationCode,
		Type:         roomType,
		FloorNo:      req.FloorNo,
	}
	if err := s.roomStore.Create(ctx, room); err != nil {
		return nil, err
	}

	logger.Info().Int64("roomNo", room.RoomNo).Str("actor", cap.Username).Msg("Room created")
	return room, nil
}

// GetRoom retrieves a room together with its resolved hierarchy path
func (s *roomServiceImpl) GetRoom(ctx context.Context, roomNo int64) (*models.Room, string, error) {
	room, err := s.roomStore.GetByRoomNo(ctx, roomNo)
	if err != nil {
		return nil, "", err
	}

	path, err := s.locationService.ResolveRoomPath(ctx, room.FloorNo, room.RoomNo)
	if err != nil {
		return nil, "", err
	}

	return room, path, nil
}

// ListRooms retrieves rooms matching the filter
func (s *roomServiceImpl) ListRooms(ctx context.Context, filter models.RoomFilter) ([]*models.Room, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown room type")
	}
	return s.roomStore.List(ctx, filter)
}

// UpdateRoom changes room attributes and returns the updated room. A
// renumber drags the holding faculty's reference along; a floor move
// without an explicit location code re-derives the code from the new
// floor's ancestors.
func (s *roomServiceImpl) UpdateRoom(ctx context.Context, cap models.Capability, roomNo int64, req *dto.UpdateRoomRequest) (*models.Room, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can update rooms")
	}

	upd := models.RoomUpdate{
		RoomNo:       req.RoomNo,
		FloorNo:      req.FloorNo,
		LocationCode: req.LocationCode,
	}
	if req.Type != nil {
		rt := models.RoomType(*req.Type)
		if !rt.Valid() {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown room type")
		}
		upd.Type = &rt
	}

	if req.FloorNo != nil && req.LocationCode == nil {
		code, err := s.locationService.LocationCode(ctx, *req.FloorNo)
		if err != nil {
			return nil, err
		}
		upd.LocationCode = &code
	}

	if err := s.roomStore.Update(ctx, roomNo, upd); err != nil {
		return nil, err
	}

	effective := roomNo
	if req.RoomNo != nil {
		effective = *req.RoomNo
	}
	return s.roomStore.GetByRoomNo(ctx, effective)
}

// DeleteRoom removes a vacant room from the catalog
func (s *roomServiceImpl) DeleteRoom(ctx context.Context, cap models.Capability, roomNo int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can delete rooms")
	}

	if err := s.roomStore.Delete(ctx, roomNo); err != nil {
		return err
	}

	logger.Info().Int64("roomNo", roomNo).Str("actor", cap.Username).Msg("Room deleted")
	return nil
}
