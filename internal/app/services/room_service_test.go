package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
)

type memRoomStore struct {
	rooms map[int64]*models.Room
}

func newMemRoomStore() *memRoomStore {
	return &memRoomStore{rooms: map[int64]*models.Room{}}
}

func (s *memRoomStore) Create(ctx context.Context, room *models.Room) error {
	if _, ok := s.rooms[room.RoomNo]; ok {
		return apperrors.ErrRoomAlreadyExists
	}
	room.Occupied = false
	copied := *room
	s.rooms[room.RoomNo] = &copied
	return nil
}

func (s *memRoomStore) GetByRoomNo(ctx context.Context, roomNo int64) (*models.Room, error) {
	room, ok := s.rooms[roomNo]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (s *memRoomStore) List(ctx context.Context, filter models.RoomFilter) ([]*models.Room, error) {
	rooms := []*models.Room{}
	for _, room := range s.rooms {
		if filter.FloorNo != 0 && room.FloorNo != filter.FloorNo {
			continue
		}
		if filter.Type != "" && room.Type != filter.Type {
			continue
		}
		if filter.AvailableOnly && room.Occupied {
			continue
		}
		copied := *room
		rooms = append(rooms, &copied)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomNo < rooms[j].RoomNo })
	return rooms, nil
}

func (s *memRoomStore) Update(ctx context.Context, roomNo int64, upd models.RoomUpdate) error {
	room, ok := s.rooms[roomNo]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	if upd.RoomNo != nil && *upd.RoomNo != roomNo {
		if _, taken := s.rooms[*upd.RoomNo]; taken {
			return apperrors.ErrRoomAlreadyExists
		}
		delete(s.rooms, roomNo)
		room.RoomNo = *upd.RoomNo
		s.rooms[room.RoomNo] = room
	}
	if upd.FloorNo != nil {
		room.FloorNo = *upd.FloorNo
	}
	if upd.LocationCode != nil {
		room.LocationCode = *upd.LocationCode
	}
	if upd.Type != nil {
		room.Type = *upd.Type
	}
	return nil
}

func (s *memRoomStore) Delete(ctx context.Context, roomNo int64) error {
	room, ok := s.rooms[roomNo]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	if room.Occupied {
		return apperrors.ErrRoomHeld
	}
	delete(s.rooms, roomNo)
	return nil
}

func newRoomFixture() (*memRoomStore, RoomService) {
	rooms := newMemRoomStore()
	dir := &chainDirectory{chains: map[int64]models.FloorChain{
		3: {CampusName: "Main Campus", BlockName: "Block A", BuildingName: "Building 2", FloorName: "Floor 3"},
	}}
	svc := NewRoomService(rooms, NewLocationService(dir))
	return rooms, svc
}

func TestCreateRoomDerivesLocationCode(t *testing.T) {
	rooms, svc := newRoomFixture()

	room, err := svc.CreateRoom(context.Background(), adminCap, &dto.CreateRoomRequest{
		RoomNo: 301, Type: "Lab", FloorNo: 3,
	})
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	if room.LocationCode != "MA-A2" {
		t.Fatalf("expected derived code MA-A2, got %q", room.LocationCode)
	}
	if rooms.rooms[301].Occupied {
		t.Fatalf("new room must start vacant")
	}
}

func TestCreateRoomKeepsSuppliedLocationCode(t *testing.T) {
	_, svc := newRoomFixture()

	room, err := svc.CreateRoom(context.Background(), adminCap, &dto.CreateRoomRequest{
		RoomNo: 302, Type: "Office", FloorNo: 3, LocationCode: "CUSTOM-1",
	})
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if room.LocationCode != "CUSTOM-1" {
		t.Fatalf("supplied location code must be kept, got %q", room.LocationCode)
	}
}

func TestCreateRoomUnknownFloor(t *testing.T) {
	_, svc := newRoomFixture()

	_, err := svc.CreateRoom(context.Background(), adminCap, &dto.CreateRoomRequest{
		RoomNo: 401, Type: "Lab", FloorNo: 4,
	})
	if !errors.Is(err, apperrors.ErrFloorNotFound) {
		t.Fatalf("expected ErrFloorNotFound, got %v", err)
	}
}

func TestCreateRoomValidatesType(t *testing.T) {
	_, svc := newRoomFixture()

	_, err := svc.CreateRoom(context.Background(), adminCap, &dto.CreateRoomRequest{
		RoomNo: 301, Type: "Ballroom", FloorNo: 3,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestGetRoomResolvesPath(t *testing.T) {
	_, svc := newRoomFixture()
	ctx := context.Background()

	if _, err := svc.CreateRoom(ctx, adminCap, &dto.CreateRoomRequest{RoomNo: 301, Type: "Lab", FloorNo: 3}); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	room, path, err := svc.GetRoom(ctx, 301)
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if room.RoomNo != 301 {
		t.Fatalf("wrong room returned: %d", room.RoomNo)
	}
	if path != "Main Campus / Block A / Building 2 / Floor 3 / 301" {
		t.Fatalf("unexpected path: %q", path)
	}
}

func TestListRoomsAvailableFilter(t *testing.T) {
	rooms, svc := newRoomFixture()
	ctx := context.Background()

	for _, roomNo := range []int64{301, 302} {
		if _, err := svc.CreateRoom(ctx, adminCap, &dto.CreateRoomRequest{RoomNo: roomNo, Type: "Office", FloorNo: 3}); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
	}
	rooms.rooms[301].Occupied = true

	available, err := svc.ListRooms(ctx, models.RoomFilter{AvailableOnly: true})
	if err != nil {
		t.Fatalf("ListRooms failed: %v", err)
	}
	if len(available) != 1 || available[0].RoomNo != 302 {
		t.Fatalf("expected only room 302 available, got %v", available)
	}
}

func TestDeleteOccupiedRoomRejected(t *testing.T) {
	rooms, svc := newRoomFixture()
	ctx := context.Background()

	if _, err := svc.CreateRoom(ctx, adminCap, &dto.CreateRoomRequest{RoomNo: 301, Type: "Office", FloorNo: 3}); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	rooms.rooms[301].Occupied = true

	if err := svc.DeleteRoom(ctx, adminCap, 301); !errors.Is(err, apperrors.ErrRoomHeld) {
		t.Fatalf("expected ErrRoomHeld, got %v", err)
	}
}

func TestUpdateRoomRenumbers(t *testing.T) {
	rooms, svc := newRoomFixture()
	ctx := context.Background()

	if _, err := svc.CreateRoom(ctx, adminCap, &dto.CreateRoomRequest{RoomNo: 301, Type: "Office", FloorNo: 3}); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	newNo := int64(305)
	room, err := svc.UpdateRoom(ctx, adminCap, 301, &dto.UpdateRoomRequest{RoomNo: &newNo})
	if err != nil {
		t.Fatalf("UpdateRoom failed: %v", err)
	}

	if room.RoomNo != 305 {
		t.Fatalf("expected renumbered room 305, got %d", room.RoomNo)
	}
	if _, ok := rooms.rooms[301]; ok {
		t.Fatalf("old room number must be gone after renumber")
	}
	if _, ok := rooms.rooms[305]; !ok {
		t.Fatalf("room missing under its new number")
	}
}

func TestUpdateRoomRenumberToTakenNumber(t *testing.T) {
	_, svc := newRoomFixture()
	ctx := context.Background()

	for _, roomNo := range []int64{301, 302} {
		if _, err := svc.CreateRoom(ctx, adminCap, &dto.CreateRoomRequest{RoomNo: roomNo, Type: "Office", FloorNo: 3}); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
	}

	taken := int64(302)
	if _, err := svc.UpdateRoom(ctx, adminCap, 301, &dto.UpdateRoomRequest{RoomNo: &taken}); !errors.Is(err, apperrors.ErrRoomAlreadyExists) {
		t.Fatalf("expected ErrRoomAlreadyExists, got %v", err)
	}
}

func TestUpdateRoomFloorMoveRederivesCode(t *testing.T) {
	rooms := newMemRoomStore()
	dir := &chainDirectory{chains: map[int64]models.FloorChain{
		3: {CampusName: "Main Campus", BlockName: "Block A", BuildingName: "Building 2", FloorName: "Floor 3"},
		4: {CampusName: "North", BlockName: "Block B", BuildingName: "Building 7", FloorName: "Floor 4"},
	}}
	svc := NewRoomService(rooms, NewLocationService(dir))
	ctx := context.Background()

	if _, err := svc.CreateRoom(ctx, adminCap, &dto.CreateRoomRequest{RoomNo: 301, Type: "Office", FloorNo: 3}); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	newFloor := int64(4)
	room, err := svc.UpdateRoom(ctx, adminCap, 301, &dto.UpdateRoomRequest{FloorNo: &newFloor})
	if err != nil {
		t.Fatalf("UpdateRoom failed: %v", err)
	}
	if room.FloorNo != 4 {
		t.Fatalf("expected floor 4, got %d", room.FloorNo)
	}
	if room.LocationCode != "NO-B7" {
		t.Fatalf("expected re-derived code NO-B7, got %q", room.LocationCode)
	}

	// An explicit code wins over re-derivation.
	backTo := int64(3)
	keep := "KEEP-1"
	room, err = svc.UpdateRoom(ctx, adminCap, 301, &dto.UpdateRoomRequest{FloorNo: &backTo, LocationCode: &keep})
	if err != nil {
		t.Fatalf("UpdateRoom failed: %v", err)
	}
	if room.LocationCode != "KEEP-1" {
		t.Fatalf("expected supplied code KEEP-1, got %q", room.LocationCode)
	}
}

func TestRoomMutationsRequireAdmin(t *testing.T) {
	_, svc := newRoomFixture()
	ctx := context.Background()

	if _, err := svc.CreateRoom(ctx, viewerCap, &dto.CreateRoomRequest{RoomNo: 301, Type: "Lab", FloorNo: 3}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for create, got %v", err)
	}
	if err := svc.DeleteRoom(ctx, viewerCap, 301); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for delete, got %v", err)
	}
}
