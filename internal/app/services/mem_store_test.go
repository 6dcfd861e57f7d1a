package services

import (
	"context"
	"sync"
	"time"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
)

// memStore is an in-memory AllocationStore. InTx serializes callers the
// way row locks do in Postgres and restores a snapshot when fn fails,
// so tests can observe rollback behavior.
type memStore struct {
	mu      sync.Mutex
	rooms   map[int64]*models.Room
	faculty map[int64]*models.Faculty
	heads   map[int64]int64 // departmentID -> head facultyID
	nextID  int64
}

func newMemStore() *memStore {
	return &memStore{
		rooms:   map[int64]*models.Room{},
		faculty: map[int64]*models.Faculty{},
		heads:   map[int64]int64{},
	}
}

func (s *memStore) addRoom(room models.Room) {
	s.rooms[room.RoomNo] = &room
}

func (s *memStore) addFaculty(faculty models.Faculty) int64 {
	s.nextID++
	faculty.ID = s.nextID
	s.faculty[faculty.ID] = &faculty
	return faculty.ID
}

func (s *memStore) snapshot() (map[int64]*models.Room, map[int64]*models.Faculty, map[int64]int64) {
	rooms := make(map[int64]*models.Room, len(s.rooms))
	for k, v := range s.rooms {
		copied := *v
		rooms[k] = &copied
	}
	faculty := make(map[int64]*models.Faculty, len(s.faculty))
	for k, v := range s.faculty {
		copied := *v
		if v.RoomNo != nil {
			roomNo := *v.RoomNo
			copied.RoomNo = &roomNo
		}
		faculty[k] = &copied
	}
	heads := make(map[int64]int64, len(s.heads))
	for k, v := range s.heads {
		heads[k] = v
	}
	return rooms, faculty, heads
}

func (s *memStore) InTx(ctx context.Context, fn func(ctx context.Context, tx AllocationTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms, faculty, heads := s.snapshot()
	if err := fn(ctx, &memTx{store: s}); err != nil {
		s.rooms, s.faculty, s.heads = rooms, faculty, heads
		return err
	}
	return nil
}

type memTx struct {
	store *memStore
}

func (t *memTx) RoomForUpdate(ctx context.Context, roomNo int64) (*models.Room, error) {
	room, ok := t.store.rooms[roomNo]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (t *memTx) FacultyForUpdate(ctx context.Context, id int64) (*models.Faculty, error) {
	faculty, ok := t.store.faculty[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	copied := *faculty
	if faculty.RoomNo != nil {
		roomNo := *faculty.RoomNo
		copied.RoomNo = &roomNo
	}
	return &copied, nil
}

func (t *memTx) SetRoomOccupied(ctx context.Context, roomNo int64, occupied bool) error {
	room, ok := t.store.rooms[roomNo]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	room.Occupied = occupied
	return nil
}

func (t *memTx) SetFacultyRoom(ctx context.Context, facultyID int64, roomNo *int64) error {
	faculty, ok := t.store.faculty[facultyID]
	if !ok {
		return apperrors.ErrFacultyNotFound
	}
	if roomNo != nil {
		for id, other := range t.store.faculty {
			if id != facultyID && other.RoomNo != nil && *other.RoomNo == *roomNo {
				return apperrors.ErrRoomOccupied
			}
		}
		copied := *roomNo
		faculty.RoomNo = &copied
		return nil
	}
	faculty.RoomNo = nil
	return nil
}

func (t *memTx) InsertFaculty(ctx context.Context, faculty *models.Faculty) error {
	if faculty.RoomNo != nil {
		for _, other := range t.store.faculty {
			if other.RoomNo != nil && *other.RoomNo == *faculty.RoomNo {
				return apperrors.ErrRoomOccupied
			}
		}
	}
	t.store.nextID++
	faculty.ID = t.store.nextID
	copied := *faculty
	if faculty.RoomNo != nil {
		roomNo := *faculty.RoomNo
		copied.RoomNo = &roomNo
	}
	t.store.faculty[faculty.ID] = &copied
	return nil
}

func (t *memTx) UpdateProfile(ctx context.Context, id int64, name *string, post *models.Post, departmentID *int64, contact *string, dateOfJoin *time.Time) error {
	faculty, ok := t.store.faculty[id]
	if !ok {
		return apperrors.ErrFacultyNotFound
	}
	if name != nil {
		faculty.Name = *name
	}
	if post != nil {
		faculty.Post = *post
	}
	if departmentID != nil {
		faculty.DepartmentID = *departmentID
	}
	if contact != nil {
		faculty.Contact = contact
	}
	if dateOfJoin != nil {
		faculty.DateOfJoin = *dateOfJoin
	}
	return nil
}

func (t *memTx) DeleteFaculty(ctx context.Context, id int64) error {
	if _, ok := t.store.faculty[id]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	delete(t.store.faculty, id)
	return nil
}

func (t *memTx) ClearDepartmentHead(ctx context.Context, facultyID int64) error {
	for departmentID, headID := range t.store.heads {
		if headID == facultyID {
			delete(t.store.heads, departmentID)
		}
	}
	return nil
}

var adminCap = models.Capability{UserID: 1, Username: "admin", Role: models.RoleAdmin}
var viewerCap = models.Capability{UserID: 2, Username: "viewer", Role: models.RoleViewer}
