package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
)

// memFacultyStore serves faculty reads straight from the memStore maps
type memFacultyStore struct {
	store *memStore
}

func (s *memFacultyStore) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	faculty, ok := s.store.faculty[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	copied := *faculty
	return &copied, nil
}

func (s *memFacultyStore) List(ctx context.Context, filter models.FacultyFilter) ([]*models.Faculty, error) {
	members := []*models.Faculty{}
	for _, faculty := range s.store.faculty {
		if filter.DepartmentID != 0 && faculty.DepartmentID != filter.DepartmentID {
			continue
		}
		if filter.NameContains != "" && !strings.Contains(strings.ToLower(faculty.Name), strings.ToLower(filter.NameContains)) {
			continue
		}
		if filter.UnassignedOnly && faculty.RoomNo != nil {
			continue
		}
		copied := *faculty
		members = append(members, &copied)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members, nil
}

func newFacultyService(store *memStore) FacultyService {
	return NewFacultyService(&memFacultyStore{store: store}, store)
}

func TestCreateFacultyWithRoomClaimsRoom(t *testing.T) {
	store := newMemStore()
	store.addRoom(models.Room{RoomNo: 301, Type: models.RoomTypeOffice, FloorNo: 3})
	svc := newFacultyService(store)

	roomNo := int64(301)
	faculty, err := svc.CreateFaculty(context.Background(), adminCap, &dto.CreateFacultyRequest{
		Name:         "Dr. X",
		Post:         "Professor",
		DepartmentID: 1,
		RoomNo:       &roomNo,
	})
	if err != nil {
		t.Fatalf("CreateFaculty failed: %v", err)
	}

	if faculty.ID == 0 {
		t.Fatalf("created faculty should have an ID")
	}
	if !store.rooms[301].Occupied {
		t.Fatalf("room should be occupied after create-with-room")
	}
	if *store.faculty[faculty.ID].RoomNo != 301 {
		t.Fatalf("faculty should hold room 301")
	}
}

func TestCreateFacultyWithOccupiedRoomCreatesNothing(t *testing.T) {
	store := newMemStore()
	store.addRoom(models.Room{RoomNo: 301, Type: models.RoomTypeOffice, FloorNo: 3, Occupied: true})
	svc := newFacultyService(store)

	roomNo := int64(301)
	_, err := svc.CreateFaculty(context.Background(), adminCap, &dto.CreateFacultyRequest{
		Name:         "Dr. X",
		Post:         "Professor",
		DepartmentID: 1,
		RoomNo:       &roomNo,
	})
	if !errors.Is(err, apperrors.ErrRoomOccupied) {
		t.Fatalf("expected ErrRoomOccupied, got %v", err)
	}

	if len(store.faculty) != 0 {
		t.Fatalf("no faculty row may exist after a rejected create-with-room")
	}
}

func TestCreateFacultyValidation(t *testing.T) {
	store := newMemStore()
	svc := newFacultyService(store)
	ctx := context.Background()

	_, err := svc.CreateFaculty(ctx, adminCap, &dto.CreateFacultyRequest{
		Name: "   ", Post: "Professor", DepartmentID: 1,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure for blank name, got %v", err)
	}

	_, err = svc.CreateFaculty(ctx, adminCap, &dto.CreateFacultyRequest{
		Name: "Dr. X", Post: "Dean", DepartmentID: 1,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure for unknown post, got %v", err)
	}

	_, err = svc.CreateFaculty(ctx, viewerCap, &dto.CreateFacultyRequest{
		Name: "Dr. X", Post: "Professor", DepartmentID: 1,
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for viewer, got %v", err)
	}
}

func TestDeleteFacultyReleasesRoomAndHeadship(t *testing.T) {
	store := newMemStore()
	store.addRoom(models.Room{RoomNo: 301, Type: models.RoomTypeOffice, FloorNo: 3, Occupied: true})
	roomNo := int64(301)
	facultyID := store.addFaculty(models.Faculty{
		Name: "Dr. X", Post: models.PostProfessor, DepartmentID: 1, RoomNo: &roomNo,
	})
	store.heads[1] = facultyID

	svc := newFacultyService(store)
	if err := svc.DeleteFaculty(context.Background(), adminCap, facultyID); err != nil {
		t.Fatalf("DeleteFaculty failed: %v", err)
	}

	if _, ok := store.faculty[facultyID]; ok {
		t.Fatalf("faculty row should be gone")
	}
	if store.rooms[301].Occupied {
		t.Fatalf("held room must be freed when the member is deleted")
	}
	if _, ok := store.heads[1]; ok {
		t.Fatalf("department headship must be cleared when the member is deleted")
	}
}

func TestDeleteFacultyNotFound(t *testing.T) {
	store := newMemStore()
	svc := newFacultyService(store)

	err := svc.DeleteFaculty(context.Background(), adminCap, 42)
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Fatalf("expected ErrFacultyNotFound, got %v", err)
	}
}

func TestUpdateFacultyMovesRoom(t *testing.T) {
	store := newMemStore()
	store.addRoom(models.Room{RoomNo: 301, Type: models.RoomTypeOffice, FloorNo: 3, Occupied: true})
	store.addRoom(models.Room{RoomNo: 302, Type: models.RoomTypeOffice, FloorNo: 3})
	roomNo := int64(301)
	facultyID := store.addFaculty(models.Faculty{
		Name: "Dr. X", Post: models.PostProfessor, DepartmentID: 1, RoomNo: &roomNo,
	})

	svc := newFacultyService(store)
	newRoom := int64(302)
	faculty, err := svc.UpdateFaculty(context.Background(), adminCap, facultyID, &dto.UpdateFacultyRequest{
		RoomNo: &newRoom,
	})
	if err != nil {
		t.Fatalf("UpdateFaculty failed: %v", err)
	}

	if *faculty.RoomNo != 302 {
		t.Fatalf("faculty should hold room 302, got %d", *faculty.RoomNo)
	}
	if store.rooms[301].Occupied {
		t.Fatalf("old room must be freed by the move")
	}
	if !store.rooms[302].Occupied {
		t.Fatalf("new room must be occupied by the move")
	}
}

func TestUpdateFacultyClearRoom(t *testing.T) {
	store := newMemStore()
	store.addRoom(models.Room{RoomNo: 301, Type: models.RoomTypeOffice, FloorNo: 3, Occupied: true})
	roomNo := int64(301)
	facultyID := store.addFaculty(models.Faculty{
		Name: "Dr. X", Post: models.PostProfessor, DepartmentID: 1, RoomNo: &roomNo,
	})

	svc := newFacultyService(store)
	faculty, err := svc.UpdateFaculty(context.Background(), adminCap, facultyID, &dto.UpdateFacultyRequest{
		ClearRoom: true,
	})
	if err != nil {
		t.Fatalf("UpdateFaculty failed: %v", err)
	}

	if faculty.RoomNo != nil {
		t.Fatalf("faculty should hold no room after clear")
	}
	if store.rooms[301].Occupied {
		t.Fatalf("room must be freed by the clear")
	}
}

func TestUpdateFacultyRoomConflictRollsBackProfile(t *testing.T) {
	store := newMemStore()
	store.addRoom(models.Room{RoomNo: 301, Type: models.RoomTypeOffice, FloorNo: 3, Occupied: true})
	store.addRoom(models.Room{RoomNo: 302, Type: models.RoomTypeOffice, FloorNo: 3, Occupied: true})
	held := int64(301)
	facultyID := store.addFaculty(models.Faculty{
		Name: "Dr. X", Post: models.PostProfessor, DepartmentID: 1, RoomNo: &held,
	})
	taken := int64(302)
	store.addFaculty(models.Faculty{
		Name: "Dr. Y", Post: models.PostProfessor, DepartmentID: 1, RoomNo: &taken,
	})

	svc := newFacultyService(store)
	newName := "Dr. Renamed"
	newDept := int64(2)
	_, err := svc.UpdateFaculty(context.Background(), adminCap, facultyID, &dto.UpdateFacultyRequest{
		Name:         &newName,
		DepartmentID: &newDept,
		RoomNo:       &taken,
	})
	if !errors.Is(err, apperrors.ErrRoomOccupied) {
		t.Fatalf("expected ErrRoomOccupied, got %v", err)
	}

	after := store.faculty[facultyID]
	if after.Name != "Dr. X" {
		t.Fatalf("rejected update must not rename the member, got %q", after.Name)
	}
	if after.DepartmentID != 1 {
		t.Fatalf("rejected update must not move the member's department, got %d", after.DepartmentID)
	}
	if after.RoomNo == nil || *after.RoomNo != 301 {
		t.Fatalf("rejected update must leave the held room in place")
	}
	if !store.rooms[301].Occupied {
		t.Fatalf("held room must stay occupied after the rejected update")
	}
}

func TestUpdateFacultyRejectsSetAndClear(t *testing.T) {
	store := newMemStore()
	facultyID := store.addFaculty(models.Faculty{Name: "Dr. X", Post: models.PostProfessor, DepartmentID: 1})

	svc := newFacultyService(store)
	roomNo := int64(301)
	_, err := svc.UpdateFaculty(context.Background(), adminCap, facultyID, &dto.UpdateFacultyRequest{
		RoomNo:    &roomNo,
		ClearRoom: true,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}
