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

// memDepartmentStore keeps departments alongside the shared memStore so
// headship and membership stay consistent with the faculty fixtures
type memDepartmentStore struct {
	store       *memStore
	departments map[int64]*models.Department
	nextID      int64
}

func newMemDepartmentStore(store *memStore) *memDepartmentStore {
	return &memDepartmentStore{store: store, departments: map[int64]*models.Department{}}
}

func (s *memDepartmentStore) addDepartment(name string) int64 {
	s.nextID++
	s.departments[s.nextID] = &models.Department{ID: s.nextID, Name: name}
	return s.nextID
}

func (s *memDepartmentStore) Create(ctx context.Context, department *models.Department) error {
	for _, existing := range s.departments {
		if existing.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	if department.HodID != nil {
		for _, headID := range s.store.heads {
			if headID == *department.HodID {
				return apperrors.ErrAlreadyHeadsDepartment
			}
		}
	}
	s.nextID++
	department.ID = s.nextID
	copied := *department
	s.departments[department.ID] = &copied
	if department.HodID != nil {
		s.store.heads[department.ID] = *department.HodID
	}
	return nil
}

func (s *memDepartmentStore) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	department, ok := s.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	copied := *department
	if headID, ok := s.store.heads[id]; ok {
		copied.HodID = &headID
		if faculty, ok := s.store.faculty[headID]; ok {
			name := faculty.Name
			copied.HodName = &name
		}
	} else {
		copied.HodID = nil
		copied.HodName = nil
	}
	for _, faculty := range s.store.faculty {
		if faculty.DepartmentID == id {
			copied.FacultyCount++
		}
	}
	return &copied, nil
}

func (s *memDepartmentStore) List(ctx context.Context) ([]*models.Department, error) {
	departments := []*models.Department{}
	for id := range s.departments {
		department, _ := s.GetByID(ctx, id)
		departments = append(departments, department)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return departments, nil
}

func (s *memDepartmentStore) UpdateName(ctx context.Context, id int64, name string) error {
	department, ok := s.departments[id]
	if !ok {
		return apperrors.ErrDepartmentNotFound
	}
	for otherID, existing := range s.departments {
		if otherID != id && existing.Name == name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	department.Name = name
	return nil
}

func (s *memDepartmentStore) SetHead(ctx context.Context, id int64, facultyID *int64) error {
	if _, ok := s.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	if facultyID == nil {
		delete(s.store.heads, id)
		return nil
	}
	for departmentID, headID := range s.store.heads {
		if headID == *facultyID && departmentID != id {
			return apperrors.ErrAlreadyHeadsDepartment
		}
	}
	s.store.heads[id] = *facultyID
	return nil
}

func (s *memDepartmentStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	for _, faculty := range s.store.faculty {
		if faculty.DepartmentID == id {
			return apperrors.ErrDepartmentHasFaculty
		}
	}
	delete(s.departments, id)
	delete(s.store.heads, id)
	return nil
}

func (s *memDepartmentStore) ListHeadCandidates(ctx context.Context, id int64) ([]*models.Faculty, error) {
	candidates := []*models.Faculty{}
	for _, faculty := range s.store.faculty {
		if faculty.DepartmentID != id {
			continue
		}
		heads := false
		for _, headID := range s.store.heads {
			if headID == faculty.ID {
				heads = true
				break
			}
		}
		if !heads {
			copied := *faculty
			candidates = append(candidates, &copied)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })
	return candidates, nil
}

func newDepartmentFixture() (*memStore, *memDepartmentStore, DepartmentService) {
	store := newMemStore()
	departments := newMemDepartmentStore(store)
	svc := NewDepartmentService(departments, &memFacultyStore{store: store})
	return store, departments, svc
}

func TestSetHeadHappyPath(t *testing.T) {
	store, departments, svc := newDepartmentFixture()
	deptID := departments.addDepartment("Computer Science")
	facultyID := store.addFaculty(models.Faculty{Name: "Dr. X", Post: models.PostProfessor, DepartmentID: deptID})

	department, err := svc.SetHead(context.Background(), adminCap, deptID, &dto.SetHodRequest{FacultyID: &facultyID})
	if err != nil {
		t.Fatalf("SetHead failed: %v", err)
	}
	if department.HodID == nil || *department.HodID != facultyID {
		t.Fatalf("department head not set")
	}
	if department.HodName == nil || *department.HodName != "Dr. X" {
		t.Fatalf("department head name not resolved")
	}
}

func TestSetHeadRejectsNonMember(t *testing.T) {
	store, departments, svc := newDepartmentFixture()
	deptID := departments.addDepartment("Computer Science")
	otherDept := departments.addDepartment("Mathematics")
	outsider := store.addFaculty(models.Faculty{Name: "Dr. Y", Post: models.PostLecturer, DepartmentID: otherDept})

	_, err := svc.SetHead(context.Background(), adminCap, deptID, &dto.SetHodRequest{FacultyID: &outsider})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure for non-member head, got %v", err)
	}
}

func TestHeadMayLeadOnlyOneDepartment(t *testing.T) {
	store, departments, svc := newDepartmentFixture()
	first := departments.addDepartment("Computer Science")
	second := departments.addDepartment("Mathematics")
	facultyID := store.addFaculty(models.Faculty{Name: "Dr. X", Post: models.PostProfessor, DepartmentID: first})
	ctx := context.Background()

	if _, err := svc.SetHead(ctx, adminCap, first, &dto.SetHodRequest{FacultyID: &facultyID}); err != nil {
		t.Fatalf("first SetHead failed: %v", err)
	}

	// Move the member so the membership rule passes, then try the
	// second headship: the one-department rule must still reject it.
	store.faculty[facultyID].DepartmentID = second
	if _, err := svc.SetHead(ctx, adminCap, second, &dto.SetHodRequest{FacultyID: &facultyID}); !errors.Is(err, apperrors.ErrAlreadyHeadsDepartment) {
		t.Fatalf("expected ErrAlreadyHeadsDepartment, got %v", err)
	}

	// Re-setting the same head on the same department is a no-op
	store.faculty[facultyID].DepartmentID = first
	if _, err := svc.SetHead(ctx, adminCap, first, &dto.SetHodRequest{FacultyID: &facultyID}); err != nil {
		t.Fatalf("re-setting the same head should succeed, got %v", err)
	}
}

func TestClearHead(t *testing.T) {
	store, departments, svc := newDepartmentFixture()
	deptID := departments.addDepartment("Computer Science")
	facultyID := store.addFaculty(models.Faculty{Name: "Dr. X", Post: models.PostProfessor, DepartmentID: deptID})
	ctx := context.Background()

	if _, err := svc.SetHead(ctx, adminCap, deptID, &dto.SetHodRequest{FacultyID: &facultyID}); err != nil {
		t.Fatalf("SetHead failed: %v", err)
	}

	department, err := svc.SetHead(ctx, adminCap, deptID, &dto.SetHodRequest{FacultyID: nil})
	if err != nil {
		t.Fatalf("clearing head failed: %v", err)
	}
	if department.HodID != nil {
		t.Fatalf("head should be cleared")
	}
}

func TestDeleteDepartmentPolicies(t *testing.T) {
	store, departments, svc := newDepartmentFixture()
	populated := departments.addDepartment("Computer Science")
	empty := departments.addDepartment("Philosophy")
	store.addFaculty(models.Faculty{Name: "Dr. X", Post: models.PostProfessor, DepartmentID: populated})
	ctx := context.Background()

	if err := svc.DeleteDepartment(ctx, adminCap, populated); !errors.Is(err, apperrors.ErrDepartmentHasFaculty) {
		t.Fatalf("expected ErrDepartmentHasFaculty, got %v", err)
	}
	if err := svc.DeleteDepartment(ctx, adminCap, empty); err != nil {
		t.Fatalf("deleting an empty department should succeed, got %v", err)
	}
	if err := svc.DeleteDepartment(ctx, adminCap, empty); !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound on second delete, got %v", err)
	}
}

func TestCreateDepartmentDuplicateName(t *testing.T) {
	_, departments, svc := newDepartmentFixture()
	departments.addDepartment("Computer Science")

	_, err := svc.CreateDepartment(context.Background(), adminCap, &dto.CreateDepartmentRequest{Name: "Computer Science"})
	if !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
		t.Fatalf("expected ErrDepartmentAlreadyExists, got %v", err)
	}
}

func TestListHeadCandidatesExcludesHeads(t *testing.T) {
	store, departments, svc := newDepartmentFixture()
	deptID := departments.addDepartment("Computer Science")
	head := store.addFaculty(models.Faculty{Name: "Dr. A", Post: models.PostProfessor, DepartmentID: deptID})
	store.addFaculty(models.Faculty{Name: "Dr. B", Post: models.PostLecturer, DepartmentID: deptID})
	store.heads[deptID] = head

	candidates, err := svc.ListHeadCandidates(context.Background(), deptID)
	if err != nil {
		t.Fatalf("ListHeadCandidates failed: %v", err)
	}
	if len(candidates) != 1 || candidates[0].Name != "Dr. B" {
		t.Fatalf("expected only Dr. B as candidate, got %v", candidates)
	}
}

func TestDepartmentMutationsRequireAdmin(t *testing.T) {
	_, departments, svc := newDepartmentFixture()
	deptID := departments.addDepartment("Computer Science")
	ctx := context.Background()

	if _, err := svc.CreateDepartment(ctx, viewerCap, &dto.CreateDepartmentRequest{Name: "Math"}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for create, got %v", err)
	}
	if err := svc.DeleteDepartment(ctx, viewerCap, deptID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for delete, got %v", err)
	}
}
