package services

import (
	"context"
	"strings"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// DepartmentService manages the department registry and the
// head-of-department links. A faculty member heads at most one
// department; the store's partial unique index backs that rule under
// concurrency.
type DepartmentService interface {
	CreateDepartment(ctx context.Context, cap models.Capability, req *dto.CreateDepartmentRequest) (*models.Department, error)
	GetDepartment(ctx context.Context, id int64) (*models.Department, error)
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	UpdateDepartment(ctx context.Context, cap models.Capability, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	SetHead(ctx context.Context, cap models.Capability, id int64, req *dto.SetHodRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, cap models.Capability, id int64) error
	ListHeadCandidates(ctx context.Context, id int64) ([]*models.Faculty, error)
}

type departmentServiceImpl struct {
	departmentStore DepartmentStore
	facultyStore    FacultyStore
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentStore DepartmentStore, facultyStore FacultyStore) DepartmentService {
	return &departmentServiceImpl{
		departmentStore: departmentStore,
		facultyStore:    facultyStore,
	}
}

// CreateDepartment creates a department, optionally with an initial head
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, cap models.Capability, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can create departments")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "department name must not be empty")
	}

	if req.HodID != nil {
		if _, err := s.facultyStore.GetByID(ctx, *req.HodID); err != nil {
			return nil, err
		}
	}

	department := &models.Department{Name: name, HodID: req.HodID}
	if err := s.departmentStore.Create(ctx, department); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("departmentID", department.ID).
		Str("name", department.Name).
		Str("actor", cap.Username).
		Msg("Department created")
	return s.departmentStore.GetByID(ctx, department.ID)
}

// GetDepartment retrieves a department by ID
func (s *departmentServiceImpl) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentStore.GetByID(ctx, id)
}

// ListDepartments retrieves all departments
func (s *departmentServiceImpl) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentStore.List(ctx)
}

// UpdateDepartment renames a department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, cap models.Capability, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can update departments")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "department name must not be empty")
	}

	if err := s.departmentStore.UpdateName(ctx, id, name); err != nil {
		return nil, err
	}

	return s.departmentStore.GetByID(ctx, id)
}

// SetHead sets or clears a department's head. The new head must belong
// to the department; setting the current head again is a no-op.
func (s *departmentServiceImpl) SetHead(ctx context.Context, cap models.Capability, id int64, req *dto.SetHodRequest) (*models.Department, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can set department heads")
	}

	if req.FacultyID != nil {
		faculty, err := s.facultyStore.GetByID(ctx, *req.FacultyID)
		if err != nil {
			return nil, err
		}
		if faculty.DepartmentID != id {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "head must belong to the department")
		}
	}

	if err := s.departmentStore.SetHead(ctx, id, req.FacultyID); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("departmentID", id).
		Str("actor", cap.Username).
		Msg("Department head changed")
	return s.departmentStore.GetByID(ctx, id)
}

// DeleteDepartment removes a department that has no faculty left
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, cap models.Capability, id int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can delete departments")
	}

	if err := s.departmentStore.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("departmentID", id).Str("actor", cap.Username).Msg("Department deleted")
	return nil
}

// ListHeadCandidates retrieves the members eligible to head the
// department
func (s *departmentServiceImpl) ListHeadCandidates(ctx context.Context, id int64) ([]*models.Faculty, error) {
	if _, err := s.departmentStore.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.departmentStore.ListHeadCandidates(ctx, id)
}
