package services

import (
	"context"
	"strings"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// DirectoryService exposes the campus hierarchy: the cascading reads
// behind the selectors and the administrative writes that grow or prune
// the tree. Deletes reject while children exist.
type DirectoryService interface {
	ListCampuses(ctx context.Context) ([]*models.Campus, error)
	ListBlocks(ctx context.Context, campusID int64) ([]*models.Block, error)
	ListBuildings(ctx context.Context, blockID int64) ([]*models.Building, error)
	ListFloors(ctx context.Context, buildingID int64) ([]*models.Floor, error)

	CreateCampus(ctx context.Context, cap models.Capability, req *dto.CreateCampusRequest) (*models.Campus, error)
	CreateBlock(ctx context.Context, cap models.Capability, req *dto.CreateBlockRequest) (*models.Block, error)
	CreateBuilding(ctx context.Context, cap models.Capability, req *dto.CreateBuildingRequest) (*models.Building, error)
	CreateFloor(ctx context.Context, cap models.Capability, req *dto.CreateFloorRequest) (*models.Floor, error)

	DeleteCampus(ctx context.Context, cap models.Capability, id int64) error
	DeleteBlock(ctx context.Context, cap models.Capability, id int64) error
	DeleteBuilding(ctx context.Context, cap models.Capability, id int64) error
	DeleteFloor(ctx context.Context, cap models.Capability, floorNo int64) error
}

type directoryServiceImpl struct {
	directoryStore DirectoryStore
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(directoryStore DirectoryStore) DirectoryService {
	return &directoryServiceImpl{directoryStore: directoryStore}
}

func (s *directoryServiceImpl) ListCampuses(ctx context.Context) ([]*models.Campus, error) {
	return s.directoryStore.ListCampuses(ctx)
}

func (s *directoryServiceImpl) ListBlocks(ctx context.Context, campusID int64) ([]*models.Block, error) {
	return s.directoryStore.ListBlocks(ctx, campusID)
}

func (s *directoryServiceImpl) ListBuildings(ctx context.Context, blockID int64) ([]*models.Building, error) {
	return s.directoryStore.ListBuildings(ctx, blockID)
}

func (s *directoryServiceImpl) ListFloors(ctx context.Context, buildingID int64) ([]*models.Floor, error) {
	return s.directoryStore.ListFloors(ctx, buildingID)
}

func (s *directoryServiceImpl) CreateCampus(ctx context.Context, cap models.Capability, req *dto.CreateCampusRequest) (*models.Campus, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can modify the hierarchy")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "campus name must not be empty")
	}

	campus := &models.Campus{Name: name}
	if err := s.directoryStore.CreateCampus(ctx, campus); err != nil {
		return nil, err
	}

	logger.Info().Int64("campusID", campus.ID).Str("actor", cap.Username).Msg("Campus created")
	return campus, nil
}

func (s *directoryServiceImpl) CreateBlock(ctx context.Context, cap models.Capability, req *dto.CreateBlockRequest) (*models.Block, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can modify the hierarchy")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "block name must not be empty")
	}

	block := &models.Block{Name: name, CampusID: req.CampusID}
	if err := s.directoryStore.CreateBlock(ctx, block); err != nil {
		return nil, err
	}

	logger.Info().Int64("blockID", block.ID).Str("actor", cap.Username).Msg("Block created")
	return block, nil
}

func (s *directoryServiceImpl) CreateBuilding(ctx context.Context, cap models.Capability, req *dto.CreateBuildingRequest) (*models.Building, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can modify the hierarchy")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "building name must not be empty")
	}

	building := &models.Building{Name: name, BlockID: req.BlockID}
	if err := s.directoryStore.CreateBuilding(ctx, building); err != nil {
		return nil, err
	}

	logger.Info().Int64("buildingID", building.ID).Str("actor", cap.Username).Msg("Building created")
	return building, nil
}

func (s *directoryServiceImpl) CreateFloor(ctx context.Context, cap models.Capability, req *dto.CreateFloorRequest) (*models.Floor, error) {
	if !cap.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can modify the hierarchy")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "floor name must not be empty")
	}

	floor := &models.Floor{FloorNo: req.FloorNo, Name: name, BuildingID: req.BuildingID}
	if err := s.directoryStore.CreateFloor(ctx, floor); err != nil {
		return nil, err
	}

	logger.Info().Int64("floorNo", floor.FloorNo).Str("actor", cap.Username).Msg("Floor created")
	return floor, nil
}

func (s *directoryServiceImpl) DeleteCampus(ctx context.Context, cap models.Capability, id int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can modify the hierarchy")
	}
	return s.directoryStore.DeleteCampus(ctx, id)
}

func (s *directoryServiceImpl) DeleteBlock(ctx context.Context, cap models.Capability, id int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can modify the hierarchy")
	}
	return s.directoryStore.DeleteBlock(ctx, id)
}

func (s *directoryServiceImpl) DeleteBuilding(ctx context.Context, cap models.Capability, id int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can modify the hierarchy")
	}
	return s.directoryStore.DeleteBuilding(ctx, id)
}

func (s *directoryServiceImpl) DeleteFloor(ctx context.Context, cap models.Capability, floorNo int64) error {
	if !cap.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can modify the hierarchy")
	}
	return s.directoryStore.DeleteFloor(ctx, floorNo)
}
