package services

import (
	"context"
	"errors"
	"testing"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
)

// memDirectoryStore keeps the hierarchy in maps and rejects deletes
// while children exist, mirroring the database policy.
type memDirectoryStore struct {
	campuses  map[int64]*models.Campus
	blocks    map[int64]*models.Block
	buildings map[int64]*models.Building
	floors    map[int64]*models.Floor
	nextID    int64
}

func newMemDirectoryStore() *memDirectoryStore {
	return &memDirectoryStore{
		campuses:  map[int64]*models.Campus{},
		blocks:    map[int64]*models.Block{},
		buildings: map[int64]*models.Building{},
		floors:    map[int64]*models.Floor{},
		nextID:    1,
	}
}

func (s *memDirectoryStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *memDirectoryStore) ListCampuses(ctx context.Context) ([]*models.Campus, error) {
	out := []*models.Campus{}
	for _, c := range s.campuses {
		out = append(out, c)
	}
	return out, nil
}

func (s *memDirectoryStore) ListBlocks(ctx context.Context, campusID int64) ([]*models.Block, error) {
	out := []*models.Block{}
	for _, b := range s.blocks {
		if b.CampusID == campusID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memDirectoryStore) ListBuildings(ctx context.Context, blockID int64) ([]*models.Building, error) {
	out := []*models.Building{}
	for _, b := range s.buildings {
		if b.BlockID == blockID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memDirectoryStore) ListFloors(ctx context.Context, buildingID int64) ([]*models.Floor, error) {
	out := []*models.Floor{}
	for _, f := range s.floors {
		if f.BuildingID == buildingID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *memDirectoryStore) GetFloorChain(ctx context.Context, floorNo int64) (*models.FloorChain, error) {
	floor, ok := s.floors[floorNo]
	if !ok {
		return nil, apperrors.ErrFloorNotFound
	}
	building := s.buildings[floor.BuildingID]
	block := s.blocks[building.BlockID]
	campus := s.campuses[block.CampusID]
	return &models.FloorChain{
		CampusName:   campus.Name,
		BlockName:    block.Name,
		BuildingName: building.Name,
		FloorName:    floor.Name,
	}, nil
}

func (s *memDirectoryStore) CreateCampus(ctx context.Context, campus *models.Campus) error {
	for _, c := range s.campuses {
		if c.Name == campus.Name {
			return apperrors.ErrResourceAlreadyExists
		}
	}
	campus.ID = s.id()
	s.campuses[campus.ID] = campus
	return nil
}

func (s *memDirectoryStore) CreateBlock(ctx context.Context, block *models.Block) error {
	if _, ok := s.campuses[block.CampusID]; !ok {
		return apperrors.ErrCampusNotFound
	}
	block.ID = s.id()
	s.blocks[block.ID] = block
	return nil
}

func (s *memDirectoryStore) CreateBuilding(ctx context.Context, building *models.Building) error {
	if _, ok := s.blocks[building.BlockID]; !ok {
		return apperrors.ErrBlockNotFound
	}
	building.ID = s.id()
	s.buildings[building.ID] = building
	return nil
}

func (s *memDirectoryStore) CreateFloor(ctx context.Context, floor *models.Floor) error {
	if _, ok := s.buildings[floor.BuildingID]; !ok {
		return apperrors.ErrBuildingNotFound
	}
	if _, ok := s.floors[floor.FloorNo]; ok {
		return apperrors.ErrResourceAlreadyExists
	}
	s.floors[floor.FloorNo] = floor
	return nil
}

func (s *memDirectoryStore) DeleteCampus(ctx context.Context, id int64) error {
	if _, ok := s.campuses[id]; !ok {
		return apperrors.ErrCampusNotFound
	}
	for _, b := range s.blocks {
		if b.CampusID == id {
			return apperrors.ErrHasDependents
		}
	}
	delete(s.campuses, id)
	return nil
}

func (s *memDirectoryStore) DeleteBlock(ctx context.Context, id int64) error {
	if _, ok := s.blocks[id]; !ok {
		return apperrors.ErrBlockNotFound
	}
	for _, b := range s.buildings {
		if b.BlockID == id {
			return apperrors.ErrHasDependents
		}
	}
	delete(s.blocks, id)
	return nil
}

func (s *memDirectoryStore) DeleteBuilding(ctx context.Context, id int64) error {
	if _, ok := s.buildings[id]; !ok {
		return apperrors.ErrBuildingNotFound
	}
	for _, f := range s.floors {
		if f.BuildingID == id {
			return apperrors.ErrHasDependents
		}
	}
	delete(s.buildings, id)
	return nil
}

func (s *memDirectoryStore) DeleteFloor(ctx context.Context, floorNo int64) error {
	if _, ok := s.floors[floorNo]; !ok {
		return apperrors.ErrFloorNotFound
	}
	delete(s.floors, floorNo)
	return nil
}

// seedHierarchy builds Campus -> Block -> Building -> Floor 1 and
// returns the generated ids.
func seedHierarchy(t *testing.T, svc DirectoryService) (campusID, blockID, buildingID, floorNo int64) {
	t.Helper()
	ctx := context.Background()

	campus, err := svc.CreateCampus(ctx, adminCap, &dto.CreateCampusRequest{Name: "North Campus"})
	if err != nil {
		t.Fatalf("CreateCampus failed: %v", err)
	}
	block, err := svc.CreateBlock(ctx, adminCap, &dto.CreateBlockRequest{Name: "Block B", CampusID: campus.ID})
	if err != nil {
		t.Fatalf("CreateBlock failed: %v", err)
	}
	building, err := svc.CreateBuilding(ctx, adminCap, &dto.CreateBuildingRequest{Name: "Building 7", BlockID: block.ID})
	if err != nil {
		t.Fatalf("CreateBuilding failed: %v", err)
	}
	floor, err := svc.CreateFloor(ctx, adminCap, &dto.CreateFloorRequest{FloorNo: 1, Name: "Floor 1", BuildingID: building.ID})
	if err != nil {
		t.Fatalf("CreateFloor failed: %v", err)
	}
	return campus.ID, block.ID, building.ID, floor.FloorNo
}

func TestDeleteRejectedWhileChildrenExist(t *testing.T) {
	svc := NewDirectoryService(newMemDirectoryStore())
	ctx := context.Background()
	campusID, blockID, buildingID, _ := seedHierarchy(t, svc)

	if err := svc.DeleteCampus(ctx, adminCap, campusID); !errors.Is(err, apperrors.ErrHasDependents) {
		t.Fatalf("campus with blocks: expected ErrHasDependents, got %v", err)
	}
	if err := svc.DeleteBlock(ctx, adminCap, blockID); !errors.Is(err, apperrors.ErrHasDependents) {
		t.Fatalf("block with buildings: expected ErrHasDependents, got %v", err)
	}
	if err := svc.DeleteBuilding(ctx, adminCap, buildingID); !errors.Is(err, apperrors.ErrHasDependents) {
		t.Fatalf("building with floors: expected ErrHasDependents, got %v", err)
	}
}

func TestDeleteLeafUpwards(t *testing.T) {
	svc := NewDirectoryService(newMemDirectoryStore())
	ctx := context.Background()
	campusID, blockID, buildingID, floorNo := seedHierarchy(t, svc)

	if err := svc.DeleteFloor(ctx, adminCap, floorNo); err != nil {
		t.Fatalf("DeleteFloor failed: %v", err)
	}
	if err := svc.DeleteBuilding(ctx, adminCap, buildingID); err != nil {
		t.Fatalf("DeleteBuilding failed: %v", err)
	}
	if err := svc.DeleteBlock(ctx, adminCap, blockID); err != nil {
		t.Fatalf("DeleteBlock failed: %v", err)
	}
	if err := svc.DeleteCampus(ctx, adminCap, campusID); err != nil {
		t.Fatalf("DeleteCampus failed: %v", err)
	}

	campuses, err := svc.ListCampuses(ctx)
	if err != nil {
		t.Fatalf("ListCampuses failed: %v", err)
	}
	if len(campuses) != 0 {
		t.Fatalf("expected empty directory, got %d campuses", len(campuses))
	}
}

func TestCreateBlockUnderMissingCampus(t *testing.T) {
	svc := NewDirectoryService(newMemDirectoryStore())

	_, err := svc.CreateBlock(context.Background(), adminCap, &dto.CreateBlockRequest{Name: "Block Z", CampusID: 42})
	if !errors.Is(err, apperrors.ErrCampusNotFound) {
		t.Fatalf("expected ErrCampusNotFound, got %v", err)
	}
}

func TestCreateDuplicateFloorNumber(t *testing.T) {
	svc := NewDirectoryService(newMemDirectoryStore())
	ctx := context.Background()
	_, _, buildingID, _ := seedHierarchy(t, svc)

	_, err := svc.CreateFloor(ctx, adminCap, &dto.CreateFloorRequest{FloorNo: 1, Name: "Floor 1 again", BuildingID: buildingID})
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Fatalf("expected ErrResourceAlreadyExists, got %v", err)
	}
}

func TestCreateCampusRejectsBlankName(t *testing.T) {
	svc := NewDirectoryService(newMemDirectoryStore())

	_, err := svc.CreateCampus(context.Background(), adminCap, &dto.CreateCampusRequest{Name: "   "})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestHierarchyMutationsRequireAdmin(t *testing.T) {
	svc := NewDirectoryService(newMemDirectoryStore())
	ctx := context.Background()

	if _, err := svc.CreateCampus(ctx, viewerCap, &dto.CreateCampusRequest{Name: "South Campus"}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for create, got %v", err)
	}
	if err := svc.DeleteCampus(ctx, viewerCap, 1); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for delete, got %v", err)
	}
}
