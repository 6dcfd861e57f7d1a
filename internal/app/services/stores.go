package services

import (
	"context"
	"time"

	"github.com/okanc/campusspace/internal/app/models"
)

// Store interfaces consumed by the services. The pgx implementations
// live in internal/app/repositories; tests substitute in-memory fakes.

// AllocationTx exposes the row operations available inside one
// allocation transaction. Reads lock the rows they return.
type AllocationTx interface {
	RoomForUpdate(ctx context.Context, roomNo int64) (*models.Room, error)
	FacultyForUpdate(ctx context.Context, id int64) (*models.Faculty, error)
	SetRoomOccupied(ctx context.Context, roomNo int64, occupied bool) error
	SetFacultyRoom(ctx context.Context, facultyID int64, roomNo *int64) error
	InsertFaculty(ctx context.Context, faculty *models.Faculty) error
	UpdateProfile(ctx context.Context, id int64, name *string, post *models.Post, departmentID *int64, contact *string, dateOfJoin *time.Time) error
	DeleteFaculty(ctx context.Context, id int64) error
	ClearDepartmentHead(ctx context.Context, facultyID int64) error
}

// AllocationStore runs a function transactionally. If fn returns an
// error every write made through the AllocationTx is rolled back.
type AllocationStore interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx AllocationTx) error) error
}

// RoomStore covers room catalog access outside occupancy transitions
type RoomStore interface {
	Create(ctx context.Context, room *models.Room) error
	GetByRoomNo(ctx context.Context, roomNo int64) (*models.Room, error)
	List(ctx context.Context, filter models.RoomFilter) ([]*models.Room, error)
	Update(ctx context.Context, roomNo int64, upd models.RoomUpdate) error
	Delete(ctx context.Context, roomNo int64) error
}

// FacultyStore covers faculty reads. Profile writes ride the allocation
// transaction so a faculty update is all-or-nothing.
type FacultyStore interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	List(ctx context.Context, filter models.FacultyFilter) ([]*models.Faculty, error)
}

// DepartmentStore covers the department registry
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	List(ctx context.Context) ([]*models.Department, error)
	UpdateName(ctx context.Context, id int64, name string) error
	SetHead(ctx context.Context, id int64, facultyID *int64) error
	Delete(ctx context.Context, id int64) error
	ListHeadCandidates(ctx context.Context, id int64) ([]*models.Faculty, error)
}

// DirectoryStore covers the campus hierarchy
type DirectoryStore interface {
	ListCampuses(ctx context.Context) ([]*models.Campus, error)
	ListBlocks(ctx context.Context, campusID int64) ([]*models.Block, error)
	ListBuildings(ctx context.Context, blockID int64) ([]*models.Building, error)
	ListFloors(ctx context.Context, buildingID int64) ([]*models.Floor, error)
	GetFloorChain(ctx context.Context, floorNo int64) (*models.FloorChain, error)
	CreateCampus(ctx context.Context, campus *models.Campus) error
	CreateBlock(ctx context.Context, block *models.Block) error
	CreateBuilding(ctx context.Context, building *models.Building) error
	CreateFloor(ctx context.Context, floor *models.Floor) error
	DeleteCampus(ctx context.Context, id int64) error
	DeleteBlock(ctx context.Context, id int64) error
	DeleteBuilding(ctx context.Context, id int64) error
	DeleteFloor(ctx context.Context, floorNo int64) error
}

// ReportStore covers the read-only aggregates
type ReportStore interface {
	Stats(ctx context.Context) (*models.Stats, error)
	RecentAllocations(ctx context.Context, limit uint64) ([]*models.RecentAllocation, error)
	FacultyReport(ctx context.Context) ([]*models.FacultyReportEntry, error)
}

// UserStore covers login accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
