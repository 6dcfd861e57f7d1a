package repositories

import (
	"github.com/okanc/campusspace/internal/db"
)

// Repositories contains all repository implementations
type Repositories struct {
	Directory  *DirectoryRepository
	Room       *RoomRepository
	Faculty    *FacultyRepository
	Department *DepartmentRepository
	Allocation *AllocationRepository
	Report     *ReportRepository
	User       *UserRepository
}

// NewRepositories creates a new Repositories container
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		Directory:  NewDirectoryRepository(database.Pool),
		Room:       NewRoomRepository(database.Pool),
		Faculty:    NewFacultyRepository(database.Pool),
		Department: NewDepartmentRepository(database.Pool),
		Allocation: NewAllocationRepository(database),
		Report:     NewReportRepository(database.Pool),
		User:       NewUserRepository(database.Pool),
	}
}
