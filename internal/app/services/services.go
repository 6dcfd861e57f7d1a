package services

import (
	"github.com/okanc/campusspace/internal/pkg/auth"
)

// Services contains all service implementations
type Services struct {
	Auth       AuthService
	Location   LocationService
	Directory  DirectoryService
	Room       RoomService
	Faculty    FacultyService
	Department DepartmentService
	Allocation AllocationService
	Report     ReportService
}

// NewServices wires the service layer over the given stores
func NewServices(
	allocationStore AllocationStore,
	roomStore RoomStore,
	facultyStore FacultyStore,
	departmentStore DepartmentStore,
	directoryStore DirectoryStore,
	reportStore ReportStore,
	userStore UserStore,
	jwtService *auth.JWTService,
) *Services {
	locationService := NewLocationService(directoryStore)
	allocationService := NewAllocationService(allocationStore)

	return &Services{
		Auth:       NewAuthService(userStore, jwtService),
		Location:   locationService,
		Directory:  NewDirectoryService(directoryStore),
		Room:       NewRoomService(roomStore, locationService),
		Faculty:    NewFacultyService(facultyStore, allocationStore),
		Department: NewDepartmentService(departmentStore, facultyStore),
		Allocation: allocationService,
		Report:     NewReportService(reportStore),
	}
}
