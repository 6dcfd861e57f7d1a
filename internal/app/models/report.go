package models

// Stats holds the dashboard counters
type Stats struct {
	Faculty     int64
	Rooms       int64
	Allocated   int64
	Available   int64
	Departments int64
	Campuses    int64
}

// RecentAllocation is one row of the dashboard's latest-assignments list
type RecentAllocation struct {
	FacultyName    string
	Post           Post
	DepartmentName string
	RoomNo         int64
	LocationCode   string
}

// FacultyReportEntry is one row of the allocation report, covering every
// faculty member whether or not they hold a room
type FacultyReportEntry struct {
	FacultyID      int64
	Name           string
	Post           Post
	DepartmentName string
	RoomNo         *int64
	LocationCode   *string
}
