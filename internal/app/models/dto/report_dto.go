package dto

// FacultyReportRow is one line of the allocation report
type FacultyReportRow struct {
	FacultyID  int64  `json:"facultyId"`
	Name       string `json:"name"`
	Post       string `json:"post"`
	Department string `json:"department"`
	Status     string  `json:"status" example:"Allocated"`
	RoomNo     *int64  `json:"roomNo,omitempty"`
	Location   *string `json:"location,omitempty"`
}

// StatsResponse is the dashboard counter set
type StatsResponse struct {
	Faculty     int64 `json:"faculty"`
	Rooms       int64 `json:"rooms"`
	Allocated   int64 `json:"allocated"`
	Available   int64 `json:"available"`
	Departments int64 `json:"departments"`
	Campuses    int64 `json:"campuses"`
}

// RecentAllocationRow is one line of the dashboard's recent allocations list
type RecentAllocationRow struct {
	Name       string `json:"name"`
	Post       string `json:"post"`
	Department string `json:"department"`
	RoomNo     int64  `json:"roomNo"`
	Location   string `json:"location"`
}
