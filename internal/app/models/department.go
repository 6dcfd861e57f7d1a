package models

// Department groups faculty. HodID references the head of department; a
// faculty member may head at most one department.
type Department struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	HodID        *int64  `json:"hodId,omitempty"`
	HodName      *string `json:"hodName,omitempty"`
	FacultyCount int     `json:"facultyCount"`
}
