package models

import "time"

// Faculty represents a faculty member. RoomNo is nil when the member holds
// no room; when set, the referenced room's occupancy flag is true (the
// allocation coordinator keeps the two in step).
type Faculty struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Post         Post      `json:"post"`
	DepartmentID int64     `json:"departmentId"`
	Contact      *string   `json:"contact,omitempty"`
	DateOfJoin   time.Time `json:"dateOfJoin"`
	RoomNo       *int64    `json:"roomNo,omitempty"`
}
