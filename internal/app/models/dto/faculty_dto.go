package dto

import "time"

// CreateFacultyRequest carries the fields for adding a faculty member.
// When RoomNo is supplied the room is occupied in the same transaction
// that persists the member.
type CreateFacultyRequest struct {
	Name         string     `json:"name" binding:"required"`
	Post         string     `json:"post" binding:"required,oneof=Professor 'Associate Professor' 'Assistant Professor' Lecturer"`
	DepartmentID int64      `json:"departmentId" binding:"required"`
	Contact      *string    `json:"contact,omitempty"`
	DateOfJoin   *time.Time `json:"dateOfJoin,omitempty"`
	RoomNo       *int64     `json:"roomNo,omitempty"`
}

// UpdateFacultyRequest updates a faculty member. A RoomNo different from
// the current one is routed through the allocation transfer path; an
// explicit null releases the held room.
type UpdateFacultyRequest struct {
	Name         *string `json:"name,omitempty"`
	Post         *string `json:"post,omitempty" binding:"omitempty,oneof=Professor 'Associate Professor' 'Assistant Professor' Lecturer"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
	Contact      *string `json:"contact,omitempty"`
	RoomNo       *int64  `json:"roomNo,omitempty"`
	ClearRoom    bool    `json:"clearRoom,omitempty"`
}
