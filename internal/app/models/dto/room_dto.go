package dto

// CreateRoomRequest carries the fields for registering a new room. The
// occupancy flag is not accepted from callers; rooms always start free.
// LocationCode is optional: when omitted it is derived from the floor's
// ancestor names and snapshotted.
type CreateRoomRequest struct {
	RoomNo       int64  `json:"roomNo" binding:"required,min=1"`
	Type         string `json:"type" binding:"required,oneof=Lab Lecture Office 'Conference Room'"`
	FloorNo      int64  `json:"floorNo" binding:"required"`
	LocationCode string `json:"locationCode,omitempty"`
}

// UpdateRoomRequest updates room attributes, including renumbering the
// room or moving it to another floor. Occupancy is absent on purpose:
// only the allocation endpoints may change it.
type UpdateRoomRequest struct {
	RoomNo       *int64  `json:"roomNo,omitempty" binding:"omitempty,min=1"`
	FloorNo      *int64  `json:"floorNo,omitempty" binding:"omitempty,min=1"`
	Type         *string `json:"type,omitempty" binding:"omitempty,oneof=Lab Lecture Office 'Conference Room'"`
	LocationCode *string `json:"locationCode,omitempty"`
}

// RoomResponse is a room enriched with its resolved hierarchy path
type RoomResponse struct {
	RoomNo       int64  `json:"roomNo" example:"301"`
	LocationCode string `json:"locationCode" example:"MA-A2"`
	Type         string `json:"type" example:"Lab"`
	Occupied     bool   `json:"occupied" example:"false"`
	FloorNo      int64  `json:"floorNo" example:"3"`
	Path         string `json:"path,omitempty" example:"Main Campus / Block A / Building 2 / Floor 3 / 301"`
}
