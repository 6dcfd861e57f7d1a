package models

// RoomFilter narrows room listings. Zero values mean no filtering.
type RoomFilter struct {
	FloorNo       int64
	Type          RoomType
	AvailableOnly bool
}

// RoomUpdate carries the room attributes an update may change. Nil
// fields are left untouched. Occupancy is not here: it belongs to the
// allocation transaction alone.
type RoomUpdate struct {
	RoomNo       *int64
	FloorNo      *int64
	LocationCode *string
	Type         *RoomType
}

// FacultyFilter narrows faculty listings. Zero values mean no filtering.
type FacultyFilter struct {
	DepartmentID   int64
	NameContains   string
	UnassignedOnly bool
}
