package models

// Room represents a physical workspace. The room number is caller-assigned
// and unique. The location code is snapshotted when the room is created;
// renaming an ancestor later does not change it. Ancestors above the floor
// are derived through the floor's chain rather than stored on the room, so
// the room's hierarchy can never disagree with the floor's.
//
// The occupancy flag is owned by the allocation coordinator: no other code
// path writes it.
type Room struct {
	RoomNo       int64    `json:"roomNo"`
	LocationCode string   `json:"locationCode"`
	Type         RoomType `json:"type"`
	Occupied     bool     `json:"occupied"`
	FloorNo      int64    `json:"floorNo"`
}
