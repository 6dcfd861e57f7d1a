package dto

// AssignRequest allocates a free room to a faculty member who holds none
type AssignRequest struct {
	FacultyID int64 `json:"facultyId" binding:"required"`
	RoomNo    int64 `json:"roomNo" binding:"required"`
}

// TransferRequest moves a faculty member to a different free room,
// releasing any currently held room in the same transaction
type TransferRequest struct {
	RoomNo int64 `json:"roomNo" binding:"required"`
}
