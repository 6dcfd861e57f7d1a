package models

// RoomType classifies what a room is used for
type RoomType string

const (
	RoomTypeLab        RoomType = "Lab"
	RoomTypeLecture    RoomType = "Lecture"
	RoomTypeOffice     RoomType = "Office"
	RoomTypeConference RoomType = "Conference Room"
)

// Valid reports whether the room type is one of the known values
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeLab, RoomTypeLecture, RoomTypeOffice, RoomTypeConference:
		return true
	}
	return false
}

// Post is a faculty member's academic post
type Post string

const (
	PostProfessor          Post = "Professor"
	PostAssociateProfessor Post = "Associate Professor"
	PostAssistantProfessor Post = "Assistant Professor"
	PostLecturer           Post = "Lecturer"
)

// Valid reports whether the post is one of the known values
func (p Post) Valid() bool {
	switch p {
	case PostProfessor, PostAssociateProfessor, PostAssistantProfessor, PostLecturer:
		return true
	}
	return false
}

// Role defines the user role type
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleViewer Role = "VIEWER"
)

// Capability identifies the caller of a core operation. Mutating
// operations refuse callers whose capability does not grant admin,
// independently of any route-level checks.
type Capability struct {
	UserID   int64
	Username string
	Role     Role
}

// IsAdmin reports whether the capability grants mutating access
func (c Capability) IsAdmin() bool {
	return c.Role == RoleAdmin
}
