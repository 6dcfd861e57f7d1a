package dto

// CreateDepartmentRequest carries the fields for adding a department
type CreateDepartmentRequest struct {
	Name  string `json:"name" binding:"required"`
	HodID *int64 `json:"hodId,omitempty"`
}

// UpdateDepartmentRequest renames a department
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// SetHodRequest sets or clears a department's head. A null FacultyID
// clears the reference.
type SetHodRequest struct {
	FacultyID *int64 `json:"facultyId"`
}
