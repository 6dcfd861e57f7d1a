package dto

// CreateCampusRequest adds a campus
type CreateCampusRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateBlockRequest adds a block under a campus
type CreateBlockRequest struct {
	Name     string `json:"name" binding:"required"`
	CampusID int64  `json:"campusId" binding:"required"`
}

// CreateBuildingRequest adds a building under a block
type CreateBuildingRequest struct {
	Name    string `json:"name" binding:"required"`
	BlockID int64  `json:"blockId" binding:"required"`
}

// CreateFloorRequest adds a floor under a building. The floor number is
// caller-assigned and globally unique.
type CreateFloorRequest struct {
	FloorNo    int64  `json:"floorNo" binding:"required,min=1"`
	Name       string `json:"name" binding:"required"`
	BuildingID int64  `json:"buildingId" binding:"required"`
}
