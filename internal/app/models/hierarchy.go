package models

// Campus is the root of the location hierarchy
type Campus struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Block belongs to exactly one campus
type Block struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CampusID int64  `json:"campusId"`
}

// Building belongs to exactly one block
type Building struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	BlockID int64  `json:"blockId"`
}

// Floor belongs to exactly one building. The floor number is the
// identifier and is unique across the whole campus hierarchy.
type Floor struct {
	FloorNo    int64  `json:"floorNo"`
	Name       string `json:"name"`
	BuildingID int64  `json:"buildingId"`
}

// FloorChain is a floor resolved to its full ancestor names, in
// descending hierarchy order.
type FloorChain struct {
	CampusName   string
	BlockName    string
	BuildingName string
	FloorName    string
}
