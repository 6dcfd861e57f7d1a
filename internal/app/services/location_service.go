package services

import (
	"context"
	"strconv"
	"strings"
)

// PathDelimiter joins the segments of a resolved hierarchy path
const PathDelimiter = " / "

// LocationService resolves floors and rooms to human-readable paths and
// derives the short location codes that rooms snapshot at creation.
type LocationService interface {
	ResolveFloorPath(ctx context.Context, floorNo int64) (string, error)
	ResolveRoomPath(ctx context.Context, floorNo int64, roomNo int64) (string, error)
	LocationCode(ctx context.Context, floorNo int64) (string, error)
}

type locationServiceImpl struct {
	directoryStore DirectoryStore
}

// NewLocationService creates a new LocationService
func NewLocationService(directoryStore DirectoryStore) LocationService {
	return &locationServiceImpl{directoryStore: directoryStore}
}

// ResolveFloorPath returns "Campus / Block / Building / Floor" for the
// given floor
func (s *locationServiceImpl) ResolveFloorPath(ctx context.Context, floorNo int64) (string, error) {
	chain, err := s.directoryStore.GetFloorChain(ctx, floorNo)
	if err != nil {
		return "", err
	}

	segments := []string{chain.CampusName, chain.BlockName, chain.BuildingName, chain.FloorName}
	return strings.Join(segments, PathDelimiter), nil
}

// ResolveRoomPath returns the floor path extended with the room number
func (s *locationServiceImpl) ResolveRoomPath(ctx context.Context, floorNo int64, roomNo int64) (string, error) {
	floorPath, err := s.ResolveFloorPath(ctx, floorNo)
	if err != nil {
		return "", err
	}

	return floorPath + PathDelimiter + strconv.FormatInt(roomNo, 10), nil
}

// LocationCode derives the short code for a room on the given floor
func (s *locationServiceImpl) LocationCode(ctx context.Context, floorNo int64) (string, error) {
	chain, err := s.directoryStore.GetFloorChain(ctx, floorNo)
	if err != nil {
		return "", err
	}

	return DeriveLocationCode(chain.CampusName, chain.BlockName, chain.BuildingName), nil
}

// DeriveLocationCode builds a short location code from hierarchy names.
// The shape is fixed: the first two bytes of the campus name's first
// word, uppercased; a dash; the first byte of the block name with any
// "Block" removed, uppercased; the last byte of the building name with
// any "Building" removed. "Main Campus" / "Block A" / "Building 2"
// yields "MA-A2". Codes are snapshots: renaming hierarchy nodes later
// does not rewrite codes already stamped on rooms.
func DeriveLocationCode(campusName, blockName, buildingName string) string {
	var b strings.Builder

	campusWord := campusName
	if idx := strings.IndexByte(campusWord, ' '); idx >= 0 {
		campusWord = campusWord[:idx]
	}
	if len(campusWord) >= 2 {
		b.WriteString(strings.ToUpper(campusWord[:2]))
	} else {
		b.WriteString(strings.ToUpper(campusWord))
	}

	b.WriteByte('-')

	block := strings.TrimSpace(strings.ReplaceAll(blockName, "Block", ""))
	if len(block) > 0 {
		b.WriteString(strings.ToUpper(block[:1]))
	}

	building := strings.TrimSpace(strings.ReplaceAll(buildingName, "Building", ""))
	if len(building) > 0 {
		b.WriteByte(building[len(building)-1])
	}

	return b.String()
}
