package services

import (
	"context"
	"errors"
	"testing"

	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
)

// chainDirectory stubs the floor chain lookup; the embedded interface
// panics on anything else a test does not expect to be called.
type chainDirectory struct {
	DirectoryStore
	chains map[int64]models.FloorChain
}

func (d *chainDirectory) GetFloorChain(ctx context.Context, floorNo int64) (*models.FloorChain, error) {
	chain, ok := d.chains[floorNo]
	if !ok {
		return nil, apperrors.ErrFloorNotFound
	}
	return &chain, nil
}

func TestDeriveLocationCode(t *testing.T) {
	tests := []struct {
		name     string
		campus   string
		block    string
		building string
		want     string
	}{
		{"documented example", "Main Campus", "Block A", "Building 2", "MA-A2"},
		{"single word campus", "North", "Block B", "Building 7", "NO-B7"},
		{"names without keywords", "Main Campus", "A", "1", "MA-A1"},
		{"lowercase keywords not stripped", "main campus", "block a", "building 3", "MA-B3"},
		{"short campus word", "X Campus", "Block C", "Building 4", "X-C4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveLocationCode(tt.campus, tt.block, tt.building)
			if got != tt.want {
				t.Fatalf("DeriveLocationCode(%q, %q, %q) = %q, want %q",
					tt.campus, tt.block, tt.building, got, tt.want)
			}
		})
	}
}

func TestResolveFloorPath(t *testing.T) {
	dir := &chainDirectory{chains: map[int64]models.FloorChain{
		3: {CampusName: "Main", BlockName: "A", BuildingName: "1", FloorName: "3"},
	}}
	svc := NewLocationService(dir)

	path, err := svc.ResolveFloorPath(context.Background(), 3)
	if err != nil {
		t.Fatalf("ResolveFloorPath failed: %v", err)
	}
	if path != "Main / A / 1 / 3" {
		t.Fatalf("unexpected floor path: %q", path)
	}
}

func TestResolveRoomPathExtendsFloorPath(t *testing.T) {
	dir := &chainDirectory{chains: map[int64]models.FloorChain{
		3: {CampusName: "Main", BlockName: "A", BuildingName: "1", FloorName: "3"},
	}}
	svc := NewLocationService(dir)
	ctx := context.Background()

	floorPath, err := svc.ResolveFloorPath(ctx, 3)
	if err != nil {
		t.Fatalf("ResolveFloorPath failed: %v", err)
	}
	roomPath, err := svc.ResolveRoomPath(ctx, 3, 301)
	if err != nil {
		t.Fatalf("ResolveRoomPath failed: %v", err)
	}

	if roomPath != "Main / A / 1 / 3 / 301" {
		t.Fatalf("unexpected room path: %q", roomPath)
	}
	if roomPath != floorPath+PathDelimiter+"301" {
		t.Fatalf("room path %q must extend floor path %q", roomPath, floorPath)
	}
}

func TestResolveFloorPathUnknownFloor(t *testing.T) {
	svc := NewLocationService(&chainDirectory{chains: map[int64]models.FloorChain{}})

	_, err := svc.ResolveFloorPath(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrFloorNotFound) {
		t.Fatalf("expected ErrFloorNotFound, got %v", err)
	}
}

func TestLocationCodeFromFloor(t *testing.T) {
	dir := &chainDirectory{chains: map[int64]models.FloorChain{
		3: {CampusName: "Main Campus", BlockName: "Block A", BuildingName: "Building 2", FloorName: "Floor 3"},
	}}
	svc := NewLocationService(dir)

	code, err := svc.LocationCode(context.Background(), 3)
	if err != nil {
		t.Fatalf("LocationCode failed: %v", err)
	}
	if code != "MA-A2" {
		t.Fatalf("unexpected location code: %q", code)
	}
}
