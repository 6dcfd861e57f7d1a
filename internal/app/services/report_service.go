package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/okanc/campusspace/internal/app/models/dto"
)

// Allocation report status values
const (
	StatusAllocated    = "Allocated"
	StatusNotAllocated = "Not Allocated"
)

// ReportService serves the dashboard aggregates and the allocation
// report, including its CSV export
type ReportService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	RecentAllocations(ctx context.Context, limit uint64) ([]*dto.RecentAllocationRow, error)
	FacultyReport(ctx context.Context) ([]*dto.FacultyReportRow, error)
	WriteFacultyReportCSV(ctx context.Context, w io.Writer) error
}

type reportServiceImpl struct {
	reportStore ReportStore
}

// NewReportService creates a new ReportService
func NewReportService(reportStore ReportStore) ReportService {
	return &reportServiceImpl{reportStore: reportStore}
}

// Stats retrieves the dashboard counters
func (s *reportServiceImpl) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	stats, err := s.reportStore.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		Faculty:     stats.Faculty,
		Rooms:       stats.Rooms,
		Allocated:   stats.Allocated,
		Available:   stats.Available,
		Departments: stats.Departments,
		Campuses:    stats.Campuses,
	}, nil
}

// RecentAllocations retrieves the latest room assignments
func (s *reportServiceImpl) RecentAllocations(ctx context.Context, limit uint64) ([]*dto.RecentAllocationRow, error) {
	if limit == 0 {
		limit = 5
	}

	allocations, err := s.reportStore.RecentAllocations(ctx, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.RecentAllocationRow, 0, len(allocations))
	for _, alloc := range allocations {
		rows = append(rows, &dto.RecentAllocationRow{
			Name:       alloc.FacultyName,
			Post:       string(alloc.Post),
			Department: alloc.DepartmentName,
			RoomNo:     alloc.RoomNo,
			Location:   alloc.LocationCode,
		})
	}

	return rows, nil
}

// FacultyReport retrieves the allocation status of every faculty member
func (s *reportServiceImpl) FacultyReport(ctx context.Context) ([]*dto.FacultyReportRow, error) {
	entries, err := s.reportStore.FacultyReport(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.FacultyReportRow, 0, len(entries))
	for _, entry := range entries {
		row := &dto.FacultyReportRow{
			FacultyID:  entry.FacultyID,
			Name:       entry.Name,
			Post:       string(entry.Post),
			Department: entry.DepartmentName,
			Status:     StatusNotAllocated,
			RoomNo:     entry.RoomNo,
			Location:   entry.LocationCode,
		}
		if entry.RoomNo != nil {
			row.Status = StatusAllocated
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// WriteFacultyReportCSV streams the allocation report as CSV. Members
// without a room appear with empty room columns.
func (s *reportServiceImpl) WriteFacultyReportCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.FacultyReport(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"Faculty ID", "Name", "Post", "Department", "Status", "Room No", "Location"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing report header: %w", err)
	}

	for _, row := range rows {
		roomNo := ""
		if row.RoomNo != nil {
			roomNo = strconv.FormatInt(*row.RoomNo, 10)
		}
		location := ""
		if row.Location != nil {
			location = *row.Location
		}

		record := []string{
			strconv.FormatInt(row.FacultyID, 10),
			row.Name,
			row.Post,
			row.Department,
			row.Status,
			roomNo,
			location,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing report row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
