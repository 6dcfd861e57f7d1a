package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// ReportRepository serves the read-only aggregates behind the dashboard
// and the allocation report
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const statsQuery = `
	SELECT
		(SELECT COUNT(*) FROM faculty),
		(SELECT COUNT(*) FROM rooms),
		(SELECT COUNT(*) FROM rooms WHERE occupied),
		(SELECT COUNT(*) FROM rooms WHERE NOT occupied),
		(SELECT COUNT(*) FROM departments),
		(SELECT COUNT(*) FROM campuses)`

// Stats retrieves the dashboard counters in one round trip
func (r *ReportRepository) Stats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	err := r.db.QueryRow(ctx, statsQuery).Scan(
		&stats.Faculty,
		&stats.Rooms,
		&stats.Allocated,
		&stats.Available,
		&stats.Departments,
		&stats.Campuses,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying stats")
		return nil, fmt.Errorf("error querying stats: %w", err)
	}

	return stats, nil
}

// RecentAllocations retrieves the latest room assignments, newest
// faculty first
func (r *ReportRepository) RecentAllocations(ctx context.Context, limit uint64) ([]*models.RecentAllocation, error) {
	sql, args, err := r.sb.Select("f.name", "f.post", "d.name", "r.room_no", "r.location_code").
		From("faculty f").
		Join("rooms r ON f.room_no = r.room_no").
		Join("departments d ON f.department_id = d.id").
		OrderBy("f.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent allocations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying recent allocations")
		return nil, fmt.Errorf("error querying recent allocations: %w", err)
	}
	defer rows.Close()

	allocations := []*models.RecentAllocation{}
	for rows.Next() {
		alloc := &models.RecentAllocation{}
		err := rows.Scan(&alloc.FacultyName, &alloc.Post, &alloc.DepartmentName, &alloc.RoomNo, &alloc.LocationCode)
		if err != nil {
			return nil, fmt.Errorf("error scanning recent allocation row: %w", err)
		}
		allocations = append(allocations, alloc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent allocation rows: %w", err)
	}

	return allocations, nil
}

// FacultyReport retrieves every faculty member with their assignment,
// assigned or not, ordered by department then name
func (r *ReportRepository) FacultyReport(ctx context.Context) ([]*models.FacultyReportEntry, error) {
	sql, args, err := r.sb.Select("f.id", "f.name", "f.post", "d.name", "f.room_no", "r.location_code").
		From("faculty f").
		Join("departments d ON f.department_id = d.id").
		LeftJoin("rooms r ON f.room_no = r.room_no").
		OrderBy("d.name ASC", "f.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying faculty report")
		return nil, fmt.Errorf("error querying faculty report: %w", err)
	}
	defer rows.Close()

	entries := []*models.FacultyReportEntry{}
	for rows.Next() {
		entry := &models.FacultyReportEntry{}
		err := rows.Scan(&entry.FacultyID, &entry.Name, &entry.Post, &entry.DepartmentName, &entry.RoomNo, &entry.LocationCode)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty report row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty report rows: %w", err)
	}

	return entries, nil
}
