package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okanc/campusspace/internal/config"
	"github.com/okanc/campusspace/internal/pkg/auth"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

var sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// CreateDefaultData seeds the default admin account and, when enabled,
// a small demo hierarchy. Seeding is idempotent: existing rows are left
// alone.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	if err := createAdminUser(ctx, db, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		return err
	}

	if cfg.Seed.DemoData {
		if err := createDemoHierarchy(ctx, db); err != nil {
			return err
		}
	}

	return nil
}

func createAdminUser(ctx context.Context, db *pgxpool.Pool, username, password string) error {
	if username == "" || password == "" {
		logger.Warn().Msg("Admin seed credentials not configured, skipping admin creation")
		return nil
	}

	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	sql, args, err := sb.Insert("users").
		Columns("username", "password_hash", "role").
		Values(username, hash, "ADMIN").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build admin insert: %w", err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info().Str("username", username).Msg("Default admin account created")
	return nil
}

// createDemoHierarchy inserts a minimal campus tree so a fresh install
// has something to click through
func createDemoHierarchy(ctx context.Context, db *pgxpool.Pool) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM campuses`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count campuses: %w", err)
	}
	if count > 0 {
		return nil
	}

	var campusID int64
	err := db.QueryRow(ctx, `INSERT INTO campuses (name) VALUES ($1) RETURNING id`, "Main Campus").Scan(&campusID)
	if err != nil {
		return fmt.Errorf("failed to seed campus: %w", err)
	}

	var blockID int64
	err = db.QueryRow(ctx, `INSERT INTO blocks (name, campus_id) VALUES ($1, $2) RETURNING id`, "Block A", campusID).Scan(&blockID)
	if err != nil {
		return fmt.Errorf("failed to seed block: %w", err)
	}

	var buildingID int64
	err = db.QueryRow(ctx, `INSERT INTO buildings (name, block_id) VALUES ($1, $2) RETURNING id`, "Building 1", blockID).Scan(&buildingID)
	if err != nil {
		return fmt.Errorf("failed to seed building: %w", err)
	}

	if _, err := db.Exec(ctx, `INSERT INTO floors (floor_no, name, building_id) VALUES ($1, $2, $3)`, 1, "Floor 1", buildingID); err != nil {
		return fmt.Errorf("failed to seed floor: %w", err)
	}

	rooms := []struct {
		roomNo   int64
		roomType string
	}{
		{101, "Office"},
		{102, "Office"},
		{103, "Lab"},
	}
	for _, room := range rooms {
		_, err := db.Exec(ctx,
			`INSERT INTO rooms (room_no, location_code, room_type, occupied, floor_no) VALUES ($1, $2, $3, FALSE, $4)`,
			room.roomNo, "MA-A1", room.roomType, 1)
		if err != nil {
			return fmt.Errorf("failed to seed room %d: %w", room.roomNo, err)
		}
	}

	if _, err := db.Exec(ctx, `INSERT INTO departments (name) VALUES ($1)`, "Computer Science"); err != nil {
		return fmt.Errorf("failed to seed department: %w", err)
	}

	logger.Info().Msg("Demo hierarchy seeded")
	return nil
}
