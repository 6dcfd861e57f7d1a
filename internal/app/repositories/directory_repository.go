package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
	"github.com/okanc/campusspace/internal/pkg/dberrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// DirectoryRepository serves the hierarchy lookups that populate the UI's
// cascading selectors, plus the administrative writes that grow the
// hierarchy. List methods return an empty slice when the parent has no
// children or does not exist; absence of children is not a failure.
type DirectoryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDirectoryRepository creates a new DirectoryRepository
func NewDirectoryRepository(db *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListCampuses retrieves all campuses ordered by name
func (r *DirectoryRepository) ListCampuses(ctx context.Context) ([]*models.Campus, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("campuses").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list campuses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying campuses")
		return nil, fmt.Errorf("error querying campuses: %w", err)
	}
	defer rows.Close()

	campuses := []*models.Campus{}
	for rows.Next() {
		campus := &models.Campus{}
		if err := rows.Scan(&campus.ID, &campus.Name); err != nil {
			return nil, fmt.Errorf("error scanning campus row: %w", err)
		}
		campuses = append(campuses, campus)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campus rows: %w", err)
	}

	return campuses, nil
}

// ListBlocks retrieves the blocks of a campus ordered by name
func (r *DirectoryRepository) ListBlocks(ctx context.Context, campusID int64) ([]*models.Block, error) {
	sql, args, err := r.sb.Select("id", "name", "campus_id").
		From("blocks").
		Where(squirrel.Eq{"campus_id": campusID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list blocks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("campusID", campusID).Msg("Error querying blocks")
		return nil, fmt.Errorf("error querying blocks: %w", err)
	}
	defer rows.Close()

	blocks := []*models.Block{}
	for rows.Next() {
		block := &models.Block{}
		if err := rows.Scan(&block.ID, &block.Name, &block.CampusID); err != nil {
			return nil, fmt.Errorf("error scanning block row: %w", err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating block rows: %w", err)
	}

	return blocks, nil
}

// ListBuildings retrieves the buildings of a block ordered by name
func (r *DirectoryRepository) ListBuildings(ctx context.Context, blockID int64) ([]*models.Building, error) {
	sql, args, err := r.sb.Select("id", "name", "block_id").
		From("buildings").
		Where(squirrel.Eq{"block_id": blockID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list buildings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("blockID", blockID).Msg("Error querying buildings")
		return nil, fmt.Errorf("error querying buildings: %w", err)
	}
	defer rows.Close()

	buildings := []*models.Building{}
	for rows.Next() {
		building := &models.Building{}
		if err := rows.Scan(&building.ID, &building.Name, &building.BlockID); err != nil {
			return nil, fmt.Errorf("error scanning building row: %w", err)
		}
		buildings = append(buildings, building)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating building rows: %w", err)
	}

	return buildings, nil
}

// ListFloors retrieves the floors of a building ordered by floor number
func (r *DirectoryRepository) ListFloors(ctx context.Context, buildingID int64) ([]*models.Floor, error) {
	sql, args, err := r.sb.Select("floor_no", "name", "building_id").
		From("floors").
		Where(squirrel.Eq{"building_id": buildingID}).
		OrderBy("floor_no ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list floors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("buildingID", buildingID).Msg("Error querying floors")
		return nil, fmt.Errorf("error querying floors: %w", err)
	}
	defer rows.Close()

	floors := []*models.Floor{}
	for rows.Next() {
		floor := &models.Floor{}
		if err := rows.Scan(&floor.FloorNo, &floor.Name, &floor.BuildingID); err != nil {
			return nil, fmt.Errorf("error scanning floor row: %w", err)
		}
		floors = append(floors, floor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating floor rows: %w", err)
	}

	return floors, nil
}

// GetFloorChain resolves a floor to its full ancestor names. Inner joins
// mean a dangling ancestor link surfaces as not found rather than a
// partial chain.
func (r *DirectoryRepository) GetFloorChain(ctx context.Context, floorNo int64) (*models.FloorChain, error) {
	sql, args, err := r.sb.Select("c.name", "bl.name", "b.name", "f.name").
		From("floors f").
		Join("buildings b ON f.building_id = b.id").
		Join("blocks bl ON b.block_id = bl.id").
		Join("campuses c ON bl.campus_id = c.id").
		Where(squirrel.Eq{"f.floor_no": floorNo}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build floor chain query: %w", err)
	}

	chain := &models.FloorChain{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&chain.CampusName,
		&chain.BlockName,
		&chain.BuildingName,
		&chain.FloorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFloorNotFound
		}
		logger.Error().Err(err).Int64("floorNo", floorNo).Msg("Error resolving floor chain")
		return nil, fmt.Errorf("error resolving floor chain: %w", err)
	}

	return chain, nil
}

// CreateCampus creates a new campus
func (r *DirectoryRepository) CreateCampus(ctx context.Context, campus *models.Campus) error {
	sql, args, err := r.sb.Insert("campuses").
		Columns("name").
		Values(campus.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create campus query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&campus.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Msg("Error creating campus")
		return fmt.Errorf("error creating campus: %w", err)
	}

	return nil
}

// CreateBlock creates a new block under a campus
func (r *DirectoryRepository) CreateBlock(ctx context.Context, block *models.Block) error {
	sql, args, err := r.sb.Insert("blocks").
		Columns("name", "campus_id").
		Values(block.Name, block.CampusID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create block query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&block.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCampusNotFound
		}
		logger.Error().Err(err).Msg("Error creating block")
		return fmt.Errorf("error creating block: %w", err)
	}

	return nil
}

// CreateBuilding creates a new building under a block
func (r *DirectoryRepository) CreateBuilding(ctx context.Context, building *models.Building) error {
	sql, args, err := r.sb.Insert("buildings").
		Columns("name", "block_id").
		Values(building.Name, building.BlockID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create building query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&building.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBlockNotFound
		}
		logger.Error().Err(err).Msg("Error creating building")
		return fmt.Errorf("error creating building: %w", err)
	}

	return nil
}

// CreateFloor creates a new floor under a building
func (r *DirectoryRepository) CreateFloor(ctx context.Context, floor *models.Floor) error {
	sql, args, err := r.sb.Insert("floors").
		Columns("floor_no", "name", "building_id").
		Values(floor.FloorNo, floor.Name, floor.BuildingID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create floor query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBuildingNotFound
		}
		logger.Error().Err(err).Msg("Error creating floor")
		return fmt.Errorf("error creating floor: %w", err)
	}

	return nil
}

// hasDependents runs an EXISTS probe against a child table
func (r *DirectoryRepository) hasDependents(ctx context.Context, table, column string, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From(table).
		Where(squirrel.Eq{column: id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build dependents query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking dependents in %s: %w", table, err)
	}

	return exists, nil
}

// DeleteCampus deletes a campus; blocked while it still has blocks
func (r *DirectoryRepository) DeleteCampus(ctx context.Context, id int64) error {
	hasBlocks, err := r.hasDependents(ctx, "blocks", "campus_id", id)
	if err != nil {
		return err
	}
	if hasBlocks {
		return apperrors.ErrHasDependents
	}

	return r.deleteByID(ctx, "campuses", "id", id, apperrors.ErrCampusNotFound)
}

// DeleteBlock deletes a block; blocked while it still has buildings
func (r *DirectoryRepository) DeleteBlock(ctx context.Context, id int64) error {
	hasBuildings, err := r.hasDependents(ctx, "buildings", "block_id", id)
	if err != nil {
		return err
	}
	if hasBuildings {
		return apperrors.ErrHasDependents
	}

	return r.deleteByID(ctx, "blocks", "id", id, apperrors.ErrBlockNotFound)
}

// DeleteBuilding deletes a building; blocked while it still has floors
func (r *DirectoryRepository) DeleteBuilding(ctx context.Context, id int64) error {
	hasFloors, err := r.hasDependents(ctx, "floors", "building_id", id)
	if err != nil {
		return err
	}
	if hasFloors {
		return apperrors.ErrHasDependents
	}

	return r.deleteByID(ctx, "buildings", "id", id, apperrors.ErrBuildingNotFound)
}

// DeleteFloor deletes a floor; blocked while it still has rooms
func (r *DirectoryRepository) DeleteFloor(ctx context.Context, floorNo int64) error {
	hasRooms, err := r.hasDependents(ctx, "rooms", "floor_no", floorNo)
	if err != nil {
		return err
	}
	if hasRooms {
		return apperrors.ErrHasDependents
	}

	return r.deleteByID(ctx, "floors", "floor_no", floorNo, apperrors.ErrFloorNotFound)
}

// deleteByID deletes a single row, mapping zero affected rows to notFound
func (r *DirectoryRepository) deleteByID(ctx context.Context, table, column string, id int64, notFound error) error {
	sql, args, err := r.sb.Delete(table).
		Where(squirrel.Eq{column: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query for %s: %w", table, err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			// Race between the dependents probe and the delete
			return apperrors.ErrHasDependents
		}
		logger.Error().Err(err).Str("table", table).Int64("id", id).Msg("Error deleting row")
		return fmt.Errorf("error deleting from %s: %w", table, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return notFound
	}

	return nil
}
