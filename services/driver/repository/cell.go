package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/arkanhadi/kurir/internal/pkg/constants"
	"github.com/arkanhadi/kurir/internal/pkg/database"
	"github.com/arkanhadi/kurir/internal/pkg/logger"
	"github.com/arkanhadi/kurir/internal/pkg/models"
	"github.com/arkanhadi/kurir/internal/utils"
	"github.com/arkanhadi/kurir/services/driver"
)

// cellRepo maintains the spatial bucket index: per-cell membership hashes of
// driver_id -> last location, plus a per-driver back-reference to the cell it
// was last placed in. Membership is a cached, best-effort projection; the
// back-reference is only a lookup aid for removals.
type cellRepo struct {
	redisClient *database.RedisClient
	precision   uint
	cacheTTL    time.Duration
	neighbors   bool
}

// NewCellRepository creates a new spatial cell repository
func NewCellRepository(redisClient *database.RedisClient, cfg models.CellConfig) driver.CellRepo {
	return &cellRepo{
		redisClient: redisClient,
		precision:   cfg.Precision,
		cacheTTL:    time.Duration(cfg.CacheTTLSeconds) * time.Second,
		neighbors:   cfg.SearchNeighbors,
	}
}

// CellID computes the cell containing a location at the configured precision
func (r *cellRepo) CellID(location models.GeoLocation) string {
	return utils.CellID(utils.GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}, r.precision)
}

// GetLastCell reads the cached driver -> cell back-reference. Cache failures
// are swallowed: the lookup is advisory and "unknown" is an acceptable
// answer.
func (r *cellRepo) GetLastCell(ctx context.Context, driverID string) string {
	key := fmt.Sprintf(constants.KeyDriverLastCell, driverID)

	cellID, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("failed to read last cell for driver",
				logger.String("driver_id", driverID),
				logger.ErrorField(err),
			)
		}
		return ""
	}

	return cellID
}

// SetLastCell caches the back-reference for the cell containing location
func (r *cellRepo) SetLastCell(ctx context.Context, driverID string, location models.GeoLocation) error {
	key := fmt.Sprintf(constants.KeyDriverLastCell, driverID)

	if err := r.redisClient.Set(ctx, key, r.CellID(location), r.cacheTTL); err != nil {
		return fmt.Errorf("failed to store last cell: %w", err)
	}

	return nil
}

// AddToCell upserts the driver into the membership map of the cell containing
// location. The cell hash carries a TTL so abandoned cells eventually expire.
func (r *cellRepo) AddToCell(ctx context.Context, driverID string, location models.GeoLocation) error {
	cellID := r.CellID(location)
	key := fmt.Sprintf(constants.KeyCellDrivers, cellID)

	data, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	if err := r.redisClient.HSet(ctx, key, driverID, data); err != nil {
		return fmt.Errorf("failed to add driver to cell: %w", err)
	}

	if err := r.redisClient.Expire(ctx, key, r.cacheTTL); err != nil {
		return fmt.Errorf("failed to set cell TTL: %w", err)
	}

	return nil
}

// RemoveFromCell deletes the driver from a cell's membership map
func (r *cellRepo) RemoveFromCell(ctx context.Context, driverID string, cellID string) error {
	key := fmt.Sprintf(constants.KeyCellDrivers, cellID)

	if err := r.redisClient.HDel(ctx, key, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from cell: %w", err)
	}

	return nil
}

// Invalidate removes the driver from its last known cell and clears the
// back-reference. A missed invalidation leaves a ghost membership until the
// cell hash expires on its own.
func (r *cellRepo) Invalidate(ctx context.Context, driverID string) error {
	if cellID := r.GetLastCell(ctx, driverID); cellID != "" {
		if err := r.RemoveFromCell(ctx, driverID, cellID); err != nil {
			return err
		}
	}

	key := fmt.Sprintf(constants.KeyDriverLastCell, driverID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear last cell: %w", err)
	}

	return nil
}

// Members returns the drivers currently assigned to a cell. Entries that fail
// to decode are skipped rather than failing the whole read.
func (r *cellRepo) Members(ctx context.Context, cellID string) (map[string]models.GeoLocation, error) {
	key := fmt.Sprintf(constants.KeyCellDrivers, cellID)

	data, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get cell members: %w", err)
	}

	members := make(map[string]models.GeoLocation, len(data))
	for driverID, raw := range data {
		var location models.GeoLocation
		if err := json.Unmarshal([]byte(raw), &location); err != nil {
			logger.Warn("skipping corrupt cell member entry",
				logger.String("cell_id", cellID),
				logger.String("driver_id", driverID),
				logger.ErrorField(err),
			)
			continue
		}
		members[driverID] = location
	}

	return members, nil
}

// MembersNear returns the membership of the cell containing the point,
// expanded to the eight neighboring cells when neighbor search is enabled.
func (r *cellRepo) MembersNear(ctx context.Context, latitude, longitude float64) (map[string]models.GeoLocation, error) {
	cellID := utils.CellID(utils.GeoPoint{Latitude: latitude, Longitude: longitude}, r.precision)

	cells := []string{cellID}
	if r.neighbors {
		cells = append(cells, utils.CellNeighbors(cellID)...)
	}

	members := make(map[string]models.GeoLocation)
	for _, id := range cells {
		cellMembers, err := r.Members(ctx, id)
		if err != nil {
			return nil, err
		}
		for driverID, location := range cellMembers {
			members[driverID] = location
		}
	}

	return members, nil
}
