package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/arkanhadi/kurir/internal/pkg/constants"
	"github.com/arkanhadi/kurir/internal/pkg/database"
	"github.com/arkanhadi/kurir/internal/pkg/models"
	"github.com/arkanhadi/kurir/services/driver"
)

type positionRepo struct {
	redisClient *database.RedisClient
	cacheTTL    time.Duration
}

// NewPositionRepository creates a new last-location repository
func NewPositionRepository(redisClient *database.RedisClient, cfg models.LocationConfig) driver.PositionRepo {
	return &positionRepo{
		redisClient: redisClient,
		cacheTTL:    time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

// CacheLast overwrites the driver's most-recent-location entry with a
// refreshed TTL. The key is deleted first so optional fields of a previous
// fix never leak into the new one.
func (r *positionRepo) CacheLast(ctx context.Context, driverID string, location models.GeoLocation) error {
	key := fmt.Sprintf(constants.KeyDriverLastLocation, driverID)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear previous location: %w", err)
	}

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(location.Timestamp, 10),
	}
	if location.Accuracy != nil {
		fields[constants.FieldAccuracy] = strconv.FormatFloat(*location.Accuracy, 'f', -1, 64)
	}
	if location.Speed != nil {
		fields[constants.FieldSpeed] = strconv.FormatFloat(*location.Speed, 'f', -1, 64)
	}
	if location.Bearing != nil {
		fields[constants.FieldBearing] = strconv.FormatFloat(*location.Bearing, 'f', -1, 64)
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store last location: %w", err)
	}

	if err := r.redisClient.Expire(ctx, key, r.cacheTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	return nil
}

// GetLast reads the cached most recent location, returning (nil, nil) when
// no entry exists
func (r *positionRepo) GetLast(ctx context.Context, driverID string) (*models.GeoLocation, error) {
	key := fmt.Sprintf(constants.KeyDriverLastLocation, driverID)

	data, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get last location: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return parseLocationFields(data)
}

// Clear removes the cached most recent location
func (r *positionRepo) Clear(ctx context.Context, driverID string) error {
	key := fmt.Sprintf(constants.KeyDriverLastLocation, driverID)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear last location: %w", err)
	}

	return nil
}

func parseLocationFields(data map[string]string) (*models.GeoLocation, error) {
	lat, err := strconv.ParseFloat(data[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(data[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	ts, err := strconv.ParseInt(data[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	location := &models.GeoLocation{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: ts,
	}

	for field, dst := range map[string]**float64{
		constants.FieldAccuracy: &location.Accuracy,
		constants.FieldSpeed:    &location.Speed,
		constants.FieldBearing:  &location.Bearing,
	} {
		if raw, ok := data[field]; ok {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", field, err)
			}
			*dst = &value
		}
	}

	return location, nil
}
