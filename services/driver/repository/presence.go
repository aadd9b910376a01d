package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/arkanhadi/kurir/internal/pkg/constants"
	"github.com/arkanhadi/kurir/internal/pkg/database"
	"github.com/arkanhadi/kurir/internal/pkg/models"
	"github.com/arkanhadi/kurir/services/driver"
)

type presenceRepo struct {
	redisClient *database.RedisClient
	cacheTTL    time.Duration
}

// NewPresenceRepository creates a new driver presence repository
func NewPresenceRepository(redisClient *database.RedisClient, cfg models.PresenceConfig) driver.PresenceRepo {
	return &presenceRepo{
		redisClient: redisClient,
		cacheTTL:    time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

// Get returns the cached presence for a driver. A driver without an entry
// (never seen, or expired) is initialized to offline/available and that
// default is cached before returning. This is the only implicit creation
// path for a driver.
func (r *presenceRepo) Get(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	data, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver presence: %w", err)
	}

	if data[constants.FieldStatus] == "" {
		presence := &models.DriverPresence{
			DriverID:     driverID,
			Status:       models.StatusOffline,
			Availability: models.AvailabilityAvailable,
		}
		if err := r.Set(ctx, driverID, presence.Status, presence.Availability); err != nil {
			return nil, err
		}
		return presence, nil
	}

	return &models.DriverPresence{
		DriverID:     driverID,
		Status:       models.DriverStatus(data[constants.FieldStatus]),
		Availability: models.DriverAvailability(data[constants.FieldAvailability]),
	}, nil
}

// Set persists status and availability together with a refreshed TTL
func (r *presenceRepo) Set(ctx context.Context, driverID string, status models.DriverStatus, availability models.DriverAvailability) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	fields := map[string]interface{}{
		constants.FieldStatus:       string(status),
		constants.FieldAvailability: string(availability),
	}
	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store driver presence: %w", err)
	}

	if err := r.redisClient.Expire(ctx, key, r.cacheTTL); err != nil {
		return fmt.Errorf("failed to set presence TTL: %w", err)
	}

	return nil
}

// SetAvailability persists only the availability field with a refreshed TTL
func (r *presenceRepo) SetAvailability(ctx context.Context, driverID string, availability models.DriverAvailability) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	if err := r.redisClient.HSet(ctx, key, constants.FieldAvailability, string(availability)); err != nil {
		return fmt.Errorf("failed to store driver availability: %w", err)
	}

	if err := r.redisClient.Expire(ctx, key, r.cacheTTL); err != nil {
		return fmt.Errorf("failed to set presence TTL: %w", err)
	}

	return nil
}
