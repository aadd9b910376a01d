package driver

import (
	"context"
	"time"

	"github.com/arkanhadi/kurir/internal/pkg/models"
)

// DriverUseCase defines the driver presence and proximity operations
type DriverUseCase interface {
	// SubmitLocations ingests a batch of raw position samples for a driver.
	// An offline driver is implicitly flipped online first, rejoining with a
	// clean position window and availability reset to available.
	SubmitLocations(ctx context.Context, driverID string, locations []models.GeoLocation) error

	// ChangeStatus transitions the driver between online and offline.
	// A no-op when the status is unchanged; otherwise cached position and
	// spatial membership are cleared and availability resets to available.
	ChangeStatus(ctx context.Context, driverID string, status models.DriverStatus) error

	// ChangeAvailability flips the driver between available and occupied.
	// A no-op when unchanged.
	ChangeAvailability(ctx context.Context, driverID string, availability models.DriverAvailability) error

	// GetLastLocation returns the driver's cached most recent position.
	// Returns ErrLocationNotFound when the driver is offline or no position
	// is cached.
	GetLastLocation(ctx context.Context, driverID string) (*models.GeoLocation, error)

	// GetPresence returns the driver's cached presence, defaulting to
	// offline/available on first contact
	GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error)

	// GetNearestAvailableDrivers returns at most maxCount available drivers
	// within radiusM meters of the point, closest first.
	GetNearestAvailableDrivers(ctx context.Context, latitude, longitude float64, radiusM float64, maxCount int) ([]models.NearbyDriver, error)

	// GetLocationHistory reads archived position records for a driver
	GetLocationHistory(ctx context.Context, driverID string, start, end time.Time) ([]models.GeoLocation, error)
}
