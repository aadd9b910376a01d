package driver

import (
	"context"
	"time"

	"github.com/arkanhadi/kurir/internal/pkg/models"
)

// PresenceRepo defines cache access for driver status and availability
type PresenceRepo interface {
	// Get returns the cached presence for a driver, initializing and caching
	// the offline/available default when no entry exists.
	Get(ctx context.Context, driverID string) (*models.DriverPresence, error)

	// Set persists both status and availability with a refreshed TTL
	Set(ctx context.Context, driverID string, status models.DriverStatus, availability models.DriverAvailability) error

	// SetAvailability persists only the availability field with a refreshed TTL
	SetAvailability(ctx context.Context, driverID string, availability models.DriverAvailability) error
}

// PositionRepo defines cache access for a driver's most recent location
type PositionRepo interface {
	// CacheLast overwrites the most-recent-location entry with a refreshed TTL
	CacheLast(ctx context.Context, driverID string, location models.GeoLocation) error

	// GetLast reads the cached most recent location, returning (nil, nil)
	// when no entry exists.
	GetLast(ctx context.Context, driverID string) (*models.GeoLocation, error)

	// Clear removes the cached most recent location
	Clear(ctx context.Context, driverID string) error
}

// CellRepo defines the spatial bucket index over grid cells
type CellRepo interface {
	// CellID computes the cell containing a location at the configured precision
	CellID(location models.GeoLocation) string

	// GetLastCell reads the cached driver -> cell back-reference. The lookup
	// is advisory: cache failures are swallowed and reported as no cell.
	GetLastCell(ctx context.Context, driverID string) string

	// SetLastCell caches the back-reference for the cell containing location
	SetLastCell(ctx context.Context, driverID string, location models.GeoLocation) error

	// AddToCell upserts the driver into the membership map of the cell
	// containing location
	AddToCell(ctx context.Context, driverID string, location models.GeoLocation) error

	// RemoveFromCell deletes the driver from a cell's membership map
	RemoveFromCell(ctx context.Context, driverID string, cellID string) error

	// Invalidate removes the driver from its last known cell and clears the
	// back-reference. This is the only path by which a driver leaves a cell.
	Invalidate(ctx context.Context, driverID string) error

	// Members returns the drivers currently assigned to a cell with their
	// last locations
	Members(ctx context.Context, cellID string) (map[string]models.GeoLocation, error)

	// MembersNear returns the membership of the cell containing the point,
	// expanded to the neighboring cells when neighbor search is enabled.
	MembersNear(ctx context.Context, latitude, longitude float64) (map[string]models.GeoLocation, error)
}

// HistoryRepo defines durable, append-only storage of position records
type HistoryRepo interface {
	Insert(ctx context.Context, driverID string, locations []models.GeoLocation) error
	GetByTimeRange(ctx context.Context, driverID string, start, end time.Time) ([]models.GeoLocation, error)
}
