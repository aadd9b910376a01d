package driver

import (
	"context"

	"github.com/arkanhadi/kurir/internal/pkg/models"
)

// DriverGW defines the interface for driver event publishing
type DriverGW interface {
	// PublishLocationUpdate publishes a location update event
	PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error

	// PublishStatusChange publishes a driver status change event
	PublishStatusChange(ctx context.Context, change models.StatusChange) error
}
