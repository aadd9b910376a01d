package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arkanhadi/kurir/internal/pkg/constants"
	"github.com/arkanhadi/kurir/internal/pkg/models"
	natspkg "github.com/arkanhadi/kurir/internal/pkg/nats"
	"github.com/arkanhadi/kurir/services/driver"
)

type driverGW struct {
	natsClient *natspkg.Client
}

// NewDriverGW creates a new driver event gateway
func NewDriverGW(natsClient *natspkg.Client) driver.DriverGW {
	return &driverGW{
		natsClient: natsClient,
	}
}

// PublishLocationUpdate publishes a location update event to NATS
func (g *driverGW) PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal location update: %w", err)
	}

	return g.natsClient.Publish(constants.SubjectLocationUpdate, data)
}

// PublishStatusChange publishes a driver status change event to NATS
func (g *driverGW) PublishStatusChange(ctx context.Context, change models.StatusChange) error {
	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal status change: %w", err)
	}

	return g.natsClient.Publish(constants.SubjectDriverStatus, data)
}
