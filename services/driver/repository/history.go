package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arkanhadi/kurir/internal/pkg/database"
	"github.com/arkanhadi/kurir/internal/pkg/models"
	"github.com/arkanhadi/kurir/services/driver"
)

// driverLocationRow mirrors the append-only driver_locations table
type driverLocationRow struct {
	ID        uuid.UUID `db:"id"`
	DriverID  string    `db:"driver_id"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	Timestamp int64     `db:"timestamp"`
	Accuracy  *float64  `db:"accuracy"`
	Speed     *float64  `db:"speed"`
	Bearing   *float64  `db:"bearing"`
	CreatedAt time.Time `db:"created_at"`
}

type historyRepo struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new durable location history repository
func NewHistoryRepository(client *database.PostgresClient) driver.HistoryRepo {
	return &historyRepo{
		db: client.DB,
	}
}

// Insert appends position records for a driver. Records are never updated or
// deleted afterwards.
func (r *historyRepo) Insert(ctx context.Context, driverID string, locations []models.GeoLocation) error {
	if len(locations) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]driverLocationRow, 0, len(locations))
	for _, location := range locations {
		rows = append(rows, driverLocationRow{
			ID:        uuid.New(),
			DriverID:  driverID,
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
			Timestamp: location.Timestamp,
			Accuracy:  location.Accuracy,
			Speed:     location.Speed,
			Bearing:   location.Bearing,
			CreatedAt: now,
		})
	}

	query := `
		INSERT INTO driver_locations (
			id, driver_id, latitude, longitude, timestamp, accuracy, speed, bearing, created_at
		) VALUES (
			:id, :driver_id, :latitude, :longitude, :timestamp, :accuracy, :speed, :bearing, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, rows); err != nil {
		return fmt.Errorf("failed to insert location history: %w", err)
	}

	return nil
}

// GetByTimeRange reads archived position records for a driver, newest first
func (r *historyRepo) GetByTimeRange(ctx context.Context, driverID string, start, end time.Time) ([]models.GeoLocation, error) {
	query := `
		SELECT latitude, longitude, timestamp, accuracy, speed, bearing
		FROM driver_locations
		WHERE driver_id = $1 AND timestamp BETWEEN $2 AND $3
		ORDER BY timestamp DESC
	`

	var rows []driverLocationRow
	if err := r.db.SelectContext(ctx, &rows, query, driverID, start.Unix(), end.Unix()); err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}

	locations := make([]models.GeoLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, models.GeoLocation{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Timestamp: row.Timestamp,
			Accuracy:  row.Accuracy,
			Speed:     row.Speed,
			Bearing:   row.Bearing,
		})
	}

	return locations, nil
}
