package models

import "time"

// DriverStatus indicates whether a driver is reachable
type DriverStatus string

const (
	StatusOnline  DriverStatus = "online"
	StatusOffline DriverStatus = "offline"
)

// DriverAvailability indicates whether an online driver can take work
type DriverAvailability string

const (
	AvailabilityAvailable DriverAvailability = "available"
	AvailabilityOccupied  DriverAvailability = "occupied"
)

// DriverPresence is the cached (status, availability) pair for a driver.
// A driver never seen before defaults to offline/available.
type DriverPresence struct {
	DriverID     string             `json:"driver_id"`
	Status       DriverStatus       `json:"status"`
	Availability DriverAvailability `json:"availability"`
}

// IsOnline reports whether the driver is reachable
func (p DriverPresence) IsOnline() bool {
	return p.Status == StatusOnline
}

// IsAvailable reports whether the driver can accept work right now
func (p DriverPresence) IsAvailable() bool {
	return p.Availability == AvailabilityAvailable && p.IsOnline()
}

// NearbyDriver is a single proximity query result
type NearbyDriver struct {
	DriverID  string  `json:"driver_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  float64 `json:"distance"`
}

// StatusChange represents a driver status change event
type StatusChange struct {
	DriverID     string             `json:"driver_id"`
	Status       DriverStatus       `json:"status"`
	Availability DriverAvailability `json:"availability"`
	CreatedAt    time.Time          `json:"created_at"`
}
