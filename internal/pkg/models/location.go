package models

import "time"

// GeoLocation represents a single GPS fix reported by a driver.
// Timestamp is seconds since epoch; accuracy (meters), speed (km/h) and
// bearing (degrees) are optional and nil when the device did not report them.
type GeoLocation struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Timestamp int64    `json:"timestamp"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Bearing   *float64 `json:"bearing,omitempty"`
}

// Age returns how old the fix is relative to now.
func (l GeoLocation) Age(now time.Time) time.Duration {
	return now.Sub(time.Unix(l.Timestamp, 0))
}

// LocationUpdate represents a location update event published after a
// successful position submission
type LocationUpdate struct {
	DriverID  string      `json:"driver_id"`
	Location  GeoLocation `json:"location"`
	CellID    string      `json:"cell_id"`
	CreatedAt time.Time   `json:"created_at"`
}
