package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// CellID snaps a point to its spatial grid cell at the given precision.
// Same inputs always produce the same cell id; a coarser precision means
// larger cells.
func CellID(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// CellNeighbors returns the eight cells adjacent to the given cell
func CellNeighbors(cellID string) []string {
	return geohash.Neighbors(cellID)
}

// DistanceMeters calculates the great-circle distance between two points in
// meters using the Haversine formula
func DistanceMeters(point1, point2 GeoPoint) float64 {
	// Earth's radius in meters
	const earthRadius = 6371000.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
