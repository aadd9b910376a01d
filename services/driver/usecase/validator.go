package usecase

import (
	"time"

	"github.com/arkanhadi/kurir/internal/pkg/models"
	"github.com/arkanhadi/kurir/internal/utils"
)

// LocationValidator decides whether a raw position sample is usable.
// Each threshold is configured; the whole predicate can be disabled, in which
// case every sample is accepted.
type LocationValidator struct {
	cfg models.LocationConfig
}

// NewLocationValidator creates a validator from the location config
func NewLocationValidator(cfg models.LocationConfig) *LocationValidator {
	return &LocationValidator{cfg: cfg}
}

// IsValid reports whether the sample passes every configured check. Rejected
// samples are dropped silently by callers, not treated as errors.
func (v *LocationValidator) IsValid(location models.GeoLocation) bool {
	if !v.cfg.ValidationEnabled {
		return true
	}

	return v.validLatitude(location) &&
		v.validLongitude(location) &&
		v.validAccuracy(location) &&
		v.validSpeed(location) &&
		v.validTimestamp(location) &&
		v.validBearing(location) &&
		v.validRegion(location)
}

func (v *LocationValidator) validLatitude(location models.GeoLocation) bool {
	return location.Latitude >= -90 && location.Latitude <= 90
}

func (v *LocationValidator) validLongitude(location models.GeoLocation) bool {
	return location.Longitude >= -180 && location.Longitude <= 180
}

func (v *LocationValidator) validAccuracy(location models.GeoLocation) bool {
	if location.Accuracy == nil {
		return false
	}
	return *location.Accuracy <= v.cfg.AccuracyThresholdM
}

func (v *LocationValidator) validSpeed(location models.GeoLocation) bool {
	if location.Speed == nil {
		return false
	}
	return *location.Speed <= v.cfg.MaxSpeedKmh
}

func (v *LocationValidator) validTimestamp(location models.GeoLocation) bool {
	if location.Timestamp <= 0 {
		return false
	}
	return location.Age(time.Now()) <= time.Duration(v.cfg.MaxTimestampDelayS)*time.Second
}

// Bearing is the one optional reading: absent is fine, present must be a
// legal compass angle.
func (v *LocationValidator) validBearing(location models.GeoLocation) bool {
	if location.Bearing == nil {
		return true
	}
	return *location.Bearing >= 0 && *location.Bearing <= 360
}

func (v *LocationValidator) validRegion(location models.GeoLocation) bool {
	region := utils.RegionFor(utils.GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	})
	return utils.IsKnownRegion(region)
}
