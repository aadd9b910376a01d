package driver

import "errors"

var (
	// ErrLocationNotFound is returned when a driver has no usable cached
	// position, either because it is offline or nothing was ever cached
	ErrLocationNotFound = errors.New("driver location not found")

	// ErrInvalidStatus is returned for a status outside online/offline
	ErrInvalidStatus = errors.New("invalid driver status")

	// ErrInvalidAvailability is returned for an availability outside
	// available/occupied
	ErrInvalidAvailability = errors.New("invalid driver availability")

	// ErrInvalidRadius is returned for a non-positive search radius
	ErrInvalidRadius = errors.New("radius must be positive")

	// ErrInvalidMaxCount is returned for a non-positive result limit
	ErrInvalidMaxCount = errors.New("max count must be positive")

	// ErrInvalidTimeRange is returned when a history query starts after it ends
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)
