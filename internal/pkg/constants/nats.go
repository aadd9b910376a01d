package constants

// NATS subjects
const (
	// Location service
	SubjectLocationUpdate = "location.update"
	SubjectDriverStatus   = "driver.status"
)
