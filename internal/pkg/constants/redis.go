package constants

// Redis key formats
const (
	KeyDriverPresence     = "driver:status:%s"   // Format: driver:status:{driver_id}
	KeyDriverLastLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverLastCell     = "driver:cell:%s"     // Format: driver:cell:{driver_id}
	KeyCellDrivers        = "cell:drivers:%s"    // Format: cell:drivers:{cell_id}, hash of driver_id -> location
)

// Redis hash fields
const (
	FieldStatus       = "status"
	FieldAvailability = "availability"
	FieldLatitude     = "lat"
	FieldLongitude    = "lng"
	FieldTimestamp    = "ts"
	FieldAccuracy     = "accuracy"
	FieldSpeed        = "speed"
	FieldBearing      = "bearing"
)
