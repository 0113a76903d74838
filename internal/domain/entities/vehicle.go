package entities

import "time"

// VehicleStatus is the lifecycle state of a fleet vehicle.
//
// Domain notes:
//   - A vehicle is always in exactly one of the five states below.
//   - out_of_range is never set by user action; only the geofence
//     detector can push a vehicle into it.
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusBooked      VehicleStatus = "booked"
	VehicleStatusInService   VehicleStatus = "in_service"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusOutOfRange  VehicleStatus = "out_of_range"
)

// VehicleCategory is the closed set of fleet categories. The category
// decides the daily rate and tracker profile assigned at intake.
type VehicleCategory string

const (
	CategoryEconomy VehicleCategory = "economy"
	CategoryLuxury  VehicleCategory = "luxury"
	CategorySUV     VehicleCategory = "suv"
)

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Vehicle is a fleet vehicle persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// AnchorLocation is the rental pickup point used as the geofence
// reference; it is set once at intake and never updated afterwards.
// PriorStatus records the state the vehicle was in when the geofence
// pushed it out of range, so the return crossing can restore it.
type Vehicle struct {
	ID              string          `json:"id"`
	LicensePlate    string          `json:"license_plate"`
	Model           string          `json:"model"`
	Category        VehicleCategory `json:"category"`
	DailyRate       float64         `json:"daily_rate"`
	Status          VehicleStatus   `json:"status"`
	PriorStatus     VehicleStatus   `json:"prior_status,omitempty"`
	TrackerType     string          `json:"tracker_type"`
	TrackerInterval int             `json:"tracker_interval_s"`
	CurrentLocation *GeoPoint       `json:"current_location,omitempty"`
	AnchorLocation  *GeoPoint       `json:"anchor_location,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
