package entities

import "time"

// LocationSample is one GPS reading in a vehicle's append-only
// tracking history. Samples are never mutated after creation.
//
// Storage model (DynamoDB):
//   - PK: vehicle_id
//   - SK: captured_at (RFC3339Nano, sorts chronologically)
type LocationSample struct {
	ID         string    `json:"id"`
	VehicleID  string    `json:"vehicle_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	OutOfRange bool      `json:"out_of_range"`
	CapturedAt time.Time `json:"captured_at"`
}
