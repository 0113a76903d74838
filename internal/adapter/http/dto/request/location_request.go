package request

// UpdateLocationRequest is one GPS reading from a vehicle tracker.
// Pointers distinguish a missing coordinate from a legitimate 0.0
// (the equator and the prime meridian are valid positions).
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}
