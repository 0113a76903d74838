package fleet

import (
	"errors"
	"math"

	"car_rental/internal/domain/entities"
)

// ErrGeofenceUnavailable reports that a geofence evaluation was
// attempted without an anchor or live position. Callers treat it as
// "in range, no action"; it is informational, not a failure.
var ErrGeofenceUnavailable = errors.New("geofence evaluation unavailable")

const earthRadiusKm = 6371

// GeofenceResult is the outcome of one evaluation.
type GeofenceResult struct {
	DistanceKm   float64
	ExceedsLimit bool
}

// EvaluateGeofence computes the great-circle distance between a
// vehicle's live position and its rental anchor and classifies it
// against maxKm. Pure and side-effect-free; persistence and state
// transitions are the caller's responsibility.
func EvaluateGeofence(anchor, point *entities.GeoPoint, maxKm float64) (GeofenceResult, error) {
	if anchor == nil || point == nil {
		return GeofenceResult{}, ErrGeofenceUnavailable
	}
	d := haversineKm(anchor.Latitude, anchor.Longitude, point.Latitude, point.Longitude)
	return GeofenceResult{DistanceKm: d, ExceedsLimit: d > maxKm}, nil
}

// haversineKm is the haversine formula on a spherical Earth.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
