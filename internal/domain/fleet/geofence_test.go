package fleet

import (
	"errors"
	"math"
	"testing"

	"car_rental/internal/domain/entities"
)

func TestEvaluateGeofence_SamePointIsZeroDistance(t *testing.T) {
	p := &entities.GeoPoint{Latitude: 33.6844, Longitude: 73.0479}
	res, err := EvaluateGeofence(p, &entities.GeoPoint{Latitude: 33.6844, Longitude: 73.0479}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DistanceKm > 0.001 {
		t.Fatalf("expected ~0 km, got %f", res.DistanceKm)
	}
	if res.ExceedsLimit {
		t.Fatal("same point must not exceed the limit")
	}
}

func TestEvaluateGeofence_OneDegreeLongitudeAtEquator(t *testing.T) {
	anchor := &entities.GeoPoint{Latitude: 0, Longitude: 0}
	point := &entities.GeoPoint{Latitude: 0, Longitude: 1}

	res, err := EvaluateGeofence(anchor, point, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1 degree of longitude at the equator is about 111 km.
	if math.Abs(res.DistanceKm-111.2) > 0.5 {
		t.Fatalf("expected ~111.2 km, got %f", res.DistanceKm)
	}
	if !res.ExceedsLimit {
		t.Fatal("111 km must exceed a 50 km limit")
	}
}

func TestEvaluateGeofence_BoundaryIsInclusive(t *testing.T) {
	anchor := &entities.GeoPoint{Latitude: 0, Longitude: 0}
	point := &entities.GeoPoint{Latitude: 0, Longitude: 0.1}

	res, err := EvaluateGeofence(anchor, point, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExceedsLimit {
		t.Fatalf("%f km within a 50 km limit must not exceed", res.DistanceKm)
	}
}

func TestEvaluateGeofence_MissingPositions(t *testing.T) {
	p := &entities.GeoPoint{Latitude: 1, Longitude: 1}

	if _, err := EvaluateGeofence(nil, p, 50); !errors.Is(err, ErrGeofenceUnavailable) {
		t.Fatalf("expected ErrGeofenceUnavailable, got %v", err)
	}
	if _, err := EvaluateGeofence(p, nil, 50); !errors.Is(err, ErrGeofenceUnavailable) {
		t.Fatalf("expected ErrGeofenceUnavailable, got %v", err)
	}
	if _, err := EvaluateGeofence(nil, nil, 50); !errors.Is(err, ErrGeofenceUnavailable) {
		t.Fatalf("expected ErrGeofenceUnavailable, got %v", err)
	}
}

func TestProfileFor(t *testing.T) {
	p, err := ProfileFor(entities.CategoryEconomy, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DailyRate != 30 || p.TrackerType != "BasicGPS" {
		t.Fatalf("unexpected economy profile: %+v", p)
	}

	p, err = ProfileFor(entities.CategoryLuxury, map[entities.VehicleCategory]float64{entities.CategoryLuxury: 150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DailyRate != 150 {
		t.Fatalf("expected rate override 150, got %f", p.DailyRate)
	}

	if _, err := ProfileFor("truck", nil); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
