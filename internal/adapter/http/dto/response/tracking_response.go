package response

import (
	"time"

	"car_rental/internal/domain/entities"
	"car_rental/internal/usecase"
)

type LocationSampleResponse struct {
	ID         string    `json:"id"`
	VehicleID  string    `json:"vehicle_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	OutOfRange bool      `json:"out_of_range"`
	CapturedAt time.Time `json:"captured_at"`
}

// TrackingResultResponse reports the effect of one location update.
type TrackingResultResponse struct {
	Sample        LocationSampleResponse `json:"sample"`
	DistanceKm    float64                `json:"distance_km"`
	OutOfRange    bool                   `json:"out_of_range"`
	StatusChanged bool                   `json:"status_changed"`
	NewStatus     string                 `json:"new_status"`
}

func FromLocationSample(s entities.LocationSample) LocationSampleResponse {
	return LocationSampleResponse{
		ID:         s.ID,
		VehicleID:  s.VehicleID,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		OutOfRange: s.OutOfRange,
		CapturedAt: s.CapturedAt,
	}
}

func FromLocationSamples(samples []entities.LocationSample) []LocationSampleResponse {
	out := make([]LocationSampleResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, FromLocationSample(s))
	}
	return out
}

func FromTrackingResult(r usecase.TrackingResult) TrackingResultResponse {
	return TrackingResultResponse{
		Sample:        FromLocationSample(r.Sample),
		DistanceKm:    r.DistanceKm,
		OutOfRange:    r.OutOfRange,
		StatusChanged: r.StatusChanged,
		NewStatus:     string(r.NewStatus),
	}
}
