package response

import (
	"time"

	"car_rental/internal/domain/entities"
)

type GeoPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type VehicleResponse struct {
	ID              string            `json:"id"`
	LicensePlate    string            `json:"license_plate"`
	Model           string            `json:"model"`
	Category        string            `json:"category"`
	DailyRate       float64           `json:"daily_rate"`
	Status          string            `json:"status"`
	TrackerType     string            `json:"tracker_type"`
	TrackerInterval int               `json:"tracker_interval_s"`
	CurrentLocation *GeoPointResponse `json:"current_location,omitempty"`
	AnchorLocation  *GeoPointResponse `json:"anchor_location,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:              v.ID,
		LicensePlate:    v.LicensePlate,
		Model:           v.Model,
		Category:        string(v.Category),
		DailyRate:       v.DailyRate,
		Status:          string(v.Status),
		TrackerType:     v.TrackerType,
		TrackerInterval: v.TrackerInterval,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	if v.CurrentLocation != nil {
		resp.CurrentLocation = &GeoPointResponse{Latitude: v.CurrentLocation.Latitude, Longitude: v.CurrentLocation.Longitude}
	}
	if v.AnchorLocation != nil {
		resp.AnchorLocation = &GeoPointResponse{Latitude: v.AnchorLocation.Latitude, Longitude: v.AnchorLocation.Longitude}
	}
	return resp
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
