package request

import (
	"car_rental/internal/domain/entities"
	"car_rental/internal/usecase"
)

// AddVehicleRequest is the fleet-intake payload. The anchor pair is
// optional but must be sent together; the use case rejects a half-set
// anchor.
type AddVehicleRequest struct {
	LicensePlate    string   `json:"license_plate" binding:"required"`
	Model           string   `json:"model" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	AnchorLatitude  *float64 `json:"anchor_latitude"`
	AnchorLongitude *float64 `json:"anchor_longitude"`
}

func (r AddVehicleRequest) ToInput() usecase.AddVehicleInput {
	return usecase.AddVehicleInput{
		LicensePlate: r.LicensePlate,
		Model:        r.Model,
		Category:     entities.VehicleCategory(r.Category),
		AnchorLat:    r.AnchorLatitude,
		AnchorLng:    r.AnchorLongitude,
	}
}
