package request

import "car_rental/internal/usecase"

// FileClaimRequest is the damage-claim payload. booking_id is optional;
// estimated_cost deliberately has no binding tag so a zero cost (and
// even a negative one, which the chain rejects) reaches the use case
// instead of failing request validation.
type FileClaimRequest struct {
	VehicleID     string  `json:"vehicle_id" binding:"required"`
	BookingID     string  `json:"booking_id"`
	DamageType    string  `json:"damage_type" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	EstimatedCost float64 `json:"estimated_cost"`
}

func (r FileClaimRequest) ToInput() usecase.FileClaimInput {
	return usecase.FileClaimInput{
		VehicleID:     r.VehicleID,
		BookingID:     r.BookingID,
		DamageType:    r.DamageType,
		Description:   r.Description,
		EstimatedCost: r.EstimatedCost,
	}
}
