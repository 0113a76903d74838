package request

import (
	"time"

	"car_rental/internal/usecase"
)

// CreateBookingRequest is the booking payload. Dates are RFC3339;
// pricing_strategy is optional and defaults to flat pricing.
type CreateBookingRequest struct {
	VehicleID       string    `json:"vehicle_id" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	CustomerCNIC    string    `json:"customer_cnic" binding:"required"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	PricingStrategy string    `json:"pricing_strategy"`
}

func (r CreateBookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		VehicleID:       r.VehicleID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerCNIC:    r.CustomerCNIC,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		PricingStrategy: r.PricingStrategy,
	}
}

// VerifyAccessRequest carries the keyless-entry token presented at the
// vehicle.
type VerifyAccessRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}
