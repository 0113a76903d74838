package response

import (
	"time"

	"car_rental/internal/domain/entities"
)

type ClaimResponse struct {
	ID            string     `json:"id"`
	VehicleID     string     `json:"vehicle_id"`
	BookingID     string     `json:"booking_id,omitempty"`
	DamageType    string     `json:"damage_type"`
	Description   string     `json:"description"`
	EstimatedCost float64    `json:"estimated_cost"`
	Status        string     `json:"status"`
	Handler       string     `json:"handler,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}

func FromClaim(c entities.Claim) ClaimResponse {
	return ClaimResponse{
		ID:            c.ID,
		VehicleID:     c.VehicleID,
		BookingID:     c.BookingID,
		DamageType:    c.DamageType,
		Description:   c.Description,
		EstimatedCost: c.EstimatedCost,
		Status:        string(c.Status),
		Handler:       c.Handler,
		CreatedAt:     c.CreatedAt,
		ProcessedAt:   c.ProcessedAt,
	}
}

func FromClaims(claims []entities.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromClaim(c))
	}
	return out
}
