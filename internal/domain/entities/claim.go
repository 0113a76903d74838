package entities

import "time"

// ClaimStatus is the adjudication disposition of a damage claim.
//
// Domain notes:
//   - The adjudication chain assigns the initial disposition exactly
//     once, at filing time.
//   - An administrator may later override pending_approval claims to
//     approved or rejected.
type ClaimStatus string

const (
	ClaimStatusPendingApproval ClaimStatus = "pending_approval"
	ClaimStatusApproved        ClaimStatus = "approved"
	ClaimStatusRejected        ClaimStatus = "rejected"
	ClaimStatusInsuranceClaim  ClaimStatus = "insurance_claim"
)

// Claim is a damage claim persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Handler records which adjudication band produced the disposition;
// it is empty when the chain's terminal fallback rejected the claim.
type Claim struct {
	ID            string      `json:"id"`
	VehicleID     string      `json:"vehicle_id"`
	BookingID     string      `json:"booking_id,omitempty"`
	DamageType    string      `json:"damage_type"`
	Description   string      `json:"description"`
	EstimatedCost float64     `json:"estimated_cost"`
	Status        ClaimStatus `json:"status"`
	Handler       string      `json:"handler,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	ProcessedAt   *time.Time  `json:"processed_at,omitempty"`
}
