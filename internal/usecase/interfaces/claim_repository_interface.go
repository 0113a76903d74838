package interfaces

import (
	"context"
	"time"

	"car_rental/internal/domain/entities"
)

// IClaimRepository abstracts DynamoDB persistence for Claim.
//
// Claims are immutable after creation except for the adjudication
// fields (status, handler, processed_at), written once by the chain
// and later overridable by an administrator.

type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	List(ctx context.Context) ([]entities.Claim, error)
	ListByStatus(ctx context.Context, status entities.ClaimStatus) ([]entities.Claim, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]entities.Claim, error)

	// UpdateAdjudication settles the claim only while it is still
	// pending approval. A zero claim with a nil error means another
	// override settled it first.
	UpdateAdjudication(ctx context.Context, id string, status entities.ClaimStatus, handler string, processedAt *time.Time) (entities.Claim, error)
}
