package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"car_rental/internal/domain/claims"
	"car_rental/internal/domain/entities"
	"car_rental/internal/domain/events"
	"car_rental/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrClaimNotFound     = errors.New("claim not found")
	ErrInvalidClaimID    = errors.New("invalid claim id")
	ErrInvalidClaimInput = errors.New("invalid claim details")
	ErrClaimNotPending   = errors.New("claim is not pending approval")
)

// FileClaimInput is the damage-claim command. BookingID is optional;
// walk-in damage reports have no associated booking.
type FileClaimInput struct {
	VehicleID     string
	BookingID     string
	DamageType    string
	Description   string
	EstimatedCost float64
}

// ClaimResult pairs the persisted claim with the chain's decision.
// Unclassified marks the defensive fallback (cost outside every band):
// the claim is still stored, carrying the rejection disposition.
type ClaimResult struct {
	Claim        entities.Claim
	Decision     claims.Decision
	Unclassified bool
}

// IClaimUseCase exposes damage-claim operations: filing through the
// adjudication chain and the administrator overrides.

type IClaimUseCase interface {
	File(ctx context.Context, in FileClaimInput) (ClaimResult, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	List(ctx context.Context) ([]entities.Claim, error)
	ListPending(ctx context.Context) ([]entities.Claim, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]entities.Claim, error)
	Approve(ctx context.Context, id string) (entities.Claim, error)
	Reject(ctx context.Context, id string) (entities.Claim, error)
}

type ClaimUseCase struct {
	claims   interfaces.IClaimRepository
	vehicles interfaces.IVehicleRepository
	bus      *events.Bus
	log      logrus.FieldLogger
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(claimRepo interfaces.IClaimRepository, vehicles interfaces.IVehicleRepository, bus *events.Bus, log logrus.FieldLogger) *ClaimUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ClaimUseCase{claims: claimRepo, vehicles: vehicles, bus: bus, log: log}
}

// File runs a new claim through the adjudication chain and persists
// the resulting disposition. The chain itself makes no writes; the
// decision it returns is stored here, exactly once.
func (u *ClaimUseCase) File(ctx context.Context, in FileClaimInput) (ClaimResult, error) {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.BookingID = strings.TrimSpace(in.BookingID)
	in.DamageType = strings.TrimSpace(in.DamageType)
	in.Description = strings.TrimSpace(in.Description)

	if in.VehicleID == "" {
		return ClaimResult{}, ErrInvalidVehicleID
	}
	if in.DamageType == "" || in.Description == "" {
		return ClaimResult{}, ErrInvalidClaimInput
	}

	v, err := u.vehicles.GetByID(ctx, in.VehicleID)
	if err != nil {
		return ClaimResult{}, err
	}
	if v.ID == "" {
		return ClaimResult{}, ErrVehicleNotFound
	}

	decision, adjErr := claims.Adjudicate(in.EstimatedCost)
	unclassified := errors.Is(adjErr, claims.ErrCostUnclassified)
	if unclassified {
		u.log.WithFields(logrus.Fields{
			"vehicle_id":     v.ID,
			"estimated_cost": in.EstimatedCost,
		}).Warn("claim cost unclassified, storing with rejection disposition")
	}

	now := time.Now().UTC()
	c := entities.Claim{
		ID:            uuid.NewString(),
		VehicleID:     in.VehicleID,
		BookingID:     in.BookingID,
		DamageType:    in.DamageType,
		Description:   in.Description,
		EstimatedCost: in.EstimatedCost,
		Status:        decision.Status,
		Handler:       decision.Handler,
		CreatedAt:     now,
	}
	// Terminal dispositions are stamped at filing time; pending claims
	// get their timestamp from the admin override.
	if decision.Status != entities.ClaimStatusPendingApproval {
		t := now
		c.ProcessedAt = &t
	}

	created, err := u.claims.Create(ctx, c)
	if err != nil {
		return ClaimResult{}, err
	}

	u.bus.Publish(events.KindDamageClaimFiled, map[string]any{
		"claim_id":       created.ID,
		"vehicle_id":     v.ID,
		"license_plate":  v.LicensePlate,
		"estimated_cost": created.EstimatedCost,
		"status":         string(created.Status),
		"handler":        created.Handler,
	})

	return ClaimResult{Claim: created, Decision: decision, Unclassified: unclassified}, nil
}

func (u *ClaimUseCase) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Claim{}, ErrInvalidClaimID
	}
	c, err := u.claims.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.ID == "" {
		return entities.Claim{}, ErrClaimNotFound
	}
	return c, nil
}

func (u *ClaimUseCase) List(ctx context.Context) ([]entities.Claim, error) {
	return u.claims.List(ctx)
}

func (u *ClaimUseCase) ListPending(ctx context.Context) ([]entities.Claim, error) {
	return u.claims.ListByStatus(ctx, entities.ClaimStatusPendingApproval)
}

func (u *ClaimUseCase) ListByVehicle(ctx context.Context, vehicleID string) ([]entities.Claim, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}
	return u.claims.ListByVehicle(ctx, vehicleID)
}

func (u *ClaimUseCase) Approve(ctx context.Context, id string) (entities.Claim, error) {
	return u.override(ctx, id, entities.ClaimStatusApproved)
}

func (u *ClaimUseCase) Reject(ctx context.Context, id string) (entities.Claim, error) {
	return u.override(ctx, id, entities.ClaimStatusRejected)
}

// override is the administrator path: only claims the chain parked in
// pending_approval can be approved or rejected manually.
func (u *ClaimUseCase) override(ctx context.Context, id string, status entities.ClaimStatus) (entities.Claim, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.Status != entities.ClaimStatusPendingApproval {
		return entities.Claim{}, fmt.Errorf("%w: status is %s", ErrClaimNotPending, c.Status)
	}

	now := time.Now().UTC()
	updated, err := u.claims.UpdateAdjudication(ctx, c.ID, status, c.Handler, &now)
	if err != nil {
		return entities.Claim{}, err
	}
	// The store only settles a still-pending claim; a zero claim means
	// another administrator's override won the race.
	if updated.ID == "" {
		return entities.Claim{}, fmt.Errorf("%w: settled concurrently", ErrClaimNotPending)
	}
	return updated, nil
}
