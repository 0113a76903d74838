package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"car_rental/internal/domain/entities"
	"car_rental/internal/domain/events"
	"car_rental/internal/domain/fleet"
	"car_rental/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrVehicleNotFound       = errors.New("vehicle not found")
	ErrInvalidVehicleID      = errors.New("invalid vehicle id")
	ErrInvalidLicensePlate   = errors.New("invalid license plate")
	ErrDuplicateLicensePlate = errors.New("a vehicle with this license plate already exists")
	ErrInvalidVehicleModel   = errors.New("invalid vehicle model")
	ErrIncompleteAnchor      = errors.New("anchor position requires both latitude and longitude")
)

// AddVehicleInput is the fleet-intake command. The anchor position is
// optional; when present it is written once and never updated.
type AddVehicleInput struct {
	LicensePlate string
	Model        string
	Category     entities.VehicleCategory
	AnchorLat    *float64
	AnchorLng    *float64
}

// FleetStatistics is the per-state census of the fleet.
type FleetStatistics struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Booked      int `json:"booked"`
	InService   int `json:"in_service"`
	Maintenance int `json:"maintenance"`
	OutOfRange  int `json:"out_of_range"`
}

// IFleetUseCase exposes fleet management operations: intake, lookup,
// and the manual lifecycle actions available to back-office staff.

type IFleetUseCase interface {
	AddVehicle(ctx context.Context, in AddVehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context, status entities.VehicleStatus, category entities.VehicleCategory) ([]entities.Vehicle, error)
	CompleteService(ctx context.Context, id string) (entities.Vehicle, error)
	StartMaintenance(ctx context.Context, id string) (entities.Vehicle, error)
	Statistics(ctx context.Context) (FleetStatistics, error)
}

type FleetUseCase struct {
	vehicles      interfaces.IVehicleRepository
	bus           *events.Bus
	rateOverrides map[entities.VehicleCategory]float64
	log           logrus.FieldLogger
}

var _ IFleetUseCase = (*FleetUseCase)(nil)

func NewFleetUseCase(vehicles interfaces.IVehicleRepository, bus *events.Bus, rateOverrides map[entities.VehicleCategory]float64, log logrus.FieldLogger) *FleetUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FleetUseCase{vehicles: vehicles, bus: bus, rateOverrides: rateOverrides, log: log}
}

func (u *FleetUseCase) AddVehicle(ctx context.Context, in AddVehicleInput) (entities.Vehicle, error) {
	in.LicensePlate = strings.TrimSpace(in.LicensePlate)
	in.Model = strings.TrimSpace(in.Model)
	if in.LicensePlate == "" {
		return entities.Vehicle{}, ErrInvalidLicensePlate
	}
	if in.Model == "" {
		return entities.Vehicle{}, ErrInvalidVehicleModel
	}
	if (in.AnchorLat == nil) != (in.AnchorLng == nil) {
		return entities.Vehicle{}, ErrIncompleteAnchor
	}

	profile, err := fleet.ProfileFor(in.Category, u.rateOverrides)
	if err != nil {
		return entities.Vehicle{}, err
	}

	now := time.Now().UTC()
	v := entities.Vehicle{
		ID:              uuid.NewString(),
		LicensePlate:    in.LicensePlate,
		Model:           in.Model,
		Category:        in.Category,
		DailyRate:       profile.DailyRate,
		Status:          entities.VehicleStatusAvailable,
		TrackerType:     profile.TrackerType,
		TrackerInterval: profile.TrackerInterval,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.AnchorLat != nil {
		v.AnchorLocation = &entities.GeoPoint{Latitude: *in.AnchorLat, Longitude: *in.AnchorLng}
	}

	created, err := u.vehicles.Create(ctx, v)
	if errors.Is(err, interfaces.ErrLicensePlateTaken) {
		return entities.Vehicle{}, fmt.Errorf("%w: %s", ErrDuplicateLicensePlate, in.LicensePlate)
	}
	if err != nil {
		return entities.Vehicle{}, err
	}
	u.log.WithFields(logrus.Fields{
		"vehicle_id":    created.ID,
		"license_plate": created.LicensePlate,
		"category":      created.Category,
	}).Info("vehicle added to fleet")
	return created, nil
}

func (u *FleetUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, err := u.vehicles.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *FleetUseCase) List(ctx context.Context, status entities.VehicleStatus, category entities.VehicleCategory) ([]entities.Vehicle, error) {
	return u.vehicles.List(ctx, status, category)
}

func (u *FleetUseCase) CompleteService(ctx context.Context, id string) (entities.Vehicle, error) {
	return u.applyAction(ctx, id, fleet.ActionCompleteService)
}

func (u *FleetUseCase) StartMaintenance(ctx context.Context, id string) (entities.Vehicle, error) {
	return u.applyAction(ctx, id, fleet.ActionStartMaintenance)
}

// applyAction runs a manual lifecycle action through the transition
// table and persists it with a conditional update, so a concurrent
// writer on the same vehicle cannot double-apply it.
func (u *FleetUseCase) applyAction(ctx context.Context, id string, action fleet.Action) (entities.Vehicle, error) {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}

	next, err := fleet.Apply(v.Status, action)
	if err != nil {
		return entities.Vehicle{}, err
	}

	updated, ok, err := u.vehicles.TransitionStatus(ctx, v.ID, v.Status, next)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if !ok {
		return entities.Vehicle{}, fmt.Errorf("%w: vehicle %s changed state concurrently", fleet.ErrInvalidTransition, v.ID)
	}

	u.bus.Publish(events.KindCarStatusChanged, map[string]any{
		"vehicle_id":    updated.ID,
		"license_plate": updated.LicensePlate,
		"new_status":    string(updated.Status),
	})
	return updated, nil
}

func (u *FleetUseCase) Statistics(ctx context.Context) (FleetStatistics, error) {
	all, err := u.vehicles.List(ctx, "", "")
	if err != nil {
		return FleetStatistics{}, err
	}

	stats := FleetStatistics{Total: len(all)}
	for _, v := range all {
		switch v.Status {
		case entities.VehicleStatusAvailable:
			stats.Available++
		case entities.VehicleStatusBooked:
			stats.Booked++
		case entities.VehicleStatusInService:
			stats.InService++
		case entities.VehicleStatusMaintenance:
			stats.Maintenance++
		case entities.VehicleStatusOutOfRange:
			stats.OutOfRange++
		}
	}
	return stats, nil
}
