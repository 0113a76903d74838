package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"car_rental/internal/domain/entities"
	"car_rental/internal/domain/events"
	"car_rental/internal/domain/fleet"
	"car_rental/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultHistoryLimit = 50

// TrackingResult reports the effect of one location update: the stored
// sample, the geofence measurement, and whether the update flipped the
// vehicle's lifecycle state.
type TrackingResult struct {
	Sample        entities.LocationSample
	DistanceKm    float64
	OutOfRange    bool
	StatusChanged bool
	NewStatus     entities.VehicleStatus
}

// ITrackingUseCase exposes GPS tracking operations.

type ITrackingUseCase interface {
	UpdateLocation(ctx context.Context, vehicleID string, lat, lng float64) (TrackingResult, error)
	History(ctx context.Context, vehicleID string, limit int) ([]entities.LocationSample, error)
	OutOfRange(ctx context.Context) ([]entities.Vehicle, error)
}

type TrackingUseCase struct {
	vehicles  interfaces.IVehicleRepository
	locations interfaces.ILocationRepository
	bus       *events.Bus
	maxKm     float64
	log       logrus.FieldLogger
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(vehicles interfaces.IVehicleRepository, locations interfaces.ILocationRepository, bus *events.Bus, maxKm float64, log logrus.FieldLogger) *TrackingUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &TrackingUseCase{vehicles: vehicles, locations: locations, bus: bus, maxKm: maxKm, log: log}
}

// UpdateLocation ingests a live GPS reading: it persists the vehicle's
// current position, appends to the tracking history, and fires the
// geofence transition when the reading crosses the boundary.
//
// Both crossings are guarded by conditional status updates, so repeated
// "still out of range" (or "still in range") readings, and concurrent
// updates for the same vehicle, produce at most one transition and one
// event per crossing.
func (u *TrackingUseCase) UpdateLocation(ctx context.Context, vehicleID string, lat, lng float64) (TrackingResult, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return TrackingResult{}, ErrInvalidVehicleID
	}

	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return TrackingResult{}, err
	}
	if v.ID == "" {
		return TrackingResult{}, ErrVehicleNotFound
	}

	if _, err := u.vehicles.UpdateLocation(ctx, v.ID, lat, lng); err != nil {
		return TrackingResult{}, err
	}

	point := entities.GeoPoint{Latitude: lat, Longitude: lng}
	result := TrackingResult{NewStatus: v.Status}

	geo, err := fleet.EvaluateGeofence(v.AnchorLocation, &point, u.maxKm)
	switch {
	case errors.Is(err, fleet.ErrGeofenceUnavailable):
		// No anchor recorded: the vehicle can never be flagged out of
		// range. Informational only.
		u.log.WithField("vehicle_id", v.ID).Info("geofence unavailable, skipping range check")
	case err != nil:
		return TrackingResult{}, err
	default:
		result.DistanceKm = geo.DistanceKm
		result.OutOfRange = geo.ExceedsLimit

		switch {
		case geo.ExceedsLimit && v.Status != entities.VehicleStatusOutOfRange:
			result.StatusChanged, result.NewStatus = u.markOutOfRange(ctx, v, geo)
		case !geo.ExceedsLimit && v.Status == entities.VehicleStatusOutOfRange:
			result.StatusChanged, result.NewStatus = u.returnToRange(ctx, v)
		}
	}

	sample := entities.LocationSample{
		ID:         uuid.NewString(),
		VehicleID:  v.ID,
		Latitude:   lat,
		Longitude:  lng,
		OutOfRange: result.OutOfRange,
		CapturedAt: time.Now().UTC(),
	}
	stored, err := u.locations.Append(ctx, sample)
	if err != nil {
		return TrackingResult{}, err
	}
	result.Sample = stored

	return result, nil
}

// markOutOfRange runs the out-crossing: the vehicle's current state is
// recorded as the prior operational state and the transition plus the
// alert fire exactly once, on whichever update wins the conditional
// write.
func (u *TrackingUseCase) markOutOfRange(ctx context.Context, v entities.Vehicle, geo fleet.GeofenceResult) (bool, entities.VehicleStatus) {
	if _, err := fleet.Apply(v.Status, fleet.ActionWentOutOfRange); err != nil {
		u.log.WithField("vehicle_id", v.ID).Warnf("out-of-range transition rejected: %v", err)
		return false, v.Status
	}

	updated, ok, err := u.vehicles.MarkOutOfRange(ctx, v.ID, v.Status)
	if err != nil {
		u.log.WithField("vehicle_id", v.ID).Errorf("mark out of range failed: %v", err)
		return false, v.Status
	}
	if !ok {
		// Lost the race against another update; that writer owns the event.
		return false, v.Status
	}

	u.bus.Publish(events.KindCarOutOfRange, map[string]any{
		"vehicle_id":    v.ID,
		"license_plate": v.LicensePlate,
		"model":         v.Model,
		"category":      string(v.Category),
		"tracker_type":  v.TrackerType,
		"distance_km":   geo.DistanceKm,
		"max_allowed":   u.maxKm,
	})
	return true, updated.Status
}

// returnToRange runs the return crossing, restoring the operational
// state the vehicle was in before it drifted out.
func (u *TrackingUseCase) returnToRange(ctx context.Context, v entities.Vehicle) (bool, entities.VehicleStatus) {
	target := fleet.ReturnTarget(v.PriorStatus)

	updated, ok, err := u.vehicles.ReturnToRange(ctx, v.ID, target)
	if err != nil {
		u.log.WithField("vehicle_id", v.ID).Errorf("return to range failed: %v", err)
		return false, v.Status
	}
	if !ok {
		return false, v.Status
	}

	u.bus.Publish(events.KindCarReturnedToRange, map[string]any{
		"vehicle_id":    v.ID,
		"license_plate": v.LicensePlate,
		"model":         v.Model,
		"new_status":    string(updated.Status),
	})
	return true, updated.Status
}

func (u *TrackingUseCase) History(ctx context.Context, vehicleID string, limit int) ([]entities.LocationSample, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return u.locations.ListByVehicle(ctx, vehicleID, limit)
}

func (u *TrackingUseCase) OutOfRange(ctx context.Context) ([]entities.Vehicle, error) {
	return u.vehicles.List(ctx, entities.VehicleStatusOutOfRange, "")
}
