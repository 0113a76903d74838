package fleet

import (
	"errors"
	"fmt"

	"car_rental/internal/domain/entities"
)

// ErrInvalidTransition reports a lifecycle action attempted from a
// state that forbids it. It is a local, recoverable condition: the
// vehicle's state is never mutated on a rejected action.
var ErrInvalidTransition = errors.New("invalid vehicle status transition")

// Action is a lifecycle event applied to a vehicle.
type Action string

const (
	ActionBook             Action = "book"
	ActionCompleteService  Action = "complete_service"
	ActionStartMaintenance Action = "start_maintenance"
	ActionWentOutOfRange   Action = "went_out_of_range"
	ActionReturnToRange    Action = "returned_to_range"
)

// transitions is the closed transition table. A missing (state, action)
// pair means the action is rejected from that state.
//
// ActionWentOutOfRange is reserved for the geofence detector; it is the
// only way into out_of_range. ActionReturnToRange nominally lands on
// available; callers that recorded a prior operational state resolve the
// real destination through ReturnTarget.
var transitions = map[entities.VehicleStatus]map[Action]entities.VehicleStatus{
	entities.VehicleStatusAvailable: {
		ActionBook:             entities.VehicleStatusBooked,
		ActionStartMaintenance: entities.VehicleStatusMaintenance,
		ActionWentOutOfRange:   entities.VehicleStatusOutOfRange,
	},
	entities.VehicleStatusBooked: {
		ActionCompleteService: entities.VehicleStatusAvailable,
		ActionWentOutOfRange:  entities.VehicleStatusOutOfRange,
	},
	entities.VehicleStatusInService: {
		ActionCompleteService:  entities.VehicleStatusAvailable,
		ActionStartMaintenance: entities.VehicleStatusMaintenance,
		ActionWentOutOfRange:   entities.VehicleStatusOutOfRange,
	},
	entities.VehicleStatusMaintenance: {
		ActionCompleteService: entities.VehicleStatusAvailable,
		ActionWentOutOfRange:  entities.VehicleStatusOutOfRange,
	},
	entities.VehicleStatusOutOfRange: {
		ActionCompleteService: entities.VehicleStatusAvailable,
		ActionReturnToRange:   entities.VehicleStatusAvailable,
	},
}

// Apply resolves the next state for applying action to the current
// state. It never mutates anything; on a rejected combination it returns
// the current state unchanged together with ErrInvalidTransition.
func Apply(current entities.VehicleStatus, action Action) (entities.VehicleStatus, error) {
	allowed, ok := transitions[current]
	if !ok {
		return current, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, current)
	}
	next, ok := allowed[action]
	if !ok {
		return current, fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, action, current)
	}
	return next, nil
}

// CanBook reports whether a vehicle in the given state accepts a new
// booking. Only available vehicles do; this is what guarantees at most
// one active booking per vehicle.
func CanBook(status entities.VehicleStatus) bool {
	_, err := Apply(status, ActionBook)
	return err == nil
}

// ReturnTarget resolves the state a vehicle resumes when it re-enters
// the geofence. The prior operational state recorded at the out-of-range
// crossing wins; a vehicle with no recorded prior state (or a corrupted
// one) falls back to available.
func ReturnTarget(prior entities.VehicleStatus) entities.VehicleStatus {
	switch prior {
	case entities.VehicleStatusAvailable,
		entities.VehicleStatusBooked,
		entities.VehicleStatusInService,
		entities.VehicleStatusMaintenance:
		return prior
	default:
		return entities.VehicleStatusAvailable
	}
}
