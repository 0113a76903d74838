package interfaces

import (
	"context"
	"errors"

	"car_rental/internal/domain/entities"
)

// ErrLicensePlateTaken reports an intake collision on the unique
// license-plate constraint: another vehicle already carries the plate.
var ErrLicensePlateTaken = errors.New("license plate already registered")

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// State transitions go through the conditional methods below: each one
// carries the expected current status as a DynamoDB condition, so that
// concurrent writers on the same vehicle are serialized by the store.
// Exactly one of two racing booking attempts observes available and
// wins; the loser's conditional update reports updated=false.

type IVehicleRepository interface {
	// Create must write the vehicle and reserve its license plate in
	// one transaction, returning ErrLicensePlateTaken when the plate is
	// already held by another vehicle.
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context, status entities.VehicleStatus, category entities.VehicleCategory) ([]entities.Vehicle, error)

	// TransitionStatus sets status to `to` only if it currently equals
	// `from`. updated=false means another writer got there first or the
	// vehicle is in a different state.
	TransitionStatus(ctx context.Context, id string, from, to entities.VehicleStatus) (entities.Vehicle, bool, error)

	// MarkOutOfRange records the geofence crossing: status becomes
	// out_of_range and `from` is saved as the prior operational state.
	MarkOutOfRange(ctx context.Context, id string, from entities.VehicleStatus) (entities.Vehicle, bool, error)

	// ReturnToRange restores `to` and clears the prior state, only if
	// the vehicle is currently out_of_range.
	ReturnToRange(ctx context.Context, id string, to entities.VehicleStatus) (entities.Vehicle, bool, error)

	UpdateLocation(ctx context.Context, id string, lat, lng float64) (entities.Vehicle, error)
}
