package interfaces

import (
	"context"

	"car_rental/internal/domain/entities"
)

// ILocationRepository abstracts DynamoDB persistence for the
// append-only GPS tracking history.

type ILocationRepository interface {
	Append(ctx context.Context, s entities.LocationSample) (entities.LocationSample, error)
	ListByVehicle(ctx context.Context, vehicleID string, limit int) ([]entities.LocationSample, error)
}
