package interfaces

import (
	"context"
	"errors"

	"car_rental/internal/domain/entities"
)

// ErrAccessCodeTaken reports a collision on the unique access-code
// constraint. The caller regenerates the code and retries; uniqueness
// is enforced by the store, not by the generator's randomness.
var ErrAccessCodeTaken = errors.New("access code already taken")

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Create must write the booking and reserve its access code in one
// transaction, returning ErrAccessCodeTaken when the code is already
// held by another booking.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	GetByAccessCode(ctx context.Context, code string) (entities.Booking, error)
	List(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error)

	// UpdateStatus closes the booking only while it is still active. A
	// zero booking with a nil error means another writer closed it
	// first.
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}
