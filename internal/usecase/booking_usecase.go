package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"car_rental/internal/domain/entities"
	"car_rental/internal/domain/events"
	"car_rental/internal/domain/fleet"
	"car_rental/internal/domain/pricing"
	"car_rental/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidBookingID    = errors.New("invalid booking id")
	ErrInvalidCustomer     = errors.New("invalid customer details")
	ErrInvalidBookingDates = errors.New("end date must be after start date")
	ErrBookingNotActive    = errors.New("booking is not active")
	ErrAccessCodeInvalid   = errors.New("access code not recognized")
)

// accessCodeAttempts bounds the retry loop on access-code collisions.
// The token space makes collisions vanishingly rare; the store's unique
// constraint is what actually guarantees uniqueness.
const accessCodeAttempts = 5

// CreateBookingInput is the booking command. PricingStrategy selects
// one of the registered pricing strategies; empty means flat.
type CreateBookingInput struct {
	VehicleID       string
	CustomerName    string
	CustomerPhone   string
	CustomerCNIC    string
	StartDate       time.Time
	EndDate         time.Time
	PricingStrategy string
}

// BookingResult pairs the stored booking with its price breakdown.
type BookingResult struct {
	Booking entities.Booking
	Price   pricing.Breakdown
}

// AccessGrant is the keyless-entry verification result.
type AccessGrant struct {
	Booking entities.Booking
	Vehicle entities.Vehicle
}

// IBookingUseCase exposes booking operations, including the keyless
// access-code verification used by the entry system.

type IBookingUseCase interface {
	Create(ctx context.Context, in CreateBookingInput) (BookingResult, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error)
	Complete(ctx context.Context, id string) (entities.Booking, error)
	Cancel(ctx context.Context, id string) (entities.Booking, error)
	VerifyAccess(ctx context.Context, code string) (AccessGrant, error)
}

type BookingUseCase struct {
	bookings interfaces.IBookingRepository
	vehicles interfaces.IVehicleRepository
	bus      *events.Bus
	log      logrus.FieldLogger
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(bookings interfaces.IBookingRepository, vehicles interfaces.IVehicleRepository, bus *events.Bus, log logrus.FieldLogger) *BookingUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &BookingUseCase{bookings: bookings, vehicles: vehicles, bus: bus, log: log}
}

// Create books a vehicle. The vehicle must currently be available; the
// claim on it is a conditional available->booked update, so of two
// concurrent attempts exactly one wins and the other is rejected with
// an invalid-transition error.
func (u *BookingUseCase) Create(ctx context.Context, in CreateBookingInput) (BookingResult, error) {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.CustomerCNIC = strings.TrimSpace(in.CustomerCNIC)

	if in.VehicleID == "" {
		return BookingResult{}, ErrInvalidVehicleID
	}
	if in.CustomerName == "" || in.CustomerPhone == "" || in.CustomerCNIC == "" {
		return BookingResult{}, ErrInvalidCustomer
	}
	if !in.EndDate.After(in.StartDate) {
		return BookingResult{}, ErrInvalidBookingDates
	}

	strategyName := in.PricingStrategy
	if strategyName == "" {
		strategyName = pricing.StrategyFlat
	}
	strategy, err := pricing.ForName(strategyName)
	if err != nil {
		return BookingResult{}, err
	}

	v, err := u.vehicles.GetByID(ctx, in.VehicleID)
	if err != nil {
		return BookingResult{}, err
	}
	if v.ID == "" {
		return BookingResult{}, ErrVehicleNotFound
	}
	if !fleet.CanBook(v.Status) {
		return BookingResult{}, fmt.Errorf("%w: vehicle is %s", fleet.ErrInvalidTransition, v.Status)
	}

	breakdown := strategy.Calculate(v.DailyRate, pricing.DurationDays(in.StartDate, in.EndDate))

	// Claim the vehicle first. Persisting the booking afterwards keeps
	// the at-most-one-active-booking invariant even under races.
	_, ok, err := u.vehicles.TransitionStatus(ctx, v.ID, entities.VehicleStatusAvailable, entities.VehicleStatusBooked)
	if err != nil {
		return BookingResult{}, err
	}
	if !ok {
		return BookingResult{}, fmt.Errorf("%w: vehicle was booked concurrently", fleet.ErrInvalidTransition)
	}

	booking, err := u.persistWithFreshAccessCode(ctx, in, breakdown.Total)
	if err != nil {
		// Best-effort release of the vehicle we just claimed.
		if _, _, rbErr := u.vehicles.TransitionStatus(ctx, v.ID, entities.VehicleStatusBooked, entities.VehicleStatusAvailable); rbErr != nil {
			u.log.WithField("vehicle_id", v.ID).Errorf("booking rollback failed: %v", rbErr)
		}
		return BookingResult{}, err
	}

	u.bus.Publish(events.KindCarBooked, map[string]any{
		"vehicle_id":    v.ID,
		"license_plate": v.LicensePlate,
		"booking_id":    booking.ID,
		"customer_name": booking.CustomerName,
	})
	u.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"vehicle_id": v.ID,
		"total":      booking.TotalAmount,
		"strategy":   breakdown.Strategy,
	}).Info("booking created")

	return BookingResult{Booking: booking, Price: breakdown}, nil
}

// persistWithFreshAccessCode writes the booking, regenerating the
// access code while the store reports a collision on its unique
// constraint.
func (u *BookingUseCase) persistWithFreshAccessCode(ctx context.Context, in CreateBookingInput, total float64) (entities.Booking, error) {
	now := time.Now().UTC()
	b := entities.Booking{
		ID:            uuid.NewString(),
		VehicleID:     in.VehicleID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerCNIC:  in.CustomerCNIC,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		TotalAmount:   total,
		Status:        entities.BookingStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for attempt := 0; attempt < accessCodeAttempts; attempt++ {
		code, err := newAccessCode()
		if err != nil {
			return entities.Booking{}, err
		}
		b.AccessCode = code

		created, err := u.bookings.Create(ctx, b)
		if errors.Is(err, interfaces.ErrAccessCodeTaken) {
			u.log.WithField("booking_id", b.ID).Warn("access code collision, regenerating")
			continue
		}
		if err != nil {
			return entities.Booking{}, err
		}
		return created, nil
	}
	return entities.Booking{}, fmt.Errorf("could not allocate a unique access code after %d attempts", accessCodeAttempts)
}

// newAccessCode returns a URL-safe random token.
func newAccessCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) List(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error) {
	return u.bookings.List(ctx, status)
}

func (u *BookingUseCase) Complete(ctx context.Context, id string) (entities.Booking, error) {
	return u.close(ctx, id, entities.BookingStatusCompleted, events.KindBookingCompleted)
}

func (u *BookingUseCase) Cancel(ctx context.Context, id string) (entities.Booking, error) {
	return u.close(ctx, id, entities.BookingStatusCancelled, events.KindBookingCancelled)
}

// close finishes an active booking and returns its vehicle to the
// available state through the transition table.
func (u *BookingUseCase) close(ctx context.Context, id string, status entities.BookingStatus, eventKind string) (entities.Booking, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.Status != entities.BookingStatusActive {
		return entities.Booking{}, fmt.Errorf("%w: status is %s", ErrBookingNotActive, b.Status)
	}

	updated, err := u.bookings.UpdateStatus(ctx, b.ID, status)
	if err != nil {
		return entities.Booking{}, err
	}
	// The store only closes a still-active booking; a zero booking
	// means another Complete/Cancel won the race.
	if updated.ID == "" {
		return entities.Booking{}, fmt.Errorf("%w: closed concurrently", ErrBookingNotActive)
	}

	u.releaseVehicle(ctx, b.VehicleID)

	u.bus.Publish(eventKind, map[string]any{
		"booking_id": updated.ID,
		"vehicle_id": updated.VehicleID,
	})
	return updated, nil
}

// releaseVehicle moves the booking's vehicle back to available. The
// vehicle may be in any state by now (it can have drifted out of
// range); a rejected transition is logged, never surfaced, since the
// booking itself already closed.
func (u *BookingUseCase) releaseVehicle(ctx context.Context, vehicleID string) {
	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil || v.ID == "" {
		u.log.WithField("vehicle_id", vehicleID).Warnf("release: vehicle lookup failed: %v", err)
		return
	}

	next, err := fleet.Apply(v.Status, fleet.ActionCompleteService)
	if err != nil {
		u.log.WithField("vehicle_id", vehicleID).Warnf("release: %v", err)
		return
	}
	if _, _, err := u.vehicles.TransitionStatus(ctx, v.ID, v.Status, next); err != nil {
		u.log.WithField("vehicle_id", vehicleID).Errorf("release: transition failed: %v", err)
	}
}

// VerifyAccess resolves an access code to its active booking and
// vehicle. Part of the keyless entry surface.
func (u *BookingUseCase) VerifyAccess(ctx context.Context, code string) (AccessGrant, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return AccessGrant{}, ErrAccessCodeInvalid
	}

	b, err := u.bookings.GetByAccessCode(ctx, code)
	if err != nil {
		return AccessGrant{}, err
	}
	if b.ID == "" {
		return AccessGrant{}, ErrAccessCodeInvalid
	}
	if b.Status != entities.BookingStatusActive {
		return AccessGrant{}, fmt.Errorf("%w: status is %s", ErrBookingNotActive, b.Status)
	}

	v, err := u.vehicles.GetByID(ctx, b.VehicleID)
	if err != nil {
		return AccessGrant{}, err
	}
	return AccessGrant{Booking: b, Vehicle: v}, nil
}
