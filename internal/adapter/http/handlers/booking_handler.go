package handlers

import (
	"context"
	"errors"
	"net/http"

	request "car_rental/internal/adapter/http/dto/request"
	response "car_rental/internal/adapter/http/dto/response"
	"car_rental/internal/domain/entities"
	"car_rental/internal/domain/fleet"
	"car_rental/internal/domain/pricing"
	"car_rental/internal/usecase"
	"car_rental/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// BookingHandler handles HTTP requests for bookings and keyless entry.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking books an available vehicle and returns the booking
// together with its price breakdown and access code.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBookingResult(result))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

// ListBookings supports an optional ?status= filter.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.usecase.List(c.Request.Context(), entities.BookingStatus(c.Query("status")))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.patchBookingStatus(c, h.usecase.Complete)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.patchBookingStatus(c, h.usecase.Cancel)
}

func (h *BookingHandler) patchBookingStatus(
	c *gin.Context,
	action func(ctx context.Context, id string) (entities.Booking, error),
) {
	b, err := action(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

// VerifyAccess answers the keyless-entry system: a valid code for an
// active booking unlocks the car.
func (h *BookingHandler) VerifyAccess(c *gin.Context) {
	var payload request.VerifyAccessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	grant, err := h.usecase.VerifyAccess(c.Request.Context(), payload.AccessCode)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccessGrant(grant))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidBookingDates),
		errors.Is(err, pricing.ErrUnknownStrategy):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, fleet.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_AVAILABLE", "Vehicle is not available for booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotActive):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_ACTIVE", "Booking is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccessCodeInvalid):
		return pkg.NewDomainErrorSimple("ACCESS_CODE_INVALID", "Access code not recognized", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
