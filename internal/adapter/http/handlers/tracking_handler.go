package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "car_rental/internal/adapter/http/dto/request"
	response "car_rental/internal/adapter/http/dto/response"
	"car_rental/internal/usecase"
	"car_rental/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLocationPayload = pkg.NewDomainErrorSimple("INVALID_LOCATION_INPUT", "Invalid location payload", http.StatusBadRequest)
)

// TrackingHandler handles HTTP requests from the GPS tracker fleet.

type TrackingHandler struct {
	usecase usecase.ITrackingUseCase
}

func NewTrackingHandler(uc usecase.ITrackingUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc}
}

// UpdateLocation ingests one tracker reading and reports whether it
// crossed the geofence boundary.
func (h *TrackingHandler) UpdateLocation(c *gin.Context) {
	var payload request.UpdateLocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLocationPayload.HTTPStatus, errInvalidLocationPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.UpdateLocation(c.Request.Context(), c.Param("id"), *payload.Latitude, *payload.Longitude)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrackingResult(result))
}

// History returns the newest samples first; ?limit= caps the page.
func (h *TrackingHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(errInvalidLocationPayload.HTTPStatus, errInvalidLocationPayload.ToHTTPError())
			return
		}
		limit = parsed
	}

	samples, err := h.usecase.History(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLocationSamples(samples))
}

func (h *TrackingHandler) OutOfRange(c *gin.Context) {
	vehicles, err := h.usecase.OutOfRange(c.Request.Context())
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
