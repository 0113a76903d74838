package handlers

import (
	"context"
	"errors"
	"net/http"

	request "car_rental/internal/adapter/http/dto/request"
	response "car_rental/internal/adapter/http/dto/response"
	"car_rental/internal/domain/entities"
	"car_rental/internal/domain/fleet"
	"car_rental/internal/usecase"
	"car_rental/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)
)

// VehicleHandler handles HTTP requests for fleet management.

type VehicleHandler struct {
	usecase usecase.IFleetUseCase
}

func NewVehicleHandler(uc usecase.IFleetUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// AddVehicle registers a new vehicle; its category decides the daily
// rate and tracker profile.
func (h *VehicleHandler) AddVehicle(c *gin.Context) {
	var payload request.AddVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	v, err := h.usecase.AddVehicle(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(v))
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(v))
}

// ListVehicles supports optional ?status= and ?category= filters.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	status := entities.VehicleStatus(c.Query("status"))
	category := entities.VehicleCategory(c.Query("category"))

	vehicles, err := h.usecase.List(c.Request.Context(), status, category)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) CompleteService(c *gin.Context) {
	h.patchVehicleStatus(c, h.usecase.CompleteService)
}

func (h *VehicleHandler) StartMaintenance(c *gin.Context) {
	h.patchVehicleStatus(c, h.usecase.StartMaintenance)
}

func (h *VehicleHandler) patchVehicleStatus(
	c *gin.Context,
	action func(ctx context.Context, id string) (entities.Vehicle, error),
) {
	v, err := action(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(v))
}

func (h *VehicleHandler) FleetStatistics(c *gin.Context) {
	stats, err := h.usecase.Statistics(c.Request.Context())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidLicensePlate),
		errors.Is(err, usecase.ErrInvalidVehicleModel),
		errors.Is(err, usecase.ErrIncompleteAnchor),
		errors.Is(err, fleet.ErrUnknownCategory):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateLicensePlate):
		return pkg.NewDomainErrorSimple("DUPLICATE_LICENSE_PLATE", "A vehicle with this license plate already exists", http.StatusConflict)
	case errors.Is(err, fleet.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Vehicle state does not allow this action", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
