package handlers

import (
	"context"
	"errors"
	"net/http"

	request "car_rental/internal/adapter/http/dto/request"
	response "car_rental/internal/adapter/http/dto/response"
	"car_rental/internal/domain/entities"
	"car_rental/internal/usecase"
	"car_rental/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClaimPayload = pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", "Invalid claim payload", http.StatusBadRequest)
)

// ClaimHandler handles HTTP requests for damage claims.

type ClaimHandler struct {
	usecase usecase.IClaimUseCase
}

func NewClaimHandler(uc usecase.IClaimUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

// FileClaim runs a damage report through the adjudication chain. The
// response carries the disposition the chain decided on.
func (h *ClaimHandler) FileClaim(c *gin.Context) {
	var payload request.FileClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.File(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClaim(result.Claim))
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claim, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// ListClaims lists claims, optionally filtered: ?pending=true narrows
// to the admin work queue, ?vehicle_id= to one vehicle's history.
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	var (
		claims []entities.Claim
		err    error
	)
	switch {
	case c.Query("pending") == "true":
		claims, err = h.usecase.ListPending(c.Request.Context())
	case c.Query("vehicle_id") != "":
		claims, err = h.usecase.ListByVehicle(c.Request.Context(), c.Query("vehicle_id"))
	default:
		claims, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaims(claims))
}

func (h *ClaimHandler) ApproveClaim(c *gin.Context) {
	h.patchClaimStatus(c, h.usecase.Approve)
}

func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	h.patchClaimStatus(c, h.usecase.Reject)
}

func (h *ClaimHandler) patchClaimStatus(
	c *gin.Context,
	action func(ctx context.Context, id string) (entities.Claim, error),
) {
	claim, err := action(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func mapClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID),
		errors.Is(err, usecase.ErrInvalidClaimInput),
		errors.Is(err, usecase.ErrInvalidVehicleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimNotPending):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_PENDING", "Claim is not pending approval", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
