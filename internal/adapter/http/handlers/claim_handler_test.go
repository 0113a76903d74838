package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"car_rental/internal/adapter/http/handlers/mocks"
	"car_rental/internal/domain/entities"
	"car_rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClaimHandler_FileClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.POST("/v1/claims", h.FileClaim)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("vehicle not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.POST("/v1/claims", h.FileClaim)

		uc.EXPECT().File(gomock.Any(), gomock.Any()).Return(usecase.ClaimResult{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString(`{"vehicle_id":"v-404","damage_type":"dent","description":"door dent","estimated_cost":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success carries the chain disposition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.POST("/v1/claims", h.FileClaim)

		uc.EXPECT().File(gomock.Any(), gomock.Any()).Return(usecase.ClaimResult{
			Claim: entities.Claim{ID: "c-1", VehicleID: "v-1", Status: entities.ClaimStatusInsuranceClaim, Handler: "InsuranceHandler", EstimatedCost: 5000},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString(`{"vehicle_id":"v-1","damage_type":"collision","description":"front end damage","estimated_cost":5000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "insurance_claim" || body["handler"] != "InsuranceHandler" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestClaimHandler_ListClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pending filter uses the work queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.GET("/v1/claims", h.ListClaims)

		uc.EXPECT().ListPending(gomock.Any()).Return([]entities.Claim{{ID: "c-1", Status: entities.ClaimStatusPendingApproval}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims?pending=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("vehicle filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.GET("/v1/claims", h.ListClaims)

		uc.EXPECT().ListByVehicle(gomock.Any(), "v-1").Return([]entities.Claim{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims?vehicle_id=v-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unfiltered list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.GET("/v1/claims", h.ListClaims)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Claim{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestClaimHandler_Override(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.PATCH("/v1/claims/:id/approve", h.ApproveClaim)

		uc.EXPECT().Approve(gomock.Any(), "c-1").Return(entities.Claim{ID: "c-1", Status: entities.ClaimStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/c-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject settled claim maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.PATCH("/v1/claims/:id/reject", h.RejectClaim)

		uc.EXPECT().Reject(gomock.Any(), "c-1").Return(entities.Claim{}, usecase.ErrClaimNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/c-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapClaimError(t *testing.T) {
	if got := mapClaimError(usecase.ErrInvalidClaimInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapClaimError(usecase.ErrClaimNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapClaimError(usecase.ErrClaimNotPending); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapClaimError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
