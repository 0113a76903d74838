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

func TestTrackingHandler_UpdateLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:id/location", h.UpdateLocation)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/v-1/location", bytes.NewBufferString(`{"latitude": 33.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero coordinates are valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:id/location", h.UpdateLocation)

		uc.EXPECT().UpdateLocation(gomock.Any(), "v-1", 0.0, 0.0).Return(usecase.TrackingResult{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/v-1/location", bytes.NewBufferString(`{"latitude": 0, "longitude": 0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("crossing is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:id/location", h.UpdateLocation)

		uc.EXPECT().UpdateLocation(gomock.Any(), "v-1", 34.6844, 73.0479).Return(usecase.TrackingResult{
			DistanceKm:    111.2,
			OutOfRange:    true,
			StatusChanged: true,
			NewStatus:     entities.VehicleStatusOutOfRange,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/v-1/location", bytes.NewBufferString(`{"latitude": 34.6844, "longitude": 73.0479}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["out_of_range"] != true || body["new_status"] != "out_of_range" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown vehicle maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:id/location", h.UpdateLocation)

		uc.EXPECT().UpdateLocation(gomock.Any(), "v-404", 1.0, 2.0).Return(usecase.TrackingResult{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/v-404/location", bytes.NewBufferString(`{"latitude": 1, "longitude": 2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTrackingHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("limit forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/:id/location/history", h.History)

		uc.EXPECT().History(gomock.Any(), "v-1", 10).Return([]entities.LocationSample{{ID: "s-1", VehicleID: "v-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/v-1/location/history?limit=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/:id/location/history", h.History)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/v-1/location/history?limit=banana", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTrackingHandler_OutOfRange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITrackingUseCase(ctrl)
	h := NewTrackingHandler(uc)

	r := gin.New()
	r.GET("/v1/tracking/out-of-range", h.OutOfRange)

	uc.EXPECT().OutOfRange(gomock.Any()).Return([]entities.Vehicle{
		{ID: "v-1", Status: entities.VehicleStatusOutOfRange},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/tracking/out-of-range", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapTrackingError(t *testing.T) {
	if got := mapTrackingError(usecase.ErrInvalidVehicleID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTrackingError(usecase.ErrVehicleNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapTrackingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
