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
	"car_rental/internal/domain/fleet"
	"car_rental/internal/domain/pricing"
	"car_rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validBookingJSON = `{
	"vehicle_id": "v-1",
	"customer_name": "Ana Souza",
	"customer_phone": "+55 11 99999-0000",
	"customer_cnic": "12345-6789012-3",
	"start_date": "2026-09-01T10:00:00Z",
	"end_date": "2026-09-08T10:00:00Z",
	"pricing_strategy": "discount"
}`

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("vehicle already booked maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.BookingResult{}, fleet.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(validBookingJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown strategy maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.BookingResult{}, pricing.ErrUnknownStrategy)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(validBookingJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns booking and price breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.BookingResult{
			Booking: entities.Booking{ID: "b-1", VehicleID: "v-1", AccessCode: "tok", Status: entities.BookingStatusActive, TotalAmount: 630},
			Price:   pricing.Breakdown{Strategy: pricing.StrategyDiscount, DailyRate: 100, Days: 7, Subtotal: 700, Discount: 70, Total: 630},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(validBookingJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Booking map[string]any `json:"booking"`
			Price   map[string]any `json:"price"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Booking["id"] != "b-1" || body.Price["total"] != 630.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBookingHandler_Close(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("complete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bookings/:id/complete", h.CompleteBooking)

		uc.EXPECT().Complete(gomock.Any(), "b-1").
			Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/b-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel on closed booking maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bookings/:id/cancel", h.CancelBooking)

		uc.EXPECT().Cancel(gomock.Any(), "b-1").Return(entities.Booking{}, usecase.ErrBookingNotActive)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/b-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBookingHandler_VerifyAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/access", h.VerifyAccess)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/access", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown code maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/access", h.VerifyAccess)

		uc.EXPECT().VerifyAccess(gomock.Any(), "nope").Return(usecase.AccessGrant{}, usecase.ErrAccessCodeInvalid)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/access", bytes.NewBufferString(`{"access_code":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid code unlocks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/access", h.VerifyAccess)

		uc.EXPECT().VerifyAccess(gomock.Any(), "tok").Return(usecase.AccessGrant{
			Booking: entities.Booking{ID: "b-1", AccessCode: "tok", Status: entities.BookingStatusActive},
			Vehicle: entities.Vehicle{ID: "v-1", LicensePlate: "ABC-123"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/access", bytes.NewBufferString(`{"access_code":"tok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapBookingError(t *testing.T) {
	if got := mapBookingError(usecase.ErrInvalidBookingDates); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBookingError(usecase.ErrBookingNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBookingError(usecase.ErrAccessCodeInvalid); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapBookingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
