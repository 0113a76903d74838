package response

import (
	"time"

	"car_rental/internal/domain/entities"
	"car_rental/internal/domain/pricing"
	"car_rental/internal/usecase"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerCNIC  string    `json:"customer_cnic"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	AccessCode    string    `json:"access_code"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PriceBreakdownResponse struct {
	Strategy  string  `json:"strategy"`
	DailyRate float64 `json:"daily_rate"`
	Days      int     `json:"days"`
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Surcharge float64 `json:"surcharge"`
	Total     float64 `json:"total"`
}

// BookingCreatedResponse couples the stored booking with the price
// breakdown the selected strategy produced.
type BookingCreatedResponse struct {
	Booking BookingResponse        `json:"booking"`
	Price   PriceBreakdownResponse `json:"price"`
}

// AccessGrantResponse is the keyless-entry verification answer.
type AccessGrantResponse struct {
	Booking BookingResponse `json:"booking"`
	Vehicle VehicleResponse `json:"vehicle"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		VehicleID:     b.VehicleID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerCNIC:  b.CustomerCNIC,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		AccessCode:    b.AccessCode,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}

func FromPriceBreakdown(p pricing.Breakdown) PriceBreakdownResponse {
	return PriceBreakdownResponse{
		Strategy:  p.Strategy,
		DailyRate: p.DailyRate,
		Days:      p.Days,
		Subtotal:  p.Subtotal,
		Discount:  p.Discount,
		Surcharge: p.Surcharge,
		Total:     p.Total,
	}
}

func FromBookingResult(r usecase.BookingResult) BookingCreatedResponse {
	return BookingCreatedResponse{
		Booking: FromBooking(r.Booking),
		Price:   FromPriceBreakdown(r.Price),
	}
}

func FromAccessGrant(g usecase.AccessGrant) AccessGrantResponse {
	return AccessGrantResponse{
		Booking: FromBooking(g.Booking),
		Vehicle: FromVehicle(g.Vehicle),
	}
}
