package entities

import "time"

// BookingStatus represents the lifecycle of a booking.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a car reservation persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - access-code uniqueness enforced by a guard item written in the
//     same transaction as the booking (see booking repository)
//
// AccessCode is the keyless-entry token handed to the customer at
// creation; it is unique across all bookings and never reused.
type Booking struct {
	ID            string        `json:"id"`
	VehicleID     string        `json:"vehicle_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	CustomerCNIC  string        `json:"customer_cnic"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	TotalAmount   float64       `json:"total_amount"`
	Status        BookingStatus `json:"status"`
	AccessCode    string        `json:"access_code"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
