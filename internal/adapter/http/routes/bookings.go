package routes

import (
	"car_rental/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PATCH("/:id/complete", bookingHandler.CompleteBooking)
		bookings.PATCH("/:id/cancel", bookingHandler.CancelBooking)

		// Keyless entry: the car-side reader posts the presented code.
		bookings.POST("/access", bookingHandler.VerifyAccess)
	}
}
