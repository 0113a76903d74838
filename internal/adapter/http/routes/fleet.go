package routes

import (
	"car_rental/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles = "/vehicles"
	PathTracking = "/tracking"
)

func addFleetRoutes(rg *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, trackingHandler *handlers.TrackingHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.AddVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/statistics", vehicleHandler.FleetStatistics)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PATCH("/:id/complete-service", vehicleHandler.CompleteService)
		vehicles.PATCH("/:id/maintenance", vehicleHandler.StartMaintenance)

		// GPS tracker endpoints, keyed by vehicle.
		vehicles.POST("/:id/location", trackingHandler.UpdateLocation)
		vehicles.GET("/:id/location/history", trackingHandler.History)
	}

	tracking := rg.Group(PathTracking)
	{
		tracking.GET("/out-of-range", trackingHandler.OutOfRange)
	}
}
