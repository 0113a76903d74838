package routes

import (
	"car_rental/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims = "/claims"
)

func addClaimRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("", claimHandler.FileClaim)
		claims.GET("", claimHandler.ListClaims)
		claims.GET("/:id", claimHandler.GetClaim)
		claims.PATCH("/:id/approve", claimHandler.ApproveClaim)
		claims.PATCH("/:id/reject", claimHandler.RejectClaim)
	}
}
