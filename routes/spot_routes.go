package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/controllers"
)

func SetupSpotRoutes(optional *gin.RouterGroup, spotController *controllers.SpotController) {
	spots := optional.Group("/spots")
	{
		spots.GET("", spotController.ListSpots)
		spots.GET("/search", spotController.SearchSpots)
		spots.GET("/:id", spotController.GetSpot)
	}
}
