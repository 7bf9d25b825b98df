package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/controllers"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	spots := protected.Group("/spots")
	{
		spots.POST("/:id/checkin", interactionController.CheckIn)
		spots.POST("/:id/like", interactionController.LikeSpot)
		spots.POST("/:id/rate", interactionController.RateSpot)
		spots.POST("/:id/comment", interactionController.CommentSpot)
	}
}
