package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/controllers"
)

func SetupFeedRoutes(optional *gin.RouterGroup, feedController *controllers.FeedController) {
	feed := optional.Group("/feed")
	{
		feed.GET("/nearby", feedController.GetNearbyFeed)
		feed.GET("/following", feedController.GetFollowingFeed)
	}
}
