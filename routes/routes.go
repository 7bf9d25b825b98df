package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/controllers"
	"github.com/urbex-atlas/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	spotController := controllers.NewSpotController(db)
	interactionController := controllers.NewInteractionController(db)
	submissionController := controllers.NewSubmissionController(db)
	feedController := controllers.NewFeedController(db)
	uploadController := controllers.NewUploadController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
	}

	// Optionally authenticated routes: richer responses for signed-in callers
	optional := r.Group("/api")
	optional.Use(middleware.OptionalAuthMiddleware())
	{
		SetupSpotRoutes(optional, spotController)
		SetupFeedRoutes(optional, feedController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)
		protected.POST("/spots/bulk-add", spotController.BulkAddSpots)

		SetupInteractionRoutes(protected, interactionController)
		SetupSubmissionRoutes(protected, submissionController)
		SetupUploadRoutes(protected, uploadController)
	}

	// Admin routes sit behind the shared admin gate
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		SetupAdminRoutes(admin, submissionController)
	}
}
