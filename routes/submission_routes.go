package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/controllers"
)

func SetupSubmissionRoutes(protected *gin.RouterGroup, submissionController *controllers.SubmissionController) {
	spots := protected.Group("/spots")
	{
		spots.POST("/submit", submissionController.SubmitSpot)
	}
}

func SetupAdminRoutes(admin *gin.RouterGroup, submissionController *controllers.SubmissionController) {
	submissions := admin.Group("/submissions")
	{
		submissions.GET("", submissionController.GetPendingSubmissions)
		submissions.POST("/:id/approve", submissionController.ApproveSubmission)
		submissions.POST("/:id/reject", submissionController.RejectSubmission)
	}
}
