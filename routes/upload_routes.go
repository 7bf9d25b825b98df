package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := protected.Group("/upload")
	{
		// Single file upload URL generation
		upload.POST("/presigned-url", uploadController.GetPresignedURL)

		// Multiple files upload URL generation (for multi-image submissions)
		upload.POST("/multiple-presigned-urls", uploadController.GetMultiplePresignedURLs)
	}
}
