package routes

import (
	"placeverse/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUploadRoutes registers the resume upload routes.
func RegisterUploadRoutes(
	rg *gin.RouterGroup,
	uploadHandler handlers.UploadHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	uploadsGroup := rg.Group("/uploads")
	uploadsGroup.Use(authMiddleware)
	{
		uploadsGroup.POST("/resume", uploadHandler.PresignResumeUpload)
		uploadsGroup.GET("/resume", uploadHandler.PresignResumeDownload)
	}
}
