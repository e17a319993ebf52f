package routes

import (
	"placeverse/internal/api/handlers"
	"placeverse/internal/api/middleware"
	"placeverse/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	studentOnly := middleware.RequireRole(models.RoleStudent)
	recruiterOnly := middleware.RequireRole(models.RoleRecruiter, models.RoleAdmin)

	// Actions hanging off a specific job
	jobsGroup := rg.Group("/jobs")
	jobsGroup.Use(authMiddleware)
	{
		jobsGroup.POST("/:id/apply", studentOnly, applicationHandler.SubmitApplication)
		jobsGroup.GET("/:id/applications", recruiterOnly, applicationHandler.ListApplicationsByJob)
	}

	// Actions on applications themselves
	appsGroup := rg.Group("/applications")
	appsGroup.Use(authMiddleware)
	{
		appsGroup.GET("/my", studentOnly, applicationHandler.ListMyApplications)
		appsGroup.GET("/received", recruiterOnly, applicationHandler.ListRecruiterApplications)
		appsGroup.GET("/stats", recruiterOnly, applicationHandler.GetRecruiterStats)
		appsGroup.GET("/:id", applicationHandler.GetApplicationByID)
		appsGroup.PATCH("/:id/status", recruiterOnly, applicationHandler.UpdateStatus)
	}
}
