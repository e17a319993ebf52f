package routes

import (
	"placeverse/internal/api/handlers"
	"placeverse/internal/api/middleware"
	"placeverse/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to the job catalog.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	recruiterOnly := middleware.RequireRole(models.RoleRecruiter, models.RoleAdmin)

	jobsGroup := rg.Group("/jobs")
	{
		// Public browsing
		jobsGroup.GET("", jobHandler.ListJobs)

		// Recruiter management. /my must be registered before /:id so gin
		// does not treat "my" as a job ID.
		jobsGroup.GET("/my", authMiddleware, recruiterOnly, jobHandler.ListMyJobs)

		jobsGroup.GET("/:id", jobHandler.GetJobByID)
		jobsGroup.POST("", authMiddleware, recruiterOnly, jobHandler.CreateJob)
		jobsGroup.PATCH("/:id", authMiddleware, recruiterOnly, jobHandler.UpdateJob)
		jobsGroup.DELETE("/:id", authMiddleware, recruiterOnly, jobHandler.DeleteJob)
	}
}
