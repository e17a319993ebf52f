package handlers

import (
	"errors"
	"log"
	"net/http"

	"placeverse/internal/api/middleware"
	"placeverse/internal/services"
	"placeverse/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for application engine operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// Compile-time check to ensure ApplicationHandler implements ApplicationHandlerInterface
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)

// SubmitApplication godoc
//	@Summary		Apply to a job
//	@Description	Submits an application for the authenticated student. One application per job per student.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Job ID"	Format(uuid)
//	@Param			application	body		dto.SubmitApplicationRequest	false	"Optional cover letter and resume URL"
//	@Success		201			{object}	dto.ApplicationResponse			"Application created"
//	@Failure		400			{object}	map[string]string				"Bad Request - Invalid payload"
//	@Failure		401			{object}	map[string]string				"Unauthorized"
//	@Failure		404			{object}	map[string]string				"Job not found"
//	@Failure		409			{object}	map[string]string				"Conflict - Already applied, or job not accepting applications"
//	@Failure		500			{object}	map[string]string				"Internal Server Error"
//	@Router			/jobs/{id}/apply [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("SubmitApplication: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.SubmitApplicationRequest
	// Body is optional; an empty submit with no cover letter is fine.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}
	}
	req.JobID = jobID
	req.StudentID = userID

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	application, err := h.service.SubmitApplication(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrInvalidState) {
			c.JSON(http.StatusConflict, gin.H{"error": "Job is no longer accepting applications"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already applied to this job"})
		} else {
			log.Printf("SubmitApplication: Error applying to job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply for job"})
		}
		return
	}

	c.JSON(http.StatusCreated, services.ToApplicationResponse(application))
}

// UpdateStatus godoc
//	@Summary		Update an application's status
//	@Description	Moves an application to a new status on behalf of the owning recruiter. Notes and interview details ride along. Any status may move to any other status.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Application ID"	Format(uuid)
//	@Param			update	body		dto.UpdateApplicationStatusRequest	true	"Status payload"
//	@Success		200		{object}	dto.ApplicationResponse				"Updated application"
//	@Failure		400		{object}	map[string]string					"Bad Request - Invalid payload or unknown status"
//	@Failure		401		{object}	map[string]string					"Unauthorized"
//	@Failure		404		{object}	map[string]string					"Application not found"
//	@Failure		500		{object}	map[string]string					"Internal Server Error"
//	@Router			/applications/{id}/status [patch]
//	@Security		BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("UpdateStatus: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	req.ApplicationID = appID
	req.RecruiterID = userID

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	application, err := h.service.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application status"})
		} else if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("UpdateStatus: Error updating application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
		}
		return
	}

	c.JSON(http.StatusOK, services.ToApplicationResponse(application))
}

// GetApplicationByID godoc
//	@Summary		Get an application by ID
//	@Description	Retrieves an application. Only its student or recruiter can see it; anyone else gets 404.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string					true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.ApplicationResponse	"Application details"
//	@Failure		400	{object}	map[string]string		"Invalid ID format"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		404	{object}	map[string]string		"Application not found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/applications/{id} [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("GetApplicationByID: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	application, err := h.service.GetApplicationByID(c.Request.Context(), appID, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("GetApplicationByID: Error fetching application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, services.ToApplicationResponse(application))
}

// ListMyApplications godoc
//	@Summary		List the student's applications
//	@Description	Lists every application submitted by the authenticated student, newest first.
//	@Tags			applications
//	@Produce		json
//	@Success		200	{array}		dto.ApplicationResponse	"Student's applications"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/applications/my [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("ListMyApplications: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applications, err := h.service.ListApplicationsByStudent(c.Request.Context(), userID)
	if err != nil {
		log.Printf("ListMyApplications: Error listing applications for student %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	appResponses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		appResponses = append(appResponses, services.ToApplicationResponse(&applications[i]))
	}

	c.JSON(http.StatusOK, appResponses)
}

// ListApplicationsByJob godoc
//	@Summary		List applications for a job
//	@Description	Lists a job's applications for the recruiter who owns it, newest first.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string					true	"Job ID"	Format(uuid)
//	@Success		200	{array}		dto.ApplicationResponse	"Job's applications"
//	@Failure		400	{object}	map[string]string		"Invalid ID format"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		404	{object}	map[string]string		"Job not found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs/{id}/applications [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListApplicationsByJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("ListApplicationsByJob: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	applications, err := h.service.ListApplicationsByJob(c.Request.Context(), jobID, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("ListApplicationsByJob: Error listing applications for job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		}
		return
	}

	appResponses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		appResponses = append(appResponses, services.ToApplicationResponse(&applications[i]))
	}

	c.JSON(http.StatusOK, appResponses)
}

// ListRecruiterApplications godoc
//	@Summary		List all applications for the recruiter's jobs
//	@Description	Lists every application across the authenticated recruiter's postings, newest first.
//	@Tags			applications
//	@Produce		json
//	@Success		200	{array}		dto.ApplicationResponse	"Recruiter's applications"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/applications/received [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListRecruiterApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("ListRecruiterApplications: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applications, err := h.service.ListApplicationsByRecruiter(c.Request.Context(), userID)
	if err != nil {
		log.Printf("ListRecruiterApplications: Error listing applications for recruiter %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	appResponses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		appResponses = append(appResponses, services.ToApplicationResponse(&applications[i]))
	}

	c.JSON(http.StatusOK, appResponses)
}

// GetRecruiterStats godoc
//	@Summary		Application statistics for the recruiter
//	@Description	Returns the authenticated recruiter's application counts grouped by status.
//	@Tags			applications
//	@Produce		json
//	@Success		200	{object}	dto.ApplicationStatsResponse	"Aggregated counts"
//	@Failure		401	{object}	map[string]string				"Unauthorized"
//	@Failure		500	{object}	map[string]string				"Internal Server Error"
//	@Router			/applications/stats [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetRecruiterStats(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("GetRecruiterStats: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.service.GetRecruiterStats(c.Request.Context(), userID)
	if err != nil {
		log.Printf("GetRecruiterStats: Error aggregating applications for recruiter %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, services.ToApplicationStatsResponse(stats))
}
