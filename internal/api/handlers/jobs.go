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

// JobHandler holds dependencies for job catalog operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// Compile-time check to ensure JobHandler implements JobHandlerInterface
var _ JobHandlerInterface = (*JobHandler)(nil)

// CreateJob godoc
//	@Summary		Post a new job
//	@Description	Creates a job posting owned by the authenticated recruiter.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job	body		dto.CreateJobRequest	true	"Job payload"
//	@Success		201	{object}	dto.JobResponse			"Job created successfully"
//	@Failure		400	{object}	map[string]string		"Bad Request - Invalid payload"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		403	{object}	map[string]string		"Forbidden - Not a recruiter"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs [post]
//	@Security		BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("CreateJob: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	req.RecruiterID = userID

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		log.Printf("CreateJob: Error creating job for recruiter %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	c.JSON(http.StatusCreated, services.ToJobResponse(job))
}

// GetJobByID godoc
//	@Summary		Get a job by ID
//	@Description	Retrieves a single job posting and bumps its view counter.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string				true	"Job ID"	Format(uuid)
//	@Success		200	{object}	dto.JobResponse		"Job details"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("GetJobByID: Error fetching job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, services.ToJobResponse(job))
}

// ListJobs godoc
//	@Summary		Search active jobs
//	@Description	Lists active job postings matching the search filters. Public endpoint.
//	@Tags			jobs
//	@Produce		json
//	@Param			search		query		string				false	"Free text search over title, company, description"
//	@Param			location	query		string				false	"Location filter"
//	@Param			job_type	query		string				false	"Job type filter"
//	@Param			work_mode	query		string				false	"Work mode filter"
//	@Param			min_salary	query		int					false	"Minimum salary"
//	@Param			max_salary	query		int					false	"Maximum salary"
//	@Param			skills		query		[]string			false	"Skills filter (any overlap)"
//	@Param			limit		query		int					false	"Pagination limit"	default(10)
//	@Param			offset		query		int					false	"Pagination offset"	default(0)
//	@Success		200			{array}		dto.JobResponse		"Matching jobs"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid query parameters"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}
	// Ensure defaults if not provided by binding
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListJobs: Error listing jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	jobResponses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		jobResponses = append(jobResponses, services.ToJobResponse(&jobs[i]))
	}

	c.JSON(http.StatusOK, jobResponses)
}

// ListMyJobs godoc
//	@Summary		List the recruiter's own jobs
//	@Description	Lists every posting owned by the authenticated recruiter, drafts included.
//	@Tags			jobs
//	@Produce		json
//	@Success		200	{array}		dto.JobResponse		"Recruiter's jobs"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/my [get]
//	@Security		BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("ListMyJobs: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobs, err := h.service.ListJobsByRecruiter(c.Request.Context(), userID)
	if err != nil {
		log.Printf("ListMyJobs: Error listing jobs for recruiter %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	jobResponses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		jobResponses = append(jobResponses, services.ToJobResponse(&jobs[i]))
	}

	c.JSON(http.StatusOK, jobResponses)
}

// UpdateJob godoc
//	@Summary		Update a job
//	@Description	Modifies a posting owned by the authenticated recruiter. Only provided fields change.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string				true	"Job ID"	Format(uuid)
//	@Param			job	body		dto.UpdateJobRequest	true	"Fields to update"
//	@Success		200	{object}	dto.JobResponse		"Updated job"
//	@Failure		400	{object}	map[string]string	"Bad Request - Invalid payload"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{id} [patch]
//	@Security		BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("UpdateJob: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	req.ID = jobID
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("UpdateJob: Error updating job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, services.ToJobResponse(job))
}

// DeleteJob godoc
//	@Summary		Delete a job
//	@Description	Removes a posting owned by the authenticated recruiter along with every application referencing it.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string				true	"Job ID"	Format(uuid)
//	@Success		200	{object}	map[string]string	"Job deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{id} [delete]
//	@Security		BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("DeleteJob: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.DeleteJobRequest{
		ID:     jobID,
		UserID: userID,
	}

	if err := h.service.DeleteJob(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("DeleteJob: Error deleting job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
