package services

import (
	"errors"
	"fmt"
	"log"

	"placeverse/internal/models"
	"placeverse/internal/storage"
	"placeverse/internal/transport/dto"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		// The repo layer should provide more context for conflict errors if possible
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// ToUserResponse maps a user model to its API response form. The password
// hash never leaves the service layer.
func ToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Profile:   user.Profile,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToJobResponse maps a job model to its API response form.
func ToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:                job.ID,
		Title:             job.Title,
		Company:           job.Company,
		Location:          job.Location,
		JobType:           job.JobType,
		WorkMode:          job.WorkMode,
		SalaryMin:         job.SalaryMin,
		SalaryMax:         job.SalaryMax,
		SalaryCurrency:    job.SalaryCurrency,
		Description:       job.Description,
		Skills:            job.Skills,
		Status:            job.Status,
		RecruiterID:       job.RecruiterID,
		ApplicationsCount: job.ApplicationsCount,
		Views:             job.Views,
		CreatedAt:         job.CreatedAt,
		UpdatedAt:         job.UpdatedAt,
	}
}

// ToApplicationResponse maps an application model to its API response form.
// Interview fields collapse into a nested object when a date is set.
func ToApplicationResponse(app *models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:             app.ID,
		JobID:          app.JobID,
		StudentID:      app.StudentID,
		RecruiterID:    app.RecruiterID,
		Status:         app.Status,
		CoverLetter:    app.CoverLetter,
		ResumeURL:      app.ResumeURL,
		RecruiterNotes: app.RecruiterNotes,
		AppliedAt:      app.AppliedAt,
		LastUpdated:    app.LastUpdated,
	}

	if app.InterviewDate != nil {
		interview := &dto.InterviewResponse{Date: *app.InterviewDate}
		if app.InterviewTime != nil {
			interview.Time = *app.InterviewTime
		}
		if app.InterviewMode != nil {
			interview.Mode = *app.InterviewMode
		}
		if app.InterviewLocation != nil {
			interview.Location = *app.InterviewLocation
		}
		resp.Interview = interview
	}

	return resp
}

// ToApplicationStatsResponse maps the stats aggregate to its API response form.
func ToApplicationStatsResponse(stats *models.ApplicationStats) dto.ApplicationStatsResponse {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	return dto.ApplicationStatsResponse{
		Total:    stats.Total,
		ByStatus: byStatus,
	}
}
