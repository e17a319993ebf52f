package dto

import (
	"time"

	"placeverse/internal/models"

	"github.com/google/uuid"
)

// SubmitApplicationRequest is the payload for a student applying to a job.
// ResumeURL is produced by the upload collaborator beforehand; the engine
// never performs uploads itself.
type SubmitApplicationRequest struct {
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	StudentID   uuid.UUID `json:"-"`
	CoverLetter *string   `json:"cover_letter" validate:"omitempty,max=5000"`
	ResumeURL   *string   `json:"resume_url" validate:"omitempty,url"`
}

// CreateApplicationRequest is used internally by the application service once
// preconditions have passed. RecruiterID is copied from the job's owner.
type CreateApplicationRequest struct {
	JobID       uuid.UUID `json:"job_id"`
	StudentID   uuid.UUID `json:"student_id"`
	RecruiterID uuid.UUID `json:"recruiter_id"`
	CoverLetter *string   `json:"cover_letter"`
	ResumeURL   *string   `json:"resume_url"`
}

// InterviewScheduleRequest optionally accompanies a status update.
type InterviewScheduleRequest struct {
	Date     time.Time `json:"date" validate:"required"`
	Time     string    `json:"time" validate:"required"`
	Mode     string    `json:"mode" validate:"required,oneof=online offline"`
	Location string    `json:"location" validate:"omitempty,max=500"`
}

// UpdateApplicationStatusRequest is the recruiter-facing status change payload.
type UpdateApplicationStatusRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"`
	RecruiterID   uuid.UUID `json:"-"`

	Status         string                    `json:"status" validate:"required"`
	RecruiterNotes *string                   `json:"recruiter_notes" validate:"omitempty,max=5000"`
	Interview      *InterviewScheduleRequest `json:"interview" validate:"omitempty"`
}

// SetApplicationStatusRequest is the repository-level mutation: status always
// written, notes overwritten only when non-nil, interview fields only when set.
type SetApplicationStatusRequest struct {
	ID             uuid.UUID                 `json:"-"`
	Status         models.ApplicationStatus  `json:"status"`
	RecruiterNotes *string                   `json:"recruiter_notes"`
	Interview      *InterviewScheduleRequest `json:"interview"`
}

type ApplicationResponse struct {
	ID             uuid.UUID                `json:"id"`
	JobID          uuid.UUID                `json:"job_id"`
	StudentID      uuid.UUID                `json:"student_id"`
	RecruiterID    uuid.UUID                `json:"recruiter_id"`
	Status         models.ApplicationStatus `json:"status"`
	CoverLetter    *string                  `json:"cover_letter,omitempty"`
	ResumeURL      *string                  `json:"resume_url,omitempty"`
	RecruiterNotes *string                  `json:"recruiter_notes,omitempty"`
	Interview      *InterviewResponse       `json:"interview_scheduled,omitempty"`
	AppliedAt      time.Time                `json:"applied_at"`
	LastUpdated    time.Time                `json:"last_updated"`
}

type InterviewResponse struct {
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Mode     string    `json:"mode"`
	Location string    `json:"location,omitempty"`
}

type ApplicationStatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}
