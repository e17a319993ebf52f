package dto

import (
	"time"

	"placeverse/internal/models"

	"github.com/google/uuid"
)

// CreateJobRequest is the payload for posting a job. RecruiterID is set from
// the authenticated user, never from the body.
type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Company        string   `json:"company" validate:"required,max=200"`
	Location       string   `json:"location" validate:"required,max=200"`
	JobType        string   `json:"job_type" validate:"omitempty,oneof=Full-time Part-time Internship Contract"`
	WorkMode       string   `json:"work_mode" validate:"omitempty,oneof=Remote On-site Hybrid"`
	SalaryMin      *int     `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax      *int     `json:"salary_max" validate:"omitempty,gte=0"`
	SalaryCurrency string   `json:"salary_currency" validate:"omitempty,len=3"`
	Description    string   `json:"description" validate:"required"`
	Skills         []string `json:"skills" validate:"omitempty,dive,max=100"`
	Status         string   `json:"status" validate:"omitempty,oneof=active closed draft"`

	RecruiterID uuid.UUID `json:"-"`
}

// ListJobsRequest defines the public job search filters.
type ListJobsRequest struct {
	Search    string   `form:"search"`
	Location  string   `form:"location"`
	JobType   string   `form:"job_type" validate:"omitempty,oneof=Full-time Part-time Internship Contract"`
	WorkMode  string   `form:"work_mode" validate:"omitempty,oneof=Remote On-site Hybrid"`
	MinSalary *int     `form:"min_salary" validate:"omitempty,gte=0"`
	MaxSalary *int     `form:"max_salary" validate:"omitempty,gte=0"`
	Skills    []string `form:"skills"`
	Limit     int      `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset    int      `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// UpdateJobRequest updates a job's mutable fields. Nil pointers are left
// untouched. RecruiterID (ownership) and derived counters are immutable here.
type UpdateJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`

	Title          *string  `json:"title" validate:"omitempty,max=200"`
	Company        *string  `json:"company" validate:"omitempty,max=200"`
	Location       *string  `json:"location" validate:"omitempty,max=200"`
	JobType        *string  `json:"job_type" validate:"omitempty,oneof=Full-time Part-time Internship Contract"`
	WorkMode       *string  `json:"work_mode" validate:"omitempty,oneof=Remote On-site Hybrid"`
	SalaryMin      *int     `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax      *int     `json:"salary_max" validate:"omitempty,gte=0"`
	SalaryCurrency *string  `json:"salary_currency" validate:"omitempty,len=3"`
	Description    *string  `json:"description"`
	Skills         []string `json:"skills"`
	Status         *string  `json:"status" validate:"omitempty,oneof=active closed draft"`
}

type DeleteJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

type JobResponse struct {
	ID                uuid.UUID        `json:"id"`
	Title             string           `json:"title"`
	Company           string           `json:"company"`
	Location          string           `json:"location"`
	JobType           string           `json:"job_type"`
	WorkMode          string           `json:"work_mode"`
	SalaryMin         *int             `json:"salary_min,omitempty"`
	SalaryMax         *int             `json:"salary_max,omitempty"`
	SalaryCurrency    string           `json:"salary_currency"`
	Description       string           `json:"description"`
	Skills            []string         `json:"skills"`
	Status            models.JobStatus `json:"status"`
	RecruiterID       uuid.UUID        `json:"recruiter_id"`
	ApplicationsCount int              `json:"applications_count"`
	Views             int              `json:"views"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
