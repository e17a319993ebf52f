package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- User Role Enum ---
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleStudent, RoleRecruiter, RoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusSelected    ApplicationStatus = "selected"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every legal status value. Any status may move to
// any other status; membership in this set is the only transition rule.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewing,
	ApplicationStatusShortlisted,
	ApplicationStatusInterviewed,
	ApplicationStatusSelected,
	ApplicationStatusRejected,
}

// IsValid reports whether s is one of the six known statuses.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusShortlisted,
		ApplicationStatusInterviewed, ApplicationStatusSelected, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// User represents a registered platform user. Role is fixed at registration.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`

	// Profile is an optional free-form JSON blob (avatar, bio, skills, ...).
	Profile []byte `json:"profile,omitempty" db:"profile"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Job is a posting owned by a recruiter.
type Job struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Company        string    `json:"company" db:"company"`
	Location       string    `json:"location" db:"location"`
	JobType        string    `json:"job_type" db:"job_type"`   // Full-time, Part-time, Internship, Contract
	WorkMode       string    `json:"work_mode" db:"work_mode"` // Remote, On-site, Hybrid
	SalaryMin      *int      `json:"salary_min,omitempty" db:"salary_min"`
	SalaryMax      *int      `json:"salary_max,omitempty" db:"salary_max"`
	SalaryCurrency string    `json:"salary_currency" db:"salary_currency"`
	Description    string    `json:"description" db:"description"`
	Skills         []string  `json:"skills" db:"skills"`
	Status         JobStatus `json:"status" db:"status"`
	RecruiterID    uuid.UUID `json:"recruiter_id" db:"recruiter_id"`

	// Derived counters. ApplicationsCount is bumped best-effort after each
	// successful application insert; it is not kept transactionally consistent.
	ApplicationsCount int `json:"applications_count" db:"applications_count"`
	Views             int `json:"views" db:"views"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Application links a student to a job. At most one application may exist per
// (job, student) pair; the applications table enforces this with a unique index
// and the service layer pre-checks it for a friendlier error.
type Application struct {
	ID        uuid.UUID `json:"id" db:"id"`
	JobID     uuid.UUID `json:"job_id" db:"job_id"`
	StudentID uuid.UUID `json:"student_id" db:"student_id"`

	// RecruiterID is denormalized from the job at creation time so recruiter
	// queries and the ownership check need no join.
	RecruiterID uuid.UUID `json:"recruiter_id" db:"recruiter_id"`

	Status         ApplicationStatus `json:"status" db:"status"`
	CoverLetter    *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	ResumeURL      *string           `json:"resume_url,omitempty" db:"resume_url"`
	RecruiterNotes *string           `json:"recruiter_notes,omitempty" db:"recruiter_notes"`

	InterviewDate     *time.Time `json:"interview_date,omitempty" db:"interview_date"`
	InterviewTime     *string    `json:"interview_time,omitempty" db:"interview_time"`
	InterviewMode     *string    `json:"interview_mode,omitempty" db:"interview_mode"` // online, offline
	InterviewLocation *string    `json:"interview_location,omitempty" db:"interview_location"`

	AppliedAt   time.Time `json:"applied_at" db:"applied_at"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}

// ApplicationStats aggregates a recruiter's applications by status.
type ApplicationStats struct {
	Total    int                       `json:"total"`
	ByStatus map[ApplicationStatus]int `json:"by_status"`
}
