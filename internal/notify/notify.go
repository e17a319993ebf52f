package notify

import (
	"context"
	"time"

	"placeverse/internal/models"
)

// Notifier is the surface the application engine talks to. Implementations
// return an error on failure; callers log it and move on, a failed email never
// unwinds a committed state change.
type Notifier interface {
	SendApplicationReceived(ctx context.Context, p ApplicationReceived) error
	SendNewApplicationAlert(ctx context.Context, p NewApplicationAlert) error
	SendStatusUpdate(ctx context.Context, p StatusUpdate) error

	// Verify checks the underlying transport is reachable. Called once at
	// startup so a misconfigured mailer is visible before the first send.
	Verify(ctx context.Context) error
}

// ApplicationReceived is the confirmation sent to the student after applying.
type ApplicationReceived struct {
	StudentName  string
	StudentEmail string
	JobTitle     string
	Company      string
	JobLocation  string
	AppliedAt    time.Time
}

// NewApplicationAlert is sent to the recruiter who owns the job.
type NewApplicationAlert struct {
	RecruiterName  string
	RecruiterEmail string
	StudentName    string
	StudentEmail   string
	JobTitle       string
	AppliedAt      time.Time
	CoverLetter    string
	ResumeURL      string
}

// StatusUpdate is sent to the student when a recruiter moves their
// application to a different status.
type StatusUpdate struct {
	StudentName    string
	StudentEmail   string
	JobTitle       string
	Company        string
	NewStatus      models.ApplicationStatus
	RecruiterNotes string
}
