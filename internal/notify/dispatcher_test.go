package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"placeverse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer captures the last message instead of delivering it.
type fakeMailer struct {
	to      string
	subject string
	body    string
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.to = to
	f.subject = subject
	f.body = htmlBody
	return nil
}

func (f *fakeMailer) Verify(_ context.Context) error { return nil }

func newTestDispatcher(t *testing.T) (*Dispatcher, *fakeMailer) {
	mailer := &fakeMailer{}
	d, err := NewDispatcher(mailer, "PlaceVerse", "https://placeverse.example.com")
	require.NoError(t, err)
	return d, mailer
}

func TestDispatcher_SendApplicationReceived(t *testing.T) {
	d, mailer := newTestDispatcher(t)

	err := d.SendApplicationReceived(context.Background(), ApplicationReceived{
		StudentName:  "Asha",
		StudentEmail: "asha@example.com",
		JobTitle:     "Backend Engineer",
		Company:      "Acme Corp",
		JobLocation:  "Bangalore",
		AppliedAt:    time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", mailer.to)
	assert.Equal(t, "Application Received: Backend Engineer", mailer.subject)
	assert.Contains(t, mailer.body, "Asha")
	assert.Contains(t, mailer.body, "Acme Corp")
	assert.Contains(t, mailer.body, "Mar 5, 2026")
	assert.Contains(t, mailer.body, "https://placeverse.example.com/student/applications")
	// Content must be wrapped in the base layout
	assert.Contains(t, mailer.body, "PlaceVerse")
	assert.Contains(t, mailer.body, "<html")
}

func TestDispatcher_SendNewApplicationAlert(t *testing.T) {
	d, mailer := newTestDispatcher(t)

	err := d.SendNewApplicationAlert(context.Background(), NewApplicationAlert{
		RecruiterName:  "Ravi",
		RecruiterEmail: "ravi@acme.example.com",
		StudentName:    "Asha",
		StudentEmail:   "asha@example.com",
		JobTitle:       "Backend Engineer",
		AppliedAt:      time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC),
		CoverLetter:    "I am very interested.",
		ResumeURL:      "https://files.example.com/resume.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, "ravi@acme.example.com", mailer.to)
	assert.Equal(t, "New Application: Backend Engineer", mailer.subject)
	assert.Contains(t, mailer.body, "Asha")
	assert.Contains(t, mailer.body, "asha@example.com")
	assert.Contains(t, mailer.body, "I am very interested.")
	assert.Contains(t, mailer.body, "https://files.example.com/resume.pdf")
	assert.Contains(t, mailer.body, "https://placeverse.example.com/recruiter/applications")
}

func TestDispatcher_SendNewApplicationAlert_NoCoverLetter(t *testing.T) {
	d, mailer := newTestDispatcher(t)

	err := d.SendNewApplicationAlert(context.Background(), NewApplicationAlert{
		RecruiterName:  "Ravi",
		RecruiterEmail: "ravi@acme.example.com",
		StudentName:    "Asha",
		StudentEmail:   "asha@example.com",
		JobTitle:       "Backend Engineer",
		AppliedAt:      time.Now(),
	})

	require.NoError(t, err)
	assert.Contains(t, mailer.body, "No cover letter provided")
}

func TestDispatcher_SendStatusUpdate(t *testing.T) {
	d, mailer := newTestDispatcher(t)

	err := d.SendStatusUpdate(context.Background(), StatusUpdate{
		StudentName:    "Asha",
		StudentEmail:   "asha@example.com",
		JobTitle:       "Backend Engineer",
		Company:        "Acme Corp",
		NewStatus:      models.ApplicationStatusShortlisted,
		RecruiterNotes: "Great portfolio",
	})

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", mailer.to)
	assert.Equal(t, "Application Update: Backend Engineer", mailer.subject)
	assert.Contains(t, mailer.body, "Shortlisted")
	assert.Contains(t, mailer.body, "#28a745")
	assert.Contains(t, mailer.body, "Great portfolio")
	assert.Contains(t, mailer.body, "You have been shortlisted")
}

func TestDispatcher_SendStatusUpdate_PendingHasNoNextSteps(t *testing.T) {
	d, mailer := newTestDispatcher(t)

	err := d.SendStatusUpdate(context.Background(), StatusUpdate{
		StudentName:  "Asha",
		StudentEmail: "asha@example.com",
		JobTitle:     "Backend Engineer",
		Company:      "Acme Corp",
		NewStatus:    models.ApplicationStatusPending,
	})

	require.NoError(t, err)
	assert.Contains(t, mailer.body, "Pending")
	assert.Contains(t, mailer.body, "#ffc107")
	assert.Empty(t, NextSteps(models.ApplicationStatusPending))
}

func TestDispatcher_SendPropagatesMailerError(t *testing.T) {
	mailer := &fakeMailer{sendErr: errors.New("smtp down")}
	d, err := NewDispatcher(mailer, "PlaceVerse", "https://placeverse.example.com")
	require.NoError(t, err)

	err = d.SendStatusUpdate(context.Background(), StatusUpdate{
		StudentEmail: "asha@example.com",
		JobTitle:     "Backend Engineer",
		NewStatus:    models.ApplicationStatusRejected,
	})

	require.Error(t, err)
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		status   models.ApplicationStatus
		label    string
		color    string
		hasSteps bool
	}{
		{models.ApplicationStatusPending, "Pending", "#ffc107", false},
		{models.ApplicationStatusReviewing, "Reviewing", "#17a2b8", true},
		{models.ApplicationStatusShortlisted, "Shortlisted", "#28a745", true},
		{models.ApplicationStatusInterviewed, "Interviewed", "#6f42c1", true},
		{models.ApplicationStatusSelected, "Selected", "#28a745", true},
		{models.ApplicationStatusRejected, "Rejected", "#dc3545", true},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.label, StatusLabel(tc.status))
			assert.Equal(t, tc.color, StatusColor(tc.status))
			assert.Equal(t, tc.hasSteps, NextSteps(tc.status) != "")
		})
	}

	// Unknown statuses fall back to the neutral badge color
	assert.Equal(t, "#6c757d", StatusColor(models.ApplicationStatus("archived")))
}
