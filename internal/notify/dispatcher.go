package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
)

//go:embed templates/*.html
var templateFS embed.FS

const emailDateFormat = "Jan 2, 2006"

// Dispatcher renders email templates and hands them to a Mailer. Each content
// template is wrapped in the shared base layout before sending.
type Dispatcher struct {
	mailer      Mailer
	fromName    string
	frontendURL string
	templates   *template.Template
}

// NewDispatcher parses the embedded templates and returns a ready dispatcher.
// A parse failure is a construction error, not a per-send one.
func NewDispatcher(mailer Mailer, fromName, frontendURL string) (*Dispatcher, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &Dispatcher{
		mailer:      mailer,
		fromName:    fromName,
		frontendURL: frontendURL,
		templates:   tmpl,
	}, nil
}

// Compile-time check to ensure Dispatcher implements Notifier
var _ Notifier = (*Dispatcher)(nil)

// Verify checks the mail transport is reachable.
func (d *Dispatcher) Verify(ctx context.Context) error {
	return d.mailer.Verify(ctx)
}

// send renders the named content template, wraps it in the base layout and
// delivers the result. A missing template is a hard error for this attempt.
func (d *Dispatcher) send(ctx context.Context, to, subject, templateName string, data interface{}) error {
	var content bytes.Buffer
	if err := d.templates.ExecuteTemplate(&content, templateName, data); err != nil {
		return fmt.Errorf("failed to render email template %s: %w", templateName, err)
	}

	var body bytes.Buffer
	err := d.templates.ExecuteTemplate(&body, "base.html", struct {
		Subject  string
		FromName string
		Content  template.HTML
	}{
		Subject:  subject,
		FromName: d.fromName,
		Content:  template.HTML(content.String()),
	})
	if err != nil {
		return fmt.Errorf("failed to render base email template: %w", err)
	}

	if err := d.mailer.Send(ctx, to, subject, body.String()); err != nil {
		return err
	}

	log.Printf("Email sent successfully to %s: %s", to, subject)
	return nil
}

// SendApplicationReceived confirms to the student that their application is in.
func (d *Dispatcher) SendApplicationReceived(ctx context.Context, p ApplicationReceived) error {
	subject := fmt.Sprintf("Application Received: %s", p.JobTitle)
	return d.send(ctx, p.StudentEmail, subject, "application_received.html", struct {
		StudentName     string
		JobTitle        string
		CompanyName     string
		JobLocation     string
		ApplicationDate string
		DashboardURL    string
	}{
		StudentName:     p.StudentName,
		JobTitle:        p.JobTitle,
		CompanyName:     p.Company,
		JobLocation:     p.JobLocation,
		ApplicationDate: p.AppliedAt.Format(emailDateFormat),
		DashboardURL:    d.frontendURL + "/student/applications",
	})
}

// SendNewApplicationAlert notifies the recruiter who owns the job.
func (d *Dispatcher) SendNewApplicationAlert(ctx context.Context, p NewApplicationAlert) error {
	coverLetter := p.CoverLetter
	if coverLetter == "" {
		coverLetter = "No cover letter provided"
	}

	subject := fmt.Sprintf("New Application: %s", p.JobTitle)
	return d.send(ctx, p.RecruiterEmail, subject, "new_application_alert.html", struct {
		RecruiterName   string
		ApplicantName   string
		ApplicantEmail  string
		JobTitle        string
		ApplicationDate string
		CoverLetter     string
		ResumeURL       string
		ApplicationsURL string
	}{
		RecruiterName:   p.RecruiterName,
		ApplicantName:   p.StudentName,
		ApplicantEmail:  p.StudentEmail,
		JobTitle:        p.JobTitle,
		ApplicationDate: p.AppliedAt.Format(emailDateFormat),
		CoverLetter:     coverLetter,
		ResumeURL:       p.ResumeURL,
		ApplicationsURL: d.frontendURL + "/recruiter/applications",
	})
}

// SendStatusUpdate tells the student their application moved to a new status.
func (d *Dispatcher) SendStatusUpdate(ctx context.Context, p StatusUpdate) error {
	subject := fmt.Sprintf("Application Update: %s", p.JobTitle)
	return d.send(ctx, p.StudentEmail, subject, "status_update.html", struct {
		StudentName    string
		JobTitle       string
		CompanyName    string
		NewStatus      string
		StatusColor    string
		RecruiterNotes string
		NextSteps      string
		DashboardURL   string
	}{
		StudentName:    p.StudentName,
		JobTitle:       p.JobTitle,
		CompanyName:    p.Company,
		NewStatus:      StatusLabel(p.NewStatus),
		StatusColor:    StatusColor(p.NewStatus),
		RecruiterNotes: p.RecruiterNotes,
		NextSteps:      NextSteps(p.NewStatus),
		DashboardURL:   d.frontendURL + "/student/applications",
	})
}
