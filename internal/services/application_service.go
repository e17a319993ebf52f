package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"placeverse/internal/models"
	"placeverse/internal/notify"
	"placeverse/internal/storage"
	"placeverse/internal/transport/dto"

	"github.com/google/uuid"
)

type applicationService struct {
	appRepo  storage.ApplicationRepository
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
	notifier notify.Notifier
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(
	appRepo storage.ApplicationRepository,
	jobRepo storage.JobRepository,
	userRepo storage.UserRepository,
	notifier notify.Notifier,
) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// SubmitApplication creates a new application for a student against a job.
// Precondition order is fixed: job existence, job active, no prior
// application. Only then is the record created.
func (s *applicationService) SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	// 1. Fetch the job to check its state
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}

	// 2. State check: only active jobs accept applications
	if job.Status != models.JobStatusActive {
		log.Printf("SubmitApplication: Attempt to apply to non-active job %s (Status: %s)", job.ID, job.Status)
		return nil, fmt.Errorf("%w: job no longer accepting applications", ErrInvalidState)
	}

	// 3. Duplicate check. The unique index on (job_id, student_id) backstops
	// this for racing submissions; both paths surface as ErrConflict.
	_, err = s.appRepo.GetByJobAndStudent(ctx, req.JobID, req.StudentID)
	if err == nil {
		log.Printf("SubmitApplication: Student %s already applied to job %s", req.StudentID, req.JobID)
		return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking for existing application")
	}

	// 4. Create the application
	createReq := dto.CreateApplicationRequest{
		JobID:       req.JobID,
		StudentID:   req.StudentID,
		RecruiterID: job.RecruiterID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	}
	application, err := s.appRepo.Create(ctx, &createReq)
	if err != nil {
		log.Printf("SubmitApplication: Error creating application in repo: %v", err)
		return nil, mapRepoError(err, "creating application")
	}

	// 5. Bump the job's counter. The application is already committed, so a
	// failure here is logged and tolerated rather than unwinding the submit.
	if err := s.jobRepo.IncrementApplicationsCount(ctx, job.ID); err != nil {
		log.Printf("SubmitApplication: Failed to increment applications count for job %s: %v", job.ID, err)
	}

	// 6. Notifications, after all state changes
	s.notifySubmission(ctx, job, application)

	return application, nil
}

// notifySubmission sends the student confirmation and the recruiter alert.
// Failures are logged and swallowed; the application is already committed.
func (s *applicationService) notifySubmission(ctx context.Context, job *models.Job, application *models.Application) {
	student, err := s.userRepo.GetByID(ctx, application.StudentID)
	if err != nil {
		log.Printf("SubmitApplication: Failed to load student %s for notifications: %v", application.StudentID, err)
		return
	}

	if err := s.notifier.SendApplicationReceived(ctx, notify.ApplicationReceived{
		StudentName:  student.Name,
		StudentEmail: student.Email,
		JobTitle:     job.Title,
		Company:      job.Company,
		JobLocation:  job.Location,
		AppliedAt:    application.AppliedAt,
	}); err != nil {
		log.Printf("SubmitApplication: Failed to send confirmation email to %s: %v", student.Email, err)
	}

	recruiter, err := s.userRepo.GetByID(ctx, job.RecruiterID)
	if err != nil {
		log.Printf("SubmitApplication: Failed to load recruiter %s for notifications: %v", job.RecruiterID, err)
		return
	}

	var coverLetter, resumeURL string
	if application.CoverLetter != nil {
		coverLetter = *application.CoverLetter
	}
	if application.ResumeURL != nil {
		resumeURL = *application.ResumeURL
	}

	if err := s.notifier.SendNewApplicationAlert(ctx, notify.NewApplicationAlert{
		RecruiterName:  recruiter.Name,
		RecruiterEmail: recruiter.Email,
		StudentName:    student.Name,
		StudentEmail:   student.Email,
		JobTitle:       job.Title,
		AppliedAt:      application.AppliedAt,
		CoverLetter:    coverLetter,
		ResumeURL:      resumeURL,
	}); err != nil {
		log.Printf("SubmitApplication: Failed to send alert email to %s: %v", recruiter.Email, err)
	}
}

// UpdateStatus moves an application to a new status on behalf of a recruiter.
// Any known status may move to any other known status.
func (s *applicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	// 1. Status must be one of the six known values
	newStatus := models.ApplicationStatus(req.Status)
	if !newStatus.IsValid() {
		log.Printf("UpdateStatus: Invalid status %q for application %s", req.Status, req.ApplicationID)
		return nil, fmt.Errorf("%w: invalid application status %q", ErrValidation, req.Status)
	}

	// 2. Fetch the application
	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	// 3. Ownership check. A foreign recruiter gets NotFound, not Forbidden,
	// so application IDs cannot be probed across recruiters.
	if application.RecruiterID != req.RecruiterID {
		log.Printf("UpdateStatus: Recruiter %s attempted to update application %s owned by %s", req.RecruiterID, application.ID, application.RecruiterID)
		return nil, fmt.Errorf("%w: fetching application %s", ErrNotFound, req.ApplicationID)
	}

	previous := application.Status

	// 4. Persist the change. Notes and interview details ride along.
	updated, err := s.appRepo.UpdateStatus(ctx, &dto.SetApplicationStatusRequest{
		ID:             application.ID,
		Status:         newStatus,
		RecruiterNotes: req.RecruiterNotes,
		Interview:      req.Interview,
	})
	if err != nil {
		log.Printf("UpdateStatus: Error updating application %s: %v", application.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("updating application %s", application.ID))
	}

	// 5. Notify the student only on an actual status change
	if previous != newStatus {
		s.notifyStatusChange(ctx, updated)
	}

	return updated, nil
}

// notifyStatusChange sends the student-facing status email. Failures are
// logged and swallowed; the status change is already committed.
func (s *applicationService) notifyStatusChange(ctx context.Context, application *models.Application) {
	student, err := s.userRepo.GetByID(ctx, application.StudentID)
	if err != nil {
		log.Printf("UpdateStatus: Failed to load student %s for notification: %v", application.StudentID, err)
		return
	}
	job, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		log.Printf("UpdateStatus: Failed to load job %s for notification: %v", application.JobID, err)
		return
	}

	var notes string
	if application.RecruiterNotes != nil {
		notes = *application.RecruiterNotes
	}

	if err := s.notifier.SendStatusUpdate(ctx, notify.StatusUpdate{
		StudentName:    student.Name,
		StudentEmail:   student.Email,
		JobTitle:       job.Title,
		Company:        job.Company,
		NewStatus:      application.Status,
		RecruiterNotes: notes,
	}); err != nil {
		log.Printf("UpdateStatus: Failed to send status email to %s: %v", student.Email, err)
	}
}

// GetApplicationByID retrieves an application for its student or recruiter.
// Anyone else gets NotFound.
func (s *applicationService) GetApplicationByID(ctx context.Context, id, userID uuid.UUID) (*models.Application, error) {
	application, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", id))
	}

	if application.StudentID != userID && application.RecruiterID != userID {
		log.Printf("GetApplicationByID: User %s attempted to read application %s (Student: %s, Recruiter: %s)", userID, id, application.StudentID, application.RecruiterID)
		return nil, fmt.Errorf("%w: fetching application %s", ErrNotFound, id)
	}

	return application, nil
}

// ListApplicationsByStudent retrieves the requesting student's applications.
func (s *applicationService) ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Application, error) {
	applications, err := s.appRepo.ListByStudent(ctx, studentID)
	if err != nil {
		log.Printf("ListApplicationsByStudent: Error listing applications for student %s: %v", studentID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for student %s", studentID))
	}
	return applications, nil
}

// ListApplicationsByJob retrieves a job's applications for its owning recruiter.
func (s *applicationService) ListApplicationsByJob(ctx context.Context, jobID, recruiterID uuid.UUID) ([]models.Application, error) {
	// Ownership runs through the job; a foreign recruiter sees NotFound.
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for listing applications", jobID))
	}
	if job.RecruiterID != recruiterID {
		log.Printf("ListApplicationsByJob: Recruiter %s attempted to list applications for job %s owned by %s", recruiterID, jobID, job.RecruiterID)
		return nil, fmt.Errorf("%w: fetching job %s for listing applications", ErrNotFound, jobID)
	}

	applications, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		log.Printf("ListApplicationsByJob: Error listing applications for job %s: %v", jobID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for job %s", jobID))
	}
	return applications, nil
}

// ListApplicationsByRecruiter retrieves every application against the
// recruiter's jobs.
func (s *applicationService) ListApplicationsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error) {
	applications, err := s.appRepo.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		log.Printf("ListApplicationsByRecruiter: Error listing applications for recruiter %s: %v", recruiterID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for recruiter %s", recruiterID))
	}
	return applications, nil
}

// GetRecruiterStats aggregates the recruiter's applications by status.
func (s *applicationService) GetRecruiterStats(ctx context.Context, recruiterID uuid.UUID) (*models.ApplicationStats, error) {
	stats, err := s.appRepo.StatsByRecruiter(ctx, recruiterID)
	if err != nil {
		log.Printf("GetRecruiterStats: Error aggregating applications for recruiter %s: %v", recruiterID, err)
		return nil, mapRepoError(err, fmt.Sprintf("aggregating applications for recruiter %s", recruiterID))
	}
	return stats, nil
}
