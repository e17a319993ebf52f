package services

import (
	"context"
	"fmt"
	"log"

	"placeverse/internal/models"
	"placeverse/internal/storage"
	"placeverse/internal/transport/dto"

	"github.com/google/uuid"
)

type jobService struct {
	jobRepo storage.JobRepository
	appRepo storage.ApplicationRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, appRepo storage.ApplicationRepository) JobService {
	return &jobService{
		jobRepo: jobRepo,
		appRepo: appRepo,
	}
}

// CreateJob saves a new posting owned by the requesting recruiter.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		log.Printf("CreateJob: Error creating job for recruiter %s: %v", req.RecruiterID, err)
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

// GetJobByID retrieves a job and bumps its view counter. The counter update
// is best-effort; a failed bump never hides the job.
func (s *jobService) GetJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", id))
	}

	if err := s.jobRepo.IncrementViews(ctx, id); err != nil {
		log.Printf("GetJobByID: Failed to increment views for job %s: %v", id, err)
	} else {
		job.Views++
	}

	return job, nil
}

// ListJobs retrieves active jobs matching the public search filters.
func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(ctx, req)
	if err != nil {
		log.Printf("ListJobs: Error listing jobs: %v", err)
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

// ListJobsByRecruiter retrieves the requesting recruiter's own postings,
// drafts and closed jobs included.
func (s *jobService) ListJobsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		log.Printf("ListJobsByRecruiter: Error listing jobs for recruiter %s: %v", recruiterID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing jobs for recruiter %s", recruiterID))
	}
	return jobs, nil
}

// UpdateJob modifies a posting. A recruiter who does not own the job gets
// NotFound, not Forbidden.
func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for update", req.ID))
	}
	if job.RecruiterID != req.UserID {
		log.Printf("UpdateJob: Recruiter %s attempted to update job %s owned by %s", req.UserID, req.ID, job.RecruiterID)
		return nil, fmt.Errorf("%w: fetching job %s for update", ErrNotFound, req.ID)
	}

	updated, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		log.Printf("UpdateJob: Error updating job %s: %v", req.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("updating job %s", req.ID))
	}
	return updated, nil
}

// DeleteJob removes a posting and every application referencing it. The
// applications go first so no orphaned application survives the job.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching job %s for deletion", req.ID))
	}
	if job.RecruiterID != req.UserID {
		log.Printf("DeleteJob: Recruiter %s attempted to delete job %s owned by %s", req.UserID, req.ID, job.RecruiterID)
		return fmt.Errorf("%w: fetching job %s for deletion", ErrNotFound, req.ID)
	}

	if err := s.appRepo.DeleteByJob(ctx, req.ID); err != nil {
		log.Printf("DeleteJob: Error deleting applications for job %s: %v", req.ID, err)
		return mapRepoError(err, fmt.Sprintf("deleting applications for job %s", req.ID))
	}

	if err := s.jobRepo.Delete(ctx, req.ID); err != nil {
		log.Printf("DeleteJob: Error deleting job %s: %v", req.ID, err)
		return mapRepoError(err, fmt.Sprintf("deleting job %s", req.ID))
	}

	log.Printf("Job %s deleted by recruiter %s", req.ID, req.UserID)
	return nil
}
