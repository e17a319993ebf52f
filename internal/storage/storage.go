package storage

import (
	"context"
	"placeverse/internal/models"
	"placeverse/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, profile []byte) (*models.User, error)
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementApplicationsCount bumps the derived applications counter by one.
	IncrementApplicationsCount(ctx context.Context, id uuid.UUID) error
	// IncrementViews bumps the derived views counter by one.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	GetByJobAndStudent(ctx context.Context, jobID, studentID uuid.UUID) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error)
	UpdateStatus(ctx context.Context, req *dto.SetApplicationStatusRequest) (*models.Application, error)
	StatsByRecruiter(ctx context.Context, recruiterID uuid.UUID) (*models.ApplicationStats, error)

	// DeleteByJob removes every application referencing jobID. Used by the job
	// catalog's delete cascade; no orphaned applications may survive a job.
	DeleteByJob(ctx context.Context, jobID uuid.UUID) error
}
