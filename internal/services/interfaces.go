package services

import (
	"context"

	"placeverse/internal/models"
	"placeverse/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for identity and profile business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error) // Returns user, access token, refresh token
	Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
}

// JobService defines the interface for job catalog business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	ListJobsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the interface for application engine business logic.
type ApplicationService interface {
	SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	GetApplicationByID(ctx context.Context, id, userID uuid.UUID) (*models.Application, error)
	ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID, recruiterID uuid.UUID) ([]models.Application, error)
	ListApplicationsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error)
	GetRecruiterStats(ctx context.Context, recruiterID uuid.UUID) (*models.ApplicationStats, error)
}
