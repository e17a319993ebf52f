package services_test

import (
	"context"
	"errors"
	"testing"

	"placeverse/internal/mocks"
	"placeverse/internal/models"
	"placeverse/internal/services"
	"placeverse/internal/storage"
	"placeverse/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupJobServiceTest(t *testing.T) (context.Context, services.JobService, *mocks.MockJobRepository, *mocks.MockApplicationRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockJobRepo := mocks.NewMockJobRepository(ctrl)
	mockAppRepo := mocks.NewMockApplicationRepository(ctrl)
	jobService := services.NewJobService(mockJobRepo, mockAppRepo)
	ctx := context.Background()
	return ctx, jobService, mockJobRepo, mockAppRepo, ctrl
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	req := &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme Corp",
		Location:    "Bangalore",
		Description: "Build things",
		RecruiterID: recruiterID,
	}
	expectedJob := &models.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Status:      models.JobStatusActive,
		RecruiterID: recruiterID,
	}

	mockJobRepo.EXPECT().Create(ctx, req).Return(expectedJob, nil).Times(1)

	job, err := jobService.CreateJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expectedJob, job)
}

func TestJobService_CreateJob_RepoError(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	req := &dto.CreateJobRequest{Title: "Backend Engineer", RecruiterID: uuid.New()}
	repoErr := errors.New("db connection failed")

	mockJobRepo.EXPECT().Create(ctx, req).Return(nil, repoErr).Times(1)

	_, err := jobService.CreateJob(ctx, req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating job")
}

func TestJobService_GetJobByID_BumpsViews(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	stored := &models.Job{ID: jobID, Title: "Backend Engineer", Views: 7}

	mockJobRepo.EXPECT().GetByID(ctx, jobID).Return(stored, nil).Times(1)
	mockJobRepo.EXPECT().IncrementViews(ctx, jobID).Return(nil).Times(1)

	job, err := jobService.GetJobByID(ctx, jobID)

	require.NoError(t, err)
	assert.Equal(t, 8, job.Views)
}

func TestJobService_GetJobByID_ViewBumpFailureTolerated(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	stored := &models.Job{ID: jobID, Title: "Backend Engineer", Views: 7}

	mockJobRepo.EXPECT().GetByID(ctx, jobID).Return(stored, nil).Times(1)
	mockJobRepo.EXPECT().IncrementViews(ctx, jobID).Return(errors.New("db timeout")).Times(1)

	job, err := jobService.GetJobByID(ctx, jobID)

	require.NoError(t, err)
	assert.Equal(t, 7, job.Views)
}

func TestJobService_GetJobByID_NotFound(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	mockJobRepo.EXPECT().GetByID(ctx, jobID).Return(nil, storage.ErrNotFound).Times(1)

	_, err := jobService.GetJobByID(ctx, jobID)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestJobService_ListJobs_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	req := &dto.ListJobsRequest{Search: "engineer", Limit: 10}
	expected := []models.Job{{ID: uuid.New(), Title: "Backend Engineer"}}

	mockJobRepo.EXPECT().List(ctx, req).Return(expected, nil).Times(1)

	jobs, err := jobService.ListJobs(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expected, jobs)
}

func TestJobService_UpdateJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	jobID := uuid.New()
	existing := &models.Job{ID: jobID, RecruiterID: recruiterID, Status: models.JobStatusActive}
	newTitle := "Senior Backend Engineer"
	req := &dto.UpdateJobRequest{ID: jobID, UserID: recruiterID, Title: &newTitle}
	updated := &models.Job{ID: jobID, RecruiterID: recruiterID, Title: newTitle}

	mockJobRepo.EXPECT().GetByID(ctx, jobID).Return(existing, nil).Times(1)
	mockJobRepo.EXPECT().Update(ctx, req).Return(updated, nil).Times(1)

	job, err := jobService.UpdateJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updated, job)
}

func TestJobService_UpdateJob_ForeignRecruiterGetsNotFound(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	existing := &models.Job{ID: jobID, RecruiterID: uuid.New()}
	req := &dto.UpdateJobRequest{ID: jobID, UserID: uuid.New()}

	mockJobRepo.EXPECT().GetByID(ctx, jobID).Return(existing, nil).Times(1)

	_, err := jobService.UpdateJob(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.NotErrorIs(t, err, services.ErrForbidden)
}

func TestJobService_DeleteJob_CascadesApplicationsFirst(t *testing.T) {
	ctx, jobService, mockJobRepo, mockAppRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	jobID := uuid.New()
	existing := &models.Job{ID: jobID, RecruiterID: recruiterID}

	mockJobRepo.EXPECT().GetByID(ctx, jobID).Return(existing, nil).Times(1)
	// Applications must go before the job so no orphan survives
	gomock.InOrder(
		mockAppRepo.EXPECT().DeleteByJob(ctx, jobID).Return(nil).Times(1),
		mockJobRepo.EXPECT().Delete(ctx, jobID).Return(nil).Times(1),
	)

	err := jobService.DeleteJob(ctx, &dto.DeleteJobRequest{ID: jobID, UserID: recruiterID})

	require.NoError(t, err)
}

func TestJobService_DeleteJob_ForeignRecruiterGetsNotFound(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	existing := &models.Job{ID: jobID, RecruiterID: uuid.New()}

	mockJobRepo.EXPECT().GetByID(ctx, jobID).Return(existing, nil).Times(1)

	err := jobService.DeleteJob(ctx, &dto.DeleteJobRequest{ID: jobID, UserID: uuid.New()})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestJobService_DeleteJob_ApplicationCascadeFailureAborts(t *testing.T) {
	ctx, jobService, mockJobRepo, mockAppRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	jobID := uuid.New()
	existing := &models.Job{ID: jobID, RecruiterID: recruiterID}

	mockJobRepo.EXPECT().GetByID(ctx, jobID).Return(existing, nil).Times(1)
	mockAppRepo.EXPECT().DeleteByJob(ctx, jobID).Return(errors.New("db timeout")).Times(1)
	// Job delete must not be attempted

	err := jobService.DeleteJob(ctx, &dto.DeleteJobRequest{ID: jobID, UserID: recruiterID})

	require.Error(t, err)
}
