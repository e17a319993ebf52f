package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"placeverse/internal/mocks"
	"placeverse/internal/models"
	"placeverse/internal/notify"
	"placeverse/internal/services"
	"placeverse/internal/storage"
	"placeverse/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Helper to create a pointer to a string
func ptrString(s string) *string { return &s }

func setupApplicationServiceTest(t *testing.T) (context.Context, services.ApplicationService, *mocks.MockApplicationRepository, *mocks.MockJobRepository, *mocks.MockUserRepository, *mocks.MockNotifier, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockAppRepo := mocks.NewMockApplicationRepository(ctrl)
	mockJobRepo := mocks.NewMockJobRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)
	svc := services.NewApplicationService(mockAppRepo, mockJobRepo, mockUserRepo, mockNotifier)
	ctx := context.Background()
	return ctx, svc, mockAppRepo, mockJobRepo, mockUserRepo, mockNotifier, ctrl
}

func activeJob(recruiterID uuid.UUID) *models.Job {
	return &models.Job{
		ID:          uuid.New(),
		Title:       "Backend Engineer",
		Company:     "Acme Corp",
		Location:    "Bangalore",
		Status:      models.JobStatusActive,
		RecruiterID: recruiterID,
	}
}

func TestApplicationService_SubmitApplication_Success(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockUserRepo, mockNotifier, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	studentID := uuid.New()
	job := activeJob(recruiterID)
	req := &dto.SubmitApplicationRequest{
		JobID:       job.ID,
		StudentID:   studentID,
		CoverLetter: ptrString("I am very interested."),
	}

	createdApp := &models.Application{
		ID:          uuid.New(),
		JobID:       job.ID,
		StudentID:   studentID,
		RecruiterID: recruiterID,
		Status:      models.ApplicationStatusPending,
		CoverLetter: req.CoverLetter,
		AppliedAt:   time.Now(),
	}
	student := &models.User{ID: studentID, Name: "Asha", Email: "asha@example.com", Role: models.RoleStudent}
	recruiter := &models.User{ID: recruiterID, Name: "Ravi", Email: "ravi@acme.example.com", Role: models.RoleRecruiter}

	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockAppRepo.EXPECT().GetByJobAndStudent(ctx, job.ID, studentID).Return(nil, storage.ErrNotFound).Times(1)
	mockAppRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, createReq *dto.CreateApplicationRequest) (*models.Application, error) {
			// RecruiterID must be denormalized from the job owner
			assert.Equal(t, recruiterID, createReq.RecruiterID)
			assert.Equal(t, studentID, createReq.StudentID)
			return createdApp, nil
		}).Times(1)
	mockJobRepo.EXPECT().IncrementApplicationsCount(ctx, job.ID).Return(nil).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, studentID).Return(student, nil).Times(1)
	mockNotifier.EXPECT().SendApplicationReceived(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p notify.ApplicationReceived) error {
			assert.Equal(t, "asha@example.com", p.StudentEmail)
			assert.Equal(t, "Backend Engineer", p.JobTitle)
			assert.Equal(t, "Acme Corp", p.Company)
			return nil
		}).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, recruiterID).Return(recruiter, nil).Times(1)
	mockNotifier.EXPECT().SendNewApplicationAlert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p notify.NewApplicationAlert) error {
			assert.Equal(t, "ravi@acme.example.com", p.RecruiterEmail)
			assert.Equal(t, "Asha", p.StudentName)
			assert.Equal(t, "I am very interested.", p.CoverLetter)
			return nil
		}).Times(1)

	app, err := svc.SubmitApplication(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, createdApp, app)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
}

func TestApplicationService_SubmitApplication_JobNotFound(t *testing.T) {
	ctx, svc, _, mockJobRepo, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	mockJobRepo.EXPECT().GetByID(ctx, jobID).Return(nil, storage.ErrNotFound).Times(1)

	_, err := svc.SubmitApplication(ctx, &dto.SubmitApplicationRequest{JobID: jobID, StudentID: uuid.New()})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestApplicationService_SubmitApplication_JobNotActive(t *testing.T) {
	ctx, svc, _, mockJobRepo, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	job := activeJob(uuid.New())
	job.Status = models.JobStatusClosed

	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)

	_, err := svc.SubmitApplication(ctx, &dto.SubmitApplicationRequest{JobID: job.ID, StudentID: uuid.New()})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidState)
	assert.Contains(t, err.Error(), "no longer accepting applications")
}

func TestApplicationService_SubmitApplication_Duplicate(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	studentID := uuid.New()
	job := activeJob(uuid.New())
	existing := &models.Application{ID: uuid.New(), JobID: job.ID, StudentID: studentID}

	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockAppRepo.EXPECT().GetByJobAndStudent(ctx, job.ID, studentID).Return(existing, nil).Times(1)

	_, err := svc.SubmitApplication(ctx, &dto.SubmitApplicationRequest{JobID: job.ID, StudentID: studentID})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Contains(t, err.Error(), "already applied")
}

func TestApplicationService_SubmitApplication_DuplicateRace(t *testing.T) {
	// A racing submission can slip past the pre-check and hit the unique
	// index instead. The repo surfaces that as ErrConflict too.
	ctx, svc, mockAppRepo, mockJobRepo, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	studentID := uuid.New()
	job := activeJob(uuid.New())

	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockAppRepo.EXPECT().GetByJobAndStudent(ctx, job.ID, studentID).Return(nil, storage.ErrNotFound).Times(1)
	mockAppRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, storage.ErrConflict).Times(1)

	_, err := svc.SubmitApplication(ctx, &dto.SubmitApplicationRequest{JobID: job.ID, StudentID: studentID})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestApplicationService_SubmitApplication_CountBumpFailureTolerated(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockUserRepo, mockNotifier, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	studentID := uuid.New()
	job := activeJob(recruiterID)
	createdApp := &models.Application{ID: uuid.New(), JobID: job.ID, StudentID: studentID, RecruiterID: recruiterID, Status: models.ApplicationStatusPending}
	student := &models.User{ID: studentID, Name: "Asha", Email: "asha@example.com"}
	recruiter := &models.User{ID: recruiterID, Name: "Ravi", Email: "ravi@acme.example.com"}

	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockAppRepo.EXPECT().GetByJobAndStudent(ctx, job.ID, studentID).Return(nil, storage.ErrNotFound).Times(1)
	mockAppRepo.EXPECT().Create(ctx, gomock.Any()).Return(createdApp, nil).Times(1)
	mockJobRepo.EXPECT().IncrementApplicationsCount(ctx, job.ID).Return(errors.New("db timeout")).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, studentID).Return(student, nil).Times(1)
	mockNotifier.EXPECT().SendApplicationReceived(ctx, gomock.Any()).Return(nil).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, recruiterID).Return(recruiter, nil).Times(1)
	mockNotifier.EXPECT().SendNewApplicationAlert(ctx, gomock.Any()).Return(nil).Times(1)

	app, err := svc.SubmitApplication(ctx, &dto.SubmitApplicationRequest{JobID: job.ID, StudentID: studentID})

	require.NoError(t, err)
	assert.Equal(t, createdApp, app)
}

func TestApplicationService_SubmitApplication_NotificationFailureTolerated(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockUserRepo, mockNotifier, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	studentID := uuid.New()
	job := activeJob(recruiterID)
	createdApp := &models.Application{ID: uuid.New(), JobID: job.ID, StudentID: studentID, RecruiterID: recruiterID, Status: models.ApplicationStatusPending}
	student := &models.User{ID: studentID, Name: "Asha", Email: "asha@example.com"}
	recruiter := &models.User{ID: recruiterID, Name: "Ravi", Email: "ravi@acme.example.com"}

	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockAppRepo.EXPECT().GetByJobAndStudent(ctx, job.ID, studentID).Return(nil, storage.ErrNotFound).Times(1)
	mockAppRepo.EXPECT().Create(ctx, gomock.Any()).Return(createdApp, nil).Times(1)
	mockJobRepo.EXPECT().IncrementApplicationsCount(ctx, job.ID).Return(nil).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, studentID).Return(student, nil).Times(1)
	// The confirmation email fails, the recruiter alert must still be attempted
	mockNotifier.EXPECT().SendApplicationReceived(ctx, gomock.Any()).Return(errors.New("smtp down")).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, recruiterID).Return(recruiter, nil).Times(1)
	mockNotifier.EXPECT().SendNewApplicationAlert(ctx, gomock.Any()).Return(errors.New("smtp down")).Times(1)

	app, err := svc.SubmitApplication(ctx, &dto.SubmitApplicationRequest{JobID: job.ID, StudentID: studentID})

	require.NoError(t, err)
	assert.Equal(t, createdApp, app)
}

func TestApplicationService_UpdateStatus_InvalidStatus(t *testing.T) {
	ctx, svc, _, _, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	_, err := svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
		ApplicationID: uuid.New(),
		RecruiterID:   uuid.New(),
		Status:        "approved", // not a known status
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	ctx, svc, mockAppRepo, _, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	appID := uuid.New()
	mockAppRepo.EXPECT().GetByID(ctx, appID).Return(nil, storage.ErrNotFound).Times(1)

	_, err := svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
		ApplicationID: appID,
		RecruiterID:   uuid.New(),
		Status:        string(models.ApplicationStatusReviewing),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestApplicationService_UpdateStatus_ForeignRecruiterGetsNotFound(t *testing.T) {
	ctx, svc, mockAppRepo, _, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	owner := uuid.New()
	application := &models.Application{ID: uuid.New(), RecruiterID: owner, Status: models.ApplicationStatusPending}

	mockAppRepo.EXPECT().GetByID(ctx, application.ID).Return(application, nil).Times(1)

	_, err := svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
		ApplicationID: application.ID,
		RecruiterID:   uuid.New(), // not the owner
		Status:        string(models.ApplicationStatusReviewing),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.NotErrorIs(t, err, services.ErrForbidden)
}

func TestApplicationService_UpdateStatus_NotifiesOnChange(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockUserRepo, mockNotifier, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	studentID := uuid.New()
	job := activeJob(recruiterID)
	application := &models.Application{ID: uuid.New(), JobID: job.ID, StudentID: studentID, RecruiterID: recruiterID, Status: models.ApplicationStatusPending}
	updated := &models.Application{ID: application.ID, JobID: job.ID, StudentID: studentID, RecruiterID: recruiterID, Status: models.ApplicationStatusShortlisted, RecruiterNotes: ptrString("Strong profile")}
	student := &models.User{ID: studentID, Name: "Asha", Email: "asha@example.com"}

	mockAppRepo.EXPECT().GetByID(ctx, application.ID).Return(application, nil).Times(1)
	mockAppRepo.EXPECT().UpdateStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, setReq *dto.SetApplicationStatusRequest) (*models.Application, error) {
			assert.Equal(t, models.ApplicationStatusShortlisted, setReq.Status)
			assert.Equal(t, "Strong profile", *setReq.RecruiterNotes)
			return updated, nil
		}).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, studentID).Return(student, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockNotifier.EXPECT().SendStatusUpdate(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p notify.StatusUpdate) error {
			assert.Equal(t, models.ApplicationStatusShortlisted, p.NewStatus)
			assert.Equal(t, "Strong profile", p.RecruiterNotes)
			return nil
		}).Times(1)

	result, err := svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
		ApplicationID:  application.ID,
		RecruiterID:    recruiterID,
		Status:         string(models.ApplicationStatusShortlisted),
		RecruiterNotes: ptrString("Strong profile"),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, result)
}

func TestApplicationService_UpdateStatus_SameStatusSkipsNotification(t *testing.T) {
	ctx, svc, mockAppRepo, _, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	application := &models.Application{ID: uuid.New(), JobID: uuid.New(), StudentID: uuid.New(), RecruiterID: recruiterID, Status: models.ApplicationStatusReviewing}
	updated := &models.Application{ID: application.ID, RecruiterID: recruiterID, Status: models.ApplicationStatusReviewing, RecruiterNotes: ptrString("still reviewing")}

	mockAppRepo.EXPECT().GetByID(ctx, application.ID).Return(application, nil).Times(1)
	mockAppRepo.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(updated, nil).Times(1)
	// No notifier or user lookups expected: the status did not change

	result, err := svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
		ApplicationID:  application.ID,
		RecruiterID:    recruiterID,
		Status:         string(models.ApplicationStatusReviewing),
		RecruiterNotes: ptrString("still reviewing"),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, result)
}

func TestApplicationService_UpdateStatus_NotificationFailureTolerated(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockUserRepo, mockNotifier, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	studentID := uuid.New()
	job := activeJob(recruiterID)
	application := &models.Application{ID: uuid.New(), JobID: job.ID, StudentID: studentID, RecruiterID: recruiterID, Status: models.ApplicationStatusPending}
	updated := &models.Application{ID: application.ID, JobID: job.ID, StudentID: studentID, RecruiterID: recruiterID, Status: models.ApplicationStatusRejected}

	mockAppRepo.EXPECT().GetByID(ctx, application.ID).Return(application, nil).Times(1)
	mockAppRepo.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(updated, nil).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, studentID).Return(&models.User{ID: studentID, Email: "asha@example.com"}, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockNotifier.EXPECT().SendStatusUpdate(ctx, gomock.Any()).Return(errors.New("smtp down")).Times(1)

	result, err := svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
		ApplicationID: application.ID,
		RecruiterID:   recruiterID,
		Status:        string(models.ApplicationStatusRejected),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, result)
}

func TestApplicationService_GetApplicationByID_Participant(t *testing.T) {
	ctx, svc, mockAppRepo, _, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	studentID := uuid.New()
	application := &models.Application{ID: uuid.New(), StudentID: studentID, RecruiterID: uuid.New()}

	mockAppRepo.EXPECT().GetByID(ctx, application.ID).Return(application, nil).Times(2)

	// Student can read it
	result, err := svc.GetApplicationByID(ctx, application.ID, studentID)
	require.NoError(t, err)
	assert.Equal(t, application, result)

	// Recruiter can read it
	result, err = svc.GetApplicationByID(ctx, application.ID, application.RecruiterID)
	require.NoError(t, err)
	assert.Equal(t, application, result)
}

func TestApplicationService_GetApplicationByID_StrangerGetsNotFound(t *testing.T) {
	ctx, svc, mockAppRepo, _, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	application := &models.Application{ID: uuid.New(), StudentID: uuid.New(), RecruiterID: uuid.New()}

	mockAppRepo.EXPECT().GetByID(ctx, application.ID).Return(application, nil).Times(1)

	_, err := svc.GetApplicationByID(ctx, application.ID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestApplicationService_ListApplicationsByJob_ForeignRecruiterGetsNotFound(t *testing.T) {
	ctx, svc, _, mockJobRepo, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	job := activeJob(uuid.New())
	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)

	_, err := svc.ListApplicationsByJob(ctx, job.ID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestApplicationService_ListApplicationsByJob_Success(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	job := activeJob(recruiterID)
	expected := []models.Application{{ID: uuid.New(), JobID: job.ID, RecruiterID: recruiterID}}

	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockAppRepo.EXPECT().ListByJob(ctx, job.ID).Return(expected, nil).Times(1)

	apps, err := svc.ListApplicationsByJob(ctx, job.ID, recruiterID)

	require.NoError(t, err)
	assert.Equal(t, expected, apps)
}

func TestApplicationService_GetRecruiterStats(t *testing.T) {
	ctx, svc, mockAppRepo, _, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	recruiterID := uuid.New()
	stats := &models.ApplicationStats{
		Total: 3,
		ByStatus: map[models.ApplicationStatus]int{
			models.ApplicationStatusPending:     2,
			models.ApplicationStatusShortlisted: 1,
		},
	}

	mockAppRepo.EXPECT().StatsByRecruiter(ctx, recruiterID).Return(stats, nil).Times(1)

	result, err := svc.GetRecruiterStats(ctx, recruiterID)

	require.NoError(t, err)
	assert.Equal(t, stats, result)
}
