package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"placeverse/internal/api/handlers"
	"placeverse/internal/models"
	"placeverse/internal/services"
	"placeverse/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockApplicationService is a mock type for the services.ApplicationService interface
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) GetApplicationByID(ctx context.Context, id, userID uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Application, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationService) ListApplicationsByJob(ctx context.Context, jobID, recruiterID uuid.UUID) ([]models.Application, error) {
	args := m.Called(ctx, jobID, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationService) ListApplicationsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationService) GetRecruiterStats(ctx context.Context, recruiterID uuid.UUID) (*models.ApplicationStats, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApplicationStats), args.Error(1)
}

// Ensure MockApplicationService implements the interface (compile-time check)
var _ services.ApplicationService = (*MockApplicationService)(nil)

func setupApplicationRouter(service services.ApplicationService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := handlers.NewApplicationHandler(service, validator.New())

	// Stand-in for the auth middleware
	authed := func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("userRole", models.RoleStudent)
		c.Next()
	}

	router.POST("/jobs/:id/apply", authed, handler.SubmitApplication)
	router.PATCH("/applications/:id/status", authed, handler.UpdateStatus)
	router.GET("/applications/stats", authed, handler.GetRecruiterStats)

	return router
}

func TestSubmitApplication_Created(t *testing.T) {
	mockService := new(MockApplicationService)
	studentID := uuid.New()
	jobID := uuid.New()
	router := setupApplicationRouter(mockService, studentID)

	created := &models.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		StudentID:   studentID,
		RecruiterID: uuid.New(),
		Status:      models.ApplicationStatusPending,
	}

	mockService.On("SubmitApplication", mock.Anything, mock.MatchedBy(func(req *dto.SubmitApplicationRequest) bool {
		return req.JobID == jobID && req.StudentID == studentID
	})).Return(created, nil).Once()

	body := bytes.NewBufferString(`{"cover_letter":"Hi there"}`)
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/jobs/%s/apply", jobID), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)

	mockService.AssertExpectations(t)
}

func TestSubmitApplication_EmptyBodyAllowed(t *testing.T) {
	mockService := new(MockApplicationService)
	studentID := uuid.New()
	jobID := uuid.New()
	router := setupApplicationRouter(mockService, studentID)

	created := &models.Application{ID: uuid.New(), JobID: jobID, StudentID: studentID, Status: models.ApplicationStatusPending}
	mockService.On("SubmitApplication", mock.Anything, mock.Anything).Return(created, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/jobs/%s/apply", jobID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestSubmitApplication_Duplicate(t *testing.T) {
	mockService := new(MockApplicationService)
	router := setupApplicationRouter(mockService, uuid.New())

	mockService.On("SubmitApplication", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: already applied to this job", services.ErrConflict)).Once()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/jobs/%s/apply", uuid.New()), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already applied")
}

func TestSubmitApplication_JobClosed(t *testing.T) {
	mockService := new(MockApplicationService)
	router := setupApplicationRouter(mockService, uuid.New())

	mockService.On("SubmitApplication", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: job no longer accepting applications", services.ErrInvalidState)).Once()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/jobs/%s/apply", uuid.New()), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no longer accepting")
}

func TestSubmitApplication_InvalidJobID(t *testing.T) {
	mockService := new(MockApplicationService)
	router := setupApplicationRouter(mockService, uuid.New())

	req, _ := http.NewRequest(http.MethodPost, "/jobs/not-a-uuid/apply", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SubmitApplication")
}

func TestUpdateStatus_OK(t *testing.T) {
	mockService := new(MockApplicationService)
	recruiterID := uuid.New()
	appID := uuid.New()
	router := setupApplicationRouter(mockService, recruiterID)

	updated := &models.Application{ID: appID, RecruiterID: recruiterID, Status: models.ApplicationStatusShortlisted}

	mockService.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(req *dto.UpdateApplicationStatusRequest) bool {
		return req.ApplicationID == appID && req.RecruiterID == recruiterID && req.Status == "shortlisted"
	})).Return(updated, nil).Once()

	body := bytes.NewBufferString(`{"status":"shortlisted","recruiter_notes":"Strong profile"}`)
	req, _ := http.NewRequest(http.MethodPatch, fmt.Sprintf("/applications/%s/status", appID), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	mockService := new(MockApplicationService)
	router := setupApplicationRouter(mockService, uuid.New())

	mockService.On("UpdateStatus", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: invalid application status %q", services.ErrValidation, "approved")).Once()

	body := bytes.NewBufferString(`{"status":"approved"}`)
	req, _ := http.NewRequest(http.MethodPatch, fmt.Sprintf("/applications/%s/status", uuid.New()), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid application status")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	mockService := new(MockApplicationService)
	router := setupApplicationRouter(mockService, uuid.New())

	mockService.On("UpdateStatus", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: fetching application", services.ErrNotFound)).Once()

	body := bytes.NewBufferString(`{"status":"reviewing"}`)
	req, _ := http.NewRequest(http.MethodPatch, fmt.Sprintf("/applications/%s/status", uuid.New()), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecruiterStats_OK(t *testing.T) {
	mockService := new(MockApplicationService)
	recruiterID := uuid.New()
	router := setupApplicationRouter(mockService, recruiterID)

	stats := &models.ApplicationStats{
		Total: 5,
		ByStatus: map[models.ApplicationStatus]int{
			models.ApplicationStatusPending:  3,
			models.ApplicationStatusRejected: 2,
		},
	}
	mockService.On("GetRecruiterStats", mock.Anything, recruiterID).Return(stats, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/applications/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApplicationStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 3, resp.ByStatus["pending"])
}

func TestGetRecruiterStats_ServiceError(t *testing.T) {
	mockService := new(MockApplicationService)
	router := setupApplicationRouter(mockService, uuid.New())

	mockService.On("GetRecruiterStats", mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/applications/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
