package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
	UpdateProfile(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	GetJobByID(c *gin.Context)
	ListJobs(c *gin.Context)
	ListMyJobs(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	SubmitApplication(c *gin.Context)
	UpdateStatus(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ListMyApplications(c *gin.Context)
	ListApplicationsByJob(c *gin.Context)
	ListRecruiterApplications(c *gin.Context)
	GetRecruiterStats(c *gin.Context)
}

// UploadHandlerInterface defines the methods needed by the upload routes.
type UploadHandlerInterface interface {
	PresignResumeUpload(c *gin.Context)
	PresignResumeDownload(c *gin.Context)
}
