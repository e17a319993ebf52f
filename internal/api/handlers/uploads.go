package handlers

import (
	"log"
	"net/http"

	"placeverse/internal/api/middleware"
	"placeverse/internal/uploads"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UploadHandler hands out presigned URLs for resume files. Files go straight
// to object storage; the API never proxies their bytes.
type UploadHandler struct {
	store     uploads.ResumeStore
	validator *validator.Validate
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store uploads.ResumeStore, validate *validator.Validate) *UploadHandler {
	return &UploadHandler{
		store:     store,
		validator: validate,
	}
}

// Compile-time check to ensure UploadHandler implements UploadHandlerInterface
var _ UploadHandlerInterface = (*UploadHandler)(nil)

type presignUploadRequest struct {
	Filename string `json:"filename" validate:"required,max=255"`
}

// PresignResumeUpload godoc
//	@Summary		Request a resume upload URL
//	@Description	Returns a presigned PUT URL the student uploads their resume to, plus the object key to reference it by.
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Param			file	body		presignUploadRequest	true	"Filename"
//	@Success		200		{object}	map[string]string		"Presigned upload URL and object key"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid payload"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/uploads/resume [post]
//	@Security		BearerAuth
func (h *UploadHandler) PresignResumeUpload(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("PresignResumeUpload: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req presignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	key, url, err := h.store.PresignUpload(c.Request.Context(), userID, req.Filename)
	if err != nil {
		log.Printf("PresignResumeUpload: Error presigning upload for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":        key,
		"upload_url": url,
	})
}

// PresignResumeDownload godoc
//	@Summary		Request a resume download URL
//	@Description	Returns a presigned GET URL for a stored resume key.
//	@Tags			uploads
//	@Produce		json
//	@Param			key	query		string				true	"Resume object key"
//	@Success		200	{object}	map[string]string	"Presigned download URL"
//	@Failure		400	{object}	map[string]string	"Bad Request - Missing key"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/uploads/resume [get]
//	@Security		BearerAuth
func (h *UploadHandler) PresignResumeDownload(c *gin.Context) {
	if _, err := middleware.GetUserIDFromContext(c); err != nil {
		log.Printf("PresignResumeDownload: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'key' is required"})
		return
	}

	url, err := h.store.PresignDownload(c.Request.Context(), key)
	if err != nil {
		log.Printf("PresignResumeDownload: Error presigning download for key %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare download"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"download_url": url})
}
