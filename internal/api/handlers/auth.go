package handlers

import (
	"errors"
	"log"
	"net/http"

	"placeverse/internal/api/middleware"
	"placeverse/internal/services"
	"placeverse/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler holds dependencies for identity operations.
type AuthHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validate,
	}
}

// Compile-time check to ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

// Register godoc
//	@Summary		Register a new user
//	@Description	Creates a student, recruiter or admin account. Role is fixed at registration.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.RegisterRequest	true	"Registration payload"
//	@Success		201		{object}	dto.UserResponse	"User created successfully"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid payload"
//	@Failure		409		{object}	map[string]string	"Conflict - Email already registered"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		} else {
			log.Printf("Register: Error registering user %s: %v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, services.ToUserResponse(user))
}

// Login godoc
//	@Summary		Log in
//	@Description	Verifies credentials and returns the user with an access/refresh token pair.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Login payload"
//	@Success		200			{object}	dto.AuthResponse	"Authenticated"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid payload"
//	@Failure		401			{object}	map[string]string	"Unauthorized - Invalid credentials"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	user, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		} else {
			log.Printf("Login: Error logging in %s: %v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:         services.ToUserResponse(user),
		Token:        accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh godoc
//	@Summary		Refresh tokens
//	@Description	Rotates a refresh token and returns a new access/refresh token pair.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		dto.RefreshRequest	true	"Refresh payload"
//	@Success		200		{object}	map[string]string	"New token pair"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid payload"
//	@Failure		401		{object}	map[string]string	"Unauthorized - Unknown or expired refresh token"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	accessToken, refreshToken, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		} else {
			log.Printf("Refresh: Error refreshing tokens: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh tokens"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

// Logout godoc
//	@Summary		Log out
//	@Description	Invalidates the presented refresh token. Idempotent.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		dto.LogoutRequest	true	"Logout payload"
//	@Success		200		{object}	map[string]string	"Logged out"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid payload"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/logout [post]
//	@Security		BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Logout: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		log.Printf("Logout: Error logging out user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me godoc
//	@Summary		Get the authenticated user
//	@Description	Returns the profile of the currently authenticated user.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponse	"Authenticated user"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/me [get]
//	@Security		BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Me: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Me: Error fetching user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	c.JSON(http.StatusOK, services.ToUserResponse(user))
}

// UpdateProfile godoc
//	@Summary		Update the authenticated user's profile
//	@Description	Overwrites the free-form profile blob. Email and role stay fixed.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		dto.UpdateProfileRequest	true	"Profile payload"
//	@Success		200		{object}	dto.UserResponse			"Updated user"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid payload"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/auth/me/profile [put]
//	@Security		BearerAuth
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("UpdateProfile: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		validationErrors := formatValidationErrors(err.(validator.ValidationErrors))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("UpdateProfile: Error updating profile for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, services.ToUserResponse(user))
}
