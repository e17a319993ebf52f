package dto

import (
	"encoding/json"
	"time"

	"placeverse/internal/models"

	"github.com/google/uuid"
)

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=student recruiter admin"`
}

// CreateUserRequest is used internally by the user service after hashing.
type CreateUserRequest struct {
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         models.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	UserID       uuid.UUID `json:"-"`
	RefreshToken string    `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest carries the role-specific profile blob. The blob is
// validated at the API boundary per role; the store treats it as opaque JSON.
type UpdateProfileRequest struct {
	UserID  uuid.UUID       `json:"-" validate:"required"`
	Profile json.RawMessage `json:"profile" validate:"required"`
}

type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.Role     `json:"role"`
	Profile   json.RawMessage `json:"profile,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
}
