package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"placeverse/internal/models"
	"placeverse/internal/storage"
	"placeverse/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccessClaims is the JWT payload for access tokens. Role rides along so the
// middleware can gate recruiter and admin routes without a user lookup.
type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type userService struct {
	repo              storage.UserRepository
	tokens            storage.RefreshTokenStore
	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	repo storage.UserRepository,
	tokens storage.RefreshTokenStore,
	jwtSecret string,
	jwtExpiration, refreshExpiration time.Duration,
) UserService {
	return &userService{
		repo:              repo,
		tokens:            tokens,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		refreshExpiration: refreshExpiration,
	}
}

// Register creates a new user with a hashed password.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register: Error hashing password for %s: %v", req.Email, err)
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &dto.CreateUserRequest{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("Register: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns the user with a fresh token pair.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Refresh rotates a refresh token and returns a new token pair. The old
// token is invalidated even if the caller discards the new pair.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error) {
	userID, err := s.tokens.Get(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Refresh attempt with unknown or expired token")
			return "", "", ErrInvalidCredentials
		}
		log.Printf("Error looking up refresh token: %v", err)
		return "", "", fmt.Errorf("internal error validating refresh token: %w", err)
	}

	if err := s.tokens.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("Error deleting rotated refresh token for user %s: %v", userID, err)
		return "", "", fmt.Errorf("internal error rotating refresh token: %w", err)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching user %s during token refresh: %v", userID, err)
		return "", "", fmt.Errorf("internal error during token refresh: %w", err)
	}

	return s.issueTokenPair(ctx, user)
}

// Logout invalidates a refresh token. Deleting an unknown token succeeds;
// logout is idempotent.
func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.tokens.Delete(ctx, req.RefreshToken); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("Error deleting refresh token during logout for user %s: %v", req.UserID, err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its ID.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", id))
	}
	return user, nil
}

// UpdateProfile overwrites the user's profile blob.
func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repo.UpdateProfile(ctx, req.UserID, req.Profile)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating profile for user %s", req.UserID))
	}
	return user, nil
}

// issueTokenPair signs a new access token and stores a new refresh token.
func (s *userService) issueTokenPair(ctx context.Context, user *models.User) (string, string, error) {
	now := time.Now()
	claims := &AccessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return "", "", fmt.Errorf("failed to generate login token: %w", err)
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		log.Printf("Error generating refresh token for user %s: %v", user.Email, err)
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokens.Save(ctx, refreshToken, user.ID, s.refreshExpiration); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", user.Email, err)
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
