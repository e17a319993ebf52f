package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placeverse/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshTokenPrefix = "refresh_token:"

// TokenStore keeps refresh tokens in Redis, keyed by the token itself with
// the owning user ID as value. Expiry is delegated to Redis TTLs.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a new TokenStore.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Compile-time check to ensure TokenStore implements RefreshTokenStore
var _ storage.RefreshTokenStore = (*TokenStore)(nil)

// Save stores the token with the given TTL.
func (s *TokenStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshTokenPrefix+token, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Get returns the user ID the token belongs to. Missing and expired tokens
// both surface as storage.ErrNotFound.
func (s *TokenStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, refreshTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, storage.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed user ID stored for refresh token: %w", err)
	}
	return userID, nil
}

// Delete removes the token. Deleting an unknown token is not an error.
func (s *TokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, refreshTokenPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
