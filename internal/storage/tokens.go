package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore persists refresh tokens with a TTL. A missing or expired
// token surfaces as ErrNotFound.
type RefreshTokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}
