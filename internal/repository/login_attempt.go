package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	MaxLoginAttempts = 5
	LockoutDuration  = 15 * time.Minute
)

// LoginAttemptRepository tracks login attempts for lockout purposes
type LoginAttemptRepository interface {
	Create(ctx context.Context, userID uuid.UUID, successful bool, ipAddress string, createdAt time.Time) error
	GetRecentAttempts(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	ClearAttempts(ctx context.Context, userID uuid.UUID) error
}
