package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a stored refresh token
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginAttempt represents a login attempt
type LoginAttempt struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Success   bool      `json:"success"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}
