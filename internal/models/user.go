package models

import (
	"time"

	"github.com/google/uuid"
)

// User types. Anything at or above UserTypeAdmin passes the admin gate.
const (
	UserTypeStandard = 0
	UserTypeAdmin    = 1
)

// User represents a user in the system
type User struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	Type        int        `json:"type"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsAdmin returns true if the user carries an admin-level type
func (u *User) IsAdmin() bool {
	return u.Type >= UserTypeAdmin
}

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"john@doe.com"`
	Password string `json:"password" binding:"required,min=8" example:"mypassword123"`
}
