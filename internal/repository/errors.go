package repository

import "errors"

var (
	// Common errors
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")

	// Token errors
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)
