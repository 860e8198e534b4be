package shared

import "errors"

var (
	// common errors
	ErrNotFound = errors.New("not found")

	// auth-specific errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrUserExists   = errors.New("user already exists")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
