package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRefreshFailed      = errors.New("token refresh failed")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
