// Package common contains shared constants and sentinel errors used across
// the console and server halves of the application. Callers should match
// these values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Transport / auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Generic internal failure.
	ErrInternal = errors.New("internal error")
)
