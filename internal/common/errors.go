// Package common defines shared constants and sentinel errors used across
// Datarium components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Identity errors.
	ErrUnauthorized  = errors.New("unauthorized")
	ErrDuplicateUser = errors.New("username already registered")
	ErrNoActiveUser  = errors.New("no active user")

	// Validation errors (bad user input, rejected before any mutation).
	ErrValidation = errors.New("validation error")
)
