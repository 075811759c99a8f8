package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrBackend            = errors.New("backend error")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// Session errors
var (
	ErrNoToken = errors.New("login response did not contain a token")
)
