package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited indicates a client exceeded the allowed request rate.
	ErrRateLimited = errors.New("rate limited")

	// ErrContentUnavailable indicates no content source is configured or
	// the configured one could not be read.
	ErrContentUnavailable = errors.New("content unavailable")

	// ErrUnsupportedKind indicates an unknown searchable record kind.
	ErrUnsupportedKind = errors.New("unsupported record kind")
)
