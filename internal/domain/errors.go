package domain

import "errors"

// Sentinel errors for the failure taxonomy. Services and repositories wrap
// these with context; the HTTP layer maps them to status codes.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")

	// ErrAlreadyClaimed signals a lost claim race: the request was no longer
	// pending at the moment of the conditional update. It is a normal
	// outcome, not a server error.
	ErrAlreadyClaimed = errors.New("request already claimed")
)
