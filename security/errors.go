package security

import "errors"

var (
	// ErrNotInitialized is returned by CurrentAccount when ctx never went
	// through the security middleware, e.g. in command-line execution.
	ErrNotInitialized = errors.New("security context not initialized")

	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("invalid bearer token")

	// ErrMissingSubject is returned when a valid token carries no subject.
	ErrMissingSubject = errors.New("token subject is required")
)
