package environment

import "errors"

var (
	// ErrInvalidContext is returned when a context name does not start with
	// Production, Development or Testing.
	ErrInvalidContext = errors.New("invalid application context")

	// ErrRootPath is returned when the application root cannot be determined.
	ErrRootPath = errors.New("cannot determine application root path")
)
