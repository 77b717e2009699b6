package sentry

import "errors"

var (
	// ErrMissingDSN is returned by InitOnce when the settings carry no "dsn".
	ErrMissingDSN = errors.New("sentry: dsn is required")

	// ErrFlushTimeout is returned by Flush when buffered events were not
	// delivered in time.
	ErrFlushTimeout = errors.New("sentry: flush timed out")
)
