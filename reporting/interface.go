package reporting

import "context"

// Level is the severity of a report.
type Level string

const (
	LevelCritical Level = "critical"
	LevelError    Level = "error"
	LevelWarning  Level = "warning"
	LevelInfo     Level = "info"
	LevelDebug    Level = "debug"
)

// SDK is the error-reporting client the gate initializes.
//
// Report and Flush must be safe no-ops until InitOnce succeeded, so the
// host can report unconditionally whether or not the gate enabled the SDK.
type SDK interface {
	// InitOnce configures the SDK from settings. Only the first call has an
	// effect. The install flags ask the SDK to take over process-wide
	// error/exception handling; the gate always passes false because the
	// host owns those handlers.
	InitOnce(settings Settings, installExceptionHandler, installErrorHandler bool) error

	// Report sends err with the given level and extras. The person is taken
	// from the "person_fn" setting, evaluated against ctx at report time.
	Report(ctx context.Context, level Level, err error, extras map[string]interface{})

	// Flush blocks until queued reports are sent or ctx is done.
	Flush(ctx context.Context) error

	// Close flushes and releases the SDK.
	Close() error
}
