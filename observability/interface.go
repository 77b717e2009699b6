package observability

import "time"

// Observer receives an event for every operation performed by an errgate
// component (the reporting gate, SDK adapters, the security context).
//
// Components work without an observer; the metrics package provides the
// standard implementation.
type Observer interface {
	// ObserveOperation is called when an operation completes.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component identifies the emitting package.
	// Examples: "reporting", "rollbar", "sentry", "security"
	Component string

	// Operation describes what was performed.
	// Examples:
	//   reporting: "resolve_identity", "initialize"
	//   adapters:  "init", "report", "flush"
	//   security:  "authenticate"
	Operation string

	// Resource identifies what the operation acted on, such as the
	// application context name or the report level.
	Resource string

	// SubResource adds optional detail, e.g. the SDK provider name.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error produced by the operation, if any.
	// Swallowed errors (identity resolution) are still reported here.
	Error error

	// Size is an optional payload size, such as the number of settings keys.
	Size int64

	// Metadata carries operation-specific extras.
	// Example: {"enabled": true, "allow_in_testing": false}
	Metadata map[string]interface{}
}
