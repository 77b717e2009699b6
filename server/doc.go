// Package server is the errgate HTTP host.
//
// Routes:
//
//	GET /              demo page embedding the browser reporting snippet
//	GET /rollbar.json  browser payload as JSON (404 when disabled)
//	GET /healthz       gate decision for the current context
//
// Recovering from handler panics belongs to the host, not to the gate:
// the recovery middleware reports the panic at critical level through
// the SDK returned by reporting.Gate.SDK, logs it and answers 500.
package server
