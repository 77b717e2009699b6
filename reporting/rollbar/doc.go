// Package rollbar implements reporting.SDK on top of rollbar-go.
//
// Recognized server settings:
//
//	access_token  required
//	environment   set by the gate
//	root          set by the gate
//	person_fn     set by the gate, evaluated for every report
//	code_version, host, endpoint, platform, enabled, custom, scrub_fields
package rollbar
