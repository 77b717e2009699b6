// Package sentry implements reporting.SDK on top of sentry-go.
//
// The gate's server settings are read as follows: "dsn" is required,
// "environment" becomes the client environment, "root" is attached as the
// server_root tag and "person_fn" is resolved per report into the event
// user. "code_version" becomes the release and "host" the server name, the
// same keys the rollbar adapter reads; "release" and "server_name" are
// accepted when those are absent. "debug" and "sample_rate" map onto
// sentry.ClientOptions.
package sentry
