// Package reporting gates an error-reporting SDK on the application context.
//
// The Gate answers three questions from static Config plus two runtime facts,
// the current environment.Context and the account authenticated in a
// request context:
//
//   - ShouldEnable: is server-side reporting active here?
//   - ServerSettings: what does the SDK get on initialization?
//   - ClientSettings: what does the browser SDK get for this request?
//
// # Enablement
//
//	EnableForProduction  && Production  context
//	EnableForDevelopment && Development context
//	allowInTesting       && Testing     context
//
// Initialize evaluates ShouldEnable(false), so reporting is never enabled
// while the automated test suite boots the application.
//
// # Settings
//
// Server settings are the configured "rollbarSettings" plus "root",
// "environment" (lower-cased context name) and "person_fn", a PersonFunc the
// SDK adapter evaluates when a report is produced. Client settings are the
// configured "rollbarJsSettings" with "payload.environment" and
// "payload.person" set; the person is resolved when the payload is built.
//
// # SDK adapters
//
// The SDK interface is implemented by the rollbar and sentry subpackages and
// by NopSDK. Report and Flush are no-ops until InitOnce ran, so the host can
// report unconditionally.
//
// # Identity
//
// Identity resolution is best effort: any error or panic from the security
// context yields an empty person and is logged at debug level.
package reporting
