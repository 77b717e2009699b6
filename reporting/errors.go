package reporting

import "errors"

var (
	// ErrIdentityLookup wraps failures of the security collaborator. It is
	// only ever logged and observed, never returned to callers.
	ErrIdentityLookup = errors.New("identity lookup failed")

	// ErrSDKInit wraps an error returned by SDK.InitOnce.
	ErrSDKInit = errors.New("reporting SDK initialization failed")

	// ErrUnsupportedHandler is returned by adapters asked to install a
	// process-wide exception handler, which Go does not have.
	ErrUnsupportedHandler = errors.New("exception handler installation is not supported")

	// ErrUnknownProvider is returned for an unrecognized Config.Provider.
	ErrUnknownProvider = errors.New("unknown reporting provider")
)
