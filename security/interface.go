package security

import "context"

// Account is the authenticated principal of a request.
type Account struct {
	// Identifier uniquely identifies the account; it is what error reports
	// carry as the person id.
	Identifier string

	Roles []string

	// AuthenticatedBy names the mechanism that authenticated the account,
	// e.g. "bearer".
	AuthenticatedBy string
}

// Context gives access to the account authenticated for the current request.
type Context interface {
	// CurrentAccount returns the authenticated account carried by ctx.
	// It returns (nil, nil) when the security context is initialized but no
	// account is authenticated, and ErrNotInitialized when ctx never went
	// through request handling.
	CurrentAccount(ctx context.Context) (*Account, error)
}
