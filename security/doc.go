// Package security resolves the account authenticated for the current
// request.
//
// The security context lives in context.Context. RequestContext.Middleware
// initializes it for every HTTP request and, when a token secret is
// configured, authenticates HMAC-signed JWT bearer tokens:
//
//	sec := security.NewRequestContext(security.Config{TokenSecret: "s3cret"})
//	handler := sec.Middleware(mux)
//
//	// inside a handler
//	account, err := sec.CurrentAccount(r.Context())
//
// Contexts that never passed through the middleware (CLI commands,
// background jobs) yield ErrNotInitialized; anonymous requests yield a nil
// account and no error.
package security
