package security

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aalemi-dev/errgate/observability"
)

type contextKey struct{}

// requestState marks a context as initialized; account stays nil for
// anonymous requests.
type requestState struct {
	account *Account
}

// RequestContext is the context.Context-backed implementation of Context.
// Its Middleware initializes the security context of every request and
// authenticates bearer tokens when a TokenSecret is configured.
type RequestContext struct {
	authenticator *TokenAuthenticator
	logger        Logger
	observer      observability.Observer
}

// NewRequestContext creates a RequestContext from cfg.
func NewRequestContext(cfg Config) *RequestContext {
	r := &RequestContext{}
	if cfg.TokenSecret != "" {
		r.authenticator = NewTokenAuthenticator([]byte(cfg.TokenSecret), cfg.TokenIssuer)
	}
	return r
}

// Initialize marks ctx as carrying an initialized, anonymous security
// context. Already initialized contexts are returned unchanged.
func Initialize(ctx context.Context) context.Context {
	if _, ok := ctx.Value(contextKey{}).(*requestState); ok {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, &requestState{})
}

// WithAccount returns an initialized context authenticated as account.
func WithAccount(ctx context.Context, account *Account) context.Context {
	return context.WithValue(ctx, contextKey{}, &requestState{account: account})
}

// CurrentAccount implements Context.
func (r *RequestContext) CurrentAccount(ctx context.Context) (*Account, error) {
	if ctx == nil {
		return nil, ErrNotInitialized
	}
	state, ok := ctx.Value(contextKey{}).(*requestState)
	if !ok {
		return nil, ErrNotInitialized
	}
	return state.account, nil
}

// Middleware initializes the security context for each request and attaches
// the account of a valid "Authorization: Bearer" token. Requests with a
// missing or invalid token continue anonymously; rejecting them is left to
// the handlers.
func (r *RequestContext) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := Initialize(req.Context())

		if token := bearerToken(req); token != "" && r.authenticator != nil {
			start := time.Now()
			account, err := r.authenticator.Authenticate(token)
			r.observeOperation(start, err)
			if err != nil {
				r.logDebug(ctx, "bearer token rejected", err)
			} else {
				ctx = WithAccount(ctx, account)
			}
		}

		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func bearerToken(req *http.Request) string {
	header := req.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func (r *RequestContext) observeOperation(start time.Time, err error) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveOperation(observability.OperationContext{
		Component: "security",
		Operation: "authenticate",
		Resource:  "bearer",
		Duration:  time.Since(start),
		Error:     err,
	})
}

func (r *RequestContext) logDebug(ctx context.Context, msg string, err error) {
	if r.logger != nil {
		r.logger.DebugWithContext(ctx, msg, err)
	}
}
