package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aalemi-dev/errgate/environment"
	"github.com/aalemi-dev/errgate/observability"
	"github.com/aalemi-dev/errgate/security"
)

// Gate decides whether error reporting is active for the current
// application context and builds the server-side and browser-side settings
// payloads.
//
// Every method is a fresh evaluation over immutable configuration and the
// collaborators, so a single Gate can be shared across goroutines.
type Gate struct {
	cfg      Config
	env      environment.Provider
	security security.Context
	sdk      SDK
	logger   Logger
	observer observability.Observer
}

// NewGate creates a Gate. A nil sdk is replaced by NopSDK; a nil security
// context makes every identity lookup resolve to no identity.
//
// Example:
//
//	gate := reporting.NewGate(cfg, env, sec, rollbar.NewClient())
//	if err := gate.Initialize(ctx); err != nil {
//	    log.Error("reporting unavailable", err)
//	}
func NewGate(cfg Config, env environment.Provider, sec security.Context, sdk SDK) *Gate {
	if sdk == nil {
		sdk = NewNopSDK()
	}
	return &Gate{
		cfg:      cfg,
		env:      env,
		security: sec,
		sdk:      sdk,
	}
}

// ShouldEnable reports whether server-side reporting is active:
//
//	(EnableForProduction  && production context)  ||
//	(EnableForDevelopment && development context) ||
//	(allowInTesting       && testing context)
//
// allowInTesting separates an interactive run under the Testing context
// (true) from initialization while the automated test suite runs (false).
// It only reads the environment; the decision is observed by Initialize.
func (g *Gate) ShouldEnable(allowInTesting bool) bool {
	return g.cfg.EnableForProduction && g.env.IsProduction() ||
		g.cfg.EnableForDevelopment && g.env.IsDevelopment() ||
		allowInTesting && g.env.IsTesting()
}

// IsEnabledForFrontend reports whether the browser payload should be rendered.
func (g *Gate) IsEnabledForFrontend() bool {
	return g.cfg.EnableForFrontend
}

// EnvironmentName is the lower-cased full context name, e.g. "production/staging".
func (g *Gate) EnvironmentName() string {
	return strings.ToLower(g.env.CurrentContext().String())
}

// ServerSettings returns a copy of the configured server settings with:
//   - "root": the application root without trailing slashes
//   - "environment": EnvironmentName()
//   - "person_fn": a PersonFunc that resolves the identity when a report is
//     produced, not now
func (g *Gate) ServerSettings() Settings {
	s := copySettings(g.cfg.ServerSettings)
	s[KeyRoot] = strings.TrimRight(g.env.RootPath(), "/")
	s[KeyEnvironment] = g.EnvironmentName()
	s[KeyPersonFn] = PersonFunc(g.ResolveIdentity)
	return s
}

// ClientSettings returns a copy of the configured browser settings with
// "payload.environment" and "payload.person" set. The person is resolved
// from ctx immediately. All other keys, nested ones included, are kept; a
// missing or non-map "payload" is replaced by a new map.
func (g *Gate) ClientSettings(ctx context.Context) Settings {
	s := copySettings(g.cfg.ClientSettings)

	payload, ok := asMap(s[KeyPayload])
	if !ok {
		payload = make(map[string]interface{})
		s[KeyPayload] = payload
	}
	payload[KeyEnvironment] = g.EnvironmentName()
	payload[KeyPerson] = g.ResolveIdentity(ctx)

	return s
}

// ResolveIdentity returns {"id": <account identifier>} for the account
// authenticated in ctx, or an empty map. It never fails.
func (g *Gate) ResolveIdentity(ctx context.Context) map[string]interface{} {
	account := g.TryResolveIdentity(ctx)
	if account == nil {
		return map[string]interface{}{}
	}
	return map[string]interface{}{KeyPersonID: account.Identifier}
}

// TryResolveIdentity returns the account authenticated in ctx or nil.
//
// Every failure of the security collaborator, panics included, is treated
// as "no identity": an uninitialized security context (CLI execution) must
// never break report generation. The failure is logged at debug level.
func (g *Gate) TryResolveIdentity(ctx context.Context) (account *security.Account) {
	start := time.Now()
	var err error

	defer func() {
		if r := recover(); r != nil {
			account = nil
			err = fmt.Errorf("%w: panic: %v", ErrIdentityLookup, r)
		}
		if err != nil {
			g.logDebug(ctx, "no identity for report", err)
		}
		g.observeOperation("resolve_identity", start, err, map[string]interface{}{
			"authenticated": account != nil,
		})
	}()

	if g.security == nil {
		return nil
	}

	account, err = g.security.CurrentAccount(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrIdentityLookup, err)
		return nil
	}
	return account
}

// Initialize initializes the SDK with ServerSettings when ShouldEnable(false)
// holds, declining the SDK's own exception and error handlers. Otherwise it
// does nothing and the SDK stays a no-op.
//
// Only an SDK initialization failure is returned.
func (g *Gate) Initialize(ctx context.Context) error {
	start := time.Now()
	fields := map[string]interface{}{
		"environment": g.EnvironmentName(),
		"provider":    g.cfg.ProviderName(),
	}

	if !g.ShouldEnable(false) {
		g.logInfo(ctx, "error reporting disabled for this environment", fields)
		g.observeOperation("initialize", start, nil, map[string]interface{}{"enabled": false})
		return nil
	}

	var err error
	if initErr := g.sdk.InitOnce(g.ServerSettings(), false, false); initErr != nil {
		err = fmt.Errorf("%w: %w", ErrSDKInit, initErr)
	}
	g.observeOperation("initialize", start, err, map[string]interface{}{"enabled": err == nil})
	if err != nil {
		return err
	}

	g.logInfo(ctx, "error reporting initialized", fields)
	return nil
}

// SDK returns the SDK the gate initializes.
func (g *Gate) SDK() SDK {
	return g.sdk
}
