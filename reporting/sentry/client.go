package sentry

import (
	"context"
	"fmt"
	"sync"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/spf13/cast"

	"github.com/aalemi-dev/errgate/observability"
	"github.com/aalemi-dev/errgate/reporting"
)

// Settings keys understood by the Sentry adapter, next to "root",
// "environment" and "person_fn".
const (
	KeyDSN         = "dsn"
	KeyCodeVersion = "code_version"
	KeyHost        = "host"
	KeyDebug       = "debug"
	KeySampleRate  = "sample_rate"

	// KeyRelease and KeyServerName are sentry's own names, read when
	// KeyCodeVersion and KeyHost are not set.
	KeyRelease    = "release"
	KeyServerName = "server_name"

	// TagServerRoot carries the "root" setting on every event.
	TagServerRoot = "server_root"
)

// DefaultFlushTimeout applies when Flush gets a context without deadline.
const DefaultFlushTimeout = 2 * time.Second

// Logger is the logging surface used by this package.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Client adapts sentry-go to reporting.SDK. It owns its hub and never
// touches sentry's global hub.
type Client struct {
	mu       sync.RWMutex
	hub      *sentrygo.Hub
	personFn reporting.PersonFunc

	beforeSend func(*sentrygo.Event, *sentrygo.EventHint) *sentrygo.Event

	logger   Logger
	observer observability.Observer
}

// NewClient returns an uninitialized Client.
func NewClient() *Client {
	return &Client{}
}

// InitOnce builds the sentry client and hub from settings. Later calls
// after a successful one are ignored.
func (c *Client) InitOnce(settings reporting.Settings, installExceptionHandler, installErrorHandler bool) error {
	if installExceptionHandler {
		return reporting.ErrUnsupportedHandler
	}

	start := time.Now()
	c.mu.Lock()
	if c.hub != nil {
		c.mu.Unlock()
		return nil
	}

	dsn := cast.ToString(settings[KeyDSN])
	if dsn == "" {
		c.mu.Unlock()
		c.observeOperation("init", "", start, ErrMissingDSN)
		return ErrMissingDSN
	}

	client, err := sentrygo.NewClient(sentrygo.ClientOptions{
		Dsn:              dsn,
		Environment:      cast.ToString(settings[reporting.KeyEnvironment]),
		Release:          firstString(settings, KeyCodeVersion, KeyRelease),
		ServerName:       firstString(settings, KeyHost, KeyServerName),
		Debug:            cast.ToBool(settings[KeyDebug]),
		SampleRate:       cast.ToFloat64(settings[KeySampleRate]),
		AttachStacktrace: true,
		BeforeSend:       c.beforeSend,
	})
	if err != nil {
		c.mu.Unlock()
		err = fmt.Errorf("sentry: create client: %w", err)
		c.observeOperation("init", "", start, err)
		return err
	}

	scope := sentrygo.NewScope()
	if root := cast.ToString(settings[reporting.KeyRoot]); root != "" {
		scope.SetTag(TagServerRoot, root)
	}
	c.hub = sentrygo.NewHub(client, scope)
	c.personFn = settings.PersonFn()
	c.mu.Unlock()

	if installErrorHandler {
		reporting.InstallLogHandler(c)
	}

	c.observeOperation("init", "", start, nil)
	if c.logger != nil {
		c.logger.InfoWithContext(context.Background(), "sentry client initialized", nil, map[string]interface{}{
			"environment": cast.ToString(settings[reporting.KeyEnvironment]),
		})
	}
	return nil
}

// firstString returns the first non-empty value among keys.
func firstString(settings reporting.Settings, keys ...string) string {
	for _, key := range keys {
		if v := cast.ToString(settings[key]); v != "" {
			return v
		}
	}
	return ""
}

// Report captures err on a clone of the hub so concurrent reports never
// share scope state.
func (c *Client) Report(ctx context.Context, level reporting.Level, err error, extras map[string]interface{}) {
	c.mu.RLock()
	hub, personFn := c.hub, c.personFn
	c.mu.RUnlock()

	if hub == nil || err == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	local := hub.Clone()
	local.ConfigureScope(func(scope *sentrygo.Scope) {
		scope.SetLevel(sentryLevel(level))
		if personFn != nil {
			if id := cast.ToString(personFn(ctx)[reporting.KeyPersonID]); id != "" {
				scope.SetUser(sentrygo.User{ID: id})
			}
		}
		if merged := reporting.MergeExtras(reporting.TraceExtras(ctx), extras); len(merged) > 0 {
			scope.SetExtras(merged)
		}
	})
	local.CaptureException(err)
	c.observeOperation("report", string(level), start, nil)
}

func sentryLevel(level reporting.Level) sentrygo.Level {
	switch level {
	case reporting.LevelCritical:
		return sentrygo.LevelFatal
	case reporting.LevelWarning:
		return sentrygo.LevelWarning
	case reporting.LevelInfo:
		return sentrygo.LevelInfo
	case reporting.LevelDebug:
		return sentrygo.LevelDebug
	default:
		return sentrygo.LevelError
	}
}

// Flush waits for buffered events until ctx's deadline, or
// DefaultFlushTimeout when ctx has none.
func (c *Client) Flush(ctx context.Context) error {
	c.mu.RLock()
	hub := c.hub
	c.mu.RUnlock()

	if hub == nil {
		return nil
	}

	timeout := DefaultFlushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !hub.Flush(timeout) {
		return ErrFlushTimeout
	}
	return nil
}

// Close flushes pending events. The hub stays usable.
func (c *Client) Close() error {
	return c.Flush(context.Background())
}

func (c *Client) observeOperation(operation, level string, start time.Time, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component: "sentry",
		Operation: operation,
		Resource:  level,
		Duration:  time.Since(start),
		Error:     err,
	})
}
