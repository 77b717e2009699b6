package rollbar

import (
	"context"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	rb "github.com/rollbar/rollbar-go"
	"github.com/spf13/cast"

	"github.com/aalemi-dev/errgate/observability"
	"github.com/aalemi-dev/errgate/reporting"
)

// Settings keys understood by the Rollbar adapter, next to "root",
// "environment" and "person_fn".
const (
	KeyAccessToken = "access_token"
	KeyCodeVersion = "code_version"
	KeyHost        = "host"
	KeyEndpoint    = "endpoint"
	KeyPlatform    = "platform"
	KeyEnabled     = "enabled"
	KeyCustom      = "custom"
	KeyScrubFields = "scrub_fields"
)

// Logger is the logging surface used by this package.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Client adapts rollbar-go to reporting.SDK.
//
// Until InitOnce succeeds, Report and Flush do nothing.
type Client struct {
	mu       sync.RWMutex
	client   *rb.Client
	personFn reporting.PersonFunc

	// drain is closed when the in-flight queue wait finishes.
	drainMu sync.Mutex
	drain   chan struct{}

	logger   Logger
	observer observability.Observer
}

// NewClient returns an uninitialized Client.
func NewClient() *Client {
	return &Client{}
}

// InitOnce creates the underlying rollbar-go client from settings.
// Subsequent calls after a successful one are ignored. Rollbar has no
// process-wide exception hook in Go, so installExceptionHandler must be
// false; installErrorHandler tees the standard library logger into Rollbar.
func (c *Client) InitOnce(settings reporting.Settings, installExceptionHandler, installErrorHandler bool) error {
	if installExceptionHandler {
		return reporting.ErrUnsupportedHandler
	}

	start := time.Now()
	c.mu.Lock()
	if c.client != nil {
		c.mu.Unlock()
		return nil
	}

	token := cast.ToString(settings[KeyAccessToken])
	if token == "" {
		c.mu.Unlock()
		c.observeOperation("init", "", start, ErrMissingAccessToken)
		return ErrMissingAccessToken
	}

	c.client = newRollbarClient(token, settings)
	c.personFn = settings.PersonFn()
	c.mu.Unlock()

	if installErrorHandler {
		reporting.InstallLogHandler(c)
	}

	c.observeOperation("init", "", start, nil)
	if c.logger != nil {
		c.logger.InfoWithContext(context.Background(), "rollbar client initialized", nil, map[string]interface{}{
			"environment": cast.ToString(settings[reporting.KeyEnvironment]),
		})
	}
	return nil
}

func newRollbarClient(token string, settings reporting.Settings) *rb.Client {
	host := cast.ToString(settings[KeyHost])
	if host == "" {
		host, _ = os.Hostname()
	}

	client := rb.New(
		token,
		cast.ToString(settings[reporting.KeyEnvironment]),
		cast.ToString(settings[KeyCodeVersion]),
		host,
		cast.ToString(settings[reporting.KeyRoot]),
	)

	if endpoint := cast.ToString(settings[KeyEndpoint]); endpoint != "" {
		client.SetEndpoint(endpoint)
	}
	if platform := cast.ToString(settings[KeyPlatform]); platform != "" {
		client.SetPlatform(platform)
	}
	if custom, ok := settings[KeyCustom]; ok {
		client.SetCustom(cast.ToStringMap(custom))
	}
	if fields := cast.ToStringSlice(settings[KeyScrubFields]); len(fields) > 0 {
		client.SetScrubFields(scrubPattern(fields))
	}
	if enabled, ok := settings[KeyEnabled]; ok {
		client.SetEnabled(cast.ToBool(enabled))
	}
	return client
}

// scrubPattern matches any of fields, case-insensitively.
func scrubPattern(fields []string) *regexp.Regexp {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = regexp.QuoteMeta(f)
	}
	return regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
}

// Report sends err to Rollbar. The person is resolved through "person_fn"
// against ctx now, at report time.
func (c *Client) Report(ctx context.Context, level reporting.Level, err error, extras map[string]interface{}) {
	c.mu.RLock()
	client, personFn := c.client, c.personFn
	c.mu.RUnlock()

	if client == nil || err == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	if personFn != nil {
		if id := cast.ToString(personFn(ctx)[reporting.KeyPersonID]); id != "" {
			ctx = rb.NewPersonContext(ctx, &rb.Person{Id: id})
		}
	}

	client.ErrorWithExtrasAndContext(ctx, string(level), err, reporting.MergeExtras(reporting.TraceExtras(ctx), extras))
	c.observeOperation("report", string(level), start, nil)
}

// Flush waits for the asynchronous queue to drain or ctx to end.
//
// rollbar-go's Wait cannot be cancelled, so when ctx ends first the wait
// keeps running in the background until the queue drains. Concurrent and
// repeated Flush calls share that one wait.
func (c *Client) Flush(ctx context.Context) error {
	c.mu.RLock()
	client := c.client
	c.mu.RUnlock()

	if client == nil {
		return nil
	}

	select {
	case <-c.drained(client):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) drained(client *rb.Client) <-chan struct{} {
	c.drainMu.Lock()
	defer c.drainMu.Unlock()

	if c.drain == nil {
		done := make(chan struct{})
		c.drain = done
		go func() {
			client.Wait()
			c.drainMu.Lock()
			c.drain = nil
			c.drainMu.Unlock()
			close(done)
		}()
	}
	return c.drain
}

// Close shuts the underlying client down. It blocks until queued items are
// sent; bound it with Flush first.
func (c *Client) Close() error {
	c.mu.RLock()
	client := c.client
	c.mu.RUnlock()

	if client == nil {
		return nil
	}
	return client.Close()
}

func (c *Client) observeOperation(operation, level string, start time.Time, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component: "rollbar",
		Operation: operation,
		Resource:  level,
		Duration:  time.Since(start),
		Error:     err,
	})
}
