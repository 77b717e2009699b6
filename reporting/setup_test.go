package reporting

import (
	"context"
	"errors"
	"sync"

	"github.com/aalemi-dev/errgate/environment"
	"github.com/aalemi-dev/errgate/observability"
	"github.com/aalemi-dev/errgate/security"
)

// fakeEnvironment is a fixed environment.Provider.
type fakeEnvironment struct {
	context environment.Context
	root    string
}

func newFakeEnvironment(name, root string) fakeEnvironment {
	return fakeEnvironment{context: environment.MustParseContext(name), root: root}
}

func (f fakeEnvironment) CurrentContext() environment.Context { return f.context }
func (f fakeEnvironment) IsProduction() bool                  { return f.context.IsProduction() }
func (f fakeEnvironment) IsDevelopment() bool                 { return f.context.IsDevelopment() }
func (f fakeEnvironment) IsTesting() bool                     { return f.context.IsTesting() }
func (f fakeEnvironment) RootPath() string                    { return f.root }

// fakeSecurity returns a fixed account or error, or panics.
type fakeSecurity struct {
	account *security.Account
	err     error
	panics  interface{}
}

func (f fakeSecurity) CurrentAccount(context.Context) (*security.Account, error) {
	if f.panics != nil {
		panic(f.panics)
	}
	return f.account, f.err
}

// recordingSDK records InitOnce calls.
type recordingSDK struct {
	mu      sync.Mutex
	inits   []recordedInit
	reports []recordedReport
	initErr error
}

type recordedInit struct {
	settings                Settings
	installExceptionHandler bool
	installErrorHandler     bool
}

type recordedReport struct {
	level Level
	err   error
}

func (r *recordingSDK) InitOnce(settings Settings, exc, errh bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inits = append(r.inits, recordedInit{settings, exc, errh})
	return r.initErr
}

func (r *recordingSDK) Report(_ context.Context, level Level, err error, _ map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, recordedReport{level, err})
}

func (r *recordingSDK) Flush(context.Context) error { return nil }
func (r *recordingSDK) Close() error                { return nil }

func (r *recordingSDK) initCalls() []recordedInit {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedInit(nil), r.inits...)
}

// TestObserver collects operation events.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) byOperation(name string) []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []observability.OperationContext
	for _, op := range t.operations {
		if op.Operation == name {
			out = append(out, op)
		}
	}
	return out
}

var errLookup = errors.New("security context not initialized")
