package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"runtime/debug"

	"github.com/aalemi-dev/errgate/frontend"
	"github.com/aalemi-dev/errgate/metrics"
	"github.com/aalemi-dev/errgate/reporting"
	"github.com/aalemi-dev/errgate/security"
	"github.com/aalemi-dev/errgate/tracer"
)

// Logger is the logging surface used by this package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>errgate</title>
{{.Snippet}}
</head>
<body>
<h1>errgate</h1>
<p>environment: {{.Environment}}</p>
<p>server reporting: {{.Server}}</p>
<p>frontend reporting: {{.Frontend}}</p>
</body>
</html>
`))

// Server is the HTTP host. Every request runs inside a trace span, gets a
// security context and is protected by a recovery handler that reports
// panics through the gate's SDK.
type Server struct {
	cfg      Config
	gate     *reporting.Gate
	renderer *frontend.Renderer
	security *security.RequestContext

	tracer   tracer.Tracer
	logger   Logger
	requests metrics.Counter
	panics   metrics.Counter

	http *http.Server
	mux  *http.ServeMux
}

// NewServer registers the routes. Tracing, metrics and logging are
// attached with the fx module when available.
func NewServer(cfg Config, gate *reporting.Gate, renderer *frontend.Renderer, sec *security.RequestContext) *Server {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	s := &Server{
		cfg:      cfg,
		gate:     gate,
		renderer: renderer,
		security: sec,
		mux:      http.NewServeMux(),
	}

	s.handle("GET /{$}", http.HandlerFunc(s.index))
	s.handle("GET /healthz", http.HandlerFunc(s.health))
	s.handle("GET /rollbar.json", renderer.Handler())

	s.http = &http.Server{Addr: cfg.Address, Handler: s.Handler()}
	return s
}

// instrument attaches the optional collaborators and rebuilds the handler chain.
func (s *Server) instrument(tr tracer.Tracer, collector metrics.MetricsCollector, logger Logger) {
	s.tracer = tr
	s.logger = logger
	if collector != nil {
		s.requests = collector.CreateCounter("http_requests_total", "HTTP requests served.", []string{"method", "route"})
		s.panics = collector.CreateCounter("http_recovered_panics_total", "Handler panics recovered and reported.", []string{"route"})
	}
	s.http.Handler = s.Handler()
}

// Handle registers an extra route on the host.
func (s *Server) Handle(pattern string, h http.Handler) {
	s.handle(pattern, h)
}

func (s *Server) handle(pattern string, h http.Handler) {
	s.mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.requests != nil {
			s.requests.WithLabelValues(r.Method, pattern).Inc()
		}
		h.ServeHTTP(w, r)
	}))
}

// Handler returns tracing → security → recovery → routes.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.recoverer(s.mux)
	if s.security != nil {
		h = s.security.Middleware(h)
	}
	if s.tracer != nil {
		h = s.tracer.Middleware(h)
	}
	return h
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			cause, ok := rec.(error)
			if !ok {
				cause = fmt.Errorf("%v", rec)
			}
			err := fmt.Errorf("%w: %w", ErrPanic, cause)
			ctx := r.Context()
			route := routeLabel(r)

			s.gate.SDK().Report(ctx, reporting.LevelCritical, err, map[string]interface{}{
				"http.method": r.Method,
				"http.path":   r.URL.Path,
				"http.route":  route,
				"stack":       string(debug.Stack()),
			})
			if s.panics != nil {
				s.panics.WithLabelValues(route).Inc()
			}
			if s.logger != nil {
				s.logger.ErrorWithContext(ctx, "recovered panic", err, map[string]interface{}{
					"method": r.Method,
					"path":   r.URL.Path,
				})
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

// routeLabel is the mux pattern that matched r. The mux sets it on the
// request it was handed, which is the one recoverer holds.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}
	return r.Pattern
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	snippet, err := s.renderer.Snippet(r.Context())
	if err != nil {
		panic(err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = indexTemplate.Execute(w, struct {
		Snippet     template.HTML
		Environment string
		Server      bool
		Frontend    bool
	}{
		Snippet:     snippet,
		Environment: s.gate.EnvironmentName(),
		Server:      s.gate.ShouldEnable(false),
		Frontend:    s.gate.IsEnabledForFrontend(),
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorWithContext(r.Context(), "render index", err)
	}
}

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Server      bool   `json:"server_reporting"`
	Frontend    bool   `json:"frontend_reporting"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:      "ok",
		Environment: s.gate.EnvironmentName(),
		Server:      s.gate.ShouldEnable(false),
		Frontend:    s.gate.IsEnabledForFrontend(),
	})
}

// Start binds the listener and serves in the background.
func (s *Server) Start() (net.Addr, error) {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return nil, err
	}
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && s.logger != nil {
			s.logger.ErrorWithContext(context.Background(), "http server stopped", err)
		}
	}()
	return ln.Addr(), nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
