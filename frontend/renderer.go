package frontend

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"regexp"
	"strings"
)

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var snippetTemplate = template.Must(template.New("snippet").Parse(
	`<script>var {{.Variable}} = {{.Settings}};</script>` +
		`{{if .ScriptURL}}<script src="{{.ScriptURL}}"></script>{{end}}`,
))

// Logger is the logging surface used by this package.
type Logger interface {
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Renderer turns the gate's client settings into something a page can embed.
type Renderer struct {
	cfg    Config
	source ClientSettingsSource
	logger Logger
}

// NewRenderer validates cfg and returns a Renderer reading from source.
func NewRenderer(cfg Config, source ClientSettingsSource) (*Renderer, error) {
	if !identifier.MatchString(cfg.variable()) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariable, cfg.ConfigVariable)
	}
	return &Renderer{cfg: cfg, source: source}, nil
}

// Snippet renders the inline configuration script for the current request.
// It is empty when frontend reporting is disabled.
func (r *Renderer) Snippet(ctx context.Context) (template.HTML, error) {
	if !r.source.IsEnabledForFrontend() {
		return "", nil
	}

	payload, err := json.Marshal(r.source.ClientSettings(ctx))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodeSettings, err)
	}

	var b strings.Builder
	err = snippetTemplate.Execute(&b, struct {
		Variable  template.JS
		Settings  template.JS
		ScriptURL string
	}{
		Variable:  template.JS(r.cfg.variable()),
		Settings:  template.JS(payload),
		ScriptURL: r.cfg.ScriptURL,
	})
	if err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

// Handler serves the client settings as JSON, or 404 when frontend
// reporting is disabled.
func (r *Renderer) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !r.source.IsEnabledForFrontend() {
			http.NotFound(w, req)
			return
		}

		payload, err := json.Marshal(r.source.ClientSettings(req.Context()))
		if err != nil {
			if r.logger != nil {
				r.logger.WarnWithContext(req.Context(), "client settings not encodable", err)
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(payload)
	})
}
