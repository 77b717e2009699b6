package frontend

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/errgate/reporting"
)

type staticSource struct {
	enabled  bool
	settings reporting.Settings
}

func (s staticSource) IsEnabledForFrontend() bool { return s.enabled }

func (s staticSource) ClientSettings(context.Context) reporting.Settings { return s.settings }

func TestNewRenderer_RejectsInvalidVariable(t *testing.T) {
	for _, name := range []string{"1abc", "a-b", "x;alert(1)", "window.cfg"} {
		_, err := NewRenderer(Config{ConfigVariable: name}, staticSource{})
		assert.ErrorIs(t, err, ErrInvalidVariable, name)
	}

	_, err := NewRenderer(Config{ConfigVariable: "$cfg_1"}, staticSource{})
	assert.NoError(t, err)
}

func TestSnippet_Enabled(t *testing.T) {
	r, err := NewRenderer(Config{}, staticSource{
		enabled: true,
		settings: reporting.Settings{
			"accessToken": "pub",
			"payload":     map[string]interface{}{"environment": "production"},
		},
	})
	require.NoError(t, err)

	html, err := r.Snippet(context.Background())
	require.NoError(t, err)
	assert.Equal(t,
		`<script>var _rollbarConfig = {"accessToken":"pub","payload":{"environment":"production"}};</script>`,
		string(html))
}

func TestSnippet_ScriptURL(t *testing.T) {
	r, err := NewRenderer(Config{ConfigVariable: "cfg", ScriptURL: "https://cdn.example.com/rollbar.min.js"}, staticSource{
		enabled:  true,
		settings: reporting.Settings{},
	})
	require.NoError(t, err)

	html, err := r.Snippet(context.Background())
	require.NoError(t, err)
	assert.Equal(t,
		`<script>var cfg = {};</script><script src="https://cdn.example.com/rollbar.min.js"></script>`,
		string(html))
}

func TestSnippet_EscapesScriptBreakout(t *testing.T) {
	r, err := NewRenderer(Config{}, staticSource{
		enabled:  true,
		settings: reporting.Settings{"x": "</script><script>alert(1)</script>"},
	})
	require.NoError(t, err)

	html, err := r.Snippet(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, string(html), "</script><script>alert")
	assert.Contains(t, string(html), `</script>`)
}

func TestSnippet_Disabled(t *testing.T) {
	r, err := NewRenderer(Config{}, staticSource{settings: reporting.Settings{"a": 1}})
	require.NoError(t, err)

	html, err := r.Snippet(context.Background())
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestSnippet_EncodeError(t *testing.T) {
	r, err := NewRenderer(Config{}, staticSource{enabled: true, settings: reporting.Settings{"n": math.NaN()}})
	require.NoError(t, err)

	_, err = r.Snippet(context.Background())
	assert.ErrorIs(t, err, ErrEncodeSettings)
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		source     staticSource
		wantStatus int
		wantBody   string
	}{
		{
			name:       "enabled",
			source:     staticSource{enabled: true, settings: reporting.Settings{"payload": map[string]interface{}{"environment": "development"}}},
			wantStatus: http.StatusOK,
			wantBody:   `{"payload":{"environment":"development"}}`,
		},
		{
			name:       "disabled",
			source:     staticSource{settings: reporting.Settings{"accessToken": "pub"}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unencodable",
			source:     staticSource{enabled: true, settings: reporting.Settings{"n": math.Inf(1)}},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer(Config{}, tt.source)
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rollbar.json", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
			if tt.wantStatus == http.StatusNotFound {
				assert.NotContains(t, rec.Body.String(), "pub")
			}
		})
	}
}
