package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/errgate/environment"
	"github.com/aalemi-dev/errgate/reporting"
)

const sampleYAML = `
server:
  address: ":9000"
environment:
  context: Production/Live
  root_path: /srv/app/
metrics:
  address: ""
reporting:
  enableForProduction: true
  enableForFrontend: true
  rollbarSettings:
    access_token: server-token
    code_version: "1.2.3"
  rollbarJsSettings:
    accessToken: client-token
    captureUncaught: true
    payload:
      client:
        javascript:
          source_map_enabled: true
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "errgate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	want := Default()
	want.Logger.Environment = "development"
	want.Tracer.AppEnv = "development"
	assert.Equal(t, want, cfg)
	assert.False(t, cfg.Reporting.EnableForProduction)
	assert.False(t, cfg.Reporting.EnableForDevelopment)
	assert.False(t, cfg.Reporting.EnableForFrontend)
	assert.Equal(t, DefaultServiceName, cfg.Logger.ServiceName)
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(writeFile(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, "Production/Live", cfg.Environment.Context)
	require.NotNil(t, cfg.Metrics.Address)
	assert.Equal(t, "", *cfg.Metrics.Address)
	assert.True(t, cfg.Reporting.EnableForProduction)
	assert.Equal(t, "server-token", cfg.Reporting.ServerSettings["access_token"])

	// camelCase keys survive untouched
	assert.Equal(t, "client-token", cfg.Reporting.ClientSettings["accessToken"])
	assert.Equal(t, true, cfg.Reporting.ClientSettings["captureUncaught"])
	payload, ok := cfg.Reporting.ClientSettings["payload"].(map[string]interface{})
	require.True(t, ok)
	client, ok := payload["client"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, client, "javascript")

	// untouched sections keep defaults
	assert.Equal(t, DefaultServiceName, cfg.Tracer.ServiceName)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("APP_CONTEXT", "Testing")
	t.Setenv("REPORTING_ENABLE_FOR_DEVELOPMENT", "true")
	t.Setenv("REPORTING_PROVIDER", "sentry")
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("METRICS_ADDRESS", ":9191")

	cfg, err := Load(writeFile(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Testing", cfg.Environment.Context)
	assert.True(t, cfg.Reporting.EnableForDevelopment)
	assert.True(t, cfg.Reporting.EnableForProduction)
	assert.Equal(t, reporting.ProviderSentry, cfg.Reporting.ProviderName())
	assert.Equal(t, "debug", cfg.Logger.Level)
	require.NotNil(t, cfg.Metrics.Address)
	assert.Equal(t, ":9191", *cfg.Metrics.Address)
	assert.Equal(t, "server-token", cfg.Reporting.ServerSettings["access_token"])
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeFile(t, "reporting: [not, a, map]"))
	assert.ErrorIs(t, err, ErrParseConfig)

	_, err = Load(writeFile(t, "unknown_section: {}"))
	assert.ErrorIs(t, err, ErrParseConfig)
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("REPORTING_ENABLE_FOR_PRODUCTION", "maybe")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrEnvOverride)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default().Server, cfg.Server)
	assert.Equal(t, Default().Reporting, cfg.Reporting)
}

func TestLoad_DerivesEnvironmentLabels(t *testing.T) {
	cfg, err := Load(writeFile(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "production/live", cfg.Logger.Environment)
	assert.Equal(t, "production/live", cfg.Tracer.AppEnv)

	t.Setenv("LOGGER_ENVIRONMENT", "prod-eu")
	cfg, err = Load(writeFile(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "prod-eu", cfg.Logger.Environment)
}

func TestLoad_UnknownContext(t *testing.T) {
	t.Setenv("APP_CONTEXT", "Staging")

	_, err := Load("")
	assert.ErrorIs(t, err, environment.ErrInvalidContext)
}

func TestFXModule_SuppliesSections(t *testing.T) {
	cfg, err := Load(writeFile(t, sampleYAML))
	require.NoError(t, err)

	var (
		rep reporting.Config
		env environment.Config
	)
	app := fxtest.New(t,
		FXModule(cfg),
		fx.Populate(&rep, &env),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.True(t, rep.EnableForProduction)
	assert.Equal(t, "Production/Live", env.Context)
}
