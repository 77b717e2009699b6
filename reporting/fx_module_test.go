package reporting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/errgate/environment"
	"github.com/aalemi-dev/errgate/reporting"
	"github.com/aalemi-dev/errgate/security"
)

type countingSDK struct {
	reporting.NopSDK
	inits int
}

func (c *countingSDK) InitOnce(reporting.Settings, bool, bool) error {
	c.inits++
	return nil
}

func newApp(t *testing.T, cfg reporting.Config, envCfg environment.Config, sdk reporting.SDK, gate **reporting.Gate) *fxtest.App {
	t.Helper()
	return fxtest.New(t,
		environment.FXModule,
		security.FXModule,
		reporting.FXModule,
		fx.Provide(
			func() reporting.Config { return cfg },
			func() environment.Config { return envCfg },
			func() security.Config { return security.Config{} },
			func() reporting.SDK { return sdk },
		),
		fx.Populate(gate),
	)
}

func TestFXModule_InitializesOnStart(t *testing.T) {
	t.Parallel()
	sdk := &countingSDK{}
	var gate *reporting.Gate

	app := newApp(t,
		reporting.Config{EnableForProduction: true},
		environment.Config{Context: "Production", RootPath: "/srv/app"},
		sdk, &gate)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, gate)
	assert.Equal(t, 1, sdk.inits)
	assert.Equal(t, map[string]interface{}{}, gate.ResolveIdentity(context.Background()))
}

func TestFXModule_SkipsInitInTesting(t *testing.T) {
	t.Parallel()
	sdk := &countingSDK{}
	var gate *reporting.Gate

	app := newApp(t,
		reporting.Config{EnableForProduction: true, EnableForDevelopment: true},
		environment.Config{Context: "Testing", RootPath: "/srv/app"},
		sdk, &gate)

	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, 0, sdk.inits)
	assert.True(t, gate.ShouldEnable(true))
}

func TestFXModule_NopModule(t *testing.T) {
	t.Parallel()
	var gate *reporting.Gate

	app := fxtest.New(t,
		environment.FXModule,
		security.FXModule,
		reporting.NopFXModule,
		reporting.FXModule,
		fx.Provide(
			func() reporting.Config { return reporting.Config{EnableForDevelopment: true} },
			func() environment.Config { return environment.Config{Context: "Development", RootPath: "/"} },
			func() security.Config { return security.Config{} },
		),
		fx.Populate(&gate),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.IsType(t, &reporting.NopSDK{}, gate.SDK())
}
