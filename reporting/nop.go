package reporting

import (
	"context"

	"go.uber.org/fx"
)

// NopSDK discards everything. It is used for Provider "none".
type NopSDK struct{}

func NewNopSDK() *NopSDK { return &NopSDK{} }

func (*NopSDK) InitOnce(Settings, bool, bool) error                        { return nil }
func (*NopSDK) Report(context.Context, Level, error, map[string]interface{}) {}
func (*NopSDK) Flush(context.Context) error                                 { return nil }
func (*NopSDK) Close() error                                                { return nil }

// NopFXModule provides NopSDK as the SDK.
var NopFXModule = fx.Module("reporting-nop",
	fx.Provide(
		fx.Annotate(NewNopSDK, fx.As(new(SDK))),
	),
)
