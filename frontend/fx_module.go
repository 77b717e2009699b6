package frontend

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/errgate/reporting"
)

// FXModule provides a *Renderer fed by the *reporting.Gate.
var FXModule = fx.Module("frontend",
	fx.Provide(NewRendererWithDI),
)

type RendererParams struct {
	fx.In

	Config Config
	Gate   *reporting.Gate
	Logger Logger `optional:"true"`
}

func NewRendererWithDI(params RendererParams) (*Renderer, error) {
	r, err := NewRenderer(params.Config, params.Gate)
	if err != nil {
		return nil, err
	}
	r.logger = params.Logger
	return r, nil
}
