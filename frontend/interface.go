package frontend

import (
	"context"

	"github.com/aalemi-dev/errgate/reporting"
)

// ClientSettingsSource is the part of *reporting.Gate the renderer needs.
type ClientSettingsSource interface {
	IsEnabledForFrontend() bool
	ClientSettings(ctx context.Context) reporting.Settings
}
