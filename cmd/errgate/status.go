package main

import (
	"context"
	"regexp"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/errgate/logger"
	"github.com/aalemi-dev/errgate/reporting"
)

var secretKey = regexp.MustCompile(`(?i)(token|secret|dsn|password)`)

const redacted = "********"

type statusReport struct {
	Context           string             `yaml:"context"`
	Environment       string             `yaml:"environment"`
	Provider          string             `yaml:"provider"`
	ServerReporting   bool               `yaml:"serverReporting"`
	TestingOverride   bool               `yaml:"serverReportingWhenTestingAllowed"`
	FrontendReporting bool               `yaml:"frontendReporting"`
	ServerSettings    reporting.Settings `yaml:"rollbarSettings"`
	ClientSettings    reporting.Settings `yaml:"rollbarJsSettings"`
}

func newStatusCommand(root *rootOptions) *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the reporting decision and both payloads as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			log := logger.NewLoggerClient(cfg.Logger)

			gate, err := newGate(cfg, reporting.NewNopSDK(), log)
			if err != nil {
				return err
			}

			report := buildStatus(context.Background(), gate, cfg.Environment.Context, cfg.Reporting.ProviderName())
			if !showSecrets {
				redact(report.ServerSettings)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print tokens and DSNs unmasked")
	return cmd
}

func buildStatus(ctx context.Context, gate *reporting.Gate, appContext, provider string) statusReport {
	serverSettings := gate.ServerSettings()
	delete(serverSettings, reporting.KeyPersonFn)

	return statusReport{
		Context:           appContext,
		Environment:       gate.EnvironmentName(),
		Provider:          provider,
		ServerReporting:   gate.ShouldEnable(false),
		TestingOverride:   gate.ShouldEnable(true),
		FrontendReporting: gate.IsEnabledForFrontend(),
		ServerSettings:    serverSettings,
		ClientSettings:    gate.ClientSettings(ctx),
	}
}

// redact masks secret-looking keys at any depth.
func redact(settings map[string]interface{}) {
	for k, v := range settings {
		if nested, ok := v.(map[string]interface{}); ok {
			redact(nested)
			continue
		}
		if secretKey.MatchString(k) {
			settings[k] = redacted
		}
	}
}
