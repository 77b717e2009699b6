package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalemi-dev/errgate/logger"
	"github.com/aalemi-dev/errgate/reporting"
)

func newPingCommand(root *rootOptions) *cobra.Command {
	var (
		message string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Send one info report to check the SDK configuration",
		Long: "ping initializes the SDK when reporting is enabled for the current context " +
			"(Testing contexts included) and sends a single info report.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			log := logger.NewLoggerClient(cfg.Logger)

			sdk, err := newSDK(cfg.Reporting, log)
			if err != nil {
				return err
			}
			defer sdk.Close()

			gate, err := newGate(cfg, sdk, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !gate.ShouldEnable(true) {
				fmt.Fprintf(out, "reporting is disabled for %s\n", gate.EnvironmentName())
				return nil
			}

			if err := sdk.InitOnce(gate.ServerSettings(), false, false); err != nil {
				return fmt.Errorf("%w: %w", reporting.ErrSDKInit, err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			sdk.Report(ctx, reporting.LevelInfo, errors.New(message), map[string]interface{}{"source": "errgate ping"})

			flushCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			if err := sdk.Flush(flushCtx); err != nil {
				return fmt.Errorf("flush: %w", err)
			}

			fmt.Fprintf(out, "sent %q via %s for %s\n", message, cfg.Reporting.ProviderName(), gate.EnvironmentName())
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "errgate ping", "report message")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "how long to wait for delivery")
	return cmd
}
