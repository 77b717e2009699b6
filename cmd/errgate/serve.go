package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const stopTimeout = 15 * time.Second

func newServeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP host with error reporting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			opts, err := serveOptions(cfg)
			if err != nil {
				return err
			}

			app := fx.New(append(opts, fxLogger)...)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}

			sig := <-app.Wait()

			ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
			defer cancel()
			if err := app.Stop(ctx); err != nil {
				return err
			}
			if sig.ExitCode != 0 {
				return fmt.Errorf("shutdown with exit code %d", sig.ExitCode)
			}
			return nil
		},
	}
}
