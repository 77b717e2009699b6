package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalemi-dev/errgate/config"
)

type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "errgate",
		Short:         "Environment-aware error reporting gate",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv("ERRGATE_CONFIG"),
		"path to the YAML configuration (env ERRGATE_CONFIG)")

	cmd.AddCommand(
		newServeCommand(opts),
		newStatusCommand(opts),
		newPingCommand(opts),
	)
	return cmd
}

func (o *rootOptions) load() (*config.AppConfig, error) {
	return config.Load(o.configPath)
}
