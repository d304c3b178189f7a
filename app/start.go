package app

import (
	"github.com/spf13/cobra"

	"github.com/sessionkit/noluhn/internal/config"
	"github.com/sessionkit/noluhn/internal/daemon"
)

func newStartCmd(cfg *config.Config) *cobra.Command {
	var devMode bool

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the session id web service",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if devMode {
				cfg.DevMode = true
			}

			d, err := daemon.New(cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start() //nolint:wrapcheck
		},
	}

	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	return startCmd
}
