// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/sessionkit/noluhn/internal/config"
	"github.com/sessionkit/noluhn/internal/logger"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		cfg        config.Config
	)

	rootCmd := &cobra.Command{
		Use:   "noluhn",
		Short: "noluhn issues session ids that avoid long digit runs",
		Long: `noluhn issues random, URL safe session ids in a base64 variant
whose even blocks never start with a digit, and checks received ids.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err //nolint:wrapcheck
			}

			return logger.Init(cfg.Log) //nolint:wrapcheck
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Directory holding main.toml")

	rootCmd.AddCommand(
		newStartCmd(&cfg),
		newGenerateCmd(&cfg),
		newCheckCmd(&cfg),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute() //nolint:wrapcheck
}
