package app

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sessionkit/noluhn/internal/config"
	"github.com/sessionkit/noluhn/internal/noluhn"
	"github.com/sessionkit/noluhn/internal/sessionid"
)

// newProvider returns a provider configured from cfg, or with length bytes
// when length is not negative.
func newProvider(cfg *config.Config, length int) (*sessionid.Provider, error) {
	ids := sessionid.New()

	if length >= 0 {
		return ids, ids.SetLength(length) //nolint:wrapcheck
	}

	if err := ids.Configure(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid session configuration")
	}

	return ids, nil
}

func newGenerateCmd(cfg *config.Config) *cobra.Command {
	var (
		count  int
		length int
		stats  bool
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Print new session ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return errors.Errorf("count must be at least 1, got %d", count)
			}

			ids, err := newProvider(cfg, length)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for range count {
				id, err := ids.NewID()
				if err != nil {
					return err //nolint:wrapcheck
				}

				if stats {
					_, err = fmt.Fprintf(out, "%s\t%d\n", id, noluhn.MaxDigitRun(id))
				} else {
					_, err = fmt.Fprintln(out, id)
				}

				if err != nil {
					return errors.Wrap(err, "can't write id")
				}
			}

			return nil
		},
	}

	generateCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of ids to print")
	generateCmd.Flags().IntVar(&length, "length", -1, "Id length in bytes, overrides the configuration")
	generateCmd.Flags().BoolVar(&stats, "stats", false, "Print the longest digit run next to each id")

	return generateCmd
}
