package app

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sessionkit/noluhn/internal/config"
	"github.com/sessionkit/noluhn/internal/noluhn"
)

// ErrRejected is returned by check if at least one id was rejected.
var ErrRejected = errors.New("not every id is well formed")

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var (
		length int
		strict bool
	)

	checkCmd := &cobra.Command{
		Use:   "check <id>...",
		Short: "Check the shape of session ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := newProvider(cfg, length)
			if err != nil {
				return err
			}

			rejected := 0

			for _, arg := range args {
				id, ok := ids.ReadID(arg)
				if ok && strict {
					ok = noluhn.Valid(id)
				}

				result := "valid"
				if !ok {
					result = "invalid"
					rejected++
				}

				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", arg, result); err != nil {
					return errors.Wrap(err, "can't write result")
				}
			}

			if rejected > 0 {
				return errors.Wrapf(ErrRejected, "%d of %d rejected", rejected, len(args))
			}

			return nil
		},
	}

	checkCmd.Flags().IntVar(&length, "length", -1, "Id length in bytes, overrides the configuration")
	checkCmd.Flags().BoolVar(&strict, "strict", false, "Check the characters as well as the length")

	return checkCmd
}
