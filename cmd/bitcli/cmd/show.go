package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/bitbyte/bitarray"
	"github.com/spacemeshos/bitbyte/persistence"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show NAME...",
	Short: "Print stored bit arrays",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arrays, err := loadAll(cmd, args)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i, a := range arrays {
			if len(arrays) > 1 {
				fmt.Fprintf(w, "%s:\n", args[i])
			}
			if err := render(w, args[i], a, cfg); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// loadAll loads the named arrays concurrently, preserving their order.
func loadAll(cmd *cobra.Command, names []string) ([]*bitarray.BitArray, error) {
	arrays := make([]*bitarray.BitArray, len(names))

	eg, ctx := errgroup.WithContext(cmd.Context())
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := persistence.Load(cfg.DataDir, name,
				persistence.WithLogger(logger),
				persistence.WithMaxLength(cfg.MaxLength),
			)
			if err != nil {
				return fmt.Errorf("load %q: %w", name, err)
			}
			arrays[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return arrays, nil
}
