package cmd

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbyte/persistence"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored bit arrays",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := persistence.List(cfg.DataDir)
		if err != nil {
			return err
		}
		numBytes, err := persistence.NumBytesStored(cfg.DataDir, nil)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		_, err = fmt.Fprintf(w, "%d arrays, %s\n", len(names), bytefmt.ByteSize(numBytes))
		return err
	},
}

// rmCmd represents the rm command.
var rmCmd = &cobra.Command{
	Use:   "rm NAME...",
	Short: "Remove stored bit arrays",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			if err := persistence.Remove(cfg.DataDir, name); err != nil {
				return fmt.Errorf("remove %q: %w", name, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rmCmd)
}
