package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbyte/persistence"
)

// decodeCmd represents the decode command.
var decodeCmd = &cobra.Command{
	Use:   "decode NAME",
	Short: "Decode a stored bit array as text",
	Long: `Decode a stored bit array as text, one character per byte.
With --encoding utf8 the bytes are decoded as UTF-8; arrays that are not valid
UTF-8 are decoded one character per byte instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := persistence.Load(cfg.DataDir, args[0],
			persistence.WithLogger(logger),
			persistence.WithMaxLength(cfg.MaxLength),
		)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), a.ToString(cfg.Encoding))
		return err
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
