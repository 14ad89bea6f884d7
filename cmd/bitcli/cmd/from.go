package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbyte/bitarray"
	"github.com/spacemeshos/bitbyte/persistence"
)

const (
	kindAuto  = "auto"
	kindInt   = "int"
	kindBool  = "bool"
	kindBits  = "bits"
	kindBytes = "bytes"
	kindText  = "text"
)

var (
	fromKind string
	saveName string
)

// fromCmd represents the from command.
var fromCmd = &cobra.Command{
	Use:   "from [values...]",
	Short: "Build a bit array from values",
	Long: `Build a bit array from the given values and print it.

With --kind auto a single argument is classified as a number, a boolean or text,
and several arguments are read as one sequence: all booleans give one bit each,
numbers in [0, 255] give 8 bits each and any other numbers give 32 bits each.
Use --save to keep the array in the data directory.`,
	Example: `  bitcli from 72
  bitcli from true false true
  bitcli from --kind bits 0100 1000
  bitcli from --kind text --format text Hello
  bitcli from --save greeting Hello`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := parseSource(fromKind, args)
		if err != nil {
			return err
		}

		a, err := bitarray.From(src, bitarray.WithLogger(logger))
		if err != nil {
			return err
		}
		if uint64(a.Len()) > cfg.MaxLength {
			return fmt.Errorf("array too long; expected: <= %d bits, given: %d", cfg.MaxLength, a.Len())
		}

		if saveName != "" {
			err := persistence.Save(cfg.DataDir, saveName, a,
				persistence.WithLogger(logger),
				persistence.WithMaxLength(cfg.MaxLength),
			)
			if err != nil {
				return err
			}
		}

		return render(cmd.OutOrStdout(), saveName, a, cfg)
	},
}

func init() {
	rootCmd.AddCommand(fromCmd)

	fromCmd.Flags().StringVar(&fromKind, "kind", kindAuto, "how to read the values (auto, int, bool, bits, bytes, text)")
	fromCmd.Flags().StringVar(&saveName, "save", "", "store the array under this name")
}

// parseSource reads command line values as a Source of the given kind.
func parseSource(kind string, args []string) (bitarray.Source, error) {
	switch strings.ToLower(kind) {
	case kindAuto:
		switch len(args) {
		case 0:
			return bitarray.Empty{}, nil
		case 1:
			return bitarray.Infer(parseValue(args[0])), nil
		}
		values := make([]interface{}, len(args))
		for i, arg := range args {
			values[i] = parseValue(arg)
		}
		return bitarray.Infer(values), nil

	case kindInt:
		words := make(bitarray.WordSequence, len(args))
		for i, arg := range args {
			n, err := strconv.ParseInt(arg, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q: %w", arg, err)
			}
			if len(args) == 1 {
				return bitarray.Integer(n), nil
			}
			words[i] = uint32(n)
		}
		return words, nil

	case kindBool:
		bits := make(bitarray.BitSequence, len(args))
		for i, arg := range args {
			b, err := strconv.ParseBool(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid boolean %q: %w", arg, err)
			}
			if len(args) == 1 {
				return bitarray.Boolean(b), nil
			}
			bits[i] = b
		}
		return bits, nil

	case kindBits:
		var bits bitarray.BitSequence
		for _, arg := range args {
			for _, c := range arg {
				switch c {
				case '0':
					bits = append(bits, false)
				case '1':
					bits = append(bits, true)
				case '_', ' ':
				default:
					return nil, fmt.Errorf("invalid bit %q in %q", c, arg)
				}
			}
		}
		return bits, nil

	case kindBytes:
		data := make(bitarray.ByteSequence, len(args))
		for i, arg := range args {
			b, err := strconv.ParseUint(arg, 0, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid byte %q: %w", arg, err)
			}
			data[i] = byte(b)
		}
		return data, nil

	case kindText:
		return bitarray.Text(strings.Join(args, " ")), nil
	}

	return nil, fmt.Errorf("invalid `kind`; expected: one of %v, given: %q",
		[]string{kindAuto, kindInt, kindBool, kindBits, kindBytes, kindText}, kind)
}

// parseValue reads a single argument as an integer, a float, a boolean or,
// failing those, as text.
func parseValue(arg string) interface{} {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	switch arg {
	case "true":
		return true
	case "false":
		return false
	}
	return arg
}
