package cmd

import (
	"fmt"
	"io"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"

	"github.com/spacemeshos/bitbyte/bitarray"
	"github.com/spacemeshos/bitbyte/bitbyte"
	"github.com/spacemeshos/bitbyte/config"
)

// arrayView is the exported shape of an array, used by the dump format.
type arrayView struct {
	Name   string
	Length int
	Bytes  []byte
	Bits   string
}

func render(w io.Writer, name string, a *bitarray.BitArray, cfg *config.Config) error {
	switch cfg.Format {
	case config.FormatText:
		_, err := fmt.Fprintln(w, a.ToString(cfg.Encoding))
		return err
	case config.FormatDump:
		spew.Fdump(w, arrayView{
			Name:   name,
			Length: a.Len(),
			Bytes:  a.Bytes(),
			Bits:   a.BitString(),
		})
		return nil
	case config.FormatTable:
		return renderTable(w, a)
	default:
		_, err := fmt.Fprintln(w, a.BitString())
		return err
	}
}

// renderTable prints one row per storage byte. Bits beyond the array length
// are left out of the bits column.
func renderTable(w io.Writer, a *bitarray.BitArray) error {
	bits := a.BitString()
	data := a.Bytes()

	rows := make([][]string, len(data))
	for i, b := range data {
		from := i * bitbyte.Size
		to := from + bitbyte.Size
		if to > len(bits) {
			to = len(bits)
		}
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.Itoa(int(b)),
			fmt.Sprintf("%02x", b),
			bits[from:to],
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"byte", "value", "hex", "bits"})
	table.SetBorder(true)
	table.AppendBulk(rows)
	table.Render()

	_, err := fmt.Fprintf(w, "length: %d bits, storage: %s\n", a.Len(), bytefmt.ByteSize(uint64(len(data))))
	return err
}
