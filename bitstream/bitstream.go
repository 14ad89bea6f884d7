// Package bitstream provides wrappers for io.Writer and io.Reader to allow
// bit-granularity access to the stream, following the MSB pattern, where
// most-significant bits are written/read first.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// Uint8 returns the bit as 0 or 1.
func (b Bit) Uint8() uint8 {
	if b {
		return 1
	}
	return 0
}
