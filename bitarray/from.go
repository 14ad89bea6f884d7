package bitarray

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/spacemeshos/bitbyte/bitbyte"
	"github.com/spacemeshos/bitbyte/bitstream"
	"github.com/spacemeshos/bitbyte/shared"
)

// WordSize is the number of bits built for every Integer, Float or WordSequence element.
const WordSize = 32

// From builds a new array from src. Any src is accepted: a nil src builds an
// empty array, as does Empty. Only invalid options fail.
func From(src Source, opts ...OptionFunc) (*BitArray, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	var bits []bool
	switch s := src.(type) {
	case Integer:
		bits = wordBits(uint32(s))
	case Float:
		bits = wordBits(floatToWord(float64(s)))
	case Boolean:
		bits = []bool{bool(s)}
	case BitSequence:
		bits = s
	case ByteSequence:
		bits = expandBytes(s)
	case WordSequence:
		bits = make([]bool, 0, len(s)*WordSize)
		for _, w := range s {
			bits = append(bits, wordBits(w)...)
		}
	case Text:
		bits = expandBytes(encodeText(string(s)))
	case Empty, nil:
	}

	a := fromBools(bits, o)

	kind := KindEmpty
	if src != nil {
		kind = src.Kind()
	}
	o.logger.Debug("bitarray: built from source",
		zap.Stringer("kind", kind),
		zap.Int("length", a.Len()),
	)
	return a, nil
}

// FromValue classifies v with Infer and builds the array with From.
func FromValue(v interface{}, opts ...OptionFunc) (*BitArray, error) {
	return From(Infer(v), opts...)
}

func fromBools(bits []bool, o *option) *BitArray {
	a := newArray(o)
	a.length = len(bits)
	a.bytes = make([]bitbyte.Byte, shared.NumBytes(len(bits)))
	for i, b := range bits {
		if b {
			a.bytes[i/bitbyte.Size].SetBit(uint(i%bitbyte.Size), 1)
		}
	}
	return a
}

// wordBits renders the binary digits of w, left-padded to WordSize bits.
func wordBits(w uint32) []bool {
	numDigits := shared.Max(shared.NumBits(uint64(w)), 1)

	// Writes to and reads from an in-memory buffer cannot fail.
	var buf bytes.Buffer
	bw := bitstream.NewWriter(&buf)
	_ = bw.WriteUint64BE(uint64(w), numDigits)
	_ = bw.Flush(bitstream.Zero)

	br := bitstream.NewReader(&buf)
	digits := make([]uint8, numDigits)
	for i := range digits {
		bit, _ := br.ReadBit()
		digits[i] = bit.Uint8()
	}
	return LeftPadBits(digits, WordSize)
}

// expandBytes returns the bits of data, 8 per byte, most-significant bit first.
func expandBytes(data []byte) []bool {
	bits := make([]bool, 0, len(data)*bitbyte.Size)
	br := bitstream.NewReader(bytes.NewReader(data))
	for {
		bit, err := br.ReadBit()
		if err != nil {
			return bits
		}
		bits = append(bits, bool(bit))
	}
}
