package bitstream

import (
	"io"
)

// BitReader reads bits from an io.Reader.
type BitReader struct {
	stream    io.Reader
	pending   [1]byte
	alignment uint8
}

// NewReader returns a new instance of BitReader.
func NewReader(r io.Reader) *BitReader {
	b := new(BitReader)
	b.stream = r
	b.alignment = 8
	return b
}

// Read reads the next numBits from the stream, regardless of the alignment.
// A trailing partial byte holds the bits in its MS positions.
func (br *BitReader) Read(numBits uint) ([]byte, error) {
	size := numBits / 8
	if numBits%8 > 0 {
		size++
	}

	data := make([]byte, size)
	var idx int

	for numBits >= 8 {
		byt, err := br.ReadByte()
		if err != nil {
			return nil, err
		}

		data[idx] = byt
		idx++
		numBits -= 8
	}

	if numBits > 0 {
		var lastByte byte
		var alignment uint
		for numBits > 0 {
			bit, err := br.ReadBit()
			if err != nil {
				return nil, err
			}

			if bit {
				lastByte |= 0x80 >> alignment
			}

			numBits--
			alignment++
		}
		data[idx] = lastByte
	}

	return data, nil
}

// ReadByte reads the next single byte from the stream, regardless of the alignment.
func (br *BitReader) ReadByte() (byte, error) {
	if br.alignment == 8 {
		if _, err := io.ReadFull(br.stream, br.pending[:]); err != nil {
			return 0, err
		}
		return br.pending[0], nil
	}

	// The byte stream is not aligned.
	// Use the remaining MS bits of the current byte, completed by the next byte MS bits.

	current := br.pending[0]
	if _, err := io.ReadFull(br.stream, br.pending[:]); err != nil {
		return 0, err
	}

	current |= br.pending[0] >> (8 - br.alignment)

	// Remove the used MS bits from the next pending byte.
	br.pending[0] <<= br.alignment

	return current, nil
}

// ReadBit reads the next single bit from the stream, MSB first.
func (br *BitReader) ReadBit() (Bit, error) {
	if br.alignment == 8 {
		if _, err := io.ReadFull(br.stream, br.pending[:]); err != nil {
			return Zero, err
		}
		br.alignment = 0
	}
	br.alignment++

	// Read MS bit.
	msb := Bit(br.pending[0]&0x80 != 0)

	// Remove MS bit.
	br.pending[0] <<= 1

	return msb, nil
}
