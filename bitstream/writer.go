package bitstream

import (
	"io"
)

// BitWriter writes bits to an io.Writer.
type BitWriter struct {
	stream    io.Writer
	pending   [1]byte
	alignment uint8
	written   uint64
}

// NewWriter returns a new instance of BitWriter.
func NewWriter(w io.Writer) *BitWriter {
	bw := new(BitWriter)
	bw.stream = w
	bw.alignment = 0 // most-significant bit
	return bw
}

// BitsWritten returns the number of bits written so far, excluding flush padding.
func (bw *BitWriter) BitsWritten() uint64 {
	return bw.written
}

// Write writes the first numBits of data to the stream, regardless of the alignment.
// A trailing partial byte contributes its most-significant bits. data is not modified.
func (bw *BitWriter) Write(data []byte, numBits int) error {
	var idx int
	for numBits >= 8 {
		if err := bw.WriteByte(data[idx]); err != nil {
			return err
		}
		numBits -= 8
		idx++
	}

	if numBits > 0 {
		last := data[idx]
		for numBits > 0 {
			if err := bw.WriteBit(last&0x80 != 0); err != nil {
				return err
			}
			last <<= 1
			numBits--
		}
	}

	return nil
}

// WriteUint64BE writes the numBits LS bits of val, in Big-Endian byte order, regardless of the alignment.
func (bw *BitWriter) WriteUint64BE(val uint64, numBits int) error {
	// Eliminate unnecessary MS bits.
	val <<= 64 - uint(numBits)

	// Write bytes in Big-Endian order.
	for numBits >= 8 {
		if err := bw.WriteByte(byte(val >> 56)); err != nil {
			return err
		}
		val <<= 8
		numBits -= 8
	}

	// Write the remaining bits.
	for numBits > 0 {
		if err := bw.WriteBit((val >> 63) == 1); err != nil {
			return err
		}
		val <<= 1
		numBits--
	}

	return nil
}

// WriteByte writes a single byte to the stream, regardless of the alignment.
// If the byte is to be split due to alignment, its MS bits complete the pending byte.
func (bw *BitWriter) WriteByte(b byte) error {
	// Fill the pending byte LS bits with MS bits.
	bw.pending[0] |= b >> bw.alignment

	if _, err := bw.stream.Write(bw.pending[:]); err != nil {
		return err
	}

	// Fill the new pending byte MS bits with the remaining LS bits.
	bw.pending[0] = b << (8 - bw.alignment)
	bw.written += 8

	return nil
}

// WriteBit writes a single bit to the stream, MSB first.
func (bw *BitWriter) WriteBit(bit Bit) error {
	if bit {
		bw.pending[0] |= 0x80 >> bw.alignment
	}

	bw.alignment++
	bw.written++

	if bw.alignment == 8 {
		if _, err := bw.stream.Write(bw.pending[:]); err != nil {
			return err
		}
		bw.pending[0] = 0
		bw.alignment = 0
	}

	return nil
}

// Flush flushes the currently pending byte to the stream by filling it with bit.
func (bw *BitWriter) Flush(bit Bit) error {
	written := bw.written
	for bw.alignment != 0 {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}
	bw.written = written

	return nil
}
