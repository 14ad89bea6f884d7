// Package bitbyte provides a single 8-bit storage cell with access to its bits
// by intra-byte offset, where offset 0 addresses the most-significant bit.
package bitbyte

// Size is the number of bits held by a Byte.
const Size = 8

// Byte is an 8-bit cell. The zero value holds 0.
type Byte uint8

// New returns a Byte holding v.
func New(v uint8) Byte {
	return Byte(v)
}

func mask(offset uint) Byte {
	return 1 << (Size - 1 - offset%Size)
}

// Bit returns the bit at offset (0-7) as 0 or 1.
func (b Byte) Bit(offset uint) uint8 {
	if b&mask(offset) != 0 {
		return 1
	}
	return 0
}

// SetBit stores bit at offset (0-7), leaving the other seven bits unchanged.
// Any non-zero bit is stored as 1. It returns the stored bit.
func (b *Byte) SetBit(offset uint, bit uint8) uint8 {
	if bit != 0 {
		*b |= mask(offset)
		return 1
	}
	*b &^= mask(offset)
	return 0
}

// Value returns the integer value of the cell.
func (b Byte) Value() uint8 {
	return uint8(b)
}

// Bits returns the bit pattern of the cell, most-significant bit first.
func (b Byte) Bits() [Size]uint8 {
	var bits [Size]uint8
	for i := uint(0); i < Size; i++ {
		bits[i] = b.Bit(i)
	}
	return bits
}
