package bitarray

// Cursor walks the bits of an array in ascending index order.
// The length is re-read on every step, so a cursor never yields a bit
// that is no longer addressable.
type Cursor struct {
	array *BitArray
	pos   int
	bit   uint8
}

// Cursor returns a new cursor positioned before the first bit.
func (a *BitArray) Cursor() *Cursor {
	return &Cursor{array: a, pos: -1}
}

// Next advances to the next bit and reports whether there is one.
func (c *Cursor) Next() bool {
	bit, ok := c.array.At(c.pos + 1)
	if !ok {
		c.pos = c.array.Len()
		return false
	}
	c.pos++
	c.bit = bit
	return true
}

// Bit returns the bit at the current position.
func (c *Cursor) Bit() uint8 {
	return c.bit
}

// Index returns the current position.
func (c *Cursor) Index() int {
	return c.pos
}

// Bits returns the addressable bits as 0/1 values.
func (a *BitArray) Bits() []uint8 {
	bits := make([]uint8, 0, a.length)
	for c := a.Cursor(); c.Next(); {
		bits = append(bits, c.Bit())
	}
	return bits
}

// Bools returns the addressable bits as booleans.
func (a *BitArray) Bools() []bool {
	bools := make([]bool, 0, a.length)
	for c := a.Cursor(); c.Next(); {
		bools = append(bools, c.Bit() == 1)
	}
	return bools
}
