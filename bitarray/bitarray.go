// Package bitarray provides a resizable array of bits backed by byte-aligned
// storage. Bit i lives in storage byte i/8 at intra-byte offset i%8, where
// offset 0 is the most-significant bit of the byte.
//
// A BitArray is not safe for concurrent use. Callers that share an instance
// between goroutines must synchronize access themselves.
package bitarray

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/spacemeshos/bitbyte/bitbyte"
	"github.com/spacemeshos/bitbyte/bitstream"
	"github.com/spacemeshos/bitbyte/shared"
)

// BitArray is an ordered, resizable sequence of bits.
// The number of storage bytes always equals ceil(Len()/8).
type BitArray struct {
	length int
	bytes  []bitbyte.Byte
	logger *zap.Logger
}

// New returns an array of length bits, all zero.
func New(length int, opts ...OptionFunc) (*BitArray, error) {
	if length < 0 {
		return nil, invalidArgument("length", "must be a non-negative number, given: %d", length)
	}

	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	a := newArray(o)
	if _, err := a.SetLength(length); err != nil {
		return nil, err
	}
	return a, nil
}

// NewFromBytes returns an array of length bits whose storage is taken from the
// leading bytes of data. data is copied.
func NewFromBytes(data []byte, length int, opts ...OptionFunc) (*BitArray, error) {
	if length < 0 || length > len(data)*bitbyte.Size {
		return nil, invalidArgument("length", "expected: [0, %d], given: %d", len(data)*bitbyte.Size, length)
	}

	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	a := newArray(o)
	a.length = length
	a.bytes = make([]bitbyte.Byte, shared.NumBytes(length))
	for i := range a.bytes {
		a.bytes[i] = bitbyte.New(data[i])
	}
	return a, nil
}

// Read reads an array of length bits from r, most-significant bit first, as
// written by WriteTo.
func Read(r io.Reader, length int, opts ...OptionFunc) (*BitArray, error) {
	if length < 0 {
		return nil, invalidArgument("length", "must be a non-negative number, given: %d", length)
	}

	data, err := bitstream.NewReader(r).Read(uint(length))
	if err != nil {
		return nil, err
	}
	return NewFromBytes(data, length, opts...)
}

func newArray(o *option) *BitArray {
	return &BitArray{
		logger: o.logger,
	}
}

// Len returns the number of addressable bits.
func (a *BitArray) Len() int {
	return a.length
}

// SetLength resizes the array to length bits and returns the new length.
// Bits below both the old and the new length keep their values. Storage bytes
// that are created by growth are zero; bytes beyond the new byte count are
// discarded.
func (a *BitArray) SetLength(length int) (int, error) {
	if length < 0 {
		return a.length, invalidArgument("length", "must be a non-negative number, given: %d", length)
	}

	if _, err := a.SetBytes(shared.NumBytes(length)); err != nil {
		return a.length, err
	}
	a.length = length
	return a.length, nil
}

// SetBytes resizes the storage to count bytes and returns the new count.
// Bytes below count are untouched and appended bytes are zero. Unless count
// already equals ceil(Len()/8), the length becomes the full capacity of the
// storage, 8*count bits.
func (a *BitArray) SetBytes(count int) (int, error) {
	if count < 0 {
		return len(a.bytes), invalidArgument("count", "must be a non-negative number, given: %d", count)
	}

	if count > len(a.bytes) {
		a.bytes = append(a.bytes, make([]bitbyte.Byte, count-len(a.bytes))...)
	} else {
		a.bytes = a.bytes[:count:count]
	}

	if shared.NumBytes(a.length) != count {
		a.length = count * bitbyte.Size
	}
	return len(a.bytes), nil
}

// CheckOffset returns an *OffsetError when offset is not addressable.
func (a *BitArray) CheckOffset(offset int) error {
	if offset < 0 || offset >= a.length {
		return &OffsetError{Offset: offset, Length: a.length}
	}
	return nil
}

// SetBit stores bit at offset and returns the stored bit.
// Any non-zero bit is stored as 1.
func (a *BitArray) SetBit(offset int, bit uint8) (uint8, error) {
	if err := a.CheckOffset(offset); err != nil {
		return 0, err
	}
	return a.bytes[offset/bitbyte.Size].SetBit(uint(offset%bitbyte.Size), bit), nil
}

// GetBit returns the bit at offset as 0 or 1.
func (a *BitArray) GetBit(offset int) (uint8, error) {
	if err := a.CheckOffset(offset); err != nil {
		return 0, err
	}
	return a.bit(offset), nil
}

func (a *BitArray) bit(offset int) uint8 {
	return a.bytes[offset/bitbyte.Size].Bit(uint(offset % bitbyte.Size))
}

// At is the unchecked indexed read. ok is false when i is not addressable.
func (a *BitArray) At(i int) (bit uint8, ok bool) {
	if i < 0 || i >= a.length {
		return 0, false
	}
	return a.bit(i), true
}

// Put is the unchecked indexed write. It reports whether i was addressable;
// writes to other indices are ignored.
func (a *BitArray) Put(i int, bit uint8) bool {
	_, err := a.SetBit(i, bit)
	return err == nil
}

// Bytes returns a copy of the storage bytes in order.
func (a *BitArray) Bytes() []byte {
	data := make([]byte, len(a.bytes))
	for i, b := range a.bytes {
		data[i] = b.Value()
	}
	return data
}

// Assign writes bits starting at offset. bits can be any value accepted by
// ProjectBitsArray. Writing stops at the first bit that falls out of bounds;
// bits written before it are kept.
func (a *BitArray) Assign(bits interface{}, offset int) error {
	projected, err := ProjectBitsArray(bits)
	if err != nil {
		return err
	}

	for k, b := range projected {
		if _, err := a.SetBit(offset+k, boolToBit(b)); err != nil {
			return err
		}
	}
	return nil
}

// Fill sets every addressable bit to bit.
func (a *BitArray) Fill(bit uint8) *BitArray {
	for i := 0; i < a.length; i++ {
		a.bytes[i/bitbyte.Size].SetBit(uint(i%bitbyte.Size), bit)
	}
	return a
}

// Clone returns an independent copy of the array.
func (a *BitArray) Clone() *BitArray {
	c := &BitArray{
		length: a.length,
		bytes:  make([]bitbyte.Byte, len(a.bytes)),
		logger: a.logger,
	}
	copy(c.bytes, a.bytes)
	return c
}

// Equal reports whether both arrays have the same length and addressable bits.
func (a *BitArray) Equal(other *BitArray) bool {
	if other == nil || a.length != other.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if a.bit(i) != other.bit(i) {
			return false
		}
	}
	return true
}

// BitString renders the addressable bits as a string of '0' and '1'.
func (a *BitArray) BitString() string {
	var sb strings.Builder
	sb.Grow(a.length)
	for i, b := range a.bytes {
		for j, bit := range b.Bits() {
			if i*bitbyte.Size+j >= a.length {
				break
			}
			sb.WriteByte('0' + bit)
		}
	}
	return sb.String()
}

// WriteTo writes the addressable bits to w, most-significant bit first.
// The last byte is padded with zero bits, so storage bits beyond Len() are
// never written.
func (a *BitArray) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bitstream.NewWriter(cw)

	if err := bw.Write(a.Bytes(), a.length); err != nil {
		return cw.n, err
	}
	if err := bw.Flush(bitstream.Zero); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func boolToBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
