package bitarray

import (
	"math"
	"reflect"
)

type Kind int

var kinds = []string{
	"EMPTY",
	"INTEGER",
	"FLOAT",
	"BOOLEAN",
	"BIT_SEQUENCE",
	"BYTE_SEQUENCE",
	"WORD_SEQUENCE",
	"TEXT",
}

const (
	KindEmpty Kind = 1 + iota
	KindInteger
	KindFloat
	KindBoolean
	KindBitSequence
	KindByteSequence
	KindWordSequence
	KindText
)

func (k Kind) String() string {
	if k < KindEmpty || int(k) > len(kinds) {
		return "UNKNOWN"
	}
	return kinds[k-1]
}

// Source is the input of From. The set of implementations is closed:
// Empty, Integer, Float, Boolean, BitSequence, ByteSequence, WordSequence and Text.
type Source interface {
	Kind() Kind
	isSource()
}

type (
	// Empty builds an array of length zero.
	Empty struct{}
	// Integer builds 32 bits holding the value modulo 2^32.
	Integer int64
	// Float builds 32 bits holding the value truncated toward zero, modulo 2^32.
	// NaN and infinities build 32 zero bits.
	Float float64
	// Boolean builds a single bit.
	Boolean bool
	// BitSequence is taken literally, one bit per element.
	BitSequence []bool
	// ByteSequence builds 8 bits per element.
	ByteSequence []byte
	// WordSequence builds 32 bits per element.
	WordSequence []uint32
	// Text builds 8 bits per byte of its UTF-8 encoding.
	Text string
)

func (Empty) Kind() Kind        { return KindEmpty }
func (Integer) Kind() Kind      { return KindInteger }
func (Float) Kind() Kind        { return KindFloat }
func (Boolean) Kind() Kind      { return KindBoolean }
func (BitSequence) Kind() Kind  { return KindBitSequence }
func (ByteSequence) Kind() Kind { return KindByteSequence }
func (WordSequence) Kind() Kind { return KindWordSequence }
func (Text) Kind() Kind         { return KindText }

func (Empty) isSource()        {}
func (Integer) isSource()      {}
func (Float) isSource()        {}
func (Boolean) isSource()      {}
func (BitSequence) isSource()  {}
func (ByteSequence) isSource() {}
func (WordSequence) isSource() {}
func (Text) isSource()         {}

// Infer classifies an arbitrary Go value as a Source.
//
// Integers, floats, booleans and strings map to Integer, Float, Boolean and
// Text. A slice or array is classified by its elements:
//   - every element is a bool: BitSequence;
//   - every element is a number or bool and every number lies in (-1, 255]: ByteSequence;
//   - every element is a number or bool: WordSequence;
//   - otherwise: Empty.
//
// A Source is returned unchanged; any other value maps to Empty.
func Infer(v interface{}) Source {
	switch x := v.(type) {
	case Source:
		return x
	case nil:
		return Empty{}
	case bool:
		return Boolean(x)
	case string:
		return Text(x)
	case float32:
		return Float(x)
	case float64:
		return Float(x)
	case int:
		return Integer(x)
	case int8:
		return Integer(x)
	case int16:
		return Integer(x)
	case int32:
		return Integer(x)
	case int64:
		return Integer(x)
	case uint:
		return Integer(x)
	case uint8:
		return Integer(x)
	case uint16:
		return Integer(x)
	case uint32:
		return Integer(x)
	case uint64:
		return Integer(x)
	case uintptr:
		return Integer(x)
	case []bool:
		return BitSequence(append([]bool(nil), x...))
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Empty{}
	}
	values := make([]interface{}, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	return inferSequence(values)
}

func inferSequence(values []interface{}) Source {
	allBools, allBytes := true, true
	for _, v := range values {
		if _, ok := v.(bool); ok {
			continue
		}
		allBools = false

		n, ok := number(v)
		if !ok {
			return Empty{}
		}
		if !(n > -1 && n <= math.MaxUint8) {
			allBytes = false
		}
	}

	switch {
	case allBools:
		bits := make(BitSequence, len(values))
		for i, v := range values {
			bits[i] = v.(bool)
		}
		return bits
	case allBytes:
		data := make(ByteSequence, len(values))
		for i, v := range values {
			data[i] = uint8(toWord(v))
		}
		return data
	default:
		words := make(WordSequence, len(values))
		for i, v := range values {
			words[i] = toWord(v)
		}
		return words
	}
}

// toWord converts a bool or a number to its value modulo 2^32.
func toWord(v interface{}) uint32 {
	switch x := v.(type) {
	case bool:
		return uint32(boolToBit(x))
	case int:
		return uint32(x)
	case int8:
		return uint32(x)
	case int16:
		return uint32(x)
	case int32:
		return uint32(x)
	case int64:
		return uint32(x)
	case uint:
		return uint32(x)
	case uint8:
		return uint32(x)
	case uint16:
		return uint32(x)
	case uint32:
		return x
	case uint64:
		return uint32(x)
	case uintptr:
		return uint32(x)
	case float32:
		return floatToWord(float64(x))
	case float64:
		return floatToWord(x)
	}
	return 0
}

func floatToWord(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	const modulus = 1 << 32
	m := math.Mod(math.Trunc(f), modulus)
	if m < 0 {
		m += modulus
	}
	return uint32(m)
}
