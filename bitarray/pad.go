package bitarray

import (
	"math"
	"reflect"
)

// LeftPad returns length booleans holding source aligned to the right.
// Positions without a source element are false. When source is longer than
// length, its leading elements are dropped.
func LeftPad(source []bool, length int) []bool {
	if length < 0 {
		length = 0
	}

	out := make([]bool, length)
	shift := length - len(source)
	for i := length - 1; i >= 0; i-- {
		if j := i - shift; j >= 0 && j < len(source) {
			out[i] = source[j]
		}
	}
	return out
}

// LeftPadBits is LeftPad for 0/1 values; any non-zero value is true.
func LeftPadBits(source []uint8, length int) []bool {
	bools := make([]bool, len(source))
	for i, b := range source {
		bools[i] = b != 0
	}
	return LeftPad(bools, length)
}

// ProjectBitsArray returns the truthiness of every element of source.
// source must be a slice or array, a *BitArray or a *Safe; anything else
// fails with ErrInvalidArgument.
//
// Truthiness: booleans are themselves, numbers are true unless zero or NaN,
// strings are true unless empty, nil is false and any other value is true.
func ProjectBitsArray(source interface{}) ([]bool, error) {
	switch s := source.(type) {
	case []bool:
		out := make([]bool, len(s))
		copy(out, s)
		return out, nil
	case *BitArray:
		if s == nil {
			break
		}
		return s.Bools(), nil
	case *Safe:
		if s == nil || s.BitArray == nil {
			break
		}
		return s.Bools(), nil
	default:
		v := reflect.ValueOf(source)
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			break
		}
		out := make([]bool, v.Len())
		for i := range out {
			out[i] = truthy(v.Index(i).Interface())
		}
		return out, nil
	}

	return nil, invalidArgument("bits", "must be a sequence or a bit array, given: %T", source)
}

func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}

	if n, ok := number(v); ok {
		return n != 0 && !math.IsNaN(n)
	}
	return true
}

// number converts any Go numeric value to float64.
func number(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
