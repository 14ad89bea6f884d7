package bitarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeftPad(t *testing.T) {
	tests := []struct {
		name     string
		source   []bool
		length   int
		expected []bool
	}{
		{
			name:     "pads on the left",
			source:   []bool{true, false},
			length:   4,
			expected: []bool{false, false, true, false},
		},
		{
			name:     "exact length",
			source:   []bool{true, true},
			length:   2,
			expected: []bool{true, true},
		},
		{
			name:     "longer source drops leading elements",
			source:   []bool{true, false, true},
			length:   2,
			expected: []bool{false, true},
		},
		{
			name:     "empty source",
			source:   nil,
			length:   3,
			expected: []bool{false, false, false},
		},
		{
			name:     "negative length",
			source:   []bool{true},
			length:   -1,
			expected: []bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, LeftPad(tt.source, tt.length))
		})
	}
}

func TestLeftPadBits(t *testing.T) {
	require.Equal(t, []bool{false, false, true, true, false}, LeftPadBits([]uint8{1, 7, 0}, 5))
}

func TestProjectBitsArray(t *testing.T) {
	req := require.New(t)

	bits, err := ProjectBitsArray([]int{1, 500, 0})
	req.NoError(err)
	req.Equal([]bool{true, true, false}, bits)

	bits, err = ProjectBitsArray([]interface{}{nil, "", "x", 0.0, math.NaN(), -2, false, true, struct{}{}})
	req.NoError(err)
	req.Equal([]bool{false, false, true, false, false, true, false, true, true}, bits)

	bits, err = ProjectBitsArray([3]uint8{0, 2, 0})
	req.NoError(err)
	req.Equal([]bool{false, true, false}, bits)

	bits, err = ProjectBitsArray(mustFromValue(t, []bool{true, false}))
	req.NoError(err)
	req.Equal([]bool{true, false}, bits)

	s, err := NewSafe(2)
	req.NoError(err)
	req.NoError(s.Put(1, 1))
	bits, err = ProjectBitsArray(s)
	req.NoError(err)
	req.Equal([]bool{false, true}, bits)

	bits, err = ProjectBitsArray([]bool{})
	req.NoError(err)
	req.Empty(bits)
}

func TestProjectBitsArray_Invalid(t *testing.T) {
	req := require.New(t)

	for _, source := range []interface{}{nil, 1, "101", true, map[int]int{}, (*BitArray)(nil)} {
		_, err := ProjectBitsArray(source)
		req.ErrorIs(err, ErrInvalidArgument, "%#v", source)
	}
}
