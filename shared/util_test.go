package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumBits(t *testing.T) {
	r := require.New(t)

	r.Equal(0, NumBits(0))
	r.Equal(1, NumBits(1))
	r.Equal(2, NumBits(2))
	r.Equal(2, NumBits(3))
	r.Equal(8, NumBits(255))
	r.Equal(9, NumBits(256))
	r.Equal(32, NumBits(1<<32-1))
	r.Equal(64, NumBits(1<<64-1))
}

func TestNumBytes(t *testing.T) {
	r := require.New(t)

	r.Equal(0, NumBytes(0))
	r.Equal(1, NumBytes(1))
	r.Equal(1, NumBytes(8))
	r.Equal(2, NumBytes(9))
	r.Equal(4, NumBytes(32))
}

func TestValidName(t *testing.T) {
	r := require.New(t)

	r.True(ValidName("greeting"))
	r.True(ValidName("a-b_c.1"))

	r.False(ValidName(""))
	r.False(ValidName(".hidden"))
	r.False(ValidName("a/b"))
	r.False(ValidName(`a\b`))
	r.False(ValidName(".."))
}

func TestMax(t *testing.T) {
	r := require.New(t)

	r.Equal(2, Max(1, 2))
	r.Equal(2, Max(2, 1))
	r.Equal(-1, Max(-1, -3))
}
