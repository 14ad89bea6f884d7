package shared

import (
	"math/bits"
	"path/filepath"
	"strings"
)

// NumBits returns the number of bits needed to represent n; zero needs no bits.
func NumBits(n uint64) int {
	return bits.Len64(n)
}

// NumBytes returns the number of bytes required to hold numBits bits.
func NumBytes(numBits int) int {
	return (numBits + 7) / 8
}

// ValidName reports whether name can be used as a stored array name:
// non-empty, not hidden, and free of path separators.
func ValidName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	return filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}

func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}
