package bitarray

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	EncodingASCII = "ascii"
	EncodingUTF8  = "utf8"
)

// DecodeError reports the first byte that does not start a valid UTF-8 sequence.
type DecodeError struct {
	Offset int
	Byte   byte
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("malformed utf-8 sequence at byte %d (0x%02x)", err.Offset, err.Byte)
}

// String maps every storage byte to the character with the same code.
func (a *BitArray) String() string {
	return latin1(a.Bytes())
}

// ToString renders the storage bytes as text. The encoding name is case-insensitive.
// "utf8" and "utf-8" decode the bytes as UTF-8 and fall back to the
// one-byte-one-character mapping of String when the bytes are malformed.
// Any other encoding uses String.
func (a *BitArray) ToString(encoding string) string {
	data := a.Bytes()

	switch strings.ToLower(encoding) {
	case EncodingUTF8, "utf-8":
		s, err := decodeText(data)
		if err != nil {
			a.logger.Debug("bitarray: utf-8 decoding failed, using ascii", zap.Error(err))
			return latin1(data)
		}
		return s
	}

	return latin1(data)
}

func latin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

// encodeText returns the UTF-8 byte sequence of s. Invalid sequences
// already present in s are replaced by U+FFFD.
func encodeText(s string) []byte {
	data := make([]byte, 0, len(s))
	for _, r := range s {
		data = utf8.AppendRune(data, r)
	}
	return data
}

func decodeText(data []byte) (string, error) {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &DecodeError{Offset: i, Byte: data[i]}
		}
		i += size
	}
	return string(data), nil
}
