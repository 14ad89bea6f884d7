package bitarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected Source
	}{
		{"nil", nil, Empty{}},
		{"int", -1, Integer(-1)},
		{"uint64", uint64(1 << 40), Integer(1 << 40)},
		{"float", 1.5, Float(1.5)},
		{"bool", true, Boolean(true)},
		{"string", "abc", Text("abc")},
		{"bools", []bool{true, false}, BitSequence{true, false}},
		{"mixed bools", []interface{}{false, true}, BitSequence{false, true}},
		{"empty slice", []int{}, BitSequence{}},
		{"bytes", []int{0, 255}, ByteSequence{0, 255}},
		{"byte slice", []byte{7}, ByteSequence{7}},
		{"bytes with bools", []interface{}{true, 2}, ByteSequence{1, 2}},
		{"fractions", []float64{-0.5, 254.9}, ByteSequence{0, 254}},
		{"words", []int{256, 1}, WordSequence{256, 1}},
		{"negative words", []int64{-1}, WordSequence{0xFFFFFFFF}},
		{"array", [2]int{1, 1000}, WordSequence{1, 1000}},
		{"disqualified", []interface{}{1, "x"}, Empty{}},
		{"struct", struct{}{}, Empty{}},
		{"source", Text("x"), Text("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Infer(tt.value))
		})
	}
}

func TestKindString(t *testing.T) {
	req := require.New(t)

	req.Equal("EMPTY", Empty{}.Kind().String())
	req.Equal("WORD_SEQUENCE", WordSequence{}.Kind().String())
	req.Equal("TEXT", Text("").Kind().String())
	req.Equal("UNKNOWN", Kind(0).String())
	req.Equal("UNKNOWN", Kind(100).String())
}
