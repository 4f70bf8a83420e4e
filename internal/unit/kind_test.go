package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample int16

func TestKindBits(t *testing.T) {
	tests := []struct {
		kind  Kind
		bits  int
		bytes int
	}{
		{Int8, 8, 1},
		{Uint16, 16, 2},
		{Int32, 32, 4},
		{Float32, 32, 4},
		{Uint64, 64, 8},
		{Float64, 64, 8},
		{Invalid, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.bits, tt.kind.Bits(), "%s.Bits()", tt.kind)
		assert.Equal(t, tt.bytes, tt.kind.Bytes(), "%s.Bytes()", tt.kind)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Int8, KindOf[int8]())
	assert.Equal(t, Uint32, KindOf[uint32]())
	assert.Equal(t, Float64, KindOf[float64]())
	assert.Equal(t, Int16, KindOf[sample](), "named types resolve to their underlying kind")
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, Float32.IsFloat())
	assert.True(t, Float32.IsSigned())
	assert.False(t, Float32.IsInteger())
	assert.True(t, Int64.IsSigned())
	assert.False(t, Uint8.IsSigned())
	assert.True(t, Uint8.IsInteger())
	assert.False(t, Invalid.IsInteger())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"int8", Int8},
		{"i16", Int16},
		{" U32 ", Uint32},
		{"float64", Float64},
		{"f32", Float32},
		{"byte", Uint8},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("int24")
	assert.ErrorIs(t, err, ErrUnsupportedWidth)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "uint16", Uint16.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
