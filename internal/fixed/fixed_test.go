package fixed

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numeric/internal/unit"
)

func mustFloat[R Raw](t *testing.T, f float64) Fixed[R] {
	t.Helper()
	v, err := FromFloat[R](f)
	require.NoError(t, err)
	return v
}

func mustInt[R Raw](t *testing.T, n int64) Fixed[R] {
	t.Helper()
	v, err := FromInt[R](n)
	require.NoError(t, err)
	return v
}

func TestScaleFor(t *testing.T) {
	tests := []struct {
		bits int
		want uint
	}{
		{16, 8},
		{32, 16},
		{64, 32},
		{128, 64},
	}
	for _, tt := range tests {
		got, err := ScaleFor(tt.bits)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d bits", tt.bits)
	}

	for _, bits := range []int{0, 8, 24, 256} {
		_, err := ScaleFor(bits)
		assert.ErrorIs(t, err, unit.ErrUnsupportedWidth, "%d bits", bits)
	}

	assert.Equal(t, uint(8), Fixed16{}.Scale())
	assert.Equal(t, uint(16), Fixed32{}.Scale())
	assert.Equal(t, uint(32), Fixed64{}.Scale())
	assert.Equal(t, 64, Fixed64{}.Bits())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, int32(3<<16), mustInt[int32](t, 3).Raw())
	assert.Equal(t, int16(-32768), mustInt[int16](t, -128).Raw())
	assert.Equal(t, int16(384), mustFloat[int16](t, 1.5).Raw())
	assert.Equal(t, int16(1), mustFloat[int16](t, 1.0/512).Raw(), "halves round away from zero")
	assert.Equal(t, int64(1)<<32, One[int64]().Raw())
	assert.Equal(t, int32(1), Epsilon[int32]().Raw())
	assert.True(t, Zero[int16]().IsZero())

	errs := []error{
		func() error { _, err := FromInt[int16](128); return err }(),
		func() error { _, err := FromInt[int64](1 << 40); return err }(),
		func() error { _, err := FromFloat[int16](128); return err }(),
		func() error { _, err := FromFloat[int32](math.NaN()); return err }(),
		func() error { _, err := FromFloat[int64](math.Inf(-1)); return err }(),
	}
	for i, err := range errs {
		assert.ErrorIs(t, err, unit.ErrConversionOutOfRange, "case %d", i)
	}
}

func TestAccessors(t *testing.T) {
	f := mustFloat[int16](t, -1.5)
	assert.Equal(t, int64(-1), f.Int())
	assert.Equal(t, int16(-128), f.Frac().Raw())
	assert.Equal(t, -1.5, f.Float64())

	assert.Equal(t, uint64(0xFFFF), New[int16](-1).ToBits())
	assert.Equal(t, int16(-1), FromBits[int16](0xFFFF).Raw())
	assert.Equal(t, int64(math.MinInt64), FromBits[int64](1<<63).Raw())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"one and a half", mustFloat[int16](t, 1.5).String(), "1.5"},
		{"negative epsilon", New[int16](-1).String(), "-0.00390625"},
		{"integer", mustInt[int32](t, 3).String(), "3"},
		{"max16", MaxValue[int16]().String(), "127.99609375"},
		{"min64", MinValue[int64]().String(), "-2147483648"},
		{"zero", Zero[int64]().String(), "0"},
		{"epsilon32", Epsilon[int32]().String(), "0.0000152587890625"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestOrdering(t *testing.T) {
	a, b := mustFloat[int32](t, -0.5), mustFloat[int32](t, 2)

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.True(t, a.Less(b))
	assert.True(t, a.Equal(mustFloat[int32](t, -0.5)))
	assert.Equal(t, a, a.Min(b))
	assert.Equal(t, b, a.Max(b))
	assert.Equal(t, One[int32](), b.Clamp(Zero[int32](), One[int32]()))
	assert.Panics(t, func() { a.Clamp(b, a) })

	assert.True(t, a.IsNegative())
	assert.Equal(t, mustInt[int32](t, -1), a.Signum())
	assert.Equal(t, One[int32](), b.Signum())
	assert.Equal(t, Zero[int32](), Zero[int32]().Signum())

	abs, err := a.Abs()
	require.NoError(t, err)
	assert.Equal(t, mustFloat[int32](t, 0.5), abs)

	_, err = MinValue[int16]().Abs()
	assert.ErrorIs(t, err, unit.ErrOverflow)
	_, err = MinValue[int64]().Neg()
	assert.ErrorIs(t, err, unit.ErrOverflow)
}

func TestCheckedField(t *testing.T) {
	xs := []Fixed32{mustFloat[int32](t, 1.25), mustFloat[int32](t, -0.75), mustInt[int32](t, 10)}
	sum, err := unit.CheckedSum(xs...)
	require.NoError(t, err)
	assert.Equal(t, mustFloat[int32](t, 10.5), sum)

	_, err = unit.CheckedSum(MaxValue[int16](), Epsilon[int16]())
	require.Error(t, err)
	assert.ErrorIs(t, err, unit.ErrOverflow)

	var opErr *unit.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "fixed.add", opErr.Op)
}
