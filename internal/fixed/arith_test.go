package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/born-ml/numeric/internal/unit"
)

func TestCrossWidthAdd(t *testing.T) {
	a := mustFloat[int16](t, 1.5)
	b := mustFloat[int32](t, 2.25)

	sum, err := Add[int32](a, b)
	require.NoError(t, err)
	assert.Equal(t, int32(245760), sum.Raw())
	assert.Equal(t, 3.75, sum.Float64())

	wide, err := Add[int64](a, b)
	require.NoError(t, err)
	assert.Equal(t, 3.75, wide.Float64())

	_, err = Add[int16](a, b)
	assert.ErrorIs(t, err, unit.ErrUnsupportedWidth, "Fixed16 cannot hold scale 16")
}

func TestRescaleInvariant(t *testing.T) {
	// The finest bit of each operand survives.
	sum, err := Add[int32](Epsilon[int16](), Epsilon[int32]())
	require.NoError(t, err)
	assert.Equal(t, int32(257), sum.Raw())
	assert.Equal(t, 1.0/256+1.0/65536, sum.Float64())

	diff, err := Sub[int64](Epsilon[int32](), Epsilon[int16]())
	require.NoError(t, err)
	assert.Equal(t, 1.0/65536-1.0/256, diff.Float64())
}

func TestAddSubOverflow(t *testing.T) {
	_, err := MaxValue[int16]().Add(Epsilon[int16]())
	assert.ErrorIs(t, err, unit.ErrOverflow)

	_, err = MinValue[int64]().Sub(Epsilon[int64]())
	assert.ErrorIs(t, err, unit.ErrOverflow)

	_, err = Add[int32](MaxValue[int64](), One[int16]())
	assert.ErrorIs(t, err, unit.ErrOverflow)
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"mixed sign", 1.5, -2.25, -3.375},
		{"both negative", -0.5, -0.5, 0.25},
		{"by zero", 123.25, 0, 0},
		{"by one", -7.125, 1, -7.125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustFloat[int32](t, tt.a).Mul(mustFloat[int32](t, tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Float64())
		})
	}

	t.Run("truncates toward zero", func(t *testing.T) {
		half := mustFloat[int32](t, 0.5)
		got, err := Epsilon[int32]().Mul(half)
		require.NoError(t, err)
		assert.True(t, got.IsZero())

		neg := New[int32](-1)
		got, err = neg.Mul(half)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("cross width", func(t *testing.T) {
		got, err := Mul[int64](mustFloat[int16](t, -2.5), mustFloat[int32](t, 4.25))
		require.NoError(t, err)
		assert.Equal(t, -10.625, got.Float64())
	})
}

func TestMulOverflow64(t *testing.T) {
	_, err := MaxValue[int64]().Mul(MaxValue[int64]())
	require.Error(t, err)
	assert.ErrorIs(t, err, unit.ErrOverflow)

	_, err = MinValue[int64]().Mul(MinValue[int64]())
	assert.ErrorIs(t, err, unit.ErrOverflow)

	ok, err := mustInt[int64](t, 46340).Mul(mustInt[int64](t, 46340))
	require.NoError(t, err)
	assert.Equal(t, int64(2147395600), ok.Int())

	_, err = mustInt[int64](t, 46341).Mul(mustInt[int64](t, 46341))
	assert.ErrorIs(t, err, unit.ErrOverflow)

	_, err = mustInt[int64](t, -46341).Mul(mustInt[int64](t, 46341))
	assert.ErrorIs(t, err, unit.ErrOverflow)
}

func TestDiv(t *testing.T) {
	third, err := mustInt[int32](t, 1).Div(mustInt[int32](t, 3))
	require.NoError(t, err)
	assert.Equal(t, int32(21845), third.Raw())

	negThird, err := mustInt[int32](t, -1).Div(mustInt[int32](t, 3))
	require.NoError(t, err)
	assert.Equal(t, int32(-21845), negThird.Raw(), "truncates toward zero")

	mixed, err := Div[int64](mustInt[int16](t, 3), mustInt[int32](t, 2))
	require.NoError(t, err)
	assert.Equal(t, 1.5, mixed.Float64())

	_, err = One[int16]().Div(Zero[int16]())
	assert.ErrorIs(t, err, unit.ErrDivisionByZero)

	_, err = MaxValue[int16]().Div(Epsilon[int16]())
	assert.ErrorIs(t, err, unit.ErrOverflow)

	_, err = MaxValue[int64]().Div(Epsilon[int64]())
	assert.ErrorIs(t, err, unit.ErrOverflow)
}

func TestInv(t *testing.T) {
	four, err := mustFloat[int32](t, 0.25).Inv()
	require.NoError(t, err)
	assert.Equal(t, mustInt[int32](t, 4), four)

	back, err := four.Inv()
	require.NoError(t, err)
	assert.Equal(t, mustFloat[int32](t, 0.25), back)

	_, err = Zero[int64]().Inv()
	assert.ErrorIs(t, err, unit.ErrDivisionByZero)
}

func TestRescale(t *testing.T) {
	narrow, err := Rescale[int16](mustFloat[int32](t, 1.75))
	require.NoError(t, err)
	assert.Equal(t, int16(448), narrow.Raw())

	lost, err := Rescale[int16](New[int32](-1))
	require.NoError(t, err)
	assert.True(t, lost.IsZero(), "fraction below 1/256 truncates toward zero")

	_, err = Rescale[int16](mustInt[int32](t, 300))
	assert.ErrorIs(t, err, unit.ErrOverflow)

	wide, err := Rescale[int64](mustFloat[int16](t, 100.5))
	require.NoError(t, err)
	assert.Equal(t, 100.5, wide.Float64())

	same, err := Rescale[int32](Epsilon[int32]())
	require.NoError(t, err)
	assert.Equal(t, Epsilon[int32](), same)
}

func TestMsgpack(t *testing.T) {
	in := mustFloat[int32](t, -12.375)
	data, err := msgpack.Marshal(in)
	require.NoError(t, err)

	var out Fixed32
	require.NoError(t, msgpack.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	wide, err := msgpack.Marshal(MaxValue[int64]())
	require.NoError(t, err)
	var narrow Fixed16
	err = msgpack.Unmarshal(wide, &narrow)
	assert.ErrorIs(t, err, unit.ErrConversionOutOfRange)
}
