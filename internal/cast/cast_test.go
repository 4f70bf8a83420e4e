package cast

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numeric/internal/unit"
)

type celsius int16

func TestIntegerToInteger(t *testing.T) {
	tests := []struct {
		name string
		got  func() (any, bool)
		want any
		ok   bool
	}{
		{"u16 100 to i8", wrap(To[int8, uint16], 100), int8(100), true},
		{"u16 200 to i8", wrap(To[int8, uint16], 200), int8(0), false},
		{"i8 -1 to u8", wrap(To[uint8, int8], -1), uint8(0), false},
		{"i64 min to i32", wrap(To[int32, int64], math.MinInt64), int32(0), false},
		{"i64 -2^31 to i32", wrap(To[int32, int64], math.MinInt32), int32(math.MinInt32), true},
		{"u64 max to i64", wrap(To[int64, uint64], math.MaxUint64), int64(0), false},
		{"u64 2^63-1 to i64", wrap(To[int64, uint64], math.MaxInt64), int64(math.MaxInt64), true},
		{"i64 -1 to u64", wrap(To[uint64, int64], -1), uint64(0), false},
		{"u64 max identity", wrap(To[uint64, uint64], math.MaxUint64), uint64(math.MaxUint64), true},
		{"i64 max identity", wrap(To[int64, int64], math.MaxInt64), int64(math.MaxInt64), true},
		{"u32 max to u16", wrap(To[uint16, uint32], math.MaxUint32), uint16(0), false},
		{"i32 300 to named i16", wrap(To[celsius, int32], 300), celsius(300), true},
		{"i32 40000 to named i16", wrap(To[celsius, int32], 40000), celsius(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.got()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func wrap[Out, In unit.Number](f func(In) (Out, bool), v In) func() (any, bool) {
	return func() (any, bool) {
		r, ok := f(v)
		return r, ok
	}
}

func TestFloatToInteger(t *testing.T) {
	two63 := math.Ldexp(1, 63)
	two64 := math.Ldexp(1, 64)

	tests := []struct {
		name string
		got  func() (any, bool)
		want any
		ok   bool
	}{
		{"127.9 to i8", wrap(To[int8, float64], 127.9), int8(127), true},
		{"128 to i8", wrap(To[int8, float64], 128), int8(0), false},
		{"-128.9 to i8", wrap(To[int8, float64], -128.9), int8(-128), true},
		{"-129 to i8", wrap(To[int8, float64], -129), int8(0), false},
		{"-0.9 to u8", wrap(To[uint8, float64], -0.9), uint8(0), true},
		{"-1 to u8", wrap(To[uint8, float64], -1), uint8(0), false},
		{"-1.5 to i32", wrap(To[int32, float64], -1.5), int32(-1), true},
		{"-1.5 to u32", wrap(To[uint32, float64], -1.5), uint32(0), false},
		{"2^63 to i64", wrap(To[int64, float64], two63), int64(0), false},
		{"-2^63 to i64", wrap(To[int64, float64], -two63), int64(math.MinInt64), true},
		{"2^64 to u64", wrap(To[uint64, float64], two64), uint64(0), false},
		{"below 2^64 to u64", wrap(To[uint64, float64], math.Nextafter(two64, 0)), uint64(1<<64 - 1<<11), true},
		{"f32 2^31 to i32", wrap(To[int32, float32], float32(1<<31)), int32(0), false},
		{"f32 -2^31 to i32", wrap(To[int32, float32], float32(-(1 << 31))), int32(math.MinInt32), true},
		{"NaN to i64", wrap(To[int64, float64], math.NaN()), int64(0), false},
		{"+Inf to u8", wrap(To[uint8, float64], math.Inf(1)), uint8(0), false},
		{"-Inf to i16", wrap(To[int16, float32], float32(math.Inf(-1))), int16(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.got()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToFloat(t *testing.T) {
	f, ok := To[float32](int64(math.MaxInt64))
	assert.True(t, ok)
	assert.Equal(t, float32(math.Ldexp(1, 63)), f)

	f, ok = To[float32](1e300)
	assert.True(t, ok, "narrowing floats saturate")
	assert.True(t, math.IsInf(float64(f), 1))

	d, ok := To[float64](float32(0.1))
	assert.True(t, ok)
	assert.Equal(t, float64(float32(0.1)), d)

	d, ok = To[float64](math.NaN())
	assert.True(t, ok)
	assert.True(t, math.IsNaN(d))

	d, ok = To[float64](uint8(255))
	assert.True(t, ok)
	assert.Equal(t, 255.0, d)
}

func TestChecked(t *testing.T) {
	v, err := Checked[uint8](int16(255))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)

	_, err = Checked[uint8](int16(256))
	require.Error(t, err)
	assert.ErrorIs(t, err, unit.ErrConversionOutOfRange)

	var opErr *unit.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "cast", opErr.Op)
	assert.Equal(t, "cast: conversion out of range: 256 (int16) does not fit uint8", err.Error())
}

func TestTruncateRound(t *testing.T) {
	v, ok := Truncate[uint8](255.99)
	assert.True(t, ok)
	assert.Equal(t, uint8(255), v)

	_, ok = Round[uint8](255.5)
	assert.False(t, ok)

	r, ok := Round[int8](-2.5)
	assert.True(t, ok)
	assert.Equal(t, int8(-3), r)

	_, ok = Round[int8](127.5)
	assert.False(t, ok)

	_, ok = Truncate[int32](float32(math.NaN()))
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		v, err := Parse[int8]("127")
		require.NoError(t, err)
		assert.Equal(t, int8(127), v)

		h, err := Parse[uint16]("0xff_ff")
		require.NoError(t, err)
		assert.Equal(t, uint16(math.MaxUint16), h)

		b, err := Parse[int32](" -0b101 ")
		require.NoError(t, err)
		assert.Equal(t, int32(-5), b)

		_, err = Parse[int8]("128")
		assert.ErrorIs(t, err, unit.ErrConversionOutOfRange)

		_, err = Parse[uint8]("-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, unit.ErrConversionOutOfRange)
	})

	t.Run("floats", func(t *testing.T) {
		f, err := Parse[float64]("2.5")
		require.NoError(t, err)
		assert.Equal(t, 2.5, f)

		g, err := Parse[float32]("0.1")
		require.NoError(t, err)
		assert.Equal(t, float32(0.1), g)

		inf, err := Parse[float64]("-Inf")
		require.NoError(t, err)
		assert.True(t, math.IsInf(inf, -1))

		_, err = Parse[float32]("1e39")
		assert.ErrorIs(t, err, unit.ErrConversionOutOfRange)
	})

	t.Run("syntax", func(t *testing.T) {
		_, err := Parse[int64]("twelve")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
		assert.Contains(t, err.Error(), `parse "twelve" as int64`)
	})
}
