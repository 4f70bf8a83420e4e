// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cast converts between machine numeric kinds without silent loss of
// range. A value that does not fit the destination yields ok == false from
// To, or an error wrapping unit.ErrConversionOutOfRange from Checked.
//
// Example:
//
//	v, ok := cast.To[int8](uint16(100)) // 100, true
//	_, ok = cast.To[int8](uint16(200))  // ok == false
//	n, ok := cast.To[int32](-1.5)       // -1, true
package cast

import (
	"github.com/born-ml/numeric/internal/cast"
	"github.com/born-ml/numeric/internal/unit"
)

// To converts v to Out, reporting ok == false when v is out of range.
// Floats truncate toward zero; NaN and infinities never convert to integers.
func To[Out, In unit.Number](v In) (Out, bool) {
	return cast.To[Out](v)
}

// Checked is To returning an error instead of an ok flag.
func Checked[Out, In unit.Number](v In) (Out, error) {
	return cast.Checked[Out](v)
}

// Truncate converts a float to an integer, rounding toward zero.
func Truncate[Out unit.Integer, In unit.Float](v In) (Out, bool) {
	return cast.Truncate[Out](v)
}

// Round converts a float to an integer, rounding half away from zero.
func Round[Out unit.Integer, In unit.Float](v In) (Out, bool) {
	return cast.Round[Out](v)
}

// Parse reads a T from text. Integers accept 0x, 0o and 0b prefixes.
func Parse[T unit.Number](s string) (T, error) {
	return cast.Parse[T](s)
}
