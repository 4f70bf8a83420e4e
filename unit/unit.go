// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package unit provides the capability layer shared by every numeric type in
// the module:
//   - Number, Integer, Float, Signed: constraints over the machine kinds
//   - Zero, One, Inv: identities and invertibility
//   - Min, Max, Clamp, MinValue, MaxValue, Abs, Signum: ordering and bounds
//   - ToBits, ToBytes and friends: bit-level reinterpretation
//   - Kind: runtime description of a machine kind
//
// Example:
//
//	unit.MaxValue[int8]()             // 127
//	unit.Signum(math.Copysign(0, -1)) // -0
//	b := unit.ToBEBytes(uint16(0x1234)) // [0x12 0x34]
package unit

import (
	"github.com/born-ml/numeric/internal/unit"
)

// Constraints

// Number permits every machine integer and float kind.
type Number = unit.Number

// Integer permits any machine integer.
type Integer = unit.Integer

// Signed permits any signed machine integer.
type Signed = unit.Signed

// Unsigned permits any unsigned machine integer.
type Unsigned = unit.Unsigned

// Float permits float32 and float64.
type Float = unit.Float

// SignedNumber permits the kinds that can hold negative values.
type SignedNumber = unit.SignedNumber

// Field is implemented by composite units whose arithmetic cannot fail.
type Field[T any] = unit.Field[T]

// CheckedField is implemented by composite units whose arithmetic reports
// overflow and division by zero.
type CheckedField[T any] = unit.CheckedField[T]

// Kind describes a machine numeric kind at runtime.
type Kind = unit.Kind

// Kind constants.
const (
	Invalid Kind = unit.Invalid
	Int8    Kind = unit.Int8
	Int16   Kind = unit.Int16
	Int32   Kind = unit.Int32
	Int64   Kind = unit.Int64
	Int     Kind = unit.Int
	Uint8   Kind = unit.Uint8
	Uint16  Kind = unit.Uint16
	Uint32  Kind = unit.Uint32
	Uint64  Kind = unit.Uint64
	Uint    Kind = unit.Uint
	Float32 Kind = unit.Float32
	Float64 Kind = unit.Float64
)

// KindOf returns the Kind of T.
func KindOf[T Number]() Kind {
	return unit.KindOf[T]()
}

// ParseKind resolves a kind name such as "int8", "u16" or "f64".
func ParseKind(s string) (Kind, error) {
	return unit.ParseKind(s)
}

// Errors

// Error kinds wrapped by every failure in the module.
var (
	ErrConversionOutOfRange = unit.ErrConversionOutOfRange
	ErrDivisionByZero       = unit.ErrDivisionByZero
	ErrOverflow             = unit.ErrOverflow
	ErrUnsupportedWidth     = unit.ErrUnsupportedWidth
	ErrDomain               = unit.ErrDomain
)

// OpError describes a failed numeric operation.
type OpError = unit.OpError

// Identities

// Zero returns the additive identity of T.
func Zero[T Number]() T { return unit.Zero[T]() }

// One returns the multiplicative identity of T.
func One[T Number]() T { return unit.One[T]() }

// IsZero reports whether x == 0. -0.0 is zero, NaN is not.
func IsZero[T Number](x T) bool { return unit.IsZero(x) }

// IsOne reports whether x == 1.
func IsOne[T Number](x T) bool { return unit.IsOne(x) }

// Inv returns 1/x. Integer zero reports ErrDivisionByZero; float zero
// yields an infinity.
func Inv[T Number](x T) (T, error) { return unit.Inv(x) }

// Sum adds xs.
func Sum[T Number](xs ...T) T { return unit.Sum(xs...) }

// Product multiplies xs.
func Product[T Number](xs ...T) T { return unit.Product(xs...) }

// SumField adds composite units.
func SumField[T Field[T]](xs ...T) T { return unit.SumField(xs...) }

// CheckedSum adds composite units and stops at the first failure.
//
// Example:
//
//	total, err := unit.CheckedSum(fixed.MaxValue[int16](), fixed.Epsilon[int16]())
//	// errors.Is(err, unit.ErrOverflow)
func CheckedSum[T CheckedField[T]](xs ...T) (T, error) { return unit.CheckedSum(xs...) }
