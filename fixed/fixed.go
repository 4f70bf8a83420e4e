// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fixed provides binary fixed-point numbers with a per-width scale:
//   - Fixed16: int16 raw, 8 fractional bits
//   - Fixed32: int32 raw, 16 fractional bits
//   - Fixed64: int64 raw, 32 fractional bits
//   - Fixed128: two-word num.I128 raw, 64 fractional bits
//
// Values of different widths combine through Add, Sub, Mul and Div, which
// align both operands to the larger scale and store the result in the
// requested width. Overflow at any step is reported as unit.ErrOverflow.
// Add128, Sub128, Mul128 and Div128 take operands of any width, Fixed128
// included, and return a Fixed128.
//
// Example:
//
//	a, _ := fixed.FromFloat[int16](1.5)
//	b, _ := fixed.FromFloat[int32](2.25)
//	sum, _ := fixed.Add[int32](a, b) // 3.75 as Fixed32
package fixed

import (
	num "github.com/shabbyrobe/go-num"

	"github.com/born-ml/numeric/internal/fixed"
)

// Raw permits the integer representations with a defined scale.
type Raw = fixed.Raw

// Fixed is a fixed-point number backed by the raw integer type R.
type Fixed[R Raw] = fixed.Fixed[R]

// Fixed128 is the 128-bit fixed-point number.
type Fixed128 = fixed.Fixed128

// Value is implemented by every width, Fixed128 included.
type Value = fixed.Value

// Width aliases.
type (
	Fixed16 = fixed.Fixed16
	Fixed32 = fixed.Fixed32
	Fixed64 = fixed.Fixed64
)

// Fractional bits per width.
const (
	Scale16  = fixed.Scale16
	Scale32  = fixed.Scale32
	Scale64  = fixed.Scale64
	Scale128 = fixed.Scale128
)

// ScaleFor returns the fractional bits for a width, or
// unit.ErrUnsupportedWidth.
func ScaleFor(bits int) (uint, error) { return fixed.ScaleFor(bits) }

// Construction

// New wraps a raw integer without scaling it.
func New[R Raw](raw R) Fixed[R] { return fixed.New(raw) }

// FromInt returns n as a fixed-point value.
func FromInt[R Raw](n int64) (Fixed[R], error) { return fixed.FromInt[R](n) }

// FromFloat returns the fixed-point value nearest to f.
func FromFloat[R Raw](f float64) (Fixed[R], error) { return fixed.FromFloat[R](f) }

// FromBits reinterprets the low bits of b as a raw value.
func FromBits[R Raw](b uint64) Fixed[R] { return fixed.FromBits[R](b) }

// Zero returns 0.
func Zero[R Raw]() Fixed[R] { return fixed.Zero[R]() }

// One returns 1.
func One[R Raw]() Fixed[R] { return fixed.One[R]() }

// Epsilon returns the smallest positive value, one raw unit.
func Epsilon[R Raw]() Fixed[R] { return fixed.Epsilon[R]() }

// MinValue returns the most negative representable value.
func MinValue[R Raw]() Fixed[R] { return fixed.MinValue[R]() }

// MaxValue returns the largest representable value.
func MaxValue[R Raw]() Fixed[R] { return fixed.MaxValue[R]() }

// 128-bit construction

// New128 wraps a raw 128-bit integer without scaling it.
func New128(raw num.I128) Fixed128 { return fixed.New128(raw) }

// FromInt128 returns n as a Fixed128.
func FromInt128(n int64) Fixed128 { return fixed.FromInt128(n) }

// FromFloat128 returns the Fixed128 nearest to f.
func FromFloat128(f float64) (Fixed128, error) { return fixed.FromFloat128(f) }

// FromBits128 builds a Fixed128 from the two words of its raw value.
func FromBits128(hi, lo uint64) Fixed128 { return fixed.FromBits128(hi, lo) }

// Zero128 returns 0.
func Zero128() Fixed128 { return fixed.Zero128() }

// One128 returns 1.
func One128() Fixed128 { return fixed.One128() }

// Epsilon128 returns 2^-64.
func Epsilon128() Fixed128 { return fixed.Epsilon128() }

// MinValue128 returns the most negative Fixed128.
func MinValue128() Fixed128 { return fixed.MinValue128() }

// MaxValue128 returns the largest Fixed128.
func MaxValue128() Fixed128 { return fixed.MaxValue128() }

// Cross-width arithmetic

// Add returns a + b stored in width Out.
func Add[Out, A, B Raw](a Fixed[A], b Fixed[B]) (Fixed[Out], error) { return fixed.Add[Out](a, b) }

// Sub returns a - b stored in width Out.
func Sub[Out, A, B Raw](a Fixed[A], b Fixed[B]) (Fixed[Out], error) { return fixed.Sub[Out](a, b) }

// Mul returns a * b stored in width Out, truncated toward zero.
func Mul[Out, A, B Raw](a Fixed[A], b Fixed[B]) (Fixed[Out], error) { return fixed.Mul[Out](a, b) }

// Div returns a / b stored in width Out, truncated toward zero.
func Div[Out, A, B Raw](a Fixed[A], b Fixed[B]) (Fixed[Out], error) { return fixed.Div[Out](a, b) }

// Rescale converts v to another width.
func Rescale[To, From Raw](v Fixed[From]) (Fixed[To], error) { return fixed.Rescale[To](v) }

// Add128 returns a + b as a Fixed128.
func Add128(a, b Value) (Fixed128, error) { return fixed.Add128(a, b) }

// Sub128 returns a - b as a Fixed128.
func Sub128(a, b Value) (Fixed128, error) { return fixed.Sub128(a, b) }

// Mul128 returns a * b as a Fixed128, truncated toward zero.
func Mul128(a, b Value) (Fixed128, error) { return fixed.Mul128(a, b) }

// Div128 returns a / b as a Fixed128, truncated toward zero.
func Div128(a, b Value) (Fixed128, error) { return fixed.Div128(a, b) }

// Widen converts any width to Fixed128 exactly.
func Widen(v Value) Fixed128 { return fixed.Widen(v) }

// Narrow converts a Fixed128 to a smaller width, truncating lost fractional
// bits toward zero.
func Narrow[To Raw](v Fixed128) (Fixed[To], error) { return fixed.Narrow[To](v) }
