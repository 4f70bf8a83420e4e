// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package integer provides bitwise operations, integer exponentiation and
// overflow-checked arithmetic for the machine integer kinds.
//
// Plain operations wrap like the machine does; the Checked variants report
// unit.ErrOverflow instead.
package integer

import (
	"github.com/born-ml/numeric/internal/integer"
	"github.com/born-ml/numeric/internal/unit"
)

// Bitwise

func Not[T unit.Integer](x T) T             { return integer.Not(x) }
func And[T unit.Integer](x, y T) T          { return integer.And(x, y) }
func Or[T unit.Integer](x, y T) T           { return integer.Or(x, y) }
func Xor[T unit.Integer](x, y T) T          { return integer.Xor(x, y) }
func AndNot[T unit.Integer](x, y T) T       { return integer.AndNot(x, y) }
func Shl[T unit.Integer](x T, n uint) T     { return integer.Shl(x, n) }
func Shr[T unit.Integer](x T, n uint) T     { return integer.Shr(x, n) }
func CountOnes[T unit.Integer](x T) int     { return integer.CountOnes(x) }
func LeadingZeros[T unit.Integer](x T) int  { return integer.LeadingZeros(x) }
func TrailingZeros[T unit.Integer](x T) int { return integer.TrailingZeros(x) }

// Exponentiation

// Pow returns x**e, wrapping on overflow.
func Pow[T unit.Integer](x T, e uint32) T { return integer.Pow(x, e) }

// CheckedPow returns x**e or unit.ErrOverflow.
func CheckedPow[T unit.Integer](x T, e uint32) (T, error) { return integer.CheckedPow(x, e) }

// Sq returns x*x.
func Sq[T unit.Integer](x T) T { return integer.Sq(x) }

// Cb returns x*x*x.
func Cb[T unit.Integer](x T) T { return integer.Cb(x) }

// Root returns the n-th root of x truncated toward zero. n == 0 and even
// roots of negative values report unit.ErrDomain.
//
// Example:
//
//	r, _ := integer.Root(int32(-30), 3) // -3
func Root[T unit.Integer](x T, n uint32) (T, error) { return integer.Root(x, n) }

// Sqrt is Root(x, 2).
func Sqrt[T unit.Integer](x T) (T, error) { return integer.Sqrt(x) }

// Cbrt is Root(x, 3).
func Cbrt[T unit.Integer](x T) (T, error) { return integer.Cbrt(x) }

// Checked arithmetic

func CheckedAdd[T unit.Integer](a, b T) (T, error)      { return integer.CheckedAdd(a, b) }
func CheckedSub[T unit.Integer](a, b T) (T, error)      { return integer.CheckedSub(a, b) }
func CheckedMul[T unit.Integer](a, b T) (T, error)      { return integer.CheckedMul(a, b) }
func CheckedNeg[T unit.Integer](a T) (T, error)         { return integer.CheckedNeg(a) }
func CheckedShl[T unit.Integer](a T, n uint) (T, error) { return integer.CheckedShl(a, n) }
