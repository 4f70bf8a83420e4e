// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package unit

import (
	"github.com/born-ml/numeric/internal/unit"
)

// Min returns a if a <= b, else b.
func Min[T Number](a, b T) T { return unit.Min(a, b) }

// Max returns a if a >= b, else b.
func Max[T Number](a, b T) T { return unit.Max(a, b) }

// Clamp limits x to [lo, hi]. It panics if lo > hi.
func Clamp[T Number](x, lo, hi T) T { return unit.Clamp(x, lo, hi) }

// Compare returns -1, 0 or +1 like cmp.Compare.
func Compare[T Number](a, b T) int { return unit.Compare(a, b) }

// MinValue returns the most negative finite value of T.
func MinValue[T Number]() T { return unit.MinValue[T]() }

// MaxValue returns the largest finite value of T.
func MaxValue[T Number]() T { return unit.MaxValue[T]() }

// MinPositive returns the smallest positive normal value of T (1 for
// integers).
func MinPositive[T Number]() T { return unit.MinPositive[T]() }

// NegOne returns -1.
func NegOne[T SignedNumber]() T { return unit.NegOne[T]() }

// SignMask returns the bit isolating the sign in T's representation.
func SignMask[T Number]() uint64 { return unit.SignMask[T]() }

// Abs returns |x|.
func Abs[T SignedNumber](x T) T { return unit.Abs(x) }

// Signum returns -1, 0 or +1. Float zeros keep their sign; NaN yields NaN.
func Signum[T SignedNumber](x T) T { return unit.Signum(x) }

// IsSignNegative reports whether the sign bit of x is set.
func IsSignNegative[T Number](x T) bool { return unit.IsSignNegative(x) }

// IsSignPositive reports whether the sign bit of x is clear.
func IsSignPositive[T Number](x T) bool { return unit.IsSignPositive(x) }
