// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package float provides IEEE-754 metadata, rounding and the transcendental
// functions for float32 and float64.
//
// float32 arguments are evaluated in float64 and rounded back, so both kinds
// share one implementation of every function.
//
// Example:
//
//	float.Info[float32]().MantissaBits // 23
//	float.Root(27.0, 3)                // 3
//	float.IsNaN(float.NaN[float64]())  // true
package float

import (
	"github.com/born-ml/numeric/internal/float"
	"github.com/born-ml/numeric/internal/unit"
)

// Layout describes the machine representation of a float kind.
type Layout = float.Layout

// Info returns the layout of T.
func Info[T unit.Float]() Layout { return float.Info[T]() }

// Constants

func NaN[T unit.Float]() T     { return float.NaN[T]() }
func Inf[T unit.Float]() T     { return float.Inf[T]() }
func NegInf[T unit.Float]() T  { return float.NegInf[T]() }
func Epsilon[T unit.Float]() T { return float.Epsilon[T]() }
func Pi[T unit.Float]() T      { return float.Pi[T]() }
func E[T unit.Float]() T       { return float.E[T]() }
func Tau[T unit.Float]() T     { return float.Tau[T]() }

// Classification

// IsNaN reports whether x is a NaN. NaN never compares equal to itself.
func IsNaN[T unit.Float](x T) bool { return float.IsNaN(x) }

func IsInf[T unit.Float](x T) bool    { return float.IsInf(x) }
func IsFinite[T unit.Float](x T) bool { return float.IsFinite(x) }
func IsNormal[T unit.Float](x T) bool { return float.IsNormal(x) }

// ApproxEqual reports whether a and b differ by at most tol, absolutely or
// relative to the larger magnitude.
func ApproxEqual[T unit.Float](a, b, tol T) bool { return float.ApproxEqual(a, b, tol) }

// Rounding

func Floor[T unit.Float](x T) T { return float.Floor(x) }
func Ceil[T unit.Float](x T) T  { return float.Ceil(x) }
func Round[T unit.Float](x T) T { return float.Round(x) }
func Trunc[T unit.Float](x T) T { return float.Trunc(x) }
func Fract[T unit.Float](x T) T { return float.Fract(x) }
func Recip[T unit.Float](x T) T { return float.Recip(x) }

// Powers and roots

func Pow[T unit.Float](x, y T) T       { return float.Pow(x, y) }
func Powi[T unit.Float](x T, n int) T  { return float.Powi(x, n) }
func Sq[T unit.Float](x T) T           { return float.Sq(x) }
func Cb[T unit.Float](x T) T           { return float.Cb(x) }
func Sqrt[T unit.Float](x T) T         { return float.Sqrt(x) }
func Cbrt[T unit.Float](x T) T         { return float.Cbrt(x) }
func Hypot[T unit.Float](x, y T) T     { return float.Hypot(x, y) }
func MulAdd[T unit.Float](x, y, z T) T { return float.MulAdd(x, y, z) }

// Root returns x**(1/n). Roots of negative values are NaN.
func Root[T unit.Float](x, n T) T { return float.Root(x, n) }

// Exponentials and logarithms

func Exp[T unit.Float](x T) T       { return float.Exp(x) }
func Exp2[T unit.Float](x T) T      { return float.Exp2(x) }
func ExpM1[T unit.Float](x T) T     { return float.ExpM1(x) }
func Ln[T unit.Float](x T) T        { return float.Ln(x) }
func Ln1p[T unit.Float](x T) T      { return float.Ln1p(x) }
func Log[T unit.Float](x, base T) T { return float.Log(x, base) }
func Log2[T unit.Float](x T) T      { return float.Log2(x) }
func Log10[T unit.Float](x T) T     { return float.Log10(x) }

// Trigonometry

func Sin[T unit.Float](x T) T               { return float.Sin(x) }
func Cos[T unit.Float](x T) T               { return float.Cos(x) }
func Tan[T unit.Float](x T) T               { return float.Tan(x) }
func SinCos[T unit.Float](x T) (sin, cos T) { return float.SinCos(x) }
func Asin[T unit.Float](x T) T              { return float.Asin(x) }
func Acos[T unit.Float](x T) T              { return float.Acos(x) }
func Atan[T unit.Float](x T) T              { return float.Atan(x) }
func Atan2[T unit.Float](y, x T) T          { return float.Atan2(y, x) }
func Sinh[T unit.Float](x T) T              { return float.Sinh(x) }
func Cosh[T unit.Float](x T) T              { return float.Cosh(x) }
func Tanh[T unit.Float](x T) T              { return float.Tanh(x) }
func Asinh[T unit.Float](x T) T             { return float.Asinh(x) }
func Acosh[T unit.Float](x T) T             { return float.Acosh(x) }
func Atanh[T unit.Float](x T) T             { return float.Atanh(x) }
func ToDeg[T unit.Float](x T) T             { return float.ToDeg(x) }
func ToRad[T unit.Float](x T) T             { return float.ToRad(x) }
