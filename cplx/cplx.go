// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cplx provides complex numbers generic over float32 and float64.
//
// Example:
//
//	z := cplx.New(1.0, 2.0).Mul(cplx.New(3.0, 4.0)) // (-5+10i)
//	q, err := z.Div(cplx.New(3.0, 4.0))              // (1+2i)
//	r, theta := q.ToPolar()
package cplx

import (
	"github.com/born-ml/numeric/internal/cplx"
	"github.com/born-ml/numeric/internal/unit"
)

// Complex is re + im·i over a float kind. The zero value is 0 + 0i.
type Complex[T unit.Float] = cplx.Complex[T]

// Width aliases.
type (
	Complex64  = cplx.Complex64
	Complex128 = cplx.Complex128
)

// New returns re + im·i.
func New[T unit.Float](re, im T) Complex[T] { return cplx.New(re, im) }

// FromReal returns x + 0i.
func FromReal[T unit.Float](x T) Complex[T] { return cplx.FromReal(x) }

// FromPolar returns r·(cos θ + i·sin θ).
func FromPolar[T unit.Float](r, theta T) Complex[T] { return cplx.FromPolar(r, theta) }

// FromNative converts a Go complex128.
func FromNative[T unit.Float](c complex128) Complex[T] { return cplx.FromNative[T](c) }

// One returns the unit real 1 + 0i.
func One[T unit.Float]() Complex[T] { return cplx.One[T]() }

// I returns the unit imaginary 0 + 1i.
func I[T unit.Float]() Complex[T] { return cplx.I[T]() }

// Real returns k along the real axis.
func Real[T unit.Float](k T) Complex[T] { return cplx.Real(k) }

// Imag returns k along the imaginary axis.
func Imag[T unit.Float](k T) Complex[T] { return cplx.Imag(k) }

// Parse reads "(1+2i)", "1+2i", "3" or "-2.5i".
func Parse[T unit.Float](s string) (Complex[T], error) { return cplx.Parse[T](s) }
