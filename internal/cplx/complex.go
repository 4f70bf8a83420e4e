package cplx

import (
	"github.com/born-ml/numeric/internal/float"
	"github.com/born-ml/numeric/internal/unit"
)

// Complex is re + im·i. The zero value is 0 + 0i.
type Complex[T unit.Float] struct {
	Re T
	Im T
}

// Aliases matching Go's native complex widths.
type (
	Complex64  = Complex[float32]
	Complex128 = Complex[float64]
)

var _ unit.Field[Complex128] = Complex128{}

// New returns re + im·i.
func New[T unit.Float](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// FromReal returns x + 0i.
func FromReal[T unit.Float](x T) Complex[T] {
	return Complex[T]{Re: x}
}

// One returns the unit real 1 + 0i.
func One[T unit.Float]() Complex[T] { return Complex[T]{Re: 1} }

// I returns the unit imaginary 0 + 1i.
func I[T unit.Float]() Complex[T] { return Complex[T]{Im: 1} }

// Real returns k along the real axis.
func Real[T unit.Float](k T) Complex[T] { return One[T]().Scale(k) }

// Imag returns k along the imaginary axis.
func Imag[T unit.Float](k T) Complex[T] { return I[T]().Scale(k) }

// FromPolar returns r·(cos θ + i·sin θ).
func FromPolar[T unit.Float](r, theta T) Complex[T] {
	sin, cos := float.SinCos(theta)
	return Complex[T]{Re: r * cos, Im: r * sin}
}

// FromNative converts a Go complex128.
func FromNative[T unit.Float](c complex128) Complex[T] {
	return Complex[T]{Re: T(real(c)), Im: T(imag(c))}
}

// Native returns z as a Go complex128.
func (z Complex[T]) Native() complex128 {
	return complex(float64(z.Re), float64(z.Im))
}

// IsZero reports whether both components are zero.
func (z Complex[T]) IsZero() bool { return z.Re == 0 && z.Im == 0 }

// Equal compares component-wise. A NaN component is never equal.
func (z Complex[T]) Equal(w Complex[T]) bool { return z.Re == w.Re && z.Im == w.Im }

// ApproxEqual compares component-wise within tol.
func (z Complex[T]) ApproxEqual(w Complex[T], tol T) bool {
	return float.ApproxEqual(z.Re, w.Re, tol) && float.ApproxEqual(z.Im, w.Im, tol)
}

// IsNaN reports whether either component is NaN.
func (z Complex[T]) IsNaN() bool { return float.IsNaN(z.Re) || float.IsNaN(z.Im) }

// IsInf reports whether either component is infinite.
func (z Complex[T]) IsInf() bool { return float.IsInf(z.Re) || float.IsInf(z.Im) }

// IsFinite reports whether both components are finite.
func (z Complex[T]) IsFinite() bool { return float.IsFinite(z.Re) && float.IsFinite(z.Im) }

// Conj returns re - im·i.
func (z Complex[T]) Conj() Complex[T] { return Complex[T]{Re: z.Re, Im: -z.Im} }

// Neg returns -z.
func (z Complex[T]) Neg() Complex[T] { return Complex[T]{Re: -z.Re, Im: -z.Im} }

// Scale multiplies both components by k.
func (z Complex[T]) Scale(k T) Complex[T] { return Complex[T]{Re: z.Re * k, Im: z.Im * k} }

// Unscale divides both components by k.
func (z Complex[T]) Unscale(k T) (Complex[T], error) {
	if k == 0 {
		return z, unit.NewError("complex.unscale", unit.ErrDivisionByZero, "%s / 0", z)
	}
	return Complex[T]{Re: z.Re / k, Im: z.Im / k}, nil
}

// NormSqr returns re² + im².
func (z Complex[T]) NormSqr() T { return z.Re*z.Re + z.Im*z.Im }

// Norm returns |z|. Unlike sqrt(NormSqr) it does not overflow for large
// components.
func (z Complex[T]) Norm() T { return float.Hypot(z.Re, z.Im) }

// Arg returns the angle of z in (-π, π].
func (z Complex[T]) Arg() T { return float.Atan2(z.Im, z.Re) }

// ToPolar returns (|z|, arg z).
func (z Complex[T]) ToPolar() (r, theta T) { return z.Norm(), z.Arg() }

// Inv returns 1/z = conj(z) / |z|².
func (z Complex[T]) Inv() (Complex[T], error) {
	if z.IsZero() {
		return z, unit.NewError("complex.inv", unit.ErrDivisionByZero, "%s has no inverse", z)
	}
	re, im := quo(1, 0, z.Re, z.Im)
	return Complex[T]{Re: re, Im: im}, nil
}

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns z·w = (ac - bd) + (ad + bc)i.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns z/w = z·conj(w) / |w|², which expands to
// ((ac + bd) + (bc - ad)i) / (c² + d²).
func (z Complex[T]) Div(w Complex[T]) (Complex[T], error) {
	if w.IsZero() {
		return z, unit.NewError("complex.div", unit.ErrDivisionByZero, "%s / %s", z, w)
	}
	re, im := quo(z.Re, z.Im, w.Re, w.Im)
	return Complex[T]{Re: re, Im: im}, nil
}

// quo divides (a + bi) by (c + di) with Smith's method: the divisor is
// scaled by its larger component so c² + d² is never formed.
func quo[T unit.Float](a, b, c, d T) (re, im T) {
	if unit.Abs(c) >= unit.Abs(d) {
		r := d / c
		den := c + d*r
		return (a + b*r) / den, (b - a*r) / den
	}
	r := c / d
	den := c*r + d
	return (a*r + b) / den, (b*r - a) / den
}
