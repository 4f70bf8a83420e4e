package cplx

import "github.com/born-ml/numeric/internal/float"

// Exp returns e^z = e^re·(cos im + i·sin im).
func (z Complex[T]) Exp() Complex[T] {
	return FromPolar(float.Exp(z.Re), z.Im)
}

// Ln returns the principal natural logarithm ln|z| + i·arg z.
func (z Complex[T]) Ln() Complex[T] {
	return Complex[T]{Re: float.Ln(z.Norm()), Im: z.Arg()}
}

// Sqrt returns the principal square root, with a non-negative real part.
func (z Complex[T]) Sqrt() Complex[T] {
	if z.IsZero() {
		return Complex[T]{}
	}
	return FromPolar(float.Sqrt(z.Norm()), z.Arg()/2)
}

// Powf returns z raised to a real power.
func (z Complex[T]) Powf(x T) Complex[T] {
	if z.IsZero() {
		return Complex[T]{}
	}
	r, theta := z.ToPolar()
	return FromPolar(float.Pow(r, x), theta*x)
}
