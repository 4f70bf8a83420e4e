package float

import (
	"math"

	"github.com/born-ml/numeric/internal/unit"
)

// Pow returns x**y.
func Pow[T unit.Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Powi returns x**n for an integer exponent.
func Powi[T unit.Float](x T, n int) T {
	return T(math.Pow(float64(x), float64(n)))
}

// Root returns x**(1/n). Roots of negative values are NaN; use Cbrt for a
// sign-preserving cube root.
func Root[T unit.Float](x, n T) T {
	return Pow(x, 1/n)
}

// Sq returns x*x.
func Sq[T unit.Float](x T) T { return x * x }

// Cb returns x*x*x.
func Cb[T unit.Float](x T) T { return x * x * x }

// Sqrt returns the square root of x.
func Sqrt[T unit.Float](x T) T { return apply(x, math.Sqrt) }

// Cbrt returns the cube root of x.
func Cbrt[T unit.Float](x T) T { return apply(x, math.Cbrt) }

// Hypot returns sqrt(x*x + y*y) without undue overflow or underflow.
func Hypot[T unit.Float](x, y T) T {
	return T(math.Hypot(float64(x), float64(y)))
}

// MulAdd returns x*y + z. For float64 it is computed with a single rounding;
// float32 operands are fused in float64 and then narrowed, which can round
// twice.
func MulAdd[T unit.Float](x, y, z T) T {
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

// Exp returns e**x.
func Exp[T unit.Float](x T) T { return apply(x, math.Exp) }

// Exp2 returns 2**x.
func Exp2[T unit.Float](x T) T { return apply(x, math.Exp2) }

// ExpM1 returns e**x - 1, accurate for x near zero.
func ExpM1[T unit.Float](x T) T { return apply(x, math.Expm1) }

// Ln returns the natural logarithm of x.
func Ln[T unit.Float](x T) T { return apply(x, math.Log) }

// Ln1p returns ln(1 + x), accurate for x near zero.
func Ln1p[T unit.Float](x T) T { return apply(x, math.Log1p) }

// Log returns the logarithm of x in the given base.
func Log[T unit.Float](x, base T) T {
	return T(math.Log(float64(x)) / math.Log(float64(base)))
}

// Log2 returns the binary logarithm of x.
func Log2[T unit.Float](x T) T { return apply(x, math.Log2) }

// Log10 returns the decimal logarithm of x.
func Log10[T unit.Float](x T) T { return apply(x, math.Log10) }

// Sin returns the sine of the radian argument x.
func Sin[T unit.Float](x T) T { return apply(x, math.Sin) }

// Cos returns the cosine of the radian argument x.
func Cos[T unit.Float](x T) T { return apply(x, math.Cos) }

// Tan returns the tangent of the radian argument x.
func Tan[T unit.Float](x T) T { return apply(x, math.Tan) }

// SinCos returns Sin(x), Cos(x).
func SinCos[T unit.Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Asin returns the arcsine of x in radians.
func Asin[T unit.Float](x T) T { return apply(x, math.Asin) }

// Acos returns the arccosine of x in radians.
func Acos[T unit.Float](x T) T { return apply(x, math.Acos) }

// Atan returns the arctangent of x in radians.
func Atan[T unit.Float](x T) T { return apply(x, math.Atan) }

// Atan2 returns the arctangent of y/x, using the signs of both to pick the
// quadrant.
func Atan2[T unit.Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Sinh returns the hyperbolic sine of x.
func Sinh[T unit.Float](x T) T { return apply(x, math.Sinh) }

// Cosh returns the hyperbolic cosine of x.
func Cosh[T unit.Float](x T) T { return apply(x, math.Cosh) }

// Tanh returns the hyperbolic tangent of x.
func Tanh[T unit.Float](x T) T { return apply(x, math.Tanh) }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[T unit.Float](x T) T { return apply(x, math.Asinh) }

// Acosh returns the inverse hyperbolic cosine of x.
func Acosh[T unit.Float](x T) T { return apply(x, math.Acosh) }

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh[T unit.Float](x T) T { return apply(x, math.Atanh) }

// ToDeg converts radians to degrees.
func ToDeg[T unit.Float](x T) T {
	return T(float64(x) * (180 / math.Pi))
}

// ToRad converts degrees to radians.
func ToRad[T unit.Float](x T) T {
	return T(float64(x) * (math.Pi / 180))
}
