package float

import (
	"math"

	"github.com/born-ml/numeric/internal/unit"
)

// IsNaN reports whether x is a NaN. It is the only reliable NaN test: NaN
// never compares equal to itself.
func IsNaN[T unit.Float](x T) bool {
	return x != x //nolint:gocritic // NaN check
}

// IsInf reports whether x is +Inf or -Inf.
func IsInf[T unit.Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T unit.Float](x T) bool {
	return !IsNaN(x) && !IsInf(x)
}

// IsNormal reports whether x is finite, non-zero and not subnormal.
func IsNormal[T unit.Float](x T) bool {
	return IsFinite(x) && unit.Abs(x) >= unit.MinPositive[T]()
}

// ApproxEqual reports whether a and b differ by at most tol, either
// absolutely or relative to the larger magnitude.
func ApproxEqual[T unit.Float](a, b, tol T) bool {
	if a == b {
		return true
	}
	d := unit.Abs(a - b)
	if d <= tol {
		return true
	}
	return d <= tol*max(unit.Abs(a), unit.Abs(b))
}
