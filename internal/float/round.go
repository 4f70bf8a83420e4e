package float

import (
	"math"

	"github.com/born-ml/numeric/internal/unit"
)

func apply[T unit.Float](x T, fn func(float64) float64) T {
	return T(fn(float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T unit.Float](x T) T { return apply(x, math.Floor) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T unit.Float](x T) T { return apply(x, math.Ceil) }

// Round returns the nearest integer, rounding half away from zero.
func Round[T unit.Float](x T) T { return apply(x, math.Round) }

// Trunc returns the integer part of x.
func Trunc[T unit.Float](x T) T { return apply(x, math.Trunc) }

// Fract returns the fractional part x - Trunc(x), which carries the sign of x.
func Fract[T unit.Float](x T) T { return x - Trunc(x) }

// Recip returns 1/x.
func Recip[T unit.Float](x T) T { return 1 / x }
