package float

import (
	"math"

	"github.com/born-ml/numeric/internal/unit"
)

// Layout describes the machine representation of a float type.
type Layout struct {
	Bits           int    // Total bit width
	MantissaBits   int    // Explicit significand bits (SIG_BITS)
	ExpBits        int    // Exponent bits
	SigMask        uint64 // Bits of the significand
	ExpMask        uint64 // Bits of the exponent
	Digits         int    // Decimal digits that survive a round trip
	MantissaDigits int    // Significand digits in base 2, implicit bit included
	MinExp         int    // One more than the smallest normal power of 2
	MaxExp         int    // One more than the largest finite power of 2
	Min10Exp       int    // Smallest normal power of 10
	Max10Exp       int    // Largest finite power of 10
}

var (
	layout32 = Layout{
		Bits:           32,
		MantissaBits:   23,
		ExpBits:        8,
		SigMask:        0x007FFFFF,
		ExpMask:        0x7F800000,
		Digits:         6,
		MantissaDigits: 24,
		MinExp:         -125,
		MaxExp:         128,
		Min10Exp:       -37,
		Max10Exp:       38,
	}
	layout64 = Layout{
		Bits:           64,
		MantissaBits:   52,
		ExpBits:        11,
		SigMask:        0x000FFFFFFFFFFFFF,
		ExpMask:        0x7FF0000000000000,
		Digits:         15,
		MantissaDigits: 53,
		MinExp:         -1021,
		MaxExp:         1024,
		Min10Exp:       -307,
		Max10Exp:       308,
	}
)

// Info returns the layout of T.
func Info[T unit.Float]() Layout {
	if unit.KindOf[T]() == unit.Float32 {
		return layout32
	}
	return layout64
}

// NaN returns a quiet NaN.
func NaN[T unit.Float]() T {
	return T(math.NaN())
}

// Inf returns positive infinity.
func Inf[T unit.Float]() T {
	return T(math.Inf(1))
}

// NegInf returns negative infinity.
func NegInf[T unit.Float]() T {
	return T(math.Inf(-1))
}

// Epsilon returns the difference between 1 and the next representable value.
func Epsilon[T unit.Float]() T {
	if unit.KindOf[T]() == unit.Float32 {
		return 1.0 / (1 << 23)
	}
	return 1.0 / (1 << 52)
}

// Pi returns π.
func Pi[T unit.Float]() T { return math.Pi }

// E returns Euler's number.
func E[T unit.Float]() T { return math.E }

// Tau returns 2π.
func Tau[T unit.Float]() T { return 2 * math.Pi }
