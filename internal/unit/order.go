package unit

import (
	"cmp"
	"fmt"
	"math"
)

// Min returns a if a <= b, else b. A NaN in either position yields b.
func Min[T Number](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns a if a >= b, else b. A NaN in either position yields b.
func Max[T Number](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Clamp restricts x to [lo, hi]. It panics if lo > hi or either bound is NaN.
func Clamp[T Number](x, lo, hi T) T {
	if !(lo <= hi) {
		panic(fmt.Sprintf("unit: invalid clamp bounds [%v, %v]", lo, hi))
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	if x != x { //nolint:gocritic // NaN check
		return lo
	}
	return x
}

// Compare returns -1, 0 or +1 like cmp.Compare. NaN sorts before every other value.
func Compare[T Number](a, b T) int {
	return cmp.Compare(a, b)
}

// MinValue returns the lowest finite value of T.
func MinValue[T Number]() T {
	k := KindOf[T]()
	switch {
	case k == Float32:
		v := -math.MaxFloat32
		return T(v)
	case k == Float64:
		v := -math.MaxFloat64
		return T(v)
	case k.IsSigned():
		v := int64(-1) << (k.Bits() - 1)
		return T(v)
	default:
		return 0
	}
}

// MaxValue returns the highest finite value of T.
func MaxValue[T Number]() T {
	k := KindOf[T]()
	switch {
	case k == Float32:
		v := math.MaxFloat32
		return T(v)
	case k == Float64:
		v := math.MaxFloat64
		return T(v)
	case k.IsSigned():
		v := int64(1)<<(k.Bits()-1) - 1
		return T(v)
	default:
		v := ^uint64(0) >> (64 - k.Bits())
		return T(v)
	}
}

// MinPositive returns the smallest positive normal value of T (1 for integers).
func MinPositive[T Number]() T {
	switch KindOf[T]() {
	case Float32:
		return T(math.Float32frombits(0x00800000))
	case Float64:
		return T(math.Float64frombits(0x0010000000000000))
	default:
		return 1
	}
}

// NegOne returns -1 in the representation of T.
func NegOne[T SignedNumber]() T {
	return -1
}

// SignMask returns the bit pattern isolating the sign bit of T's physical
// representation.
func SignMask[T Number]() uint64 {
	return 1 << (BitSize[T]() - 1)
}

// Abs returns |x|. Signed integers wrap at their minimum value like the machine
// does; floats clear the sign bit, so Abs(NaN) is a NaN with a clear sign.
func Abs[T SignedNumber](x T) T {
	if KindOf[T]().IsFloat() {
		return FromBits[T](ToBits(x) &^ SignMask[T]())
	}
	if x < 0 {
		return -x
	}
	return x
}

// Signum returns 1 for positive x and -1 for negative x.
//
// For floats, +0 and -0 are returned unchanged (both compare equal to zero and
// keep their sign bit) and NaN returns NaN.
func Signum[T SignedNumber](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// IsSignNegative reports whether the sign bit of x is set. For integers this
// is x < 0; for floats it includes -0 and negative NaNs.
func IsSignNegative[T Number](x T) bool {
	if !KindOf[T]().IsSigned() {
		return false
	}
	return ToBits(x)&SignMask[T]() != 0
}

// IsSignPositive reports whether the sign bit of x is clear.
func IsSignPositive[T Number](x T) bool {
	return !IsSignNegative(x)
}
