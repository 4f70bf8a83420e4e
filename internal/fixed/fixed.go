package fixed

import (
	"math"
	"strconv"
	"strings"

	"github.com/born-ml/numeric/internal/cast"
	"github.com/born-ml/numeric/internal/integer"
	"github.com/born-ml/numeric/internal/unit"
)

// Fixed is a fixed-point number backed by the raw integer type R.
// The zero value is 0.
type Fixed[R Raw] struct {
	raw R
}

// Width aliases.
type (
	Fixed16 = Fixed[int16]
	Fixed32 = Fixed[int32]
	Fixed64 = Fixed[int64]
)

// New wraps a raw integer without scaling it.
func New[R Raw](raw R) Fixed[R] {
	return Fixed[R]{raw: raw}
}

// FromInt returns n as a fixed-point value.
func FromInt[R Raw](n int64) (Fixed[R], error) {
	shifted, err := integer.CheckedShl(n, scaleOf[R]())
	if err != nil {
		return Fixed[R]{}, unit.NewError("fixed.from_int", unit.ErrConversionOutOfRange, "%d does not fit %s", n, typeName[R]())
	}
	raw, ok := cast.To[R](shifted)
	if !ok {
		return Fixed[R]{}, unit.NewError("fixed.from_int", unit.ErrConversionOutOfRange, "%d does not fit %s", n, typeName[R]())
	}
	return Fixed[R]{raw: raw}, nil
}

// FromFloat returns the fixed-point value nearest to f.
func FromFloat[R Raw](f float64) (Fixed[R], error) {
	raw, ok := cast.Round[R](math.Ldexp(f, int(scaleOf[R]())))
	if !ok {
		return Fixed[R]{}, unit.NewError("fixed.from_float", unit.ErrConversionOutOfRange, "%g does not fit %s", f, typeName[R]())
	}
	return Fixed[R]{raw: raw}, nil
}

// FromBits reinterprets the low bits of b as a raw value.
func FromBits[R Raw](b uint64) Fixed[R] {
	return Fixed[R]{raw: unit.FromBits[R](b)}
}

// Zero returns 0.
func Zero[R Raw]() Fixed[R] { return Fixed[R]{} }

// One returns 1.
func One[R Raw]() Fixed[R] { return Fixed[R]{raw: R(1) << scaleOf[R]()} }

// Epsilon returns the smallest positive value, one raw unit.
func Epsilon[R Raw]() Fixed[R] { return Fixed[R]{raw: 1} }

// MinValue returns the most negative representable value.
func MinValue[R Raw]() Fixed[R] { return Fixed[R]{raw: unit.MinValue[R]()} }

// MaxValue returns the largest representable value.
func MaxValue[R Raw]() Fixed[R] { return Fixed[R]{raw: unit.MaxValue[R]()} }

// Raw returns the underlying scaled integer.
func (f Fixed[R]) Raw() R { return f.raw }

// Scale returns the number of fractional bits.
func (f Fixed[R]) Scale() uint { return scaleOf[R]() }

// Bits returns the width of the representation.
func (f Fixed[R]) Bits() int { return unit.BitSize[R]() }

// ToBits returns the raw bit pattern, zero-extended.
func (f Fixed[R]) ToBits() uint64 { return unit.ToBits(f.raw) }

// Float64 returns the value as a float64. Fixed64 values with more than 53
// significant bits are rounded.
func (f Fixed[R]) Float64() float64 {
	return math.Ldexp(float64(f.raw), -int(scaleOf[R]()))
}

// Int returns the integer part, truncated toward zero.
func (f Fixed[R]) Int() int64 {
	return int64(f.raw) / (int64(1) << scaleOf[R]())
}

// Frac returns the fractional part. It carries the sign of f, so
// f == Int(f) + Frac(f).
func (f Fixed[R]) Frac() Fixed[R] {
	return Fixed[R]{raw: R(int64(f.raw) % (int64(1) << scaleOf[R]()))}
}

// String renders the exact decimal value. Every binary fraction has a
// terminating decimal expansion, so no rounding takes place.
func (f Fixed[R]) String() string {
	s := scaleOf[R]()
	mag := magnitude(int64(f.raw))
	frac := mag & (uint64(1)<<s - 1)

	var b strings.Builder
	if f.raw < 0 {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(mag>>s, 10))
	if frac != 0 {
		b.WriteByte('.')
		for frac != 0 {
			frac *= 10
			b.WriteByte(byte('0' + frac>>s))
			frac &= uint64(1)<<s - 1
		}
	}
	return b.String()
}

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to or
// greater than g.
func (f Fixed[R]) Cmp(g Fixed[R]) int { return unit.Compare(f.raw, g.raw) }

// Less reports whether f < g.
func (f Fixed[R]) Less(g Fixed[R]) bool { return f.raw < g.raw }

// Equal reports whether f == g.
func (f Fixed[R]) Equal(g Fixed[R]) bool { return f.raw == g.raw }

// Min returns the smaller of f and g.
func (f Fixed[R]) Min(g Fixed[R]) Fixed[R] { return Fixed[R]{raw: unit.Min(f.raw, g.raw)} }

// Max returns the larger of f and g.
func (f Fixed[R]) Max(g Fixed[R]) Fixed[R] { return Fixed[R]{raw: unit.Max(f.raw, g.raw)} }

// Clamp limits f to [lo, hi]. It panics if lo > hi.
func (f Fixed[R]) Clamp(lo, hi Fixed[R]) Fixed[R] {
	return Fixed[R]{raw: unit.Clamp(f.raw, lo.raw, hi.raw)}
}

// IsZero reports whether f is 0.
func (f Fixed[R]) IsZero() bool { return f.raw == 0 }

// IsNegative reports whether f < 0.
func (f Fixed[R]) IsNegative() bool { return f.raw < 0 }

// Signum returns -1, 0 or 1 as a fixed-point value.
func (f Fixed[R]) Signum() Fixed[R] {
	switch {
	case f.raw > 0:
		return One[R]()
	case f.raw < 0:
		return Fixed[R]{raw: -One[R]().raw}
	default:
		return Fixed[R]{}
	}
}

// Abs returns |f|. MinValue has no positive counterpart and reports
// unit.ErrOverflow.
func (f Fixed[R]) Abs() (Fixed[R], error) {
	if f.raw >= 0 {
		return f, nil
	}
	return f.Neg()
}

// Neg returns -f, or unit.ErrOverflow for MinValue.
func (f Fixed[R]) Neg() (Fixed[R], error) {
	r, err := integer.CheckedNeg(f.raw)
	if err != nil {
		return f, unit.NewError("fixed.neg", unit.ErrOverflow, "-(%s) does not fit %s", f, typeName[R]())
	}
	return Fixed[R]{raw: r}, nil
}

func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
