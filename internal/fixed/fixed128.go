package fixed

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	num "github.com/shabbyrobe/go-num"

	"github.com/born-ml/numeric/internal/unit"
)

// Fixed128 is a 128-bit fixed-point number with Scale128 fractional bits.
// Go has no int128, so the raw value is a two-word num.I128 and the type
// lives outside the Raw constraint. It combines with every other width
// through Add128, Sub128, Mul128 and Div128.
type Fixed128 struct {
	raw num.I128
}

var _ unit.CheckedField[Fixed128] = Fixed128{}

// New128 wraps a raw 128-bit integer without scaling it.
func New128(raw num.I128) Fixed128 { return Fixed128{raw: raw} }

// FromInt128 returns n as a Fixed128. Every int64 fits.
func FromInt128(n int64) Fixed128 {
	r, _ := shl(num.I128From64(n), Scale128)
	return Fixed128{raw: r}
}

// FromFloat128 returns the Fixed128 nearest to f, rounding halves away from
// zero.
func FromFloat128(f float64) (Fixed128, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fixed128{}, unit.NewError("fixed.from_float", unit.ErrConversionOutOfRange, "%g does not fit Fixed128", f)
	}
	r := math.Round(math.Ldexp(f, Scale128))
	if math.IsInf(r, 0) {
		return Fixed128{}, unit.NewError("fixed.from_float", unit.ErrConversionOutOfRange, "%g does not fit Fixed128", f)
	}
	n, _ := big.NewFloat(r).Int(nil)
	raw, ok := num.I128FromBigInt(n)
	if !ok {
		return Fixed128{}, unit.NewError("fixed.from_float", unit.ErrConversionOutOfRange, "%g does not fit Fixed128", f)
	}
	return Fixed128{raw: raw}, nil
}

// FromBits128 builds a Fixed128 from the high and low words of its raw value.
func FromBits128(hi, lo uint64) Fixed128 { return Fixed128{raw: num.I128FromRaw(hi, lo)} }

// Zero128 returns 0.
func Zero128() Fixed128 { return Fixed128{} }

// One128 returns 1.
func One128() Fixed128 { return FromInt128(1) }

// Epsilon128 returns 2^-64, one raw unit.
func Epsilon128() Fixed128 { return Fixed128{raw: num.I128From64(1)} }

// MinValue128 returns the most negative Fixed128.
func MinValue128() Fixed128 { return Fixed128{raw: num.MinI128} }

// MaxValue128 returns the largest Fixed128.
func MaxValue128() Fixed128 { return Fixed128{raw: num.MaxI128} }

func (f Fixed128) wide() wide { return wide{v: f.raw, scale: Scale128} }

// Raw returns the underlying scaled integer.
func (f Fixed128) Raw() num.I128 { return f.raw }

// Scale returns the number of fractional bits.
func (f Fixed128) Scale() uint { return Scale128 }

// Bits returns the width of the representation.
func (f Fixed128) Bits() int { return 128 }

// ToBits returns the raw bit pattern as two words.
func (f Fixed128) ToBits() (hi, lo uint64) { return f.raw.Raw() }

// Float64 returns the value rounded to the nearest float64.
func (f Fixed128) Float64() float64 {
	v, _ := new(big.Float).SetMantExp(f.raw.AsBigFloat(), -Scale128).Float64()
	return v
}

// Int returns the integer part, truncated toward zero.
func (f Fixed128) Int() int64 { return shr(f.raw, Scale128).AsInt64() }

// Frac returns the fractional part with the sign of f.
func (f Fixed128) Frac() Fixed128 {
	_, lo := f.raw.AbsU128().Raw()
	r, _ := signed(isNeg(f.raw), num.U128From64(lo))
	return Fixed128{raw: r}
}

// String renders the exact decimal value.
func (f Fixed128) String() string {
	hi, frac := f.raw.AbsU128().Raw()

	var b strings.Builder
	if isNeg(f.raw) {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(hi, 10))
	if frac != 0 {
		b.WriteByte('.')
		for frac != 0 {
			var d uint64
			d, frac = bits.Mul64(frac, 10)
			b.WriteByte(byte('0' + d))
		}
	}
	return b.String()
}

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to or
// greater than g.
func (f Fixed128) Cmp(g Fixed128) int {
	switch c := f.raw.Cmp(g.raw); {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

// Less reports whether f < g.
func (f Fixed128) Less(g Fixed128) bool { return f.raw.LessThan(g.raw) }

// Equal reports whether f == g.
func (f Fixed128) Equal(g Fixed128) bool { return f.raw.Equal(g.raw) }

// Min returns the smaller of f and g.
func (f Fixed128) Min(g Fixed128) Fixed128 {
	if g.Less(f) {
		return g
	}
	return f
}

// Max returns the larger of f and g.
func (f Fixed128) Max(g Fixed128) Fixed128 {
	if f.Less(g) {
		return g
	}
	return f
}

// Clamp limits f to [lo, hi]. It panics if lo > hi.
func (f Fixed128) Clamp(lo, hi Fixed128) Fixed128 {
	if hi.Less(lo) {
		panic("fixed: invalid clamp bounds [" + lo.String() + ", " + hi.String() + "]")
	}
	return f.Max(lo).Min(hi)
}

// IsZero reports whether f is 0.
func (f Fixed128) IsZero() bool { return f.raw.IsZero() }

// IsNegative reports whether f < 0.
func (f Fixed128) IsNegative() bool { return isNeg(f.raw) }

// Signum returns -1, 0 or 1 as a Fixed128.
func (f Fixed128) Signum() Fixed128 { return FromInt128(int64(f.raw.Sign())) }

// Abs returns |f|, or unit.ErrOverflow for MinValue128.
func (f Fixed128) Abs() (Fixed128, error) {
	if !f.IsNegative() {
		return f, nil
	}
	return f.Neg()
}

// Neg returns -f, or unit.ErrOverflow for MinValue128.
func (f Fixed128) Neg() (Fixed128, error) {
	if f.raw.Equal(num.MinI128) {
		return f, unit.NewError("fixed.neg", unit.ErrOverflow, "-(%s) does not fit Fixed128", f)
	}
	return Fixed128{raw: f.raw.Neg()}, nil
}

// Add returns f + g.
func (f Fixed128) Add(g Fixed128) (Fixed128, error) { return Add128(f, g) }

// Sub returns f - g.
func (f Fixed128) Sub(g Fixed128) (Fixed128, error) { return Sub128(f, g) }

// Mul returns f * g.
func (f Fixed128) Mul(g Fixed128) (Fixed128, error) { return Mul128(f, g) }

// Div returns f / g.
func (f Fixed128) Div(g Fixed128) (Fixed128, error) { return Div128(f, g) }

// Inv returns 1 / f.
func (f Fixed128) Inv() (Fixed128, error) {
	if f.IsZero() {
		return f, unit.NewError("fixed.inv", unit.ErrDivisionByZero, "0 has no inverse")
	}
	return Div128(One128(), f)
}
