package fixed

import (
	"math/big"
	"math/bits"

	num "github.com/shabbyrobe/go-num"

	"github.com/born-ml/numeric/internal/cast"
	"github.com/born-ml/numeric/internal/unit"
)

// Value is implemented by every fixed-point width. Cross-width operations
// accept any Value and carry the operands in 128 bits.
type Value interface {
	Scale() uint
	Bits() int
	String() string
	wide() wide
}

// wide is a raw value widened to 128 bits, tagged with its scale.
type wide struct {
	v     num.I128
	scale uint
}

// minMag is |MinI128|, the one magnitude that only fits as a negative value.
var minMag = num.U128FromRaw(1<<63, 0)

// signed applies a sign to a magnitude, reporting false when the result does
// not fit 128 signed bits.
func signed(neg bool, mag num.U128) (num.I128, bool) {
	if neg {
		if mag.Cmp(minMag) > 0 {
			return num.I128{}, false
		}
		// Neg leaves MinI128 unchanged, which is the correct result for minMag.
		return mag.AsI128().Neg(), true
	}
	if !mag.IsI128() {
		return num.I128{}, false
	}
	return mag.AsI128(), true
}

func isNeg(x num.I128) bool { return x.Sign() < 0 }

// shl multiplies x by 2^k, reporting false on overflow.
func shl(x num.I128, k uint) (num.I128, bool) {
	if k == 0 {
		return x, true
	}
	mag := x.AbsU128()
	if mag.LeadingZeros() < k {
		return num.I128{}, false
	}
	return signed(isNeg(x), mag.Lsh(k))
}

// shr divides x by 2^k, truncating toward zero.
func shr(x num.I128, k uint) num.I128 {
	r, _ := signed(isNeg(x), x.AbsU128().Rsh(k))
	return r
}

func align(op string, a, b Value) (x, y num.I128, scale uint, err error) {
	wa, wb := a.wide(), b.wide()
	scale = max(wa.scale, wb.scale)
	x, ok := shl(wa.v, scale-wa.scale)
	if !ok {
		return x, y, 0, unit.NewError(op, unit.ErrOverflow, "aligning %s to scale %d", a, scale)
	}
	y, ok = shl(wb.v, scale-wb.scale)
	if !ok {
		return x, y, 0, unit.NewError(op, unit.ErrOverflow, "aligning %s to scale %d", b, scale)
	}
	return x, y, scale, nil
}

func addWide(a, b Value) (wide, error) {
	x, y, scale, err := align("fixed.add", a, b)
	if err != nil {
		return wide{}, err
	}
	s := x.Add(y)
	if isNeg(x) == isNeg(y) && isNeg(s) != isNeg(x) {
		return wide{}, unit.NewError("fixed.add", unit.ErrOverflow, "%s + %s", a, b)
	}
	return wide{v: s, scale: scale}, nil
}

func subWide(a, b Value) (wide, error) {
	x, y, scale, err := align("fixed.sub", a, b)
	if err != nil {
		return wide{}, err
	}
	d := x.Sub(y)
	if isNeg(x) != isNeg(y) && isNeg(d) != isNeg(x) {
		return wide{}, unit.NewError("fixed.sub", unit.ErrOverflow, "%s - %s", a, b)
	}
	return wide{v: d, scale: scale}, nil
}

// mulWide forms the full product of the aligned magnitudes and shifts it back
// down by the common scale, truncating toward zero.
func mulWide(a, b Value) (wide, error) {
	x, y, scale, err := align("fixed.mul", a, b)
	if err != nil {
		return wide{}, err
	}
	mag, ok := mulShift(x.AbsU128(), y.AbsU128(), scale)
	if ok {
		var p num.I128
		if p, ok = signed(isNeg(x) != isNeg(y), mag); ok {
			return wide{v: p, scale: scale}, nil
		}
	}
	return wide{}, unit.NewError("fixed.mul", unit.ErrOverflow, "%s * %s", a, b)
}

// divWide shifts the dividend up by the common scale before dividing, so the
// quotient keeps that scale. It truncates toward zero.
func divWide(a, b Value) (wide, error) {
	if b.wide().v.IsZero() {
		return wide{}, unit.NewError("fixed.div", unit.ErrDivisionByZero, "%s / 0", a)
	}
	x, y, scale, err := align("fixed.div", a, b)
	if err != nil {
		return wide{}, err
	}
	mag, ok := divShift(x.AbsU128(), y.AbsU128(), scale)
	if ok {
		var q num.I128
		if q, ok = signed(isNeg(x) != isNeg(y), mag); ok {
			return wide{v: q, scale: scale}, nil
		}
	}
	return wide{}, unit.NewError("fixed.div", unit.ErrOverflow, "%s / %s", a, b)
}

// mulShift returns (x*y) >> s. Operands of 64 bits or less use a single
// 128-bit product; wider ones go through big.Int.
func mulShift(x, y num.U128, s uint) (num.U128, bool) {
	if x.IsUint64() && y.IsUint64() {
		hi, lo := bits.Mul64(x.AsUint64(), y.AsUint64())
		return num.U128FromRaw(hi, lo).Rsh(s), true
	}
	p := new(big.Int).Mul(x.AsBigInt(), y.AsBigInt())
	return num.U128FromBigInt(p.Rsh(p, s))
}

// divShift returns (x << s) / y.
func divShift(x, y num.U128, s uint) (num.U128, bool) {
	if x.LeadingZeros() >= s {
		return x.Lsh(s).Quo(y), true
	}
	n := new(big.Int).Lsh(x.AsBigInt(), s)
	return num.U128FromBigInt(n.Quo(n, y.AsBigInt()))
}

// store moves a wide result into the output width. The output must have at
// least as many fractional bits as the result.
func store[Out Raw](op string, w wide) (Fixed[Out], error) {
	so := scaleOf[Out]()
	if so < w.scale {
		return Fixed[Out]{}, unit.NewError(op, unit.ErrUnsupportedWidth,
			"%s has %d fractional bits, operands need %d", typeName[Out](), so, w.scale)
	}
	v, ok := shl(w.v, so-w.scale)
	if !ok || !v.IsInt64() {
		return Fixed[Out]{}, unit.NewError(op, unit.ErrOverflow, "result does not fit %s", typeName[Out]())
	}
	raw, ok := cast.To[Out](v.AsInt64())
	if !ok {
		return Fixed[Out]{}, unit.NewError(op, unit.ErrOverflow, "result does not fit %s", typeName[Out]())
	}
	return Fixed[Out]{raw: raw}, nil
}

// store128 moves a wide result into a Fixed128.
func store128(op string, w wide) (Fixed128, error) {
	v, ok := shl(w.v, Scale128-w.scale)
	if !ok {
		return Fixed128{}, unit.NewError(op, unit.ErrOverflow, "result does not fit Fixed128")
	}
	return Fixed128{raw: v}, nil
}

// narrow rescales w into Out, dropping fractional bits toward zero.
func narrow[Out Raw](op string, w wide) (Fixed[Out], error) {
	so := scaleOf[Out]()
	if so >= w.scale {
		return store[Out](op, w)
	}
	return store[Out](op, wide{v: shr(w.v, w.scale-so), scale: so})
}
