package cast

import (
	"math"

	"fortio.org/safecast"

	"github.com/born-ml/numeric/internal/unit"
)

// To converts v to Out.
//
//   - integer to integer succeeds when v lies within Out's [MIN, MAX]; this
//     includes the non-negative requirement for unsigned destinations.
//   - float to integer truncates toward zero and succeeds when the truncated
//     value lies within Out's range. NaN and infinities always fail.
//   - anything to float always succeeds; narrowing floats may saturate to
//     ±Inf and wide integers round to the nearest representable value.
func To[Out, In unit.Number](v In) (Out, bool) {
	in, out := unit.KindOf[In](), unit.KindOf[Out]()
	switch {
	case out.IsFloat():
		return Out(v), true
	case in.IsFloat():
		return fromFloat[Out](math.Trunc(float64(v)), out)
	case in.IsSigned():
		i := int64(v)
		return fromInt[Out](i < 0, i, uint64(i), out)
	default:
		u := uint64(v)
		return fromInt[Out](false, 0, u, out)
	}
}

// Checked is To with an error in place of the ok flag.
func Checked[Out, In unit.Number](v In) (Out, error) {
	r, ok := To[Out](v)
	if !ok {
		return r, unit.NewError("cast", unit.ErrConversionOutOfRange,
			"%v (%s) does not fit %s", v, unit.KindOf[In](), unit.KindOf[Out]())
	}
	return r, nil
}

// Truncate converts a float to an integer, rounding toward zero.
func Truncate[Out unit.Integer, In unit.Float](v In) (Out, bool) {
	return fromFloat[Out](math.Trunc(float64(v)), unit.KindOf[Out]())
}

// Round converts a float to an integer, rounding half away from zero.
func Round[Out unit.Integer, In unit.Float](v In) (Out, bool) {
	return fromFloat[Out](math.Round(float64(v)), unit.KindOf[Out]())
}

// fromFloat accepts an already integral t when it lies in [MIN, MAX+1) of the
// destination. Both bounds are powers of two and therefore exact in float64,
// which covers the exclusive (MIN-1, MAX+1) window as well as the cases where
// MIN-1 and MAX are not representable in the source precision.
func fromFloat[Out unit.Number](t float64, out unit.Kind) (Out, bool) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, false
	}
	n := out.Bits()
	lo, hi := 0.0, math.Ldexp(1, n)
	if out.IsSigned() {
		lo, hi = -math.Ldexp(1, n-1), math.Ldexp(1, n-1)
	}
	if t < lo || t >= hi {
		return 0, false
	}
	if out.IsSigned() {
		return Out(int64(t)), true
	}
	return Out(uint64(t)), true
}

func fromInt[Out unit.Number](neg bool, i int64, u uint64, out unit.Kind) (Out, bool) {
	switch out {
	case unit.Int8:
		return narrow[int8, Out](neg, i, u)
	case unit.Int16:
		return narrow[int16, Out](neg, i, u)
	case unit.Int32:
		return narrow[int32, Out](neg, i, u)
	case unit.Int64:
		return narrow[int64, Out](neg, i, u)
	case unit.Int:
		return narrow[int, Out](neg, i, u)
	case unit.Uint8:
		return narrow[uint8, Out](neg, i, u)
	case unit.Uint16:
		return narrow[uint16, Out](neg, i, u)
	case unit.Uint32:
		return narrow[uint32, Out](neg, i, u)
	case unit.Uint64:
		return narrow[uint64, Out](neg, i, u)
	case unit.Uint:
		return narrow[uint, Out](neg, i, u)
	default:
		return 0, false
	}
}

func narrow[D safecast.Integer, Out unit.Number](neg bool, i int64, u uint64) (Out, bool) {
	var (
		d   D
		err error
	)
	if neg {
		d, err = safecast.Conv[D](i)
	} else {
		d, err = safecast.Conv[D](u)
	}
	if err != nil {
		return 0, false
	}
	return Out(d), true
}
