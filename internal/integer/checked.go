package integer

import "github.com/born-ml/numeric/internal/unit"

func overflow[T unit.Integer](op string, a, b T) (T, error) {
	return a, unit.NewError(op, unit.ErrOverflow, "%v and %v exceed %s", a, b, unit.KindOf[T]())
}

// CheckedAdd returns a + b or unit.ErrOverflow.
func CheckedAdd[T unit.Integer](a, b T) (T, error) {
	s := a + b
	if (b >= 0) != (s >= a) {
		return overflow("add", a, b)
	}
	return s, nil
}

// CheckedSub returns a - b or unit.ErrOverflow.
func CheckedSub[T unit.Integer](a, b T) (T, error) {
	d := a - b
	if (b >= 0) != (d <= a) {
		return overflow("sub", a, b)
	}
	return d, nil
}

// CheckedMul returns a * b or unit.ErrOverflow.
func CheckedMul[T unit.Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || ((a < 0) == (b < 0) && p < 0) {
		return overflow("mul", a, b)
	}
	return p, nil
}

// CheckedNeg returns -a or unit.ErrOverflow (the minimum signed value, or any
// non-zero unsigned value).
func CheckedNeg[T unit.Integer](a T) (T, error) {
	if unit.KindOf[T]().IsSigned() {
		if a == unit.MinValue[T]() {
			return overflow("neg", a, a)
		}
	} else if a != 0 {
		return overflow("neg", a, a)
	}
	return -a, nil
}

// CheckedShl returns a << n or unit.ErrOverflow when set bits (or the sign)
// would be shifted out.
func CheckedShl[T unit.Integer](a T, n uint) (T, error) {
	if a == 0 {
		return 0, nil
	}
	if n >= uint(unit.BitSize[T]()) {
		return a, unit.NewError("shl", unit.ErrOverflow, "%v << %d exceeds %s", a, n, unit.KindOf[T]())
	}
	r := a << n
	if r>>n != a || (r < 0) != (a < 0) {
		return a, unit.NewError("shl", unit.ErrOverflow, "%v << %d exceeds %s", a, n, unit.KindOf[T]())
	}
	return r, nil
}
