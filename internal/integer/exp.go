package integer

import (
	"math"
	"math/bits"

	"github.com/born-ml/numeric/internal/unit"
)

// Pow returns x**e by repeated squaring. The result wraps on overflow.
func Pow[T unit.Integer](x T, e uint32) T {
	acc := unit.One[T]()
	for e > 0 {
		if e&1 == 1 {
			acc *= x
		}
		x *= x
		e >>= 1
	}
	return acc
}

// CheckedPow returns x**e or unit.ErrOverflow.
func CheckedPow[T unit.Integer](x T, e uint32) (T, error) {
	acc := unit.One[T]()
	base := x
	var err error
	for rem := e; rem > 0; rem >>= 1 {
		if rem&1 == 1 {
			if acc, err = CheckedMul(acc, base); err != nil {
				return x, unit.NewError("pow", unit.ErrOverflow, "%v**%d exceeds %s", x, e, unit.KindOf[T]())
			}
		}
		if rem == 1 {
			break
		}
		if base, err = CheckedMul(base, base); err != nil {
			return x, unit.NewError("pow", unit.ErrOverflow, "%v**%d exceeds %s", x, e, unit.KindOf[T]())
		}
	}
	return acc, nil
}

// Sq returns x*x (wrapping).
func Sq[T unit.Integer](x T) T { return x * x }

// Cb returns x*x*x (wrapping).
func Cb[T unit.Integer](x T) T { return x * x * x }

// Root returns the n-th root of x truncated toward zero, so that
// |Root(x, n)|**n <= |x|. Odd roots of negative values are negative.
// n == 0 and even roots of negative values report unit.ErrDomain.
func Root[T unit.Integer](x T, n uint32) (T, error) {
	if n == 0 {
		return x, unit.NewError("root", unit.ErrDomain, "zeroth root")
	}
	neg := x < 0
	if neg && n%2 == 0 {
		return x, unit.NewError("root", unit.ErrDomain, "even root of negative %v", x)
	}
	if n == 1 || x == 0 {
		return x, nil
	}

	m := uint64(x)
	if neg {
		m = -m
	}
	r := floorRoot(m, n)
	if neg {
		return -T(r), nil
	}
	return T(r), nil
}

// Sqrt returns the truncated square root of x.
func Sqrt[T unit.Integer](x T) (T, error) { return Root(x, 2) }

// Cbrt returns the truncated cube root of x.
func Cbrt[T unit.Integer](x T) (T, error) { return Root(x, 3) }

// floorRoot returns the largest r with r**n <= m.
func floorRoot(m uint64, n uint32) uint64 {
	r := uint64(math.Pow(float64(m), 1/float64(n)))
	for r > 0 && !powAtMost(r, n, m) {
		r--
	}
	for powAtMost(r+1, n, m) {
		r++
	}
	return r
}

// powAtMost reports whether r**n <= m without overflowing.
func powAtMost(r uint64, n uint32, m uint64) bool {
	if r <= 1 {
		return r <= m
	}
	acc := uint64(1)
	for i := uint32(0); i < n; i++ {
		hi, lo := bits.Mul64(acc, r)
		if hi != 0 || lo > m {
			return false
		}
		acc = lo
	}
	return true
}
