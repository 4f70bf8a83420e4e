package fixed

import (
	num "github.com/shabbyrobe/go-num"

	"github.com/born-ml/numeric/internal/unit"
)

func (f Fixed[R]) wide() wide {
	return wide{v: num.I128From64(int64(f.raw)), scale: scaleOf[R]()}
}

// Add returns a + b in the output width Out.
func Add[Out, A, B Raw](a Fixed[A], b Fixed[B]) (Fixed[Out], error) {
	w, err := addWide(a, b)
	if err != nil {
		return Fixed[Out]{}, err
	}
	return store[Out]("fixed.add", w)
}

// Sub returns a - b in the output width Out.
func Sub[Out, A, B Raw](a Fixed[A], b Fixed[B]) (Fixed[Out], error) {
	w, err := subWide(a, b)
	if err != nil {
		return Fixed[Out]{}, err
	}
	return store[Out]("fixed.sub", w)
}

// Mul returns a * b in the output width Out. The product is formed in 128
// bits and truncated toward zero.
func Mul[Out, A, B Raw](a Fixed[A], b Fixed[B]) (Fixed[Out], error) {
	w, err := mulWide(a, b)
	if err != nil {
		return Fixed[Out]{}, err
	}
	return store[Out]("fixed.mul", w)
}

// Div returns a / b in the output width Out, truncated toward zero.
func Div[Out, A, B Raw](a Fixed[A], b Fixed[B]) (Fixed[Out], error) {
	w, err := divWide(a, b)
	if err != nil {
		return Fixed[Out]{}, err
	}
	return store[Out]("fixed.div", w)
}

// Add128 returns a + b as a Fixed128. Operands may have any width.
func Add128(a, b Value) (Fixed128, error) {
	w, err := addWide(a, b)
	if err != nil {
		return Fixed128{}, err
	}
	return store128("fixed.add", w)
}

// Sub128 returns a - b as a Fixed128.
func Sub128(a, b Value) (Fixed128, error) {
	w, err := subWide(a, b)
	if err != nil {
		return Fixed128{}, err
	}
	return store128("fixed.sub", w)
}

// Mul128 returns a * b as a Fixed128, truncated toward zero.
func Mul128(a, b Value) (Fixed128, error) {
	w, err := mulWide(a, b)
	if err != nil {
		return Fixed128{}, err
	}
	return store128("fixed.mul", w)
}

// Div128 returns a / b as a Fixed128, truncated toward zero.
func Div128(a, b Value) (Fixed128, error) {
	w, err := divWide(a, b)
	if err != nil {
		return Fixed128{}, err
	}
	return store128("fixed.div", w)
}

// Rescale converts v to another width. Narrowing drops fractional bits,
// truncating toward zero, and reports unit.ErrOverflow when the integer
// part does not fit.
func Rescale[To, From Raw](v Fixed[From]) (Fixed[To], error) {
	return narrow[To]("fixed.rescale", v.wide())
}

// Narrow converts a Fixed128 to a smaller width with the same rules as
// Rescale.
func Narrow[To Raw](v Fixed128) (Fixed[To], error) {
	return narrow[To]("fixed.rescale", v.wide())
}

// Widen converts any width to Fixed128. Every narrower value is exactly
// representable, so it cannot fail.
func Widen(v Value) Fixed128 {
	w := v.wide()
	r, _ := shl(w.v, Scale128-w.scale)
	return Fixed128{raw: r}
}

// Add returns f + g.
func (f Fixed[R]) Add(g Fixed[R]) (Fixed[R], error) { return Add[R](f, g) }

// Sub returns f - g.
func (f Fixed[R]) Sub(g Fixed[R]) (Fixed[R], error) { return Sub[R](f, g) }

// Mul returns f * g.
func (f Fixed[R]) Mul(g Fixed[R]) (Fixed[R], error) { return Mul[R](f, g) }

// Div returns f / g.
func (f Fixed[R]) Div(g Fixed[R]) (Fixed[R], error) { return Div[R](f, g) }

// Inv returns 1 / f.
func (f Fixed[R]) Inv() (Fixed[R], error) {
	if f.raw == 0 {
		return f, unit.NewError("fixed.inv", unit.ErrDivisionByZero, "0 has no inverse")
	}
	return Div[R](One[R](), f)
}
