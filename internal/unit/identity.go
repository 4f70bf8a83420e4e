package unit

import "fmt"

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var zero T
	return zero
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}

// IsZero reports whether x equals the additive identity. -0.0 is zero, NaN is not.
func IsZero[T Number](x T) bool {
	return x == 0
}

// IsOne reports whether x equals the multiplicative identity.
func IsOne[T Number](x T) bool {
	return x == 1
}

// Inv returns the multiplicative inverse 1/x.
//
// Integers report ErrDivisionByZero for x == 0 and truncate otherwise, so
// Inv(Inv(x)) == x only holds for x in {-1, 1}. Floats follow IEEE-754:
// Inv(±0) is ±Inf and no error is returned.
func Inv[T Number](x T) (T, error) {
	if x == 0 && !KindOf[T]().IsFloat() {
		return x, NewError("inv", ErrDivisionByZero, "%v has no inverse", x)
	}
	return 1 / x, nil
}

// Sum adds xs starting from the additive identity.
func Sum[T Number](xs ...T) T {
	var acc T
	for _, x := range xs {
		acc += x
	}
	return acc
}

// Product multiplies xs starting from the multiplicative identity.
func Product[T Number](xs ...T) T {
	acc := One[T]()
	for _, x := range xs {
		acc *= x
	}
	return acc
}

// SumField adds composite units starting from their zero value.
func SumField[T Field[T]](xs ...T) T {
	var acc T
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// CheckedSum adds composite units starting from their zero value and stops at
// the first failing step.
func CheckedSum[T CheckedField[T]](xs ...T) (T, error) {
	var acc T
	for i, x := range xs {
		next, err := acc.Add(x)
		if err != nil {
			return acc, fmt.Errorf("sum: element %d: %w", i, err)
		}
		acc = next
	}
	return acc, nil
}
