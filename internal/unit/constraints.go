package unit

import "golang.org/x/exp/constraints"

// Signed permits any signed machine integer.
type Signed = constraints.Signed

// Unsigned permits any unsigned machine integer.
type Unsigned = constraints.Unsigned

// Integer permits any machine integer.
type Integer = constraints.Integer

// Float permits float32 and float64.
type Float = constraints.Float

// Number is the Unit capability for primitive kinds: copyable values that
// support + - * /, unary negation and ==.
type Number interface {
	Integer | Float
}

// SignedNumber permits the primitive units that can hold negative values.
type SignedNumber interface {
	Signed | Float
}

// Field is the method-set form of Unit, implemented by composite units whose
// arithmetic cannot fail (e.g. complex numbers over floats).
type Field[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	IsZero() bool
	Equal(T) bool
}

// CheckedField is the method-set form of Unit for composite units whose
// arithmetic reports overflow and division by zero (e.g. fixed-point).
type CheckedField[T any] interface {
	Add(T) (T, error)
	Sub(T) (T, error)
	Mul(T) (T, error)
	Div(T) (T, error)
	Neg() (T, error)
	IsZero() bool
	Equal(T) bool
}
