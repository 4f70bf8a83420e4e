package integer

import (
	"math/bits"

	"github.com/born-ml/numeric/internal/unit"
)

// Not returns the bitwise complement of x.
func Not[T unit.Integer](x T) T { return ^x }

// And returns x & y.
func And[T unit.Integer](x, y T) T { return x & y }

// Or returns x | y.
func Or[T unit.Integer](x, y T) T { return x | y }

// Xor returns x ^ y.
func Xor[T unit.Integer](x, y T) T { return x ^ y }

// AndNot returns x &^ y.
func AndNot[T unit.Integer](x, y T) T { return x &^ y }

// Shl shifts x left by n bits. Bits shifted out are lost.
func Shl[T unit.Integer](x T, n uint) T { return x << n }

// Shr shifts x right by n bits: arithmetic for signed types, logical for
// unsigned ones.
func Shr[T unit.Integer](x T, n uint) T { return x >> n }

// CountOnes returns the number of set bits in the representation of x.
func CountOnes[T unit.Integer](x T) int {
	return bits.OnesCount64(unit.ToBits(x))
}

// LeadingZeros returns the number of leading zero bits of x within its width.
func LeadingZeros[T unit.Integer](x T) int {
	return bits.LeadingZeros64(unit.ToBits(x)) - (64 - unit.BitSize[T]())
}

// TrailingZeros returns the number of trailing zero bits of x; for x == 0 it
// is the bit width of T.
func TrailingZeros[T unit.Integer](x T) int {
	return min(bits.TrailingZeros64(unit.ToBits(x)), unit.BitSize[T]())
}
