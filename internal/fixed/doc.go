// Package fixed implements signed binary fixed-point numbers.
//
// A Fixed[R] stores a raw machine integer R and represents raw / 2^scale,
// where scale is fixed per width:
//
//	Fixed16   int16     8 fractional bits
//	Fixed32   int32     16 fractional bits
//	Fixed64   int64     32 fractional bits
//	Fixed128  num.I128  64 fractional bits
//
// Values of different widths can be combined. Both operands are first
// aligned to the larger of the two scales, the operation is carried out in a
// wider intermediate, and the result is range-checked into the requested
// output width. Every step that would wrap reports unit.ErrOverflow instead.
//
// Go has no native 128-bit integer, so Fixed128 is a separate type over
// num.I128. Add128, Sub128, Mul128 and Div128 accept operands of any width
// and produce a Fixed128; Widen and Narrow move values in and out of it.
package fixed
