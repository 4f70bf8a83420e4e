// Package cast converts between primitive numeric kinds without silent loss
// of range.
//
// A conversion whose source value is not representable in the destination
// reports ok == false (or unit.ErrConversionOutOfRange from the Checked
// variants); it never panics and never wraps:
//
//	cast.To[int8](uint16(100)) // 100, true
//	cast.To[int8](uint16(200)) // 0, false
//	cast.To[uint32](-1.5)      // 0, false
//	cast.To[int32](-1.5)       // -1, true (truncates toward zero)
package cast
