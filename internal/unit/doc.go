// Package unit defines the capability hierarchy shared by every numeric scalar
// in the module: identities, ordering and bounds, and the physical bit layout.
//
// Go has no associated constants on type parameters, so each capability is a
// generic function whose body folds to a constant per instantiation:
//
//	zero := unit.Zero[float32]()
//	one := unit.One[int16]()
//	bits := unit.ToBits(float32(1.5)) // 0x3fc00000
//
// Composite units (fixed-point, complex) build on top of these functions and
// satisfy the Field or CheckedField method sets.
package unit
