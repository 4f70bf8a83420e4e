// Package float specializes the unit capabilities for IEEE-754 binary floats:
// layout metadata, special values, mathematical constants, rounding and the
// transcendental function set.
//
// float32 functions are evaluated in float64 and rounded back, the same way
// the CPU backends of the framework this module grew out of handle float32
// element-wise math.
package float
