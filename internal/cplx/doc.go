// Package cplx implements complex numbers generic over the machine float
// kinds.
//
// Complex[T] is a plain value pair. Addition, subtraction, multiplication
// and negation never fail; inversion, division and unscaling by a zero
// magnitude report unit.ErrDivisionByZero instead of producing infinities.
package cplx
