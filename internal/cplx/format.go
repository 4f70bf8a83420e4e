package cplx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/numeric/internal/unit"
)

func complexBits[T unit.Float]() int {
	return 2 * unit.BitSize[T]()
}

// String formats z as (re+imi), the same form fmt uses for native complex
// values.
func (z Complex[T]) String() string {
	return strconv.FormatComplex(z.Native(), 'g', -1, complexBits[T]())
}

// Parse reads a complex number in any form accepted by
// strconv.ParseComplex: "(1+2i)", "1+2i", "3", "-2.5i". Components outside
// T's range report unit.ErrConversionOutOfRange.
func Parse[T unit.Float](s string) (Complex[T], error) {
	s = strings.TrimSpace(s)
	c, err := strconv.ParseComplex(s, complexBits[T]())
	if err == nil {
		return FromNative[T](c), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return Complex[T]{}, unit.NewError("complex.parse", unit.ErrConversionOutOfRange, "%q does not fit %s", s, unit.KindOf[T]())
	}
	return Complex[T]{}, fmt.Errorf("parse %q as complex: %w", s, err)
}
