package cast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/numeric/internal/unit"
)

// Parse reads a value of T from its textual form. Integers accept the base
// prefixes 0x, 0o and 0b as well as underscores; floats accept anything
// strconv.ParseFloat does. Values outside T's range report
// unit.ErrConversionOutOfRange.
func Parse[T unit.Number](s string) (T, error) {
	var zero T
	k := unit.KindOf[T]()
	s = strings.TrimSpace(s)

	var (
		v   T
		err error
	)
	switch {
	case k.IsFloat():
		var f float64
		f, err = strconv.ParseFloat(s, k.Bits())
		v = T(f)
	case k.IsSigned():
		var i int64
		i, err = strconv.ParseInt(s, 0, k.Bits())
		v = T(i)
	default:
		var u uint64
		u, err = strconv.ParseUint(s, 0, k.Bits())
		v = T(u)
	}

	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return zero, unit.NewError("parse", unit.ErrConversionOutOfRange, "%q does not fit %s", s, k)
	}
	return zero, fmt.Errorf("parse %q as %s: %w", s, k, err)
}
