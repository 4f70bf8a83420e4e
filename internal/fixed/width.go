package fixed

import "github.com/born-ml/numeric/internal/unit"

// Raw permits the native integer representations. The 128-bit width has no
// native integer and is provided by Fixed128.
type Raw interface {
	int16 | int32 | int64
}

// Fractional bits per representation width.
const (
	Scale16  = 8
	Scale32  = 16
	Scale64  = 32
	Scale128 = 64
)

// ScaleFor returns the number of fractional bits used for a representation
// of the given width. Other widths (8, 24, ...) report
// unit.ErrUnsupportedWidth.
func ScaleFor(bits int) (uint, error) {
	switch bits {
	case 16:
		return Scale16, nil
	case 32:
		return Scale32, nil
	case 64:
		return Scale64, nil
	case 128:
		return Scale128, nil
	default:
		return 0, unit.NewError("fixed.scale", unit.ErrUnsupportedWidth, "no %d-bit fixed-point representation", bits)
	}
}

func scaleOf[R Raw]() uint {
	switch unit.BitSize[R]() {
	case 16:
		return Scale16
	case 32:
		return Scale32
	default:
		return Scale64
	}
}

func typeName[R Raw]() string {
	switch unit.BitSize[R]() {
	case 16:
		return "Fixed16"
	case 32:
		return "Fixed32"
	default:
		return "Fixed64"
	}
}
