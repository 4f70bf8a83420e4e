package unit

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind represents runtime type information for primitive units.
type Kind int

// Supported primitive kinds.
const (
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Float32
	Float64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Int:     "int",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uint:    "uint",
	Float32: "float32",
	Float64: "float64",
}

// Bits returns the bit width of the kind.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	case Int, Uint:
		return 32 << (^uint(0) >> 63)
	default:
		return 0
	}
}

// Bytes returns the byte size of the kind.
func (k Kind) Bytes() int {
	return k.Bits() / 8
}

// IsFloat reports whether the kind is an IEEE-754 binary float.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsSigned reports whether the kind can hold negative values.
func (k Kind) IsSigned() bool {
	switch k {
	case Int8, Int16, Int32, Int64, Int, Float32, Float64:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the kind is a machine integer.
func (k Kind) IsInteger() bool {
	return k != Invalid && !k.IsFloat()
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the kind named by s (e.g. "int8", "f32", "u16").
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "i8":
		return Int8, nil
	case "i16":
		return Int16, nil
	case "i32":
		return Int32, nil
	case "i64":
		return Int64, nil
	case "u8", "byte":
		return Uint8, nil
	case "u16":
		return Uint16, nil
	case "u32":
		return Uint32, nil
	case "u64":
		return Uint64, nil
	case "f32":
		return Float32, nil
	case "f64":
		return Float64, nil
	}
	for k, n := range kindNames {
		if Kind(k) != Invalid && n == name {
			return Kind(k), nil
		}
	}
	return Invalid, NewError("parse kind", ErrUnsupportedWidth, "unknown kind %q", s)
}

// KindOf infers the Kind of a type parameter. Named types resolve to the kind
// of their underlying type.
func KindOf[T Number]() Kind {
	var dummy T
	switch reflect.TypeOf(dummy).Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		return Int
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uint:
		return Uint
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		panic(fmt.Sprintf("unit: unsupported type %T", dummy))
	}
}
