package unit

import (
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// BitSize returns the bit width of T's physical representation.
func BitSize[T Number]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy)) * 8
}

// ByteSize returns the byte width of T's physical representation.
func ByteSize[T Number]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

func lowMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<bits - 1
}

// ToBits reinterprets x as its raw bit pattern, zero-extended into the low
// BitSize bits of the result. No rounding takes place.
func ToBits[T Number](x T) uint64 {
	switch KindOf[T]() {
	case Float32:
		return uint64(math.Float32bits(float32(x)))
	case Float64:
		return math.Float64bits(float64(x))
	}
	return uint64(x) & lowMask(BitSize[T]())
}

// FromBits reinterprets the low BitSize bits of b as a value of T.
// FromBits(ToBits(x)) reproduces x bit for bit, NaN payloads included.
func FromBits[T Number](b uint64) T {
	k := KindOf[T]()
	switch k {
	case Float32:
		return T(math.Float32frombits(uint32(b)))
	case Float64:
		return T(math.Float64frombits(b))
	}
	n := k.Bits()
	v := b & lowMask(n)
	if k.IsSigned() {
		shift := 64 - n
		return T(int64(v<<shift) >> shift)
	}
	return T(v)
}

// NativeOrder is the byte order of the host, as reported by the cpu package.
var NativeOrder = nativeOrder()

func nativeOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ToBytes returns the physical representation of x in the given byte order.
func ToBytes[T Number](x T, order binary.ByteOrder) []byte {
	buf := make([]byte, ByteSize[T]())
	bits := ToBits(x)
	switch len(buf) {
	case 1:
		buf[0] = byte(bits)
	case 2:
		order.PutUint16(buf, uint16(bits))
	case 4:
		order.PutUint32(buf, uint32(bits))
	case 8:
		order.PutUint64(buf, bits)
	}
	return buf
}

// FromBytes reinterprets buf in the given byte order. The length of buf must
// equal ByteSize[T]().
func FromBytes[T Number](buf []byte, order binary.ByteOrder) (T, error) {
	if len(buf) != ByteSize[T]() {
		var zero T
		return zero, NewError("from bytes", ErrUnsupportedWidth,
			"%s needs %d bytes, got %d", KindOf[T](), ByteSize[T](), len(buf))
	}
	var bits uint64
	switch len(buf) {
	case 1:
		bits = uint64(buf[0])
	case 2:
		bits = uint64(order.Uint16(buf))
	case 4:
		bits = uint64(order.Uint32(buf))
	case 8:
		bits = order.Uint64(buf)
	}
	return FromBits[T](bits), nil
}

// ToBEBytes returns the big-endian representation of x.
func ToBEBytes[T Number](x T) []byte { return ToBytes(x, binary.BigEndian) }

// ToLEBytes returns the little-endian representation of x.
func ToLEBytes[T Number](x T) []byte { return ToBytes(x, binary.LittleEndian) }

// ToNEBytes returns the host-order representation of x.
func ToNEBytes[T Number](x T) []byte { return ToBytes(x, NativeOrder) }

// FromBEBytes reads a big-endian representation.
func FromBEBytes[T Number](buf []byte) (T, error) { return FromBytes[T](buf, binary.BigEndian) }

// FromLEBytes reads a little-endian representation.
func FromLEBytes[T Number](buf []byte) (T, error) { return FromBytes[T](buf, binary.LittleEndian) }

// FromNEBytes reads a host-order representation.
func FromNEBytes[T Number](buf []byte) (T, error) { return FromBytes[T](buf, NativeOrder) }
