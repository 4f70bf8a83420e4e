package unit

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkRoundTrip[T Number](t *testing.T, xs ...T) {
	t.Helper()
	for _, x := range xs {
		assert.Equal(t, x, FromBits[T](ToBits(x)), "bits round-trip of %v", x)
		for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian, NativeOrder} {
			buf := ToBytes(x, order)
			require.Len(t, buf, ByteSize[T]())
			got, err := FromBytes[T](buf, order)
			require.NoError(t, err)
			assert.Equal(t, x, got, "%v bytes round-trip of %v", order, x)
		}
	}
}

func TestBitRoundTrip(t *testing.T) {
	checkRoundTrip(t, int8(-128), int8(-1), int8(0), int8(127))
	checkRoundTrip(t, uint8(0), uint8(200))
	checkRoundTrip(t, int16(-12345), int16(math.MaxInt16))
	checkRoundTrip(t, uint32(0xDEADBEEF))
	checkRoundTrip(t, int64(math.MinInt64), int64(-2), int64(math.MaxInt64))
	checkRoundTrip(t, uint64(math.MaxUint64))
	checkRoundTrip(t, float32(1.5), float32(-0.1), float32(math.MaxFloat32), float32(math.Inf(-1)))
	checkRoundTrip(t, 0.1, -1e-310, math.MaxFloat64, math.Inf(1))
	checkRoundTrip(t, 42, -42)
}

func TestToBits(t *testing.T) {
	assert.Equal(t, uint64(0xFF), ToBits(int8(-1)))
	assert.Equal(t, uint64(0xFFFE), ToBits(int16(-2)))
	assert.Equal(t, uint64(0x3FC00000), ToBits(float32(1.5)))
	assert.Equal(t, uint64(0x3FF0000000000000), ToBits(1.0))
	assert.Equal(t, uint64(0x80000000), ToBits(float32(math.Copysign(0, -1))))

	assert.Equal(t, int8(-1), FromBits[int8](0xFF))
	assert.Equal(t, int8(-1), FromBits[int8](0xABCDFF), "only the low bits are used")
	assert.Equal(t, uint16(0xBEEF), FromBits[uint16](0xDEADBEEF))
}

func TestNaNBitsRoundTrip(t *testing.T) {
	const payload = 0x7FC00123
	nan := FromBits[float32](payload)

	assert.NotEqual(t, nan, nan, "NaN != NaN under ==")
	assert.Equal(t, uint64(payload), ToBits(nan), "but its bits survive")

	buf := ToBEBytes(nan)
	back, err := FromBEBytes[float32](buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(payload), ToBits(back))
}

func TestByteOrders(t *testing.T) {
	x := uint32(0x01020304)
	assert.Equal(t, []byte{1, 2, 3, 4}, ToBEBytes(x))
	assert.Equal(t, []byte{4, 3, 2, 1}, ToLEBytes(x))
	assert.Equal(t, ToBytes(x, NativeOrder), ToNEBytes(x))

	v, err := FromLEBytes[uint32]([]byte{4, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, x, v)

	n, err := FromNEBytes[int16](ToNEBytes(int16(-300)))
	require.NoError(t, err)
	assert.Equal(t, int16(-300), n)

	assert.Equal(t, []byte{0xFF}, ToBEBytes(int8(-1)))
}

func TestFromBytesWrongLength(t *testing.T) {
	_, err := FromBEBytes[float64]([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrUnsupportedWidth)
}

func TestSizes(t *testing.T) {
	assert.Equal(t, 8, BitSize[uint8]())
	assert.Equal(t, 32, BitSize[float32]())
	assert.Equal(t, 8, ByteSize[float64]())
	assert.Equal(t, KindOf[int]().Bits(), BitSize[int]())
}
