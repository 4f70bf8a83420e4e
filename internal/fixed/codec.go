package fixed

import (
	"fmt"

	num "github.com/shabbyrobe/go-num"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/born-ml/numeric/internal/cast"
	"github.com/born-ml/numeric/internal/unit"
)

var (
	_ msgpack.CustomEncoder = Fixed32{}
	_ msgpack.CustomDecoder = (*Fixed32)(nil)
	_ msgpack.CustomEncoder = Fixed128{}
	_ msgpack.CustomDecoder = (*Fixed128)(nil)
)

// EncodeMsgpack writes the raw integer.
func (f Fixed[R]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt(int64(f.raw))
}

// DecodeMsgpack reads a raw integer written by EncodeMsgpack. A raw value
// too wide for R reports unit.ErrConversionOutOfRange.
func (f *Fixed[R]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	raw, ok := cast.To[R](v)
	if !ok {
		return unit.NewError("fixed.decode", unit.ErrConversionOutOfRange, "raw %d does not fit %s", v, typeName[R]())
	}
	f.raw = raw
	return nil
}

// EncodeMsgpack writes the raw value as the array [hi, lo] of its two words.
func (f Fixed128) EncodeMsgpack(enc *msgpack.Encoder) error {
	hi, lo := f.raw.Raw()
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint(hi); err != nil {
		return err
	}
	return enc.EncodeUint(lo)
}

// DecodeMsgpack reads the array written by EncodeMsgpack.
func (f *Fixed128) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("fixed: decoding Fixed128 array of %d elements, want 2", n)
	}
	hi, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	lo, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	f.raw = num.I128FromRaw(hi, lo)
	return nil
}
