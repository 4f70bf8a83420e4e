package cplx

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Complex128{}
	_ msgpack.CustomDecoder = (*Complex128)(nil)
)

// EncodeMsgpack writes z as the array [re, im].
func (z Complex[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeFloat64(float64(z.Re)); err != nil {
		return err
	}
	return enc.EncodeFloat64(float64(z.Im))
}

// DecodeMsgpack reads the array written by EncodeMsgpack.
func (z *Complex[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("complex: decoding array of %d elements, want 2", n)
	}
	re, err := dec.DecodeFloat64()
	if err != nil {
		return err
	}
	im, err := dec.DecodeFloat64()
	if err != nil {
		return err
	}
	z.Re, z.Im = T(re), T(im)
	return nil
}
