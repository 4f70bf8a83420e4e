package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/numeric/cast"
	"github.com/born-ml/numeric/unit"
)

func newBitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bits <kind> <value>",
		Short: "Show the bit pattern and byte encoding of a value",
		Example: `  unitcalc bits f32 1.5
  unitcalc bits int16 -- -2`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := unit.ParseKind(args[0])
			if err != nil {
				return err
			}
			o, s := opts.out, args[1]
			switch k {
			case unit.Int8:
				return showBits[int8](o, s, opts)
			case unit.Int16:
				return showBits[int16](o, s, opts)
			case unit.Int32:
				return showBits[int32](o, s, opts)
			case unit.Int64:
				return showBits[int64](o, s, opts)
			case unit.Int:
				return showBits[int](o, s, opts)
			case unit.Uint8:
				return showBits[uint8](o, s, opts)
			case unit.Uint16:
				return showBits[uint16](o, s, opts)
			case unit.Uint32:
				return showBits[uint32](o, s, opts)
			case unit.Uint64:
				return showBits[uint64](o, s, opts)
			case unit.Uint:
				return showBits[uint](o, s, opts)
			case unit.Float32:
				return showBits[float32](o, s, opts)
			default:
				return showBits[float64](o, s, opts)
			}
		},
	}
}

func showBits[T unit.Number](o *output, s string, opts *options) error {
	v, err := cast.Parse[T](s)
	if err != nil {
		return err
	}
	b := unit.ToBits(v)
	n := unit.BitSize[T]()
	o.field("value", v)
	o.field("bits", fmt.Sprintf("0x%0*x", n/4, b))
	o.field("binary", fmt.Sprintf("%0*b", n, b))
	o.field("bytes "+opts.cfg.ByteOrder, fmt.Sprintf("% x", unit.ToBytes(v, opts.cfg.Order())))
	return nil
}
