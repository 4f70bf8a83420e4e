package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/numeric/float"
	"github.com/born-ml/numeric/unit"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <kind>",
		Short: "Show the bounds and layout of a numeric kind",
		Example: `  unitcalc info int8
  unitcalc info f32`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := unit.ParseKind(args[0])
			if err != nil {
				return err
			}
			o := opts.out
			switch k {
			case unit.Int8:
				describe[int8](o)
			case unit.Int16:
				describe[int16](o)
			case unit.Int32:
				describe[int32](o)
			case unit.Int64:
				describe[int64](o)
			case unit.Int:
				describe[int](o)
			case unit.Uint8:
				describe[uint8](o)
			case unit.Uint16:
				describe[uint16](o)
			case unit.Uint32:
				describe[uint32](o)
			case unit.Uint64:
				describe[uint64](o)
			case unit.Uint:
				describe[uint](o)
			case unit.Float32:
				describe[float32](o)
				describeFloat[float32](o)
			case unit.Float64:
				describe[float64](o)
				describeFloat[float64](o)
			}
			return nil
		},
	}
}

func describe[T unit.Number](o *output) {
	k := unit.KindOf[T]()
	o.field("kind", k.String())
	o.field("bits", unit.BitSize[T]())
	o.field("bytes", unit.ByteSize[T]())
	o.field("signed", fmt.Sprint(k.IsSigned()))
	o.field("min", unit.MinValue[T]())
	o.field("max", unit.MaxValue[T]())
	o.field("min positive", unit.MinPositive[T]())
	o.field("sign mask", fmt.Sprintf("%#x", unit.SignMask[T]()))
}

func describeFloat[T unit.Float](o *output) {
	l := float.Info[T]()
	o.field("epsilon", float.Epsilon[T]())
	o.field("mantissa bits", l.MantissaBits)
	o.field("exponent bits", l.ExpBits)
	o.field("digits", l.Digits)
	o.field("exponent", fmt.Sprintf("[%d, %d]", l.MinExp, l.MaxExp))
	o.field("exponent10", fmt.Sprintf("[%d, %d]", l.Min10Exp, l.Max10Exp))
}
