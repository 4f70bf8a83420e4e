package main

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/numeric/cast"
	"github.com/born-ml/numeric/unit"
)

func newCastCmd(opts *options) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "cast <to> <value>",
		Short: "Convert a value between kinds, failing when it does not fit",
		Example: `  unitcalc cast int8 100 --from u16
  unitcalc cast u32 -- -1.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			src, err := unit.ParseKind(from)
			if err != nil {
				return err
			}
			dst, err := unit.ParseKind(args[0])
			if err != nil {
				return err
			}
			o, s := opts.out, args[1]
			switch src {
			case unit.Int8:
				return castFrom[int8](o, dst, s)
			case unit.Int16:
				return castFrom[int16](o, dst, s)
			case unit.Int32:
				return castFrom[int32](o, dst, s)
			case unit.Int64:
				return castFrom[int64](o, dst, s)
			case unit.Int:
				return castFrom[int](o, dst, s)
			case unit.Uint8:
				return castFrom[uint8](o, dst, s)
			case unit.Uint16:
				return castFrom[uint16](o, dst, s)
			case unit.Uint32:
				return castFrom[uint32](o, dst, s)
			case unit.Uint64:
				return castFrom[uint64](o, dst, s)
			case unit.Uint:
				return castFrom[uint](o, dst, s)
			case unit.Float32:
				return castFrom[float32](o, dst, s)
			default:
				return castFrom[float64](o, dst, s)
			}
		},
	}
	cmd.Flags().StringVar(&from, "from", "f64", "kind the value is parsed as")
	return cmd
}

func castFrom[In unit.Number](o *output, dst unit.Kind, s string) error {
	v, err := cast.Parse[In](s)
	if err != nil {
		return err
	}
	o.field("from "+unit.KindOf[In]().String(), v)
	switch dst {
	case unit.Int8:
		return castTo[int8](o, v)
	case unit.Int16:
		return castTo[int16](o, v)
	case unit.Int32:
		return castTo[int32](o, v)
	case unit.Int64:
		return castTo[int64](o, v)
	case unit.Int:
		return castTo[int](o, v)
	case unit.Uint8:
		return castTo[uint8](o, v)
	case unit.Uint16:
		return castTo[uint16](o, v)
	case unit.Uint32:
		return castTo[uint32](o, v)
	case unit.Uint64:
		return castTo[uint64](o, v)
	case unit.Uint:
		return castTo[uint](o, v)
	case unit.Float32:
		return castTo[float32](o, v)
	default:
		return castTo[float64](o, v)
	}
}

func castTo[Out, In unit.Number](o *output, v In) error {
	r, err := cast.Checked[Out](v)
	if err != nil {
		return err
	}
	o.field("to "+unit.KindOf[Out]().String(), r)
	return nil
}
