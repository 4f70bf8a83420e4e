package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/numeric/cast"
	"github.com/born-ml/numeric/fixed"
)

var fixedOps = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "div": 2,
	"neg": 1, "inv": 1, "abs": 1,
}

type fixedArgs struct {
	op       string
	operands []string
	widthA   int
	widthB   int
	msgpack  bool
}

func newFixedCmd(opts *options) *cobra.Command {
	var widthA, widthB int

	cmd := &cobra.Command{
		Use:   "fixed <op> <a> [b]",
		Short: "Fixed-point arithmetic across 16, 32, 64 and 128-bit widths",
		Long: `Operations: add, sub, mul, div, neg, inv, abs.
Operands are decimal values rounded to the nearest representable step of
their width. Binary results are stored in the wider of the two widths.`,
		Example: `  unitcalc fixed add 1.5 2.25 --width 16 --width-b 32
  unitcalc fixed mul 46341 46341 --width 64
  unitcalc fixed div 1 3 --width 128`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fixedArgs{
				op:       args[0],
				operands: args[1:],
				widthA:   opts.cfg.FixedWidth,
				msgpack:  opts.msgpack,
			}
			if cmd.Flags().Changed("width") {
				a.widthA = widthA
			}
			a.widthB = a.widthA
			if cmd.Flags().Changed("width-b") {
				a.widthB = widthB
			}
			return runFixed(opts.out, a)
		},
	}
	cmd.Flags().IntVar(&widthA, "width", 32, "width of the first operand (16|32|64|128)")
	cmd.Flags().IntVar(&widthB, "width-b", 32, "width of the second operand (defaults to --width)")
	return cmd
}

func runFixed(o *output, a fixedArgs) error {
	arity, ok := fixedOps[a.op]
	if !ok {
		return fmt.Errorf("unknown fixed operation %q", a.op)
	}
	if len(a.operands) != arity {
		return fmt.Errorf("%s takes %d operand(s), got %d", a.op, arity, len(a.operands))
	}
	if _, err := fixed.ScaleFor(a.widthB); err != nil {
		return err
	}
	if a.widthA == 128 || (arity == 2 && a.widthB == 128) {
		return fixedWide(o, a)
	}
	switch a.widthA {
	case 16:
		return fixedFirst[int16](o, a)
	case 32:
		return fixedFirst[int32](o, a)
	case 64:
		return fixedFirst[int64](o, a)
	}
	_, err := fixed.ScaleFor(a.widthA)
	return err
}

func parseFixed[R fixed.Raw](s string) (fixed.Fixed[R], error) {
	f, err := cast.Parse[float64](s)
	if err != nil {
		return fixed.Fixed[R]{}, err
	}
	return fixed.FromFloat[R](f)
}

func fixedFirst[A fixed.Raw](o *output, a fixedArgs) error {
	x, err := parseFixed[A](a.operands[0])
	if err != nil {
		return err
	}
	if len(a.operands) == 1 {
		var r fixed.Fixed[A]
		switch a.op {
		case "neg":
			r, err = x.Neg()
		case "inv":
			r, err = x.Inv()
		case "abs":
			r, err = x.Abs()
		}
		if err != nil {
			return err
		}
		return fixedResult(o, r, a.msgpack)
	}
	switch a.widthB {
	case 16:
		return fixedSecond[A, int16](o, a, x)
	case 32:
		return fixedSecond[A, int32](o, a, x)
	default:
		return fixedSecond[A, int64](o, a, x)
	}
}

func fixedSecond[A, B fixed.Raw](o *output, a fixedArgs, x fixed.Fixed[A]) error {
	y, err := parseFixed[B](a.operands[1])
	if err != nil {
		return err
	}
	switch max(x.Bits(), y.Bits()) {
	case 16:
		return fixedBinary[int16](o, a, x, y)
	case 32:
		return fixedBinary[int32](o, a, x, y)
	default:
		return fixedBinary[int64](o, a, x, y)
	}
}

func fixedBinary[Out, A, B fixed.Raw](o *output, a fixedArgs, x fixed.Fixed[A], y fixed.Fixed[B]) error {
	var (
		r   fixed.Fixed[Out]
		err error
	)
	switch a.op {
	case "add":
		r, err = fixed.Add[Out](x, y)
	case "sub":
		r, err = fixed.Sub[Out](x, y)
	case "mul":
		r, err = fixed.Mul[Out](x, y)
	case "div":
		r, err = fixed.Div[Out](x, y)
	}
	if err != nil {
		return err
	}
	return fixedResult(o, r, a.msgpack)
}

func fixedResult[R fixed.Raw](o *output, r fixed.Fixed[R], withMsgpack bool) error {
	o.field("result", r.String())
	o.field("width", r.Bits())
	o.field("raw", fmt.Sprintf("0x%0*x", r.Bits()/4, r.ToBits()))
	if withMsgpack {
		return o.encoded(r)
	}
	return nil
}

func parseValue(width int, s string) (fixed.Value, error) {
	f, err := cast.Parse[float64](s)
	if err != nil {
		return nil, err
	}
	var v fixed.Value
	switch width {
	case 16:
		v, err = fixed.FromFloat[int16](f)
	case 32:
		v, err = fixed.FromFloat[int32](f)
	case 64:
		v, err = fixed.FromFloat[int64](f)
	default:
		v, err = fixed.FromFloat128(f)
	}
	return v, err
}

// fixedWide handles every operation with a 128-bit operand. The result is
// always a Fixed128.
func fixedWide(o *output, a fixedArgs) error {
	x, err := parseValue(a.widthA, a.operands[0])
	if err != nil {
		return err
	}
	var r fixed.Fixed128
	if len(a.operands) == 1 {
		w := fixed.Widen(x)
		switch a.op {
		case "neg":
			r, err = w.Neg()
		case "inv":
			r, err = w.Inv()
		case "abs":
			r, err = w.Abs()
		}
	} else {
		var y fixed.Value
		if y, err = parseValue(a.widthB, a.operands[1]); err != nil {
			return err
		}
		switch a.op {
		case "add":
			r, err = fixed.Add128(x, y)
		case "sub":
			r, err = fixed.Sub128(x, y)
		case "mul":
			r, err = fixed.Mul128(x, y)
		case "div":
			r, err = fixed.Div128(x, y)
		}
	}
	if err != nil {
		return err
	}
	hi, lo := r.ToBits()
	o.field("result", r.String())
	o.field("width", r.Bits())
	o.field("raw", fmt.Sprintf("0x%016x%016x", hi, lo))
	if a.msgpack {
		return o.encoded(r)
	}
	return nil
}
