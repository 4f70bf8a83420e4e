package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/numeric/cast"
	"github.com/born-ml/numeric/cplx"
)

var complexOps = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "div": 2, "pow": 2,
	"neg": 1, "conj": 1, "inv": 1, "norm": 1, "norm-sqr": 1, "arg": 1,
	"polar": 1, "exp": 1, "ln": 1, "sqrt": 1,
}

func newComplexCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "complex <op> <a> [b]",
		Short: "Complex arithmetic on float64 components",
		Long: `Operations: add, sub, mul, div, pow (b is a real exponent),
neg, conj, inv, norm, norm-sqr, arg, polar, exp, ln, sqrt.
Operands are written as (1+2i), 1+2i, 3 or 2i.`,
		Example: `  unitcalc complex mul "(1+2i)" "(3+4i)"
  unitcalc complex polar 1+1i`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runComplex(opts, args[0], args[1:])
		},
	}
}

func runComplex(opts *options, op string, operands []string) error {
	arity, ok := complexOps[op]
	if !ok {
		return fmt.Errorf("unknown complex operation %q", op)
	}
	if len(operands) != arity {
		return fmt.Errorf("%s takes %d operand(s), got %d", op, arity, len(operands))
	}
	z, err := cplx.Parse[float64](operands[0])
	if err != nil {
		return err
	}

	o := opts.out
	var r cplx.Complex128
	switch op {
	case "norm":
		o.field("norm", z.Norm())
		return nil
	case "norm-sqr":
		o.field("norm sqr", z.NormSqr())
		return nil
	case "arg":
		o.field("arg", z.Arg())
		return nil
	case "polar":
		radius, theta := z.ToPolar()
		o.field("r", radius)
		o.field("theta", theta)
		return nil
	case "neg":
		r = z.Neg()
	case "conj":
		r = z.Conj()
	case "exp":
		r = z.Exp()
	case "ln":
		r = z.Ln()
	case "sqrt":
		r = z.Sqrt()
	case "inv":
		if r, err = z.Inv(); err != nil {
			return err
		}
	case "pow":
		x, err := cast.Parse[float64](operands[1])
		if err != nil {
			return err
		}
		r = z.Powf(x)
	default:
		w, err := cplx.Parse[float64](operands[1])
		if err != nil {
			return err
		}
		switch op {
		case "add":
			r = z.Add(w)
		case "sub":
			r = z.Sub(w)
		case "mul":
			r = z.Mul(w)
		case "div":
			if r, err = z.Div(w); err != nil {
				return err
			}
		}
	}

	o.field("result", o.complex(r))
	if opts.msgpack {
		return o.encoded(r)
	}
	return nil
}

// complex formats z honoring the configured precision.
func (o *output) complex(z cplx.Complex128) string {
	if o.prec < 0 {
		return z.String()
	}
	return strconv.FormatComplex(z.Native(), 'f', o.prec, 128)
}
