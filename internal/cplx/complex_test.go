package cplx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numeric/internal/unit"
)

const tol = 1e-12

func TestConstructors(t *testing.T) {
	assert.Equal(t, Complex128{}, New(0.0, 0.0))
	assert.True(t, Complex64{}.IsZero())
	assert.Equal(t, New(2.5, 0.0), FromReal(2.5))
	assert.Equal(t, New(1.0, 0.0), One[float64]())
	assert.Equal(t, New(float32(0), 1), I[float32]())
	assert.Equal(t, New(2.5, 0.0), Real(2.5))
	assert.Equal(t, New(0.0, 3.0), Imag(3.0))

	assert.Equal(t, New(-1.0, 0.0), I[float64]().Mul(I[float64]()), "i² = -1")
}

func TestMul(t *testing.T) {
	got := New(1.0, 2.0).Mul(New(3.0, 4.0))
	assert.Equal(t, New(-5.0, 10.0), got)

	got32 := New[float32](1, 2).Mul(New[float32](3, 4))
	assert.Equal(t, New[float32](-5, 10), got32)
}

func TestDiv(t *testing.T) {
	got, err := New(-5.0, 10.0).Div(New(3.0, 4.0))
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(New(1.0, 2.0), tol), "got %s", got)

	zs := []Complex128{New(1.5, -2), New(-0.25, 7), New(1e-3, 1e3)}
	for _, a := range zs {
		for _, b := range zs {
			q, err := a.Div(b)
			require.NoError(t, err)
			assert.True(t, q.Mul(b).ApproxEqual(a, tol), "(%s / %s) * %s", a, b, b)
		}
	}

	_, err = New(1.0, 1.0).Div(Complex128{})
	assert.ErrorIs(t, err, unit.ErrDivisionByZero)
}

func TestFieldLaws(t *testing.T) {
	zs := []Complex128{New(1.0, 2.0), New(-3.5, 0.25), New(0.0, -1.0), New(1e5, 1e-5)}

	for _, z := range zs {
		assert.Equal(t, z, z.Conj().Conj())
		assert.Equal(t, z, z.Add(Complex128{}))
		assert.Equal(t, z, z.Mul(One[float64]()))
		assert.True(t, z.Sub(z).IsZero())
		assert.True(t, z.Add(z.Neg()).IsZero())

		inv, err := z.Inv()
		require.NoError(t, err)
		assert.True(t, z.Mul(inv).ApproxEqual(One[float64](), tol), "%s * inv", z)

		back, err := inv.Inv()
		require.NoError(t, err)
		assert.True(t, back.ApproxEqual(z, tol))
	}

	a, b, c := New(1.0, 2.0), New(-3.0, 5.0), New(7.0, -11.0)
	assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))

	_, err := Complex64{}.Inv()
	assert.ErrorIs(t, err, unit.ErrDivisionByZero)
}

func TestInvDivExtremeMagnitudes(t *testing.T) {
	zs := []Complex128{
		New(1e200, 0.0),
		New(3e200, -4e200),
		New(3e-170, 4e-170),
		New(-1e-300, 2e-300),
		New(1e300, 1e-300),
	}

	for _, z := range zs {
		inv, err := z.Inv()
		require.NoError(t, err, "%s", z)
		assert.True(t, z.Mul(inv).ApproxEqual(One[float64](), tol), "%s * %s", z, inv)

		q, err := z.Div(z)
		require.NoError(t, err, "%s", z)
		assert.True(t, q.ApproxEqual(One[float64](), tol), "%s / %s = %s", z, z, q)
		assert.True(t, q.ApproxEqual(FromNative[float64](z.Native()/z.Native()), tol))
	}

	inv, err := New(1e200, 0.0).Inv()
	require.NoError(t, err)
	assert.InDelta(t, 1e-200, inv.Re, 1e-212)
	assert.Zero(t, inv.Im)

	inv, err = New(3e-170, 4e-170).Inv()
	require.NoError(t, err)
	assert.InEpsilon(t, 1.2e169, inv.Re, tol)
	assert.InEpsilon(t, -1.6e169, inv.Im, tol)

	q, err := New[float32](3e30, 4e30).Div(New[float32](3e30, 4e30))
	require.NoError(t, err)
	assert.True(t, q.ApproxEqual(One[float32](), 1e-6), "%s", q)
}

func TestSumField(t *testing.T) {
	sum := unit.SumField(New(1.0, 2.0), New(3.0, -4.0), New(-0.5, 0.5))
	assert.Equal(t, New(3.5, -1.5), sum)
}

func TestScaleUnscale(t *testing.T) {
	z := New(1.5, -2.0)
	assert.Equal(t, New(3.0, -4.0), z.Scale(2))

	u, err := z.Unscale(0.5)
	require.NoError(t, err)
	assert.Equal(t, New(3.0, -4.0), u)

	_, err = z.Unscale(0)
	assert.ErrorIs(t, err, unit.ErrDivisionByZero)
}

func TestNormAndPolar(t *testing.T) {
	z := New(3.0, 4.0)
	assert.Equal(t, 25.0, z.NormSqr())
	assert.Equal(t, 5.0, z.Norm())
	assert.Equal(t, math.Pi/2, I[float64]().Arg())
	assert.Equal(t, math.Pi, New(-1.0, 0.0).Arg())

	big := New(1e200, 1e200)
	assert.True(t, math.IsInf(big.NormSqr(), 1))
	assert.InEpsilon(t, math.Sqrt2*1e200, big.Norm(), 1e-15)

	for _, w := range []Complex128{z, New(-1.0, -1.0), New(0.0, -2.0)} {
		r, theta := w.ToPolar()
		assert.True(t, FromPolar(r, theta).ApproxEqual(w, tol), "%s", w)
	}
}

func TestExpLn(t *testing.T) {
	euler := New(0.0, math.Pi).Exp()
	assert.True(t, euler.ApproxEqual(New(-1.0, 0.0), tol), "e^iπ = %s", euler)

	two := FromReal(math.Ln2).Exp()
	assert.True(t, two.ApproxEqual(New(2.0, 0.0), tol))

	assert.True(t, New(-1.0, 0.0).Ln().ApproxEqual(New(0.0, math.Pi), tol))

	z := New(0.5, -1.25)
	assert.True(t, z.Ln().Exp().ApproxEqual(z, tol))
}

func TestSqrtPowf(t *testing.T) {
	assert.True(t, New(-4.0, 0.0).Sqrt().ApproxEqual(New(0.0, 2.0), tol))
	assert.True(t, New(3.0, 4.0).Sqrt().ApproxEqual(New(2.0, 1.0), tol))
	assert.Equal(t, Complex128{}, Complex128{}.Sqrt())

	assert.True(t, I[float64]().Powf(2).ApproxEqual(New(-1.0, 0.0), tol))
	z := New(1.0, 1.0)
	assert.True(t, z.Powf(3).ApproxEqual(z.Mul(z).Mul(z), tol))
	assert.Equal(t, Complex128{}, Complex128{}.Powf(2))
}

func TestClassify(t *testing.T) {
	nan := New(math.NaN(), 0.0)
	assert.True(t, nan.IsNaN())
	assert.False(t, nan.IsFinite())
	assert.False(t, nan.Equal(nan))

	inf := New(1.0, math.Inf(-1))
	assert.True(t, inf.IsInf())
	assert.False(t, inf.IsNaN())
	assert.False(t, inf.IsFinite())

	assert.True(t, New(1.0, 2.0).IsFinite())
	assert.True(t, New(math.Copysign(0, -1), 0.0).IsZero())
}

func TestNative(t *testing.T) {
	c := complex(1.25, -3.5)
	assert.Equal(t, c, FromNative[float64](c).Native())
	assert.Equal(t, New[float32](1.25, -3.5), FromNative[float32](c))
}
