package symdiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/symdiff"
)

func TestString(t *testing.T) {
	n := symdiff.N
	cases := []struct {
		in   symdiff.Expr
		want string
	}{
		{n(5), "5"},
		{n(2.5), "2.5"},
		{n(-3), "-3"},
		{n(1e21), "1e+21"},
		{n(math.Inf(1)), "+Inf"},
		{n(math.NaN()), "NaN"},
		{x, "x"},
		{symdiff.AddOf(x, n(3)), "x + 3"},
		{symdiff.MulOf(n(3), x), "3*x"},
		{symdiff.DivOf(x, y), "x/y"},
		{symdiff.PowOf(x, n(2)), "x^2"},
		{symdiff.SubOf(symdiff.SubOf(x, y), n(1)), "x - y - 1"},
		{symdiff.SubOf(x, symdiff.SubOf(y, n(1))), "x - (y - 1)"},
		{symdiff.AddOf(x, symdiff.AddOf(y, n(1))), "x + (y + 1)"},
		{symdiff.MulOf(symdiff.AddOf(x, n(1)), y), "(x + 1)*y"},
		{symdiff.DivOf(x, symdiff.MulOf(n(2), y)), "x/(2*y)"},
		{symdiff.PowOf(symdiff.PowOf(x, n(2)), n(3)), "(x^2)^3"},
		{symdiff.PowOf(x, symdiff.PowOf(n(2), n(3))), "x^2^3"},
		{symdiff.PowOf(n(-2), x), "(-2)^x"},
		{symdiff.PowOf(x, n(-1)), "x^(-1)"},
		{symdiff.MulOf(n(-2), x), "-2*x"},
		{symdiff.SinOf(symdiff.AddOf(x, n(1))), "sin(x + 1)"},
		{symdiff.MulOf(symdiff.CosOf(x), symdiff.ExpOf(y)), "cos(x)*exp(y)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, symdiff.String(tc.in))
	}
}

func TestLaTeX(t *testing.T) {
	n := symdiff.N
	cases := []struct {
		in   symdiff.Expr
		want string
	}{
		{n(2), "2"},
		{n(math.Inf(-1)), `-\infty`},
		{symdiff.DivOf(x, symdiff.AddOf(y, n(1))), `\frac{x}{y + 1}`},
		{symdiff.PowOf(symdiff.AddOf(x, n(1)), n(2)), `\left(x + 1\right)^{2}`},
		{symdiff.PowOf(x, symdiff.AddOf(y, n(1))), `x^{y + 1}`},
		{symdiff.MulOf(n(2), symdiff.SinOf(x)), `2 \cdot \sin\left(x\right)`},
		{symdiff.MulOf(symdiff.SubOf(x, n(1)), y), `\left(x - 1\right) \cdot y`},
		{symdiff.SubOf(n(0), symdiff.CosOf(x)), `0 - \cos\left(x\right)`},
		{symdiff.ExpOf(x), `\exp\left(x\right)`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, symdiff.LaTeX(tc.in))
	}
}
