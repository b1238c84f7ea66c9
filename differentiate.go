package symdiff

// ============================================================
// Differentiation
// ============================================================

// Differentiate returns the derivative of e with respect to v. The result is
// built structurally and is not simplified; use Diff for the simplified form.
func Differentiate(e Expr, v Variable) Expr { return e.Differentiate(v) }

func (n Value) Differentiate(Variable) Expr { return N(0) }

func (s Variable) Differentiate(v Variable) Expr {
	if s.Name == v.Name {
		return N(1)
	}
	return N(0)
}

func (p Plus) Differentiate(v Variable) Expr {
	return Plus{X: p.X.Differentiate(v), Y: p.Y.Differentiate(v)}
}

func (m Minus) Differentiate(v Variable) Expr {
	return Minus{X: m.X.Differentiate(v), Y: m.Y.Differentiate(v)}
}

// Product rule: x*dy + y*dx.
func (m Multiply) Differentiate(v Variable) Expr {
	return Plus{
		X: Multiply{X: m.X, Y: m.Y.Differentiate(v)},
		Y: Multiply{X: m.Y, Y: m.X.Differentiate(v)},
	}
}

// Quotient rule: (dx*y - dy*x) / y^2.
func (d Divide) Differentiate(v Variable) Expr {
	return Divide{
		X: Minus{
			X: Multiply{X: d.X.Differentiate(v), Y: d.Y},
			Y: Multiply{X: d.Y.Differentiate(v), Y: d.X},
		},
		Y: Pow{X: d.Y, Y: N(2)},
	}
}

// Power rule y * x^(y-1) * dx. The exponent is treated as constant: there is
// no ln(x)*dy term, so the result is wrong when y depends on v.
func (p Pow) Differentiate(v Variable) Expr {
	return Multiply{
		X: Multiply{
			X: p.Y,
			Y: Pow{X: p.X, Y: Minus{X: p.Y, Y: N(1)}},
		},
		Y: p.X.Differentiate(v),
	}
}

func (f Sin) Differentiate(v Variable) Expr {
	return Multiply{X: Cos{X: f.X}, Y: f.X.Differentiate(v)}
}

func (f Cos) Differentiate(v Variable) Expr {
	return Minus{
		X: N(0),
		Y: Multiply{X: Sin{X: f.X}, Y: f.X.Differentiate(v)},
	}
}

func (f Exp) Differentiate(v Variable) Expr {
	return Multiply{X: f, Y: f.X.Differentiate(v)}
}
