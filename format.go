package symdiff

import (
	"math"
	"strconv"
)

// ============================================================
// Printing
// ============================================================

// precedence describes how tightly an expression binds when printed.
type precedence int

const (
	addPrecedence precedence = iota
	mulPrecedence
	negPrecedence
	powPrecedence
	atomicPrecedence
)

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// String renders e in infix form.
func String(e Expr) string { return e.String() }

// LaTeX renders e as a LaTeX math fragment.
func LaTeX(e Expr) string { return e.LaTeX() }

func (n Value) String() string { return formatFloat(n.V) }

func (n Value) LaTeX() string {
	switch {
	case math.IsInf(n.V, 1):
		return "\\infty"
	case math.IsInf(n.V, -1):
		return "-\\infty"
	case math.IsNaN(n.V):
		return "\\mathrm{NaN}"
	}
	return formatFloat(n.V)
}

func (n Value) precedence() precedence {
	if math.Signbit(n.V) && !math.IsNaN(n.V) {
		return negPrecedence
	}
	return atomicPrecedence
}

func (s Variable) String() string         { return s.Name }
func (s Variable) LaTeX() string          { return s.Name }
func (s Variable) precedence() precedence { return atomicPrecedence }

func (p Plus) precedence() precedence     { return addPrecedence }
func (m Minus) precedence() precedence    { return addPrecedence }
func (m Multiply) precedence() precedence { return mulPrecedence }
func (d Divide) precedence() precedence   { return mulPrecedence }
func (p Pow) precedence() precedence      { return powPrecedence }
func (f Sin) precedence() precedence      { return atomicPrecedence }
func (f Cos) precedence() precedence      { return atomicPrecedence }
func (f Exp) precedence() precedence      { return atomicPrecedence }

// operands renders x and y for a binary node of precedence prec,
// parenthesizing where the printed form would otherwise regroup.
// +, -, * and / group to the left; ^ groups to the right.
func operands(x, y Expr, prec precedence, render func(Expr) string, wrap func(string) string) (string, string) {
	left, right := render(x), render(y)
	if prec == powPrecedence {
		if x.precedence() <= prec {
			left = wrap(left)
		}
		if y.precedence() < prec {
			right = wrap(right)
		}
		return left, right
	}
	if x.precedence() < prec {
		left = wrap(left)
	}
	if y.precedence() <= prec {
		right = wrap(right)
	}
	return left, right
}

func str(e Expr) string   { return e.String() }
func latex(e Expr) string { return e.LaTeX() }

func paren(s string) string      { return "(" + s + ")" }
func latexParen(s string) string { return "\\left(" + s + "\\right)" }

func (p Plus) String() string {
	l, r := operands(p.X, p.Y, addPrecedence, str, paren)
	return l + " + " + r
}

func (m Minus) String() string {
	l, r := operands(m.X, m.Y, addPrecedence, str, paren)
	return l + " - " + r
}

func (m Multiply) String() string {
	l, r := operands(m.X, m.Y, mulPrecedence, str, paren)
	return l + "*" + r
}

func (d Divide) String() string {
	l, r := operands(d.X, d.Y, mulPrecedence, str, paren)
	return l + "/" + r
}

func (p Pow) String() string {
	l, r := operands(p.X, p.Y, powPrecedence, str, paren)
	return l + "^" + r
}

func (f Sin) String() string { return "sin(" + f.X.String() + ")" }
func (f Cos) String() string { return "cos(" + f.X.String() + ")" }
func (f Exp) String() string { return "exp(" + f.X.String() + ")" }

func (p Plus) LaTeX() string {
	l, r := operands(p.X, p.Y, addPrecedence, latex, latexParen)
	return l + " + " + r
}

func (m Minus) LaTeX() string {
	l, r := operands(m.X, m.Y, addPrecedence, latex, latexParen)
	return l + " - " + r
}

func (m Multiply) LaTeX() string {
	l, r := operands(m.X, m.Y, mulPrecedence, latex, latexParen)
	return l + " \\cdot " + r
}

// Fraction bars group on their own.
func (d Divide) LaTeX() string {
	return "\\frac{" + d.X.LaTeX() + "}{" + d.Y.LaTeX() + "}"
}

// Only the base may need parentheses; the exponent sits in braces.
func (p Pow) LaTeX() string {
	base := p.X.LaTeX()
	if p.X.precedence() <= powPrecedence {
		base = latexParen(base)
	}
	return base + "^{" + p.Y.LaTeX() + "}"
}

func (f Sin) LaTeX() string { return "\\sin\\left(" + f.X.LaTeX() + "\\right)" }
func (f Cos) LaTeX() string { return "\\cos\\left(" + f.X.LaTeX() + "\\right)" }
func (f Exp) LaTeX() string { return "\\exp\\left(" + f.X.LaTeX() + "\\right)" }
