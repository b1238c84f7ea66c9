package symdiff

import "math"

// ============================================================
// Simplification
// ============================================================
//
// Simplify runs a single bottom-up pass. Children are simplified first, then
// the node's rule table is consulted once; the first matching rule wins and
// the result is not looked at again. Identity checks compare against 0 and 1
// exactly.

// Simplify folds constant sub-expressions and removes additive and
// multiplicative identities. It fails with an *ArithmeticError wrapping
// ErrDivisionByZero when a denominator simplifies to the literal 0.
func Simplify(e Expr) (Expr, error) { return e.Simplify() }

func (n Value) Simplify() (Expr, error)    { return n, nil }
func (s Variable) Simplify() (Expr, error) { return s, nil }

func simplifyPair(x, y Expr) (Expr, Expr, error) {
	sx, err := x.Simplify()
	if err != nil {
		return nil, nil, err
	}
	sy, err := y.Simplify()
	if err != nil {
		return nil, nil, err
	}
	return sx, sy, nil
}

func bothValues(x, y Expr) (Value, Value, bool) {
	a, ok := x.(Value)
	if !ok {
		return Value{}, Value{}, false
	}
	b, ok := y.(Value)
	if !ok {
		return Value{}, Value{}, false
	}
	return a, b, true
}

func (p Plus) Simplify() (Expr, error) {
	x, y, err := simplifyPair(p.X, p.Y)
	if err != nil {
		return nil, err
	}
	if a, b, ok := bothValues(x, y); ok {
		return N(a.V + b.V), nil
	}
	switch {
	case isNumEqual(x, 0):
		return y, nil
	case isNumEqual(y, 0):
		return x, nil
	}
	return Plus{X: x, Y: y}, nil
}

func (m Minus) Simplify() (Expr, error) {
	x, y, err := simplifyPair(m.X, m.Y)
	if err != nil {
		return nil, err
	}
	if a, b, ok := bothValues(x, y); ok {
		return N(a.V - b.V), nil
	}
	if isNumEqual(y, 0) {
		return x, nil
	}
	return Minus{X: x, Y: y}, nil
}

func (m Multiply) Simplify() (Expr, error) {
	x, y, err := simplifyPair(m.X, m.Y)
	if err != nil {
		return nil, err
	}
	if a, b, ok := bothValues(x, y); ok {
		return N(a.V * b.V), nil
	}
	switch {
	case isNumEqual(x, 0) || isNumEqual(y, 0):
		return N(0), nil
	case isNumEqual(x, 1):
		return y, nil
	case isNumEqual(y, 1):
		return x, nil
	}
	return Multiply{X: x, Y: y}, nil
}

func (d Divide) Simplify() (Expr, error) {
	x, y, err := simplifyPair(d.X, d.Y)
	if err != nil {
		return nil, err
	}
	// Two literals fold with IEEE semantics, so 1/0 is +Inf rather than
	// an error.
	if a, b, ok := bothValues(x, y); ok {
		return N(a.V / b.V), nil
	}
	switch {
	case isNumEqual(x, 0):
		return N(0), nil
	case isNumEqual(y, 0):
		return nil, divisionByZero(Divide{X: x, Y: y})
	case isNumEqual(y, 1):
		return x, nil
	}
	return Divide{X: x, Y: y}, nil
}

func (p Pow) Simplify() (Expr, error) {
	x, y, err := simplifyPair(p.X, p.Y)
	if err != nil {
		return nil, err
	}
	if a, b, ok := bothValues(x, y); ok {
		return N(math.Pow(a.V, b.V)), nil
	}
	switch {
	case isNumEqual(x, 0) || isNumEqual(x, 1):
		return x, nil
	case isNumEqual(y, 0):
		return N(1), nil
	case isNumEqual(y, 1):
		return x, nil
	}
	return Pow{X: x, Y: y}, nil
}

func (f Sin) Simplify() (Expr, error) {
	x, err := f.X.Simplify()
	if err != nil {
		return nil, err
	}
	if v, ok := x.(Value); ok {
		return N(math.Sin(v.V)), nil
	}
	return Sin{X: x}, nil
}

func (f Cos) Simplify() (Expr, error) {
	x, err := f.X.Simplify()
	if err != nil {
		return nil, err
	}
	if v, ok := x.(Value); ok {
		return N(math.Cos(v.V)), nil
	}
	return Cos{X: x}, nil
}

func (f Exp) Simplify() (Expr, error) {
	x, err := f.X.Simplify()
	if err != nil {
		return nil, err
	}
	if v, ok := x.(Value); ok {
		return N(math.Exp(v.V)), nil
	}
	return Exp{X: x}, nil
}
