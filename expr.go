// Package symdiff provides a small symbolic expression kernel for Go.
//
// Expressions are immutable trees built from numeric literals, named
// variables, the binary operators + - * / ^ and the unary functions
// sin, cos and exp. Three transformations work over them:
//   - Substitute binds variables to numeric values
//   - Simplify folds constants and removes algebraic identities
//   - Differentiate builds the symbolic derivative
//
// Evaluate and Diff compose them the usual way: substitute-then-simplify and
// differentiate-then-simplify. Every transformation returns a new tree and
// never edits its input, so trees may be shared freely between goroutines.
package symdiff

// ============================================================
// Core Interface
// ============================================================

// Expr is a node of an expression tree.
//
// The set of implementations is closed: Value, Variable, Plus, Minus,
// Multiply, Divide, Pow, Sin, Cos and Exp. Each transformation is a method
// on the interface, so a variant missing one of them does not compile.
type Expr interface {
	Substitute(env Env) Expr
	Simplify() (Expr, error)
	Differentiate(v Variable) Expr
	String() string
	LaTeX() string
	Equal(other Expr) bool
	Children() []Expr
	exprType() string
	precedence() precedence
	toJSON() map[string]interface{}
}

// ============================================================
// Leaves
// ============================================================

// Value is a numeric literal.
type Value struct{ V float64 }

// N returns the literal v.
func N(v float64) Value { return Value{V: v} }

func (n Value) Equal(other Expr) bool { o, ok := other.(Value); return ok && n.V == o.V }
func (n Value) Children() []Expr      { return nil }
func (n Value) exprType() string      { return "value" }

// Variable is a named leaf. Two variables are the same iff their names are.
type Variable struct{ Name string }

// S returns the variable called name.
func S(name string) Variable { return Variable{Name: name} }

func (s Variable) Equal(other Expr) bool { o, ok := other.(Variable); return ok && s.Name == o.Name }
func (s Variable) Children() []Expr      { return nil }
func (s Variable) exprType() string      { return "variable" }

// ============================================================
// Binary operators
// ============================================================

// Plus is X + Y.
type Plus struct{ X, Y Expr }

// Minus is X - Y.
type Minus struct{ X, Y Expr }

// Multiply is X * Y.
type Multiply struct{ X, Y Expr }

// Divide is X / Y.
type Divide struct{ X, Y Expr }

// Pow is X raised to Y.
type Pow struct{ X, Y Expr }

// The *Of constructors build nodes as given. Unlike most symbolic packages
// they never simplify; call Simplify for that.

func AddOf(x, y Expr) Plus     { return Plus{X: x, Y: y} }
func SubOf(x, y Expr) Minus    { return Minus{X: x, Y: y} }
func MulOf(x, y Expr) Multiply { return Multiply{X: x, Y: y} }
func DivOf(x, y Expr) Divide   { return Divide{X: x, Y: y} }
func PowOf(x, y Expr) Pow      { return Pow{X: x, Y: y} }

func (p Plus) Equal(other Expr) bool {
	o, ok := other.(Plus)
	return ok && p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

func (m Minus) Equal(other Expr) bool {
	o, ok := other.(Minus)
	return ok && m.X.Equal(o.X) && m.Y.Equal(o.Y)
}

func (m Multiply) Equal(other Expr) bool {
	o, ok := other.(Multiply)
	return ok && m.X.Equal(o.X) && m.Y.Equal(o.Y)
}

func (d Divide) Equal(other Expr) bool {
	o, ok := other.(Divide)
	return ok && d.X.Equal(o.X) && d.Y.Equal(o.Y)
}

func (p Pow) Equal(other Expr) bool {
	o, ok := other.(Pow)
	return ok && p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// Children returns the operands in order.
func (p Plus) Children() []Expr     { return []Expr{p.X, p.Y} }
func (m Minus) Children() []Expr    { return []Expr{m.X, m.Y} }
func (m Multiply) Children() []Expr { return []Expr{m.X, m.Y} }
func (d Divide) Children() []Expr   { return []Expr{d.X, d.Y} }
func (p Pow) Children() []Expr      { return []Expr{p.X, p.Y} }

func (p Plus) exprType() string     { return "plus" }
func (m Minus) exprType() string    { return "minus" }
func (m Multiply) exprType() string { return "multiply" }
func (d Divide) exprType() string   { return "divide" }
func (p Pow) exprType() string      { return "pow" }

// ============================================================
// Unary functions
// ============================================================

// Sin is sin(X).
type Sin struct{ X Expr }

// Cos is cos(X).
type Cos struct{ X Expr }

// Exp is e raised to X.
type Exp struct{ X Expr }

func SinOf(x Expr) Sin { return Sin{X: x} }
func CosOf(x Expr) Cos { return Cos{X: x} }
func ExpOf(x Expr) Exp { return Exp{X: x} }

func (f Sin) Equal(other Expr) bool { o, ok := other.(Sin); return ok && f.X.Equal(o.X) }
func (f Cos) Equal(other Expr) bool { o, ok := other.(Cos); return ok && f.X.Equal(o.X) }
func (f Exp) Equal(other Expr) bool { o, ok := other.(Exp); return ok && f.X.Equal(o.X) }

func (f Sin) Children() []Expr { return []Expr{f.X} }
func (f Cos) Children() []Expr { return []Expr{f.X} }
func (f Exp) Children() []Expr { return []Expr{f.X} }

func (f Sin) exprType() string { return "sin" }
func (f Cos) exprType() string { return "cos" }
func (f Exp) exprType() string { return "exp" }

// ============================================================
// Helpers
// ============================================================

// Equal reports whether a and b have the same shape, leaf values and
// variable names. Two nil expressions are equal.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// isNumEqual reports whether e is the literal f. Comparison is exact.
func isNumEqual(e Expr, f float64) bool {
	n, ok := e.(Value)
	return ok && n.V == f
}

// FreeVariables returns the names of all variables occurring in e.
func FreeVariables(e Expr) map[string]struct{} {
	out := map[string]struct{}{}
	collectVariables(e, out)
	return out
}

func collectVariables(e Expr, out map[string]struct{}) {
	if v, ok := e.(Variable); ok {
		out[v.Name] = struct{}{}
	}
	for _, c := range e.Children() {
		collectVariables(c, out)
	}
}
