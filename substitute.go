package symdiff

// ============================================================
// Substitution
// ============================================================

// Substitute replaces every variable bound in env with its value. Unbound
// variables are left in place. Nothing is folded: 2+3 stays a Plus node.
func Substitute(e Expr, env Env) Expr { return e.Substitute(env) }

func (n Value) Substitute(Env) Expr { return n }

func (s Variable) Substitute(env Env) Expr {
	if v, ok := env.Lookup(s); ok {
		return v
	}
	return s
}

func (p Plus) Substitute(env Env) Expr {
	return Plus{X: p.X.Substitute(env), Y: p.Y.Substitute(env)}
}

func (m Minus) Substitute(env Env) Expr {
	return Minus{X: m.X.Substitute(env), Y: m.Y.Substitute(env)}
}

func (m Multiply) Substitute(env Env) Expr {
	return Multiply{X: m.X.Substitute(env), Y: m.Y.Substitute(env)}
}

func (d Divide) Substitute(env Env) Expr {
	return Divide{X: d.X.Substitute(env), Y: d.Y.Substitute(env)}
}

func (p Pow) Substitute(env Env) Expr {
	return Pow{X: p.X.Substitute(env), Y: p.Y.Substitute(env)}
}

func (f Sin) Substitute(env Env) Expr { return Sin{X: f.X.Substitute(env)} }
func (f Cos) Substitute(env Env) Expr { return Cos{X: f.X.Substitute(env)} }
func (f Exp) Substitute(env Env) Expr { return Exp{X: f.X.Substitute(env)} }
