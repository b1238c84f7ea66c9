package symdiff

import "fmt"

// ============================================================
// Composed operations
// ============================================================

// Evaluate substitutes env into e and simplifies the result once.
func Evaluate(e Expr, env Env) (Expr, error) {
	return Simplify(Substitute(e, env))
}

// Diff differentiates e with respect to v and simplifies the result once.
func Diff(e Expr, v Variable) (Expr, error) {
	return Simplify(Differentiate(e, v))
}

// Diff2 is the second derivative.
func Diff2(e Expr, v Variable) (Expr, error) { return DiffN(e, v, 2) }

// DiffN applies Diff n times. For n == 0 it returns Simplify(e).
func DiffN(e Expr, v Variable, n int) (Expr, error) {
	if n < 0 {
		return nil, fmt.Errorf("derivative order must be non-negative, got %d", n)
	}
	if n == 0 {
		return Simplify(e)
	}
	result := e
	for i := 0; i < n; i++ {
		var err error
		if result, err = Diff(result, v); err != nil {
			return nil, err
		}
	}
	return result, nil
}
