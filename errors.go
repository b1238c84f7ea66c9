package symdiff

import (
	"errors"
	"fmt"
)

// ErrorKind names the category of an ArithmeticError.
type ErrorKind string

const (
	KindDivisionByZero ErrorKind = "DivisionByZero"
)

// ErrDivisionByZero is matched by errors.Is for every division-by-zero
// failure returned from Simplify, Evaluate and Diff.
var ErrDivisionByZero = errors.New("division by zero")

// ArithmeticError reports a node that cannot be simplified.
type ArithmeticError struct {
	Kind ErrorKind
	// Expr is the offending node, with its children already simplified.
	Expr Expr
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Expr)
}

func (e *ArithmeticError) Unwrap() error {
	switch e.Kind {
	case KindDivisionByZero:
		return ErrDivisionByZero
	}
	return nil
}

func divisionByZero(e Expr) error {
	return &ArithmeticError{Kind: KindDivisionByZero, Expr: e}
}
