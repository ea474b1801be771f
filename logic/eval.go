package logic

import "fmt"

// An Assignment binds variable names to truth values.
type Assignment map[rune]bool

// An UnboundVarError reports an evaluation over an assignment that lacks a
// binding for one of the formula's variables.
type UnboundVarError struct {
	Name rune
}

func (e *UnboundVarError) Error() string {
	return fmt.Sprintf("assignment lacks binding for variable %q", e.Name)
}

// Eval computes the truth value of e under the given assignment:
// or is disjunction, and is conjunction, an implication (l>r) is (~l+r),
// and a variable takes its assigned value. It fails with an
// *UnboundVarError if a variable of e is absent from a.
func Eval(e Expr, a Assignment) (bool, error) {
	switch e := e.(type) {
	case Var:
		v, ok := a[e.Name]
		if !ok {
			return false, &UnboundVarError{Name: e.Name}
		}
		return v, nil
	case Not:
		v, err := Eval(e.X, a)
		if err != nil {
			return false, err
		}
		return !v, nil
	case And:
		l, err := Eval(e.L, a)
		if err != nil {
			return false, err
		}
		r, err := Eval(e.R, a)
		return l && r, err
	case Or:
		l, err := Eval(e.L, a)
		if err != nil {
			return false, err
		}
		r, err := Eval(e.R, a)
		return l || r, err
	case Implies:
		l, err := Eval(e.L, a)
		if err != nil {
			return false, err
		}
		r, err := Eval(e.R, a)
		return !l || r, err
	default:
		panic(fmt.Sprintf("invalid expression type %T", e))
	}
}
