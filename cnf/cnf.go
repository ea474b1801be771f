package cnf

import (
	"fmt"

	"github.com/taulab/gophercnf/logic"
)

// DefaultBudget is the number of nodes the distribution pass may allocate
// when Convert is called with a zero budget.
const DefaultBudget = 1 << 20

// A TooLargeError reports a distribution pass that exceeded its node
// budget. CNF conversion is exponential in the worst case; callers
// processing many formulas should skip the offending one and continue.
type TooLargeError struct {
	Budget int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("CNF distribution exceeded budget of %d nodes", e.Budget)
}

// ImpFree returns an equivalent formula without implications, rewriting
// every (l>r) as ((~l)+r). The result shares no nodes with e.
func ImpFree(e logic.Expr) logic.Expr {
	switch e := e.(type) {
	case logic.Not:
		return logic.Not{X: ImpFree(e.X)}
	case logic.And:
		return logic.And{L: ImpFree(e.L), R: ImpFree(e.R)}
	case logic.Or:
		return logic.Or{L: ImpFree(e.L), R: ImpFree(e.R)}
	case logic.Implies:
		return logic.Or{L: logic.Not{X: ImpFree(e.L)}, R: ImpFree(e.R)}
	default:
		return e.Clone()
	}
}

// NNF returns an equivalent formula in negation normal form, where
// negation appears only directly above variables. Negated conjunctions
// and disjunctions are rewritten with De Morgan's laws and double
// negations are eliminated. Implications are removed first if any remain.
// The result shares no nodes with e.
func NNF(e logic.Expr) logic.Expr {
	switch e := e.(type) {
	case logic.Not:
		switch x := e.X.(type) {
		case logic.Var:
			return logic.Not{X: x}
		case logic.Not:
			return NNF(x.X)
		case logic.And:
			return logic.Or{L: NNF(logic.Not{X: x.L}), R: NNF(logic.Not{X: x.R})}
		case logic.Or:
			return logic.And{L: NNF(logic.Not{X: x.L}), R: NNF(logic.Not{X: x.R})}
		case logic.Implies:
			return NNF(logic.Not{X: ImpFree(x)})
		default:
			panic(fmt.Sprintf("invalid expression type %T", x))
		}
	case logic.And:
		return logic.And{L: NNF(e.L), R: NNF(e.R)}
	case logic.Or:
		return logic.Or{L: NNF(e.L), R: NNF(e.R)}
	case logic.Implies:
		return NNF(ImpFree(e))
	default:
		return e.Clone()
	}
}

// Convert rewrites e into conjunctive normal form: implications are
// eliminated, negations pushed to the variables, then disjunctions are
// distributed over conjunctions. budget caps the number of nodes the
// distribution pass may allocate; 0 means DefaultBudget and a negative
// value means no limit. When the cap is hit, Convert fails with a
// *TooLargeError. The input tree is never modified.
func Convert(e logic.Expr, budget int) (logic.Expr, error) {
	if budget == 0 {
		budget = DefaultBudget
	}
	d := &distributor{budget: budget, remaining: budget}
	res, err := d.cnf(NNF(ImpFree(e)))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// distributor tracks the node budget across the distribution recursion.
type distributor struct {
	budget    int // the configured cap; negative means unlimited
	remaining int
}

func (d *distributor) alloc() error {
	if d.budget < 0 {
		return nil
	}
	if d.remaining == 0 {
		return &TooLargeError{Budget: d.budget}
	}
	d.remaining--
	return nil
}

// cnf rewrites an NNF formula so that no disjunction has a conjunction
// beneath it: conjunctions are kept in place, and both operands of a
// disjunction are converted before being distributed over one another.
func (d *distributor) cnf(e logic.Expr) (logic.Expr, error) {
	switch e := e.(type) {
	case logic.And:
		l, err := d.cnf(e.L)
		if err != nil {
			return nil, err
		}
		r, err := d.cnf(e.R)
		if err != nil {
			return nil, err
		}
		if err := d.alloc(); err != nil {
			return nil, err
		}
		return logic.And{L: l, R: r}, nil
	case logic.Or:
		l, err := d.cnf(e.L)
		if err != nil {
			return nil, err
		}
		r, err := d.cnf(e.R)
		if err != nil {
			return nil, err
		}
		return d.distribute(l, r)
	default:
		return e, nil // a literal
	}
}

// distribute forms the disjunction of two CNF subtrees, splitting over
// conjunctions: (a*b)+c becomes (a+c)*(b+c) and symmetrically. A subtree
// that ends up under two parents is cloned, never shared.
func (d *distributor) distribute(a, b logic.Expr) (logic.Expr, error) {
	if l, ok := a.(logic.And); ok {
		left, err := d.distribute(l.L, b.Clone())
		if err != nil {
			return nil, err
		}
		right, err := d.distribute(l.R, b)
		if err != nil {
			return nil, err
		}
		if err := d.alloc(); err != nil {
			return nil, err
		}
		return logic.And{L: left, R: right}, nil
	}
	if r, ok := b.(logic.And); ok {
		left, err := d.distribute(a.Clone(), r.L)
		if err != nil {
			return nil, err
		}
		right, err := d.distribute(a, r.R)
		if err != nil {
			return nil, err
		}
		if err := d.alloc(); err != nil {
			return nil, err
		}
		return logic.And{L: left, R: right}, nil
	}
	if err := d.alloc(); err != nil {
		return nil, err
	}
	return logic.Or{L: a, R: b}, nil
}

// IsCNF reports whether e satisfies the structural CNF invariant: no
// implication remains, negation appears only on variables, and walking
// down from any disjunction never meets a conjunction.
func IsCNF(e logic.Expr) bool {
	switch e := e.(type) {
	case logic.And:
		return IsCNF(e.L) && IsCNF(e.R)
	default:
		return isClause(e)
	}
}

func isClause(e logic.Expr) bool {
	switch e := e.(type) {
	case logic.Or:
		return isClause(e.L) && isClause(e.R)
	default:
		return isLiteral(e)
	}
}

func isLiteral(e logic.Expr) bool {
	switch e := e.(type) {
	case logic.Var:
		return true
	case logic.Not:
		_, ok := e.X.(logic.Var)
		return ok
	default:
		return false
	}
}
