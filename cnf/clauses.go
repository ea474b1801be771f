package cnf

import (
	"fmt"
	"strings"

	"github.com/taulab/gophercnf/logic"
)

// A Literal is a variable or its negation.
type Literal struct {
	Var rune
	Neg bool
}

func (l Literal) String() string {
	if l.Neg {
		return "~" + string(l.Var)
	}
	return string(l.Var)
}

// A Clause is a disjunction of literals.
type Clause []Literal

func (c Clause) String() string {
	strs := make([]string, len(c))
	for i, l := range c {
		strs[i] = l.String()
	}
	return strings.Join(strs, "+")
}

// Tautological reports whether the clause contains both a variable and
// its negation, making it true under every assignment.
func (c Clause) Tautological() bool {
	pos := make(map[rune]bool)
	neg := make(map[rune]bool)
	for _, l := range c {
		if l.Neg {
			neg[l.Var] = true
		} else {
			pos[l.Var] = true
		}
	}
	for v := range pos {
		if neg[v] {
			return true
		}
	}
	return false
}

// Clauses extracts the clause set of a CNF-shaped tree by walking its
// conjunction boundaries: each maximal non-And subtree is one clause,
// read as the disjunction of its literals. It fails if e is not in CNF.
func Clauses(e logic.Expr) ([]Clause, error) {
	var clauses []Clause
	if err := splitAnd(e, &clauses); err != nil {
		return nil, err
	}
	return clauses, nil
}

func splitAnd(e logic.Expr, clauses *[]Clause) error {
	if a, ok := e.(logic.And); ok {
		if err := splitAnd(a.L, clauses); err != nil {
			return err
		}
		return splitAnd(a.R, clauses)
	}
	var c Clause
	if err := splitOr(e, &c); err != nil {
		return err
	}
	*clauses = append(*clauses, c)
	return nil
}

func splitOr(e logic.Expr, c *Clause) error {
	switch e := e.(type) {
	case logic.Or:
		if err := splitOr(e.L, c); err != nil {
			return err
		}
		return splitOr(e.R, c)
	case logic.Var:
		*c = append(*c, Literal{Var: e.Name})
		return nil
	case logic.Not:
		v, ok := e.X.(logic.Var)
		if !ok {
			return fmt.Errorf("formula is not in CNF: negation of %q inside a clause", e.X)
		}
		*c = append(*c, Literal{Var: v.Name, Neg: true})
		return nil
	default:
		return fmt.Errorf("formula is not in CNF: %q inside a clause", e)
	}
}

// Stats aggregates the clause-level validity analysis of a CNF formula.
type Stats struct {
	Clauses      int // total number of clauses
	Tautological int // clauses containing both a literal and its negation
}

// NonTautological returns the number of clauses that are not tautologies.
func (s Stats) NonTautological() int {
	return s.Clauses - s.Tautological
}

// Valid reports whether every clause is tautological, which makes the
// whole conjunction true under every assignment.
func (s Stats) Valid() bool {
	return s.Tautological == s.Clauses
}

// Analyze extracts the clauses of a CNF-shaped tree and counts the
// tautological ones.
func Analyze(e logic.Expr) (Stats, error) {
	clauses, err := Clauses(e)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Clauses: len(clauses)}
	for _, c := range clauses {
		if c.Tautological() {
			stats.Tautological++
		}
	}
	return stats, nil
}
