package logic

import (
	"sort"
	"strings"
)

// An Expr is a node of a propositional formula tree.
// The concrete types are Var, Not, And, Or and Implies.
type Expr interface {
	// String renders the subtree in fully parenthesized infix form.
	String() string
	// Clone returns a deep copy sharing no node with the receiver.
	Clone() Expr
}

// Var is a propositional variable with a single-character name.
type Var struct {
	Name rune
}

// Not negates its operand.
type Not struct {
	X Expr
}

// And is the conjunction of two operands.
type And struct {
	L, R Expr
}

// Or is the disjunction of two operands.
type Or struct {
	L, R Expr
}

// Implies states that its left operand implies its right one.
type Implies struct {
	L, R Expr
}

func (v Var) String() string     { return string(v.Name) }
func (n Not) String() string     { return "(~" + n.X.String() + ")" }
func (a And) String() string     { return "(" + a.L.String() + "*" + a.R.String() + ")" }
func (o Or) String() string      { return "(" + o.L.String() + "+" + o.R.String() + ")" }
func (i Implies) String() string { return "(" + i.L.String() + ">" + i.R.String() + ")" }

func (v Var) Clone() Expr     { return v }
func (n Not) Clone() Expr     { return Not{X: n.X.Clone()} }
func (a And) Clone() Expr     { return And{L: a.L.Clone(), R: a.R.Clone()} }
func (o Or) Clone() Expr      { return Or{L: o.L.Clone(), R: o.R.Clone()} }
func (i Implies) Clone() Expr { return Implies{L: i.L.Clone(), R: i.R.Clone()} }

// Vars returns the distinct variable names appearing in e, sorted.
func Vars(e Expr) []rune {
	seen := make(map[rune]bool)
	collectVars(e, seen)
	names := make([]rune, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func collectVars(e Expr, seen map[rune]bool) {
	switch e := e.(type) {
	case Var:
		seen[e.Name] = true
	case Not:
		collectVars(e.X, seen)
	case And:
		collectVars(e.L, seen)
		collectVars(e.R, seen)
	case Or:
		collectVars(e.L, seen)
		collectVars(e.R, seen)
	case Implies:
		collectVars(e.L, seen)
		collectVars(e.R, seen)
	}
}

// Height returns the height of the tree, counting nodes: a bare variable
// has height 1.
func Height(e Expr) int {
	switch e := e.(type) {
	case Not:
		return 1 + Height(e.X)
	case And:
		return 1 + max(Height(e.L), Height(e.R))
	case Or:
		return 1 + max(Height(e.L), Height(e.R))
	case Implies:
		return 1 + max(Height(e.L), Height(e.R))
	default:
		return 1
	}
}

func isVarName(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isBinaryOp(c rune) bool {
	return c == '+' || c == '*' || c == '>'
}

func quoteAround(s string, pos int) string {
	const width = 8
	lo, hi := pos-width, pos+width
	if lo < 0 {
		lo = 0
	}
	if hi > len(s) {
		hi = len(s)
	}
	var b strings.Builder
	if lo > 0 {
		b.WriteString("...")
	}
	b.WriteString(s[lo:hi])
	if hi < len(s) {
		b.WriteString("...")
	}
	return b.String()
}
