// Package logic provides expression trees for propositional formulas.
//
// Formulas are written in a fully parenthesized infix syntax over four
// connectives and single-character variables:
//
//   - '+' for a disjunction ("or"),
//   - '*' for a conjunction ("and"),
//   - '>' for an implication,
//   - '~' for a negation (unary, prefix).
//
// For instance, "((p+q)*(r>s))". Because every binary application carries
// its own parentheses, no precedence resolution is performed: the input is
// first rewritten to prefix (Polish) notation with InfixToPrefix, then
// parsed into an Expr tree with ParsePrefix.
//
// Trees are strictly tree-shaped: no node is ever shared between two
// parents. Code that needs the same subtree in two places must Clone it.
// Evaluation is pure: Eval takes the tree and an explicit Assignment and
// returns a value, so the same tree can be evaluated any number of times,
// including concurrently.
package logic
