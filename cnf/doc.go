// Package cnf converts propositional formulas to Conjunctive Normal Form
// and inspects the resulting clauses for tautologies.
//
// Conversion runs three rewrite passes over a logic.Expr tree: ImpFree
// removes implications, NNF pushes negations down to the variables, and a
// distribution step rewrites disjunctions over conjunctions so that the
// result is a conjunction of clauses, each clause a disjunction of
// literals. Distribution can blow up exponentially in the size of the
// input, so Convert takes a node budget and fails with a *TooLargeError
// instead of exhausting memory.
//
// A clause is tautological when it contains both a variable and its
// negation, which makes it true under every assignment. Analyze counts
// such clauses; a formula is reported valid when every one of its clauses
// is tautological. This is a purely syntactic, per-clause check, not a
// satisfiability decision procedure.
package cnf
