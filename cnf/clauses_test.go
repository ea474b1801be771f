package cnf

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/taulab/gophercnf/logic"
)

func TestClauses(t *testing.T) {
	e := mustParse(t, "((p+(~p))*q)")
	clauses, err := Clauses(e)
	if err != nil {
		t.Fatalf("could not extract clauses: %v", err)
	}
	expected := []Clause{
		{{Var: 'p'}, {Var: 'p', Neg: true}},
		{{Var: 'q'}},
	}
	if diff := cmp.Diff(expected, clauses); diff != "" {
		t.Errorf("unexpected clauses (-want +got):\n%s", diff)
	}
}

func TestClausesRejectsNonCNF(t *testing.T) {
	for _, formula := range []string{"(p>q)", "((p*q)+r)", "(~(p+q))"} {
		if _, err := Clauses(mustParse(t, formula)); err == nil {
			t.Errorf("expected an error for %q, got none", formula)
		}
	}
}

func TestClauseTautological(t *testing.T) {
	tests := []struct {
		clause   Clause
		expected bool
	}{
		{Clause{{Var: 'p'}, {Var: 'p', Neg: true}}, true},
		{Clause{{Var: 'p'}, {Var: 'q', Neg: true}}, false},
		{Clause{{Var: 'p'}}, false},
		{Clause{{Var: 'p', Neg: true}, {Var: 'q'}, {Var: 'p'}}, true},
	}
	for _, tt := range tests {
		if got := tt.clause.Tautological(); got != tt.expected {
			t.Errorf("Tautological(%v) = %t, expected %t", tt.clause, got, tt.expected)
		}
	}
}

func TestAnalyze(t *testing.T) {
	e := mustParse(t, "((p+(~p))*q)")
	stats, err := Analyze(e)
	if err != nil {
		t.Fatalf("could not analyze formula: %v", err)
	}
	if stats.Clauses != 2 {
		t.Errorf("expected 2 clauses, got %d", stats.Clauses)
	}
	if stats.Tautological != 1 {
		t.Errorf("expected 1 tautological clause, got %d", stats.Tautological)
	}
	if stats.NonTautological() != 1 {
		t.Errorf("expected 1 non-tautological clause, got %d", stats.NonTautological())
	}
	if stats.Valid() {
		t.Errorf("formula was reported valid")
	}
}

func TestAnalyzeValid(t *testing.T) {
	// Every clause holds a variable and its negation.
	e := mustParse(t, "((p+(~p))*(q+(~q)))")
	stats, err := Analyze(e)
	if err != nil {
		t.Fatalf("could not analyze formula: %v", err)
	}
	if !stats.Valid() {
		t.Errorf("expected the formula to be valid, stats: %+v", stats)
	}
}

// Full pipeline: an implication whose CNF form is all tautologies.
func TestConvertThenAnalyze(t *testing.T) {
	e := mustParse(t, "((p*q)>p)")
	converted, err := Convert(e, 0)
	if err != nil {
		t.Fatalf("could not convert formula: %v", err)
	}
	stats, err := Analyze(converted)
	if err != nil {
		t.Fatalf("could not analyze formula: %v", err)
	}
	if !stats.Valid() {
		t.Errorf("expected ((p*q)>p) to be valid after conversion, stats: %+v", stats)
	}
}

func ExampleAnalyze() {
	e, err := logic.ParseInfix("((p+(~p))*q)")
	if err != nil {
		fmt.Println(err)
		return
	}
	stats, err := Analyze(e)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("valid: %t, tautological: %d, other: %d\n",
		stats.Valid(), stats.Tautological, stats.NonTautological())
	// Output: valid: false, tautological: 1, other: 1
}
