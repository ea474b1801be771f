package logic

import (
	"errors"
	"fmt"
	"testing"
)

// To each infix formula, associate its expected prefix form.
var infixToPrefix = map[string]string{
	"p":                "p",
	"(p>q)":            ">pq",
	"(~(p>q))":         "~>pq",
	"((p+q)*(r>s))":    "*+pq>rs",
	"(~p)":             "~p",
	"((~p)+q)":         "+~pq",
	"((a*b)+(c*d))":    "+*ab*cd",
	"((p+(~p))*q)":     "*+p~pq",
	"(((a+b)>c)*(~d))": "*>+abc~d",
}

func TestInfixToPrefix(t *testing.T) {
	for infix, expected := range infixToPrefix {
		got, err := InfixToPrefix(infix)
		if err != nil {
			t.Errorf("could not convert %q: %v", infix, err)
		} else if got != expected {
			t.Errorf("for %q, expected prefix %q, got %q", infix, expected, got)
		}
	}
}

func TestInfixToPrefixErrors(t *testing.T) {
	for _, infix := range []string{"((p+q)", "(p+q))", "(p?q)", "(p q)", ")p+q("} {
		if _, err := InfixToPrefix(infix); err == nil {
			t.Errorf("expected an error for %q, got none", infix)
		} else {
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("for %q, expected a *ParseError, got %T", infix, err)
			}
		}
	}
}

func TestParsePrefix(t *testing.T) {
	for infix, prefix := range infixToPrefix {
		e, err := ParsePrefix(prefix)
		if err != nil {
			t.Errorf("could not parse %q: %v", prefix, err)
		} else if e.String() != infix {
			t.Errorf("for prefix %q, expected infix %q, got %q", prefix, infix, e)
		}
	}
}

func TestParsePrefixErrors(t *testing.T) {
	for _, prefix := range []string{"", ">p", "~", ">pqr", "?", "+p?"} {
		if _, err := ParsePrefix(prefix); err == nil {
			t.Errorf("expected an error for %q, got none", prefix)
		}
	}
}

// Parsing a fully parenthesized formula and printing it back must
// reproduce the same operator and operand nesting.
func TestRoundTrip(t *testing.T) {
	for infix := range infixToPrefix {
		e, err := ParseInfix(infix)
		if err != nil {
			t.Errorf("could not parse %q: %v", infix, err)
		} else if e.String() != infix {
			t.Errorf("round trip of %q produced %q", infix, e)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	e, err := ParseInfix("((p+(~p))*q)")
	if err != nil {
		t.Fatalf("could not parse formula: %v", err)
	}
	c := e.Clone()
	if c.String() != e.String() {
		t.Errorf("clone %q differs from original %q", c, e)
	}
}

func ExampleInfixToPrefix() {
	prefix, err := InfixToPrefix("(p>q)")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(prefix)
	// Output: >pq
}
