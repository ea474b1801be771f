package logic

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTruthTableOrder(t *testing.T) {
	e, err := ParseInfix("(p*q)")
	if err != nil {
		t.Fatalf("could not parse formula: %v", err)
	}
	table := TruthTable(e)
	if table.Len() != 4 {
		t.Fatalf("expected 4 rows for 2 variables, got %d", table.Len())
	}
	expected := []Row{
		{Bits: "00", Value: false},
		{Bits: "01", Value: false},
		{Bits: "10", Value: false},
		{Bits: "11", Value: true},
	}
	if diff := cmp.Diff(expected, table.All()); diff != "" {
		t.Errorf("unexpected rows (-want +got):\n%s", diff)
	}
}

// Each row's leftmost bit drives the first variable in sorted order.
func TestTruthTableBitOrder(t *testing.T) {
	e, err := ParseInfix("(p*(~q))")
	if err != nil {
		t.Fatalf("could not parse formula: %v", err)
	}
	rows := TruthTable(e).All()
	// p=1, q=0 is row "10".
	if !rows[2].Value {
		t.Errorf("expected row %q to be true", rows[2].Bits)
	}
	for i, r := range rows {
		if i != 2 && r.Value {
			t.Errorf("expected row %q to be false", r.Bits)
		}
	}
}

// Enumeration is restartable: a table can be walked any number of times.
func TestTruthTableRestartable(t *testing.T) {
	e, err := ParseInfix("((p>q)+r)")
	if err != nil {
		t.Fatalf("could not parse formula: %v", err)
	}
	table := TruthTable(e)
	if table.Len() != 8 {
		t.Fatalf("expected 8 rows for 3 variables, got %d", table.Len())
	}
	first := table.All()
	second := table.All()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two enumerations differ (-first +second):\n%s", diff)
	}
}

func TestTruthTableEachStops(t *testing.T) {
	e, err := ParseInfix("(p+q)")
	if err != nil {
		t.Fatalf("could not parse formula: %v", err)
	}
	count := 0
	stop := fmt.Errorf("stop")
	err = TruthTable(e).Each(func(Row) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Errorf("expected enumeration to report the callback error, got %v", err)
	}
	if count != 2 {
		t.Errorf("expected enumeration to stop after 2 rows, got %d", count)
	}
}

func ExampleTable_Each() {
	e, err := ParseInfix("(p>q)")
	if err != nil {
		fmt.Println(err)
		return
	}
	TruthTable(e).Each(func(r Row) error {
		fmt.Printf("%s %t\n", r.Bits, r.Value)
		return nil
	})
	// Output:
	// 00 true
	// 01 true
	// 10 false
	// 11 true
}
