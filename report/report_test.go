package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/taulab/gophercnf/batch"
	"github.com/taulab/gophercnf/dimacs"
)

func TestWriteHTML(t *testing.T) {
	results := []batch.Result{
		{
			Path:    "bench/valid.cnf",
			Stats:   dimacs.Stats{Vars: 2, Clauses: 2, Tautological: 2},
			Elapsed: 3 * time.Millisecond,
		},
		{
			Path:    "bench/invalid.cnf",
			Stats:   dimacs.Stats{Vars: 2, Clauses: 2, Tautological: 1},
			Elapsed: time.Millisecond,
		},
		{
			Path: "bench/broken.cnf",
			Err:  errors.New("clause line lacks its 0 terminator"),
		},
	}
	var b strings.Builder
	if err := WriteHTML(&b, results); err != nil {
		t.Fatalf("could not write report: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"bench/valid.cnf",
		"bench/invalid.cnf",
		"bench/broken.cnf",
		">valid<",
		">not valid<",
		"clause line lacks its 0 terminator",
		"3 file(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report lacks %q", want)
		}
	}
}

func TestWriteHTMLEmpty(t *testing.T) {
	var b strings.Builder
	if err := WriteHTML(&b, nil); err != nil {
		t.Fatalf("could not write report: %v", err)
	}
	if !strings.Contains(b.String(), "0 file(s)") {
		t.Errorf("empty report does not mention 0 files")
	}
}
