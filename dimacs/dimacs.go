// Package dimacs checks clause files in the DIMACS CNF format for
// tautological clauses.
//
// A DIMACS file starts with an arbitrary preamble, then a problem line
// "p cnf <vars> <clauses>", then one line per clause holding
// whitespace-separated nonzero signed integers terminated by a 0. A
// negative integer is the negation of the corresponding variable, so a
// clause is tautological as soon as it holds both n and -n.
//
// Unlike the tree-based analysis in package cnf, this check never builds
// an expression tree: it works directly on the integer literals, which
// makes it suitable for scanning large pre-existing benchmark files.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A FormatError reports a DIMACS input that does not follow the expected
// grammar: a malformed problem or clause line, a clause without its 0
// terminator, or a file ending before all announced clauses were read.
type FormatError struct {
	Path string // may be empty when checking a plain reader
	Line int    // 1-based line number
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Stats aggregates the tautology analysis of one DIMACS file.
type Stats struct {
	Vars         int // declared variable count from the problem line
	Clauses      int // declared clause count from the problem line
	Tautological int // clauses holding both a literal and its negation
}

// NonTautological returns the number of clauses that are not tautologies.
func (s Stats) NonTautological() int {
	return s.Clauses - s.Tautological
}

// Valid reports whether every clause is tautological.
func (s Stats) Valid() bool {
	return s.Tautological == s.Clauses
}

// CheckFile analyzes the DIMACS file at path. It fails with the wrapped
// I/O error if the file cannot be opened and with a *FormatError if its
// content does not follow the DIMACS grammar.
func CheckFile(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("could not open DIMACS file: %w", err)
	}
	defer f.Close()
	return Check(f, path)
}

// Check analyzes DIMACS content from r. path is only used to annotate
// errors and may be empty.
func Check(r io.Reader, path string) (Stats, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineno := 0

	// Everything before the problem line is preamble and is skipped.
	var fields []string
	for {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return Stats{}, fmt.Errorf("could not read DIMACS input: %w", err)
			}
			return Stats{}, &FormatError{Path: path, Line: lineno, Msg: "no problem line found"}
		}
		lineno++
		line := s.Text()
		if strings.HasPrefix(line, "p") {
			fields = strings.Fields(line)
			break
		}
	}
	stats, err := parseProblemLine(fields, path, lineno)
	if err != nil {
		return Stats{}, err
	}

	for i := 0; i < stats.Clauses; i++ {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return Stats{}, fmt.Errorf("could not read DIMACS input: %w", err)
			}
			return Stats{}, &FormatError{
				Path: path,
				Line: lineno,
				Msg:  fmt.Sprintf("expected %d clause lines, found %d", stats.Clauses, i),
			}
		}
		lineno++
		taut, err := scanClause(s.Text(), path, lineno)
		if err != nil {
			return Stats{}, err
		}
		if taut {
			stats.Tautological++
		}
	}
	return stats, nil
}

func parseProblemLine(fields []string, path string, lineno int) (Stats, error) {
	fail := func(msg string) (Stats, error) {
		return Stats{}, &FormatError{Path: path, Line: lineno, Msg: msg}
	}
	if len(fields) < 4 {
		return fail(fmt.Sprintf("malformed problem line %q", strings.Join(fields, " ")))
	}
	if fields[1] != "cnf" {
		return fail(fmt.Sprintf("problem format is %q, only cnf is supported", fields[1]))
	}
	nbVars, err := strconv.Atoi(fields[2])
	if err != nil {
		return fail(fmt.Sprintf("variable count %q is not an int", fields[2]))
	}
	nbClauses, err := strconv.Atoi(fields[3])
	if err != nil {
		return fail(fmt.Sprintf("clause count %q is not an int", fields[3]))
	}
	if nbVars < 0 || nbClauses < 0 {
		return fail(fmt.Sprintf("negative count in problem line %q", strings.Join(fields, " ")))
	}
	return Stats{Vars: nbVars, Clauses: nbClauses}, nil
}

// scanClause reports whether one clause line is tautological. Literals
// already seen are collected in a set; as soon as the negation of a new
// literal is found in it, the clause is tautological and the rest of the
// line is not scanned.
func scanClause(line, path string, lineno int) (bool, error) {
	seen := make(map[int]bool)
	terminated := false
	for _, field := range strings.Fields(line) {
		lit, err := strconv.Atoi(field)
		if err != nil {
			return false, &FormatError{Path: path, Line: lineno, Msg: fmt.Sprintf("literal %q is not an int", field)}
		}
		if lit == 0 {
			terminated = true
			break
		}
		if seen[-lit] {
			return true, nil
		}
		seen[lit] = true
	}
	if !terminated {
		return false, &FormatError{Path: path, Line: lineno, Msg: "clause line lacks its 0 terminator"}
	}
	return false, nil
}
