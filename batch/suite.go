package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taulab/gophercnf/cnf"
	"github.com/taulab/gophercnf/logic"
)

// A Suite is a list of formulas to analyze, loaded from a YAML file of
// the form:
//
//	formulas:
//	  - formula: "((p>q)*(q>q))"
//	    assignment: {p: false, q: true}
//	  - formula: "((p+(~p))*(q))"
//
// It replaces interactive prompting: the formula list and the variable
// assignments are external configuration handed to the core.
type Suite struct {
	Formulas []Case `yaml:"formulas"`
}

// A Case is one formula of a suite, with an optional assignment under
// which to evaluate it. Assignment keys must be single-character variable
// names.
type Case struct {
	Formula    string          `yaml:"formula"`
	Assignment map[string]bool `yaml:"assignment"`
}

// A CaseResult aggregates everything the analysis derives from one case.
// Evaluated is only meaningful when the case carried an assignment.
type CaseResult struct {
	Formula   string
	Prefix    string    // prefix (Polish) form of the formula
	CNF       string    // infix rendering of the converted tree
	Height    int       // height of the parsed tree
	Evaluated bool      // whether an assignment was supplied
	Value     bool      // truth value under the assignment
	Stats     cnf.Stats // clause validity analysis of the CNF form
	Err       error
}

// LoadSuite reads and decodes a YAML suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read suite file: %w", err)
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("could not decode suite file %q: %w", path, err)
	}
	return &s, nil
}

// assignment converts the YAML string-keyed map to a logic.Assignment,
// rejecting keys that are not single characters.
func (c Case) assignment() (logic.Assignment, error) {
	a := make(logic.Assignment, len(c.Assignment))
	for name, val := range c.Assignment {
		runes := []rune(name)
		if len(runes) != 1 {
			return nil, fmt.Errorf("assignment key %q is not a single-character variable", name)
		}
		a[runes[0]] = val
	}
	return a, nil
}

// RunSuite analyzes every case of a suite: parse, optionally evaluate
// under the case's assignment, convert to CNF and count tautological
// clauses. budget caps the CNF distribution step as in cnf.Convert. A
// failing case carries its error in CaseResult.Err and the run continues.
func RunSuite(s *Suite, budget int) []CaseResult {
	results := make([]CaseResult, len(s.Formulas))
	for i, c := range s.Formulas {
		results[i] = runCase(c, budget)
	}
	return results
}

func runCase(c Case, budget int) CaseResult {
	res := CaseResult{Formula: c.Formula}
	prefix, err := logic.InfixToPrefix(c.Formula)
	if err != nil {
		res.Err = err
		return res
	}
	res.Prefix = prefix
	e, err := logic.ParsePrefix(prefix)
	if err != nil {
		res.Err = err
		return res
	}
	res.Height = logic.Height(e)
	if len(c.Assignment) > 0 {
		a, err := c.assignment()
		if err != nil {
			res.Err = err
			return res
		}
		v, err := logic.Eval(e, a)
		if err != nil {
			res.Err = err
			return res
		}
		res.Evaluated = true
		res.Value = v
	}
	converted, err := cnf.Convert(e, budget)
	if err != nil {
		res.Err = err
		return res
	}
	res.CNF = converted.String()
	stats, err := cnf.Analyze(converted)
	if err != nil {
		res.Err = err
		return res
	}
	res.Stats = stats
	return res
}
