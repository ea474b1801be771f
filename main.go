package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"github.com/taulab/gophercnf/batch"
	"github.com/taulab/gophercnf/cnf"
	"github.com/taulab/gophercnf/dimacs"
	"github.com/taulab/gophercnf/logic"
	"github.com/taulab/gophercnf/report"
)

type formulaCmd struct {
	Formula string   `arg:"required,positional" help:"fully parenthesized infix formula, e.g. '((p>q)*(q>q))'"`
	Assign  []string `arg:"--assign,separate" help:"variable assignment, e.g. p=1 (repeatable)"`
	Table   bool     `arg:"--table" help:"print the truth table"`
	CNF     bool     `arg:"--cnf" help:"convert to CNF and check clause validity"`
	Budget  int      `arg:"--budget" help:"node budget for CNF distribution (0 = default, <0 = unlimited)"`
}

type checkCmd struct {
	Path string `arg:"required,positional" help:"path to a DIMACS .cnf file"`
}

type dirCmd struct {
	Dir     string `arg:"required,positional" help:"directory holding .cnf files"`
	Workers int    `arg:"--workers,-w" help:"number of files analyzed in parallel (0 = all at once)"`
	HTML    string `arg:"--html" help:"also write an HTML report to this path"`
}

type suiteCmd struct {
	Path   string `arg:"required,positional" help:"path to a YAML suite file"`
	Budget int    `arg:"--budget" help:"node budget for CNF distribution (0 = default, <0 = unlimited)"`
}

var args struct {
	Formula *formulaCmd `arg:"subcommand:formula" help:"parse, evaluate and normalize one formula"`
	Check   *checkCmd   `arg:"subcommand:check" help:"check one DIMACS file for tautological clauses"`
	Dir     *dirCmd     `arg:"subcommand:dir" help:"check every DIMACS file in a directory"`
	Suite   *suiteCmd   `arg:"subcommand:suite" help:"run a YAML suite of formulas"`
	Verbose bool        `arg:"-v,--verbose" help:"dump raw results"`
}

var (
	validVerdict   = color.New(color.FgGreen, color.Bold)
	invalidVerdict = color.New(color.FgRed, color.Bold)
)

func main() {
	p := arg.MustParse(&args)
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	var err error
	switch {
	case args.Formula != nil:
		err = runFormula(args.Formula)
	case args.Check != nil:
		err = runCheck(args.Check)
	case args.Dir != nil:
		err = runDir(args.Dir)
	case args.Suite != nil:
		err = runSuite(args.Suite)
	default:
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}

func runFormula(cmd *formulaCmd) error {
	prefix, err := logic.InfixToPrefix(cmd.Formula)
	if err != nil {
		return fmt.Errorf("could not convert formula: %w", err)
	}
	e, err := logic.ParsePrefix(prefix)
	if err != nil {
		return fmt.Errorf("could not parse formula: %w", err)
	}
	fmt.Printf("prefix:  %s\n", prefix)
	fmt.Printf("infix:   %s\n", e)
	fmt.Printf("height:  %d\n", logic.Height(e))

	if len(cmd.Assign) > 0 {
		a, err := parseAssignment(cmd.Assign)
		if err != nil {
			return err
		}
		v, err := logic.Eval(e, a)
		if err != nil {
			return fmt.Errorf("could not evaluate formula: %w", err)
		}
		fmt.Printf("value:   %t\n", v)
	}

	if cmd.Table {
		t := logic.TruthTable(e)
		fmt.Printf("%s value\n", string(t.Vars()))
		if err := t.Each(func(r logic.Row) error {
			val := 0
			if r.Value {
				val = 1
			}
			fmt.Printf("%s %d\n", r.Bits, val)
			return nil
		}); err != nil {
			return fmt.Errorf("could not enumerate truth table: %w", err)
		}
	}

	if cmd.CNF {
		converted, err := cnf.Convert(e, cmd.Budget)
		if err != nil {
			return fmt.Errorf("could not convert to CNF: %w", err)
		}
		stats, err := cnf.Analyze(converted)
		if err != nil {
			return fmt.Errorf("could not analyze clauses: %w", err)
		}
		fmt.Printf("cnf:     %s\n", converted)
		printStats(stats.Valid(), stats.Tautological, stats.NonTautological())
		if args.Verbose {
			pretty.Println(stats)
		}
	}
	return nil
}

func runCheck(cmd *checkCmd) error {
	stats, err := dimacs.CheckFile(cmd.Path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d vars, %d clauses\n", cmd.Path, stats.Vars, stats.Clauses)
	printStats(stats.Valid(), stats.Tautological, stats.NonTautological())
	if args.Verbose {
		pretty.Println(stats)
	}
	return nil
}

func runDir(cmd *dirCmd) error {
	results, err := batch.Run(cmd.Dir, cmd.Workers)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%s: skipped: %v\n", r.Path, r.Err)
			continue
		}
		verdict := invalidVerdict.Sprint("not valid")
		if r.Stats.Valid() {
			verdict = validVerdict.Sprint("valid")
		}
		fmt.Printf("%s: %s (%d/%d tautological, %v)\n",
			r.Path, verdict, r.Stats.Tautological, r.Stats.Clauses, r.Elapsed)
	}
	if args.Verbose {
		pretty.Println(results)
	}
	if cmd.HTML != "" {
		f, err := os.Create(cmd.HTML)
		if err != nil {
			return fmt.Errorf("could not create report: %w", err)
		}
		defer f.Close()
		if err := report.WriteHTML(f, results); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
	}
	return nil
}

func runSuite(cmd *suiteCmd) error {
	s, err := batch.LoadSuite(cmd.Path)
	if err != nil {
		return err
	}
	for _, r := range batch.RunSuite(s, cmd.Budget) {
		fmt.Printf("%s\n", r.Formula)
		if r.Err != nil {
			fmt.Printf("  skipped: %v\n", r.Err)
			continue
		}
		fmt.Printf("  prefix: %s  height: %d\n", r.Prefix, r.Height)
		if r.Evaluated {
			fmt.Printf("  value:  %t\n", r.Value)
		}
		fmt.Printf("  cnf:    %s\n", r.CNF)
		fmt.Printf("  ")
		printStats(r.Stats.Valid(), r.Stats.Tautological, r.Stats.NonTautological())
	}
	return nil
}

func printStats(valid bool, taut, nonTaut int) {
	verdict := invalidVerdict.Sprint("not valid")
	if valid {
		verdict = validVerdict.Sprint("valid")
	}
	fmt.Printf("verdict: %s (%d tautological, %d non-tautological)\n", verdict, taut, nonTaut)
}

// parseAssignment turns flags like p=1 or q=false into an assignment.
func parseAssignment(pairs []string) (logic.Assignment, error) {
	a := make(logic.Assignment, len(pairs))
	for _, pair := range pairs {
		name, val, ok := strings.Cut(pair, "=")
		if !ok || len([]rune(name)) != 1 {
			return nil, fmt.Errorf("invalid assignment %q, expected var=0|1", pair)
		}
		switch val {
		case "1", "true":
			a[[]rune(name)[0]] = true
		case "0", "false":
			a[[]rune(name)[0]] = false
		default:
			return nil, fmt.Errorf("invalid truth value %q in %q", val, pair)
		}
	}
	return a, nil
}
