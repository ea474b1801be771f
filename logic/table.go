package logic

// A Table enumerates the truth value of a formula under every assignment
// of its variables. It holds no row data itself: rows are produced on
// demand, so enumeration can be restarted at will and never materializes
// all 2^k assignments unless asked to.
type Table struct {
	expr Expr
	vars []rune
}

// A Row is one line of a truth table. Bits holds the assignment as a
// binary string over the table's sorted variables, most significant bit
// first: for variables [p q], "10" binds p to true and q to false.
type Row struct {
	Bits  string
	Value bool
}

// TruthTable prepares the truth table of e. Its variables are sorted, so
// row order is deterministic: a formula over p and q yields the bit
// patterns 00, 01, 10, 11 in that order.
func TruthTable(e Expr) *Table {
	return &Table{expr: e, vars: Vars(e)}
}

// Vars returns the table's variables in enumeration order.
func (t *Table) Vars() []rune {
	vars := make([]rune, len(t.vars))
	copy(vars, t.vars)
	return vars
}

// Len returns the number of rows, 2^k for k variables.
func (t *Table) Len() int {
	return 1 << len(t.vars)
}

// Each calls fn for every row in order, evaluating the formula once per
// assignment. It stops at the first error returned by fn or by the
// evaluation and reports it.
func (t *Table) Each(fn func(Row) error) error {
	k := len(t.vars)
	a := make(Assignment, k)
	bits := make([]byte, k)
	for i := 0; i < 1<<k; i++ {
		for j := 0; j < k; j++ {
			set := i>>(k-1-j)&1 == 1
			a[t.vars[j]] = set
			if set {
				bits[j] = '1'
			} else {
				bits[j] = '0'
			}
		}
		v, err := Eval(t.expr, a)
		if err != nil {
			return err
		}
		if err := fn(Row{Bits: string(bits), Value: v}); err != nil {
			return err
		}
	}
	return nil
}

// All collects every row eagerly.
func (t *Table) All() []Row {
	rows := make([]Row, 0, t.Len())
	t.Each(func(r Row) error {
		rows = append(rows, r)
		return nil
	})
	return rows
}
