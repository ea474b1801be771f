package logic

import "fmt"

// A ParseError reports malformed formula input: unbalanced parentheses, a
// foreign character, or a token stream ending while an operand is still
// expected.
type ParseError struct {
	Input string // the full input being parsed
	Pos   int    // byte offset of the offending position
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at position %d near %q: %s", e.Pos, quoteAround(e.Input, e.Pos), e.Msg)
}

// InfixToPrefix rewrites a fully parenthesized infix formula into prefix
// (Polish) notation. The input is scanned in reverse; in the reversed
// stream a ')' plays the role of an opening delimiter and is pushed, as
// are the operators, while a '(' pops operators until its matching
// delimiter. Variables are emitted directly. Once the scan is done the
// remaining operators are flushed and the output is reversed.
//
// Unbalanced parentheses or characters outside the formula alphabet fail
// with a *ParseError.
func InfixToPrefix(s string) (string, error) {
	rs := []rune(s)
	var stack []rune
	out := make([]rune, 0, len(rs))
	for i := len(rs) - 1; i >= 0; i-- {
		c := rs[i]
		switch {
		case c == ')':
			stack = append(stack, c)
		case isBinaryOp(c) || c == '~':
			stack = append(stack, c)
		case c == '(':
			for len(stack) > 0 && stack[len(stack)-1] != ')' {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return "", &ParseError{Input: s, Pos: i, Msg: "unbalanced parenthesis"}
			}
			stack = stack[:len(stack)-1] // the matching delimiter
		case isVarName(c):
			out = append(out, c)
		default:
			return "", &ParseError{Input: s, Pos: i, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		if c == ')' {
			return "", &ParseError{Input: s, Pos: 0, Msg: "unbalanced parenthesis"}
		}
		out = append(out, c)
		stack = stack[:len(stack)-1]
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// ParsePrefix builds an expression tree from a prefix-notation formula.
// It fails with a *ParseError if the input ends while an operand is
// expected, if a character is not part of the formula alphabet, or if
// input remains once the formula is complete.
func ParsePrefix(s string) (Expr, error) {
	p := &prefixParser{input: s, tokens: []rune(s)}
	e, err := p.parse()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, &ParseError{Input: s, Pos: p.pos, Msg: "trailing input after formula"}
	}
	return e, nil
}

// ParseInfix builds an expression tree from a fully parenthesized infix
// formula. It is shorthand for InfixToPrefix followed by ParsePrefix.
func ParseInfix(s string) (Expr, error) {
	prefix, err := InfixToPrefix(s)
	if err != nil {
		return nil, err
	}
	e, err := ParsePrefix(prefix)
	if err != nil {
		// Report against the original input, not the intermediate form.
		return nil, &ParseError{Input: s, Pos: 0, Msg: err.(*ParseError).Msg}
	}
	return e, nil
}

type prefixParser struct {
	input  string
	tokens []rune
	pos    int
}

func (p *prefixParser) parse() (Expr, error) {
	if p.pos >= len(p.tokens) {
		return nil, &ParseError{Input: p.input, Pos: p.pos, Msg: "expected operand, found end of input"}
	}
	c := p.tokens[p.pos]
	p.pos++
	switch {
	case isBinaryOp(c):
		l, err := p.parse()
		if err != nil {
			return nil, err
		}
		r, err := p.parse()
		if err != nil {
			return nil, err
		}
		switch c {
		case '+':
			return Or{L: l, R: r}, nil
		case '*':
			return And{L: l, R: r}, nil
		default:
			return Implies{L: l, R: r}, nil
		}
	case c == '~':
		x, err := p.parse()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	case isVarName(c):
		return Var{Name: c}, nil
	default:
		return nil, &ParseError{Input: p.input, Pos: p.pos - 1, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
}
