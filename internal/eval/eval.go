// Package eval computes the value of a postfix token sequence.
package eval

import (
	"fmt"
	"math"

	"shunt/internal/diag"
	"shunt/internal/source"
	"shunt/internal/token"
)

// Eval scans a postfix sequence left to right over a float64 stack.
// An operator pops b then a (a was pushed first) and pushes a OP b, so
// operand order is preserved for -, /, ^ and %.
//
// Division by zero is not an error: /, % and ^ follow IEEE float64
// semantics and may produce Inf or NaN. The only failure mode here is
// ArityMismatch: an operator with fewer than two operands available, or
// a final stack that does not hold exactly one value.
func Eval(postfix []token.Token, r diag.Reporter) (float64, bool) {
	stack := make([]float64, 0, 8)

	for _, tok := range postfix {
		switch {
		case tok.IsNumber():
			stack = append(stack, tok.Value)

		case tok.IsOperator():
			if len(stack) < 2 {
				diag.ReportError(r, diag.EvalArityMismatch, tok.Span,
					fmt.Sprintf("operator %q needs two operands, %d available", tok.Text, len(stack)))
				return 0, false
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = apply(a, b, tok.Kind)

		default:
			diag.ReportError(r, diag.EvalArityMismatch, tok.Span,
				fmt.Sprintf("unexpected %v token in postfix sequence", tok.Kind))
			return 0, false
		}
	}

	if len(stack) != 1 {
		diag.ReportError(r, diag.EvalArityMismatch, coverAll(postfix),
			fmt.Sprintf("expression leaves %d values instead of one", len(stack)))
		return 0, false
	}
	return stack[0], true
}

func apply(a, b float64, op token.Kind) float64 {
	switch op {
	case token.Plus:
		return a + b
	case token.Minus:
		return a - b
	case token.Star:
		return a * b
	case token.Slash:
		return a / b
	case token.Percent:
		// sign follows a, like the C fmod
		return math.Mod(a, b)
	case token.Caret:
		return math.Pow(a, b)
	}
	return math.NaN()
}

func coverAll(tokens []token.Token) source.Span {
	if len(tokens) == 0 {
		return source.Span{}
	}
	sp := tokens[0].Span
	for _, tok := range tokens[1:] {
		sp = sp.Cover(tok.Span)
	}
	return sp
}
