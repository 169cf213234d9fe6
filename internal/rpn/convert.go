// Package rpn rewrites infix token sequences into postfix (Reverse Polish)
// order with the shunting-yard algorithm. It is a pure reordering transform:
// no numeric work happens here.
package rpn

import (
	"shunt/internal/diag"
	"shunt/internal/token"
)

// Convert reorders an infix token sequence into postfix order.
//
// The auxiliary stack only ever holds operators and open parens. The pop rule
// relies on the inverted precedence table (smaller binds tighter): an operator
// on the stack is flushed while it binds tighter than the incoming one, or
// equally tight when the incoming operator is left-associative. Equal
// precedence with a right-associative incoming operator stays on the stack,
// which is what gives '^' its right-to-left chaining.
//
// The returned sequence contains only Number and operator tokens. EOF tokens
// in the input are ignored. ok is false when parens do not balance or when an
// Invalid token (already reported by the lexer) reaches the converter.
func Convert(tokens []token.Token, r diag.Reporter) (out []token.Token, ok bool) {
	var stack []token.Token

	for _, tok := range tokens {
		switch {
		case tok.Kind == token.EOF:
			// nothing

		case tok.IsNumber():
			out = append(out, tok)

		case tok.IsOperator():
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == token.LParen || !pops(top.Kind, tok.Kind) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case tok.Kind == token.LParen:
			stack = append(stack, tok)

		case tok.Kind == token.RParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == token.LParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				diag.ReportError(r, diag.ConvUnbalancedParen, tok.Span,
					"close paren has no matching open paren")
				return nil, false
			}

		default:
			// Invalid token: the lexer already reported it.
			return nil, false
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == token.LParen {
			diag.ReportError(r, diag.ConvUnbalancedParen, top.Span,
				"open paren is never closed")
			return nil, false
		}
		out = append(out, top)
	}

	return out, true
}

// pops reports whether the stacked operator must be flushed before pushing in.
func pops(top, in token.Kind) bool {
	tp, ip := token.Precedence(top), token.Precedence(in)
	if tp < ip {
		return true
	}
	return tp == ip && token.Associativity(in) == token.AssocLeft
}
