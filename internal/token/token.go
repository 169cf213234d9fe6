package token

import (
	"shunt/internal/source"
)

// Token represents a single lexical token with its location.
// Number tokens carry the parsed value so later stages never re-read
// the source buffer.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value float64
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool { return t.Kind == Number }

// IsOperator reports whether the token is one of the six binary operators.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Caret:
		return true
	default:
		return false
	}
}

// IsParen reports whether the token is an open or close parenthesis.
func (t Token) IsParen() bool {
	return t.Kind == LParen || t.Kind == RParen
}
