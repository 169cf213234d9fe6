package shunt

import (
	"fmt"

	"shunt/internal/diag"
)

// ErrorKind distinguishes the ways an expression can be rejected.
type ErrorKind uint8

const (
	// InvalidCharacter: an input byte is not a digit, operator, paren,
	// period, or blank.
	InvalidCharacter ErrorKind = iota + 1
	// MalformedNumber: a literal with a second decimal point or no digits.
	MalformedNumber
	// UnbalancedParentheses: an unmatched close paren or an unclosed open.
	UnbalancedParentheses
	// ArityMismatch: an operator short of operands, or an expression that
	// does not reduce to exactly one value.
	ArityMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "invalid character"
	case MalformedNumber:
		return "malformed number"
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case ArityMismatch:
		return "arity mismatch"
	default:
		return "unknown error"
	}
}

// Error describes why an expression was rejected. Start and End are byte
// offsets into the expression string passed to Evaluate.
type Error struct {
	Kind    ErrorKind
	Start   uint32
	End     uint32
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d-%d: %s", e.Kind, e.Start, e.End, e.Message)
}

// Is lets errors.Is match against a bare &Error{Kind: ...} target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func kindForCode(code diag.Code) ErrorKind {
	switch code {
	case diag.LexInvalidCharacter:
		return InvalidCharacter
	case diag.LexMalformedNumber:
		return MalformedNumber
	case diag.ConvUnbalancedParen:
		return UnbalancedParentheses
	case diag.EvalArityMismatch:
		return ArityMismatch
	default:
		return ArityMismatch
	}
}

// errorFromBag maps the position-earliest diagnostic to a typed error.
func errorFromBag(bag *diag.Bag) error {
	bag.Sort()
	first, found := bag.FirstError()
	if !found {
		// conversion or evaluation said "not ok" without reporting;
		// should not happen, but never return a nil error here
		return &Error{Kind: ArityMismatch, Message: "evaluation failed"}
	}
	return &Error{
		Kind:    kindForCode(first.Code),
		Start:   first.Primary.Start,
		End:     first.Primary.End,
		Message: first.Message,
	}
}
