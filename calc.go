// Package shunt evaluates arithmetic infix expressions.
//
// The pipeline is tokenizer -> shunting-yard infix-to-postfix converter ->
// postfix evaluator. Six binary operators are supported with inverted
// precedence numbering (smaller binds tighter): ^ (right-associative),
// then * / %, then + -. Literals are integers or floating-point numbers
// with a single optional decimal point; whitespace is ignored.
//
// Evaluation is synchronous and stateless: each call builds its own
// buffers and stacks, so concurrent calls need no locking. Malformed
// input returns a *Error with a distinguishable Kind; division by zero
// is not an error and follows IEEE float64 semantics.
package shunt

import (
	"strings"

	"shunt/internal/driver"
)

// Evaluate computes the value of an infix arithmetic expression.
// On failure the returned error is a *Error carrying the kind and the
// byte span of the offending input.
func Evaluate(expr string) (float64, error) {
	res := driver.EvaluateExpr(expr, driver.DefaultMaxDiagnostics)
	if !res.OK {
		return 0, errorFromBag(res.Bag)
	}
	return res.Value, nil
}

// Postfix returns the space-separated postfix (Reverse Polish) rendering
// of an infix expression, e.g. "2 + 3 * 4" -> "2 3 4 * +".
func Postfix(expr string) (string, error) {
	res := driver.ConvertExpr(expr, driver.DefaultMaxDiagnostics)
	if !res.OK {
		return "", errorFromBag(res.Bag)
	}
	parts := make([]string, 0, len(res.Postfix))
	for _, tok := range res.Postfix {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " "), nil
}
