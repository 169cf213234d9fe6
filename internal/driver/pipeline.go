// Package driver wires the pipeline phases together: tokenize, convert to
// postfix, evaluate. Every entry point builds its own FileSet and Bag, so
// no state is shared between evaluations.
package driver

import (
	"shunt/internal/diag"
	"shunt/internal/eval"
	"shunt/internal/lexer"
	"shunt/internal/rpn"
	"shunt/internal/source"
	"shunt/internal/token"
)

// DefaultMaxDiagnostics caps the bag size for one evaluation.
const DefaultMaxDiagnostics = 32

// TokenizeResult is the outcome of the lexing stage.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// ConvertResult adds the postfix sequence to a TokenizeResult.
type ConvertResult struct {
	TokenizeResult
	Postfix []token.Token
	OK      bool
}

// EvalResult is the outcome of a full pipeline run.
type EvalResult struct {
	ConvertResult
	Value float64
}

// Tokenize drains the lexer over one buffer, reporting into bag.
func Tokenize(file *source.File, bag *diag.Bag) []token.Token {
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// TokenizeExpr lexes a single expression given as a string.
func TokenizeExpr(expr string, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("expr", []byte(expr)))
	bag := diag.NewBag(maxDiagnostics)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  Tokenize(file, bag),
		Bag:     bag,
	}
}

// ConvertExpr lexes an expression and rewrites it into postfix order.
// Conversion is skipped when lexing already produced errors.
func ConvertExpr(expr string, maxDiagnostics int) *ConvertResult {
	tr := TokenizeExpr(expr, maxDiagnostics)
	res := &ConvertResult{TokenizeResult: *tr}
	if tr.Bag.HasErrors() {
		return res
	}
	res.Postfix, res.OK = rpn.Convert(tr.Tokens, diag.BagReporter{Bag: tr.Bag})
	return res
}

// EvaluateExpr runs the whole pipeline over one expression.
// res.OK reports success; on failure the bag explains why.
func EvaluateExpr(expr string, maxDiagnostics int) *EvalResult {
	cr := ConvertExpr(expr, maxDiagnostics)
	res := &EvalResult{ConvertResult: *cr}
	if !cr.OK {
		return res
	}
	res.Value, res.OK = eval.Eval(cr.Postfix, diag.BagReporter{Bag: cr.Bag})
	return res
}

// evaluateFile runs the pipeline over an already-loaded buffer.
// Used by batch evaluation where buffers live in a shared FileSet.
func evaluateFile(file *source.File, maxDiagnostics int) (float64, *diag.Bag, bool) {
	bag := diag.NewBag(maxDiagnostics)
	tokens := Tokenize(file, bag)
	if bag.HasErrors() {
		return 0, bag, false
	}
	reporter := diag.BagReporter{Bag: bag}
	postfix, ok := rpn.Convert(tokens, reporter)
	if !ok {
		return 0, bag, false
	}
	value, ok := eval.Eval(postfix, reporter)
	return value, bag, ok
}
