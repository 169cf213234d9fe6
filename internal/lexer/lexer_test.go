package lexer_test

import (
	"math"
	"testing"

	"shunt/internal/diag"
	"shunt/internal/lexer"
	"shunt/internal/source"
	"shunt/internal/token"
)

// makeTestLexer builds a lexer over a virtual buffer with a bag-backed reporter.
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test-expr", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

// collectAllTokens drains the lexer up to and including EOF.
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectKinds checks the token kind sequence, EOF excluded.
func expectKinds(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1] // drop EOF

	if len(tokens) != len(expected) {
		t.Fatalf("input %q: expected %d tokens, got %d (%v); diagnostics: %v",
			input, len(expected), len(tokens), tokens, bag.Items())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("input %q token %d: expected %v, got %v (text %q)",
				input, i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func TestOperatorsAndParens(t *testing.T) {
	expectKinds(t, "+-*/%^()", []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash,
		token.Percent, token.Caret, token.LParen, token.RParen,
	})
}

func TestSimpleExpression(t *testing.T) {
	expectKinds(t, "2 + 3 * 4", []token.Kind{
		token.Number, token.Plus, token.Number, token.Star, token.Number,
	})
}

func TestWhitespaceInvariance(t *testing.T) {
	expectKinds(t, "1+2", []token.Kind{token.Number, token.Plus, token.Number})
	expectKinds(t, " \t1 +\n2 ", []token.Kind{token.Number, token.Plus, token.Number})
}

func TestNumberValues(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"542", 542},
		{"1.5", 1.5},
		{"5.11321", 5.11321},
		{".5", 0.5},
		{"3.", 3},
	}
	for _, c := range cases {
		lx, bag := makeTestLexer(c.input)
		tok := lx.Next()
		if bag.HasErrors() {
			t.Errorf("input %q: unexpected diagnostics %v", c.input, bag.Items())
			continue
		}
		if tok.Kind != token.Number {
			t.Errorf("input %q: kind = %v, want Number", c.input, tok.Kind)
			continue
		}
		if math.Abs(tok.Value-c.want) > 1e-12 {
			t.Errorf("input %q: value = %v, want %v", c.input, tok.Value, c.want)
		}
		if tok.Text != c.input {
			t.Errorf("input %q: text = %q", c.input, tok.Text)
		}
	}
}

func TestNumberSpans(t *testing.T) {
	lx, _ := makeTestLexer("  10.5 + 3")
	tok := lx.Next()
	if tok.Span.Start != 2 || tok.Span.End != 6 {
		t.Errorf("span = %d-%d, want 2-6", tok.Span.Start, tok.Span.End)
	}
}

func TestSecondPeriod(t *testing.T) {
	lx, bag := makeTestLexer("1.2.3")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("kind = %v, want Invalid", tok.Kind)
	}
	first, ok := bag.FirstError()
	if !ok || first.Code != diag.LexMalformedNumber {
		t.Errorf("diagnostic = %+v, want LexMalformedNumber", first)
	}
}

func TestBarePeriod(t *testing.T) {
	lx, bag := makeTestLexer("1 .5 . 2")
	var kinds []token.Kind
	for _, tok := range collectAllTokens(lx) {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Number, token.Number, token.Invalid, token.Number, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
	first, ok := bag.FirstError()
	if !ok || first.Code != diag.LexMalformedNumber {
		t.Errorf("diagnostic = %+v, want LexMalformedNumber", first)
	}
}

func TestInvalidCharacter(t *testing.T) {
	lx, bag := makeTestLexer("1 & 2")
	tokens := collectAllTokens(lx)
	if tokens[1].Kind != token.Invalid {
		t.Errorf("token 1 kind = %v, want Invalid", tokens[1].Kind)
	}
	first, ok := bag.FirstError()
	if !ok || first.Code != diag.LexInvalidCharacter {
		t.Errorf("diagnostic = %+v, want LexInvalidCharacter", first)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("7 + 8")
	peeked := lx.Peek()
	next := lx.Next()
	if peeked != next {
		t.Errorf("Peek = %+v, Next = %+v", peeked, next)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next #%d = %v, want EOF", i, tok.Kind)
		}
	}
}
