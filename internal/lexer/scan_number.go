package lexer

import (
	"strconv"

	"shunt/internal/diag"
	"shunt/internal/source"
	"shunt/internal/token"
)

// Rules:
//   - a literal is a maximal run of digits with at most one period anywhere
//     in the run ("15", "5.11321", ".5", "3.")
//   - a second period inside the run is MalformedNumber
//   - a run with no digits at all (a bare ".") is MalformedNumber
//
// Values are parsed with strconv.ParseFloat, which is locale-independent.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	digits := 0
	sawPeriod := false

	for {
		switch b := lx.cursor.Peek(); {
		case isDigit(b):
			lx.cursor.Bump()
			digits++
		case b == '.':
			if sawPeriod {
				lx.cursor.Bump() // include the offending period in the span
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexMalformedNumber, sp, "number contains a second '.'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			lx.cursor.Bump()
			sawPeriod = true
		default:
			goto done
		}
	}

done:
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if digits == 0 {
		lx.report(diag.LexMalformedNumber, sp, "number has no digits")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// unreachable for the grammar above, but a parse failure must not panic
		lx.report(diag.LexMalformedNumber, sp, "bad numeric literal "+strconv.Quote(text))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Number, Span: sp, Text: text, Value: val}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
