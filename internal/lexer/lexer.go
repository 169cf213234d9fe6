package lexer

import (
	"fmt"

	"shunt/internal/diag"
	"shunt/internal/source"
	"shunt/internal/token"
)

// Lexer scans one expression buffer into tokens.
// Malformed input produces Invalid tokens plus diagnostics; the lexer itself
// never stops early and never terminates the process.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token buffer for Peek
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. Blanks (space, tab, newline,
// carriage return) are skipped. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipBlanks()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isDigit(ch) || ch == '.':
		return lx.scanNumber()

	default:
		if kind, ok := token.KindForByte(ch); ok {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(ch)}
		}

		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexInvalidCharacter, sp, fmt.Sprintf("invalid character %q", ch))
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(ch)}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) skipBlanks() {
	for isBlank(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
