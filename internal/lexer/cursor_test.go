package lexer_test

import (
	"testing"

	"shunt/internal/lexer"
	"shunt/internal/source"
)

func makeCursor(input string) lexer.Cursor {
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor", []byte(input))
	return lexer.NewCursor(fs.Get(id))
}

func TestCursorPeekBump(t *testing.T) {
	c := makeCursor("ab")

	if got := c.Peek(); got != 'a' {
		t.Errorf("Peek = %q, want 'a'", got)
	}
	if got := c.Bump(); got != 'a' {
		t.Errorf("Bump = %q, want 'a'", got)
	}
	if got := c.Bump(); got != 'b' {
		t.Errorf("Bump = %q, want 'b'", got)
	}
	if !c.EOF() {
		t.Error("EOF = false after consuming everything")
	}
	if got := c.Bump(); got != 0 {
		t.Errorf("Bump at EOF = %q, want 0", got)
	}
}

func TestCursorSpanFrom(t *testing.T) {
	c := makeCursor("12345")
	c.Bump()
	m := c.Mark()
	c.Bump()
	c.Bump()

	sp := c.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Errorf("span = %d-%d, want 1-3", sp.Start, sp.End)
	}
}
