package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"shunt/internal/source"
	"shunt/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Value float64     `json:"value,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty writes one line per token with kind, text, value,
// and position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-8s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.IsNumber() {
			fmt.Fprintf(w, " = %v", tok.Value)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
	return nil
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Value: tok.Value,
			Span:  tok.Span,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatPostfix writes a postfix sequence as space-separated token texts,
// e.g. "3 4 2 * +".
func FormatPostfix(w io.Writer, tokens []token.Token) error {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Text)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
