// Package diagfmt renders diagnostics, token streams, and results for the
// CLI. It only formats; nothing here mutates pipeline state.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"shunt/internal/diag"
	"shunt/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

func severityLabel(sev diag.Severity, useColor bool) string {
	label := sev.String()
	if !useColor {
		return label
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// Pretty renders every diagnostic in the bag as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <offending line>
//	  ^~~~
//
// Call bag.Sort() first for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			file.Path, start.Line, start.Col,
			severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)

		writeContext(w, file, start, d.Primary)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				nstart, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  note: %d:%d: %s\n", nstart.Line, nstart.Col, n.Msg)
			}
		}
	}
}

func writeContext(w io.Writer, file *source.File, start source.LineCol, span source.Span) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	caret := strings.Repeat(" ", int(start.Col-1)) + "^"
	if n := int(span.Len()); n > 1 {
		caret += strings.Repeat("~", n-1)
	}
	fmt.Fprintf(w, "  %s\n", caret)
}
