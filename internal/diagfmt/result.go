package diagfmt

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatResult renders an evaluated value. Inf and NaN always print bare,
// grouping only applies to finite values.
func FormatResult(w io.Writer, value float64, opts ResultOpts) error {
	if opts.Group && !math.IsNaN(value) && !math.IsInf(value, 0) {
		prec := opts.Precision
		if prec <= 0 {
			prec = 10
		}
		p := message.NewPrinter(language.English)
		_, err := p.Fprintf(w, "%v\n", number.Decimal(value, number.MaxFractionDigits(prec)))
		return err
	}

	prec := opts.Precision
	if prec <= 0 {
		prec = -1 // shortest round-trip form
	}
	_, err := fmt.Fprintln(w, strconv.FormatFloat(value, 'g', prec, 64))
	return err
}
