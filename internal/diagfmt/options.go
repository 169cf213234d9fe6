package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

// ResultOpts configures how evaluated values are rendered.
type ResultOpts struct {
	// Precision is the number of significant digits; <= 0 means the
	// shortest representation that round-trips.
	Precision int
	// Group inserts thousands separators (1,234.5) via x/text.
	Group bool
}
