// Package diag carries typed diagnostics between pipeline phases.
// Phases report through a Reporter and never abort the process; a bad
// expression only fails its own evaluation.
package diag
