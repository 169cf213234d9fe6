package driver

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"shunt/internal/diag"
	"shunt/internal/source"
)

// LineResult is the outcome of evaluating one line of a batch file.
type LineResult struct {
	Line  uint32 // 1-based line number in the batch file
	Expr  string
	Value float64
	OK    bool
	Bag   *diag.Bag
}

// Skipped reports whether the line held no expression (blank or comment).
func (r LineResult) Skipped() bool {
	return r.Bag == nil
}

// EvaluateFile evaluates a batch file with one expression per line.
// Blank lines and lines starting with '#' are skipped. Lines are evaluated
// concurrently with at most jobs goroutines (GOMAXPROCS when jobs <= 0);
// every evaluation is stateless so no locking is needed beyond the errgroup.
// Results come back in file order.
func EvaluateFile(ctx context.Context, path string, maxDiagnostics, jobs int) (*source.FileSet, []LineResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}

	return evaluateLines(ctx, fs, fs.Get(id), maxDiagnostics, jobs)
}

// EvaluateSource evaluates in-memory batch content (stdin, tests) the same
// way EvaluateFile treats a file on disk.
func EvaluateSource(ctx context.Context, name string, content []byte, maxDiagnostics, jobs int) (*source.FileSet, []LineResult, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return evaluateLines(ctx, fs, fs.Get(id), maxDiagnostics, jobs)
}

// evaluateLines splits the buffer into per-line virtual buffers up front
// (FileSet.Add is not safe for concurrent use), then fans out.
func evaluateLines(ctx context.Context, fs *source.FileSet, file *source.File, maxDiagnostics, jobs int) (*source.FileSet, []LineResult, error) {
	lines := strings.Split(string(file.Content), "\n")
	results := make([]LineResult, len(lines))

	type job struct {
		idx  int
		file *source.File
	}
	var work []job
	for i, line := range lines {
		lineNum := uint32(i + 1)
		trimmed := strings.TrimSpace(line)
		results[i] = LineResult{Line: lineNum, Expr: line}
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name := fmt.Sprintf("%s:%d", file.Path, lineNum)
		lineFile := fs.Get(fs.AddVirtual(name, []byte(line)))
		work = append(work, job{idx: i, file: lineFile})
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(work)+1))

	for _, w := range work {
		w := w
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			value, bag, ok := evaluateFile(w.file, maxDiagnostics)
			results[w.idx].Value = value
			results[w.idx].OK = ok
			results[w.idx].Bag = bag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fs, nil, err
	}
	return fs, results, nil
}
