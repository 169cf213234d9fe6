package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shunt/internal/diag"
	"shunt/internal/diagfmt"
	"shunt/internal/driver"
	"shunt/internal/source"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] EXPRESSION...",
	Short: "Evaluate an infix expression",
	Long: `Eval runs the full pipeline over one expression given as arguments,
or over a batch file with one expression per line (--file)`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runEval,
	SilenceUsage:  true,
}

func init() {
	evalCmd.Flags().StringP("file", "f", "", "evaluate a batch file, one expression per line")
	evalCmd.Flags().IntP("jobs", "j", 0, "parallel workers for batch files (0 = GOMAXPROCS)")
	evalCmd.Flags().Bool("cache", false, "reuse cached results for unchanged batch files")
	evalCmd.Flags().Bool("group", false, "format results with thousands separators")
	evalCmd.Flags().Int("precision", 0, "significant digits in output (0 = shortest)")
}

func resultOpts(cmd *cobra.Command, cfg *cliConfig) diagfmt.ResultOpts {
	opts := diagfmt.ResultOpts{}
	if cfg != nil {
		opts.Precision = cfg.Output.Precision
		opts.Group = cfg.Output.Group
	}
	if cmd.Flags().Changed("precision") {
		opts.Precision, _ = cmd.Flags().GetInt("precision")
	}
	if cmd.Flags().Changed("group") {
		opts.Group, _ = cmd.Flags().GetBool("group")
	}
	return opts
}

func printDiagnostics(cmd *cobra.Command, cfg *cliConfig, bag *diag.Bag, fs *source.FileSet) {
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, cfg, os.Stderr),
		ShowNotes: true,
	})
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	batchFile, _ := cmd.Flags().GetString("file")
	if batchFile != "" {
		if len(args) > 0 {
			return fmt.Errorf("--file and expression arguments are mutually exclusive")
		}
		return runEvalFile(cmd, cfg, batchFile)
	}

	if len(args) == 0 {
		return fmt.Errorf("no expression given")
	}
	expr := strings.Join(args, " ")

	res := driver.EvaluateExpr(expr, maxDiagnostics(cmd))
	if !res.OK {
		printDiagnostics(cmd, cfg, res.Bag, res.FileSet)
		return fmt.Errorf("evaluation failed")
	}
	return diagfmt.FormatResult(os.Stdout, res.Value, resultOpts(cmd, cfg))
}

func runEvalFile(cmd *cobra.Command, cfg *cliConfig, path string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	useCache, _ := cmd.Flags().GetBool("cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	opts := resultOpts(cmd, cfg)

	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		_, results, err := driver.EvaluateSource(cmd.Context(), "stdin", content, maxDiagnostics(cmd), jobs)
		if err != nil {
			return err
		}
		return reportBatch(cmd, "stdin", results, opts, quiet, nil, driver.Digest{})
	}

	var cache *driver.DiskCache
	if useCache {
		var err error
		cache, err = driver.OpenDiskCache("shunt")
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return err
	}
	file := fs.Get(id)

	if cache != nil {
		var payload driver.BatchPayload
		if hit, err := cache.Get(file.Hash, &payload); err == nil && hit {
			return printCachedLines(cmd, payload, opts, quiet)
		}
	}

	_, results, err := driver.EvaluateFile(cmd.Context(), path, maxDiagnostics(cmd), jobs)
	if err != nil {
		return err
	}
	return reportBatch(cmd, path, results, opts, quiet, cache, file.Hash)
}

func reportBatch(_ *cobra.Command, path string, results []driver.LineResult, opts diagfmt.ResultOpts, quiet bool, cache *driver.DiskCache, key driver.Digest) error {
	failed := 0
	for _, r := range results {
		if r.Skipped() {
			continue
		}
		if !r.OK {
			failed++
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", path, r.Line, firstMessage(r.Bag))
			continue
		}
		printLineValue(r.Line, r.Expr, r.Value, opts, quiet)
	}

	if cache != nil {
		if err := cache.Put(key, driver.PayloadFromResults(path, results)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache write failed: %v\n", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}

func printCachedLines(cmd *cobra.Command, payload driver.BatchPayload, opts diagfmt.ResultOpts, quiet bool) error {
	failed := 0
	for _, line := range payload.Lines {
		if line.Skipped {
			continue
		}
		if !line.OK {
			failed++
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", payload.Path, line.Line, line.ErrMsg)
			continue
		}
		printLineValue(line.Line, line.Expr, line.Value, opts, quiet)
	}
	if failed > 0 {
		return fmt.Errorf("%d expressions failed (cached)", failed)
	}
	return nil
}

func printLineValue(line uint32, expr string, value float64, opts diagfmt.ResultOpts, quiet bool) {
	if !quiet {
		fmt.Printf("%3d: %s = ", line, strings.TrimSpace(expr))
	}
	diagfmt.FormatResult(os.Stdout, value, opts)
}

func firstMessage(bag *diag.Bag) string {
	if bag == nil {
		return "unknown error"
	}
	bag.Sort()
	first, found := bag.FirstError()
	if !found {
		return "unknown error"
	}
	return fmt.Sprintf("%s: %s", first.Code.ID(), first.Message)
}
