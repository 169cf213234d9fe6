package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shunt/internal/diagfmt"
	"shunt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:           "tokenize [flags] EXPRESSION...",
	Short:         "Print the token stream of an expression",
	Args:          cobra.MinimumNArgs(1),
	RunE:          runTokenize,
	SilenceUsage:  true,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	res := driver.TokenizeExpr(strings.Join(args, " "), maxDiagnostics(cmd))
	if res.Bag.HasErrors() {
		printDiagnostics(cmd, cfg, res.Bag, res.FileSet)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, res.Tokens, res.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, res.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
