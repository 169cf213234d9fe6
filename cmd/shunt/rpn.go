package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shunt/internal/diagfmt"
	"shunt/internal/driver"
)

var rpnCmd = &cobra.Command{
	Use:           "rpn [flags] EXPRESSION...",
	Short:         "Print the postfix (Reverse Polish) form of an expression",
	Args:          cobra.MinimumNArgs(1),
	RunE:          runRPN,
	SilenceUsage:  true,
}

func runRPN(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	res := driver.ConvertExpr(strings.Join(args, " "), maxDiagnostics(cmd))
	if !res.OK {
		printDiagnostics(cmd, cfg, res.Bag, res.FileSet)
		return fmt.Errorf("conversion failed")
	}
	return diagfmt.FormatPostfix(os.Stdout, res.Postfix)
}
