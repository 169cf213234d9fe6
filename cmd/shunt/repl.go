package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shunt/internal/ui"
)

var replCmd = &cobra.Command{
	Use:           "repl",
	Short:         "Interactive calculator",
	Args:          cobra.NoArgs,
	RunE:          runRepl,
	SilenceUsage:  true,
}

func init() {
	replCmd.Flags().Int("precision", 0, "significant digits in output (0 = shortest)")
}

func runRepl(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) {
		return fmt.Errorf("repl needs a terminal; use 'shunt eval --file -' style batch input instead")
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	precision := 0
	if cfg != nil {
		precision = cfg.Output.Precision
	}
	if cmd.Flags().Changed("precision") {
		precision, _ = cmd.Flags().GetInt("precision")
	}

	return ui.Run(precision)
}
