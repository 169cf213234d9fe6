package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shunt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "shunt",
	Short: "Shunting-yard expression calculator",
	Long:  `Shunt evaluates arithmetic infix expressions via a tokenizer, a shunting-yard converter, and a postfix evaluator`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(rpnCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 32, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the tri-state --color flag against the config default.
func useColor(cmd *cobra.Command, cfg *cliConfig, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	if colorFlag == "auto" && cfg != nil && cfg.Output.Color != "" {
		colorFlag = cfg.Output.Color
	}
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return 32
	}
	return n
}
