// Package commands provides the CLI commands for the symdiff tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the symdiff command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "symdiff",
		Short: "Evaluate, simplify and differentiate expression trees",
		Long: `symdiff works on arithmetic expression trees encoded as JSON, e.g.

  {"type": "sin", "x": {"type": "variable", "name": "x"}}

Usage:
  symdiff eval expr.json -e x=2      Substitute then simplify
  symdiff simplify expr.json         Simplify once, bottom-up
  symdiff diff expr.json -v x        Derivative d/dx, simplified
  symdiff serve -p 8080              HTTP tool server
  symdiff schema                     Print the tool schema

With no file argument the expression is read from stdin.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(
		newEvalCommand(),
		newSimplifyCommand(),
		newDiffCommand(),
		newServeCommand(),
		newSchemaCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
