package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information - can be set at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of symdiff",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "symdiff version %s\n", Version)
			if GitCommit != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "  Git commit: %s\n", GitCommit)
			}
		},
	}
}
