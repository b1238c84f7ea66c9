package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symdiff"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the tool schema for agent registration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), symdiff.MCPToolSpec())
		},
	}
}
