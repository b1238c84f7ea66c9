package commands

import (
	"github.com/spf13/cobra"

	"github.com/njchilds90/symdiff"
)

func newSimplifyCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "simplify [file.json]",
		Short: "Fold constants and remove identities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := readExpr(cmd, args)
			if err != nil {
				return err
			}
			result, err := symdiff.Simplify(e)
			if err != nil {
				return err
			}
			return writeExpr(cmd, result, format)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}
