package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symdiff"
)

func newDiffCommand() *cobra.Command {
	var (
		variable string
		order    int
		raw      bool
		format   string
	)
	cmd := &cobra.Command{
		Use:   "diff [file.json]",
		Short: "Differentiate with respect to a variable",
		Long: `Differentiate the expression with respect to --var and simplify the result.

Examples:
  symdiff diff expr.json -v x          d/dx
  symdiff diff expr.json -v x -n 2     d²/dx²
  symdiff diff expr.json -v x --raw    derivative tree before simplification`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw && order != 1 {
				return fmt.Errorf("--raw prints the first derivative only; drop --order %d", order)
			}
			e, err := readExpr(cmd, args)
			if err != nil {
				return err
			}
			v := symdiff.S(variable)
			if raw {
				return writeExpr(cmd, symdiff.Differentiate(e, v), format)
			}
			result, err := symdiff.DiffN(e, v, order)
			if err != nil {
				return err
			}
			return writeExpr(cmd, result, format)
		},
	}
	cmd.Flags().StringVarP(&variable, "var", "v", "", "Variable to differentiate with respect to")
	cmd.Flags().IntVarP(&order, "order", "n", 1, "Order of the derivative")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the first derivative without simplifying (order must be 1)")
	addFormatFlag(cmd, &format)
	_ = cmd.MarkFlagRequired("var")
	return cmd
}
