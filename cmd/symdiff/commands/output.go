package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/njchilds90/symdiff"
)

const (
	formatString = "string"
	formatLaTeX  = "latex"
	formatJSON   = "json"
	formatGo     = "go"
)

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", formatString, "Output format: string, latex, json or go")
}

// readExpr decodes the tree in the file named by args[0], or stdin.
func readExpr(cmd *cobra.Command, args []string) (symdiff.Expr, error) {
	var (
		data []byte
		err  error
	)
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read expression: %w", err)
	}
	return symdiff.ParseJSON(data)
}

func writeExpr(cmd *cobra.Command, e symdiff.Expr, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case formatString:
		fmt.Fprintln(out, symdiff.String(e))
	case formatLaTeX:
		fmt.Fprintln(out, symdiff.LaTeX(e))
	case formatJSON:
		s, err := symdiff.ToJSON(e)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	case formatGo:
		fmt.Fprintf(out, "%# v\n", pretty.Formatter(e))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
