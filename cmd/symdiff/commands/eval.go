package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/njchilds90/symdiff"
)

func newEvalCommand() *cobra.Command {
	var (
		env    = envFlag{}
		format string
	)
	cmd := &cobra.Command{
		Use:   "eval [file.json]",
		Short: "Substitute variable values, then simplify",
		Long: `Substitute the bindings given with --env into the expression and simplify
the result once. Unbound variables are left symbolic.

Examples:
  symdiff eval expr.json -e x=2 -e y=0.5
  symdiff eval expr.json -e x=2,y=0.5
  echo '{"type":"variable","name":"x"}' | symdiff eval -e x=3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := readExpr(cmd, args)
			if err != nil {
				return err
			}
			result, err := symdiff.Evaluate(e, symdiff.Env(env))
			if err != nil {
				return err
			}
			return writeExpr(cmd, result, format)
		},
	}
	cmd.Flags().VarP(env, "env", "e", "Variable bindings name=value, comma separated or repeated")
	addFormatFlag(cmd, &format)
	return cmd
}

// envFlag collects name=value bindings. Later bindings of a name win.
type envFlag symdiff.Env

var _ pflag.Value = envFlag{}

func (f envFlag) String() string {
	pairs := make([]string, 0, len(f))
	for k, v := range f {
		pairs = append(pairs, k.Name+"="+v.String())
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (f envFlag) Set(s string) error {
	for _, b := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(b, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("invalid binding %q: want name=value", b)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("invalid binding %q: %w", b, err)
		}
		f[symdiff.S(name)] = symdiff.N(v)
	}
	return nil
}

func (f envFlag) Type() string { return "bindings" }
