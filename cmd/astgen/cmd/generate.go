package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/astgen/driver"
	"github.com/teranos/astgen/errors"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		all    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate <family-id>",
		Short: "Generate the node types of a family",
		Long: `Build the family, render it for the language its destination names and
write it atomically. A destination that already holds identical content is
not rewritten.

Examples:
  astgen generate expr
  astgen generate --all
  astgen generate expr -o build/Expr.cs`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: a.completeFamilies,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case all && len(args) > 0:
				return errors.New("--all does not take a family id")
			case all && output != "":
				return errors.New("--output needs a single family id")
			case !all && len(args) == 0:
				return errors.WithHint(
					errors.New("missing family id"),
					"run 'astgen list' to see registered families, or use --all",
				)
			}

			d := a.driver()
			if all {
				results, err := d.GenerateAll()
				for _, r := range results {
					printResult(cmd, r)
				}
				return err
			}

			result, err := d.GenerateTo(args[0], output)
			if err != nil {
				return err
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Generate every registered family")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of the registered destination")
	return cmd
}

func printResult(cmd *cobra.Command, r *driver.Result) {
	if r.Unchanged {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is up to date (%d shapes)\n", r.Path, r.Shapes)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s (%d shapes)\n", r.Path, r.Shapes)
}
