package cmd

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/astgen/errors"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [family-id...]",
		Short: "Check that generated files are up to date",
		Long: `Render families (all of them by default) and compare the result with the
files on disk. Nothing is written.

Exit codes:
  0 - Generated files are up to date
  1 - A file is stale or missing (diff shown), or the check failed

Examples:
  astgen check
  astgen check expr stmt`,
		ValidArgsFunction: a.completeFamilies,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			result, err := a.driver().Check(args...)
			if err != nil {
				return err
			}

			if result.UpToDate {
				pterm.Success.WithWriter(out).Printfln("%d generated files are up to date", result.Checked)
				return nil
			}

			for _, stale := range result.Stale {
				if stale.Missing {
					pterm.Error.WithWriter(out).Printfln("%s: %s is missing", stale.ID, stale.Path)
					continue
				}
				pterm.Error.WithWriter(out).Printfln("%s: %s is out of date", stale.ID, stale.Path)
				for _, line := range strings.SplitAfter(stale.Diff, "\n") {
					switch {
					case strings.HasPrefix(line, "+"):
						pterm.Fprint(out, pterm.FgGreen.Sprint("  "+line))
					case strings.HasPrefix(line, "-"):
						pterm.Fprint(out, pterm.FgRed.Sprint("  "+line))
					}
				}
			}

			return errors.WithHint(
				errors.Newf("%d of %d generated files are out of date", len(result.Stale), result.Checked),
				"run 'astgen generate --all' to update",
			)
		},
	}
}
