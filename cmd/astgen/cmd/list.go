package cmd

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/target"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.driver()
			data := pterm.TableData{{"FAMILY", "ROOT", "SHAPES", "TARGET", "DESTINATION"}}

			for _, entry := range a.registry.Entries() {
				family, err := entry.Build()
				if err != nil {
					return errors.Wrapf(err, "failed to build family %s", entry.ID)
				}
				path, err := d.Path(entry.ID)
				if err != nil {
					return err
				}
				tgt, err := target.ForPath(path)
				if err != nil {
					return errors.Wrapf(err, "family %s", entry.ID)
				}
				data = append(data, []string{
					entry.ID,
					family.Root(),
					strconv.Itoa(family.Len()),
					tgt.Name,
					path,
				})
			}

			return pterm.DefaultTable.
				WithHasHeader().
				WithWriter(cmd.OutOrStdout()).
				WithData(data).
				Render()
		},
	}
}
