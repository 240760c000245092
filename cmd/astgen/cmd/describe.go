package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/render"
	"github.com/teranos/astgen/target"
)

func newDescribeCmd(a *app) *cobra.Command {
	var targetName string

	cmd := &cobra.Command{
		Use:   "describe <family-id>",
		Short: "Print the model of a family",
		Long: `Print a family as one target sees it: namespace, imports, and each
shape with its fields, types, defaults and constructor order.

Examples:
  astgen describe expr
  astgen describe stmt --format json --target csharp`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeFamilies,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}

			var tgt *target.Target
			if targetName != "" {
				tgt, err = target.ByName(targetName)
			} else {
				tgt, err = target.ForPath(entry.Destination)
			}
			if err != nil {
				return err
			}

			family, err := entry.Build()
			if err != nil {
				return errors.Wrapf(err, "failed to build family %s", entry.ID)
			}

			snap, err := render.Describe(family, tgt)
			if err != nil {
				return errors.Wrapf(err, "failed to describe family %s", entry.ID)
			}
			data, err := render.Encode(snap, a.cfg.Format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().String("format", render.FormatYAML, "Output format: "+strings.Join(render.Formats, ", "))
	cmd.Flags().StringVar(&targetName, "target", "", "Describe for this language instead of the destination's ("+strings.Join(target.Names(), ", ")+")")
	return cmd
}
