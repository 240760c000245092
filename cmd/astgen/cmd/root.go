// Package cmd implements the astgen command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teranos/astgen/config"
	"github.com/teranos/astgen/driver"
	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/logger"
	"github.com/teranos/astgen/registry"
)

// app is the state shared by the commands of one invocation
type app struct {
	registry *registry.Registry
	cfg      *config.Config
}

func (a *app) driver() *driver.Driver {
	return driver.New(a.registry,
		driver.WithRoot(a.cfg.Root),
		driver.WithLogger(logger.Named("driver")),
		driver.WithVerbosity(a.cfg.Verbose),
	)
}

// completeFamilies offers the registered family ids for shell completion
func (a *app) completeFamilies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return a.registry.IDs(), cobra.ShellCompDirectiveNoFileComp
}

// NewRootCmd returns the astgen command tree over reg
func NewRootCmd(reg *registry.Registry) *cobra.Command {
	a := &app{registry: reg}

	root := &cobra.Command{
		Use:   "astgen",
		Short: "Generate syntax tree node types from declarative families",
		Long: `astgen generates the node types of a syntax tree from a declarative family:
one declaration per node shape, a shared root type and a visitor.

Families are registered in source. Each family has a destination whose
extension selects the output language (.go, .cs, .py). Output is
deterministic and can be checked in.

Examples:
  astgen list                         # Show registered families
  astgen generate expr                # Write parsing/expr.go
  astgen generate --all               # Write every family
  astgen generate stmt -o Stmt.cs     # Render stmt as C# to Stmt.cs
  astgen check                        # Fail if generated files are stale
  astgen describe expr --format json  # Dump the family model`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := logger.Initialize(cfg.JSONLogs, cfg.Verbose); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			if logger.ShouldOutput(cfg.Verbose, logger.OutputConfig) {
				logger.Debugw("Configuration loaded",
					logger.FieldRoot, cfg.Root,
					"verbosity", logger.LevelName(cfg.Verbose),
					"shows", logger.VerbosityDescription(cfg.Verbose),
				)
			}
			return nil
		},
	}

	root.PersistentFlags().String("root", ".", "Directory family destinations are relative to")
	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	root.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newListCmd(a),
		newDescribeCmd(a),
		newVersionCmd(),
	)
	return root
}
