package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvrec/internal/config"
	"github.com/katalvlaran/lvrec/internal/demo"
)

type demoOptions struct {
	configPath string
	only       []string
	table      bool
	parallel   int
	noColor    bool
}

func newDemoCmd(root *rootOptions) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the algorithm demonstrations",
		Long: `Runs every demonstration (or the subset given by --only) and prints
one "Name: value" line per algorithm, or a table with --table.

Demo keys: sum, factorial, fibonacci, reverse, binary_search, power,
flatten, gcd, merge_sort.

The sample file may also be given through the ` + config.EnvPath + ` environment variable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, root.logger, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file overriding the sample inputs")
	cmd.Flags().StringSliceVarP(&opts.only, "only", "o", nil, "comma-separated demo keys to run")
	cmd.Flags().BoolVarP(&opts.table, "table", "t", false, "print results as a table with timings")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", 1, "number of demos to run concurrently")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	return cmd
}

func runDemo(cmd *cobra.Command, logger *zap.Logger, opts *demoOptions) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	path := config.ResolvePath(opts.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("loaded sample config", zap.String("path", path))
	}

	demos, err := demo.Select(opts.only)
	if err != nil {
		return err
	}

	results, err := demo.NewRunner(logger, opts.parallel).Run(cmd.Context(), cfg, demos)
	if err != nil {
		return err
	}

	printer := demo.NewPrinter(cmd.OutOrStdout(), !opts.noColor && isTerminal(cmd))
	if opts.table {
		printer.Table(results)
	} else if err := printer.Lines(results); err != nil {
		return err
	}

	if failed := demo.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d demos failed", len(failed), len(results))
	}

	return nil
}

// isTerminal reports whether the command writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
