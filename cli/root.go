// Package cli implements the tabsimplex command line.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"q.log/tabsimplex/instance"
	"q.log/tabsimplex/instance/mps"
	"q.log/tabsimplex/render"
	"q.log/tabsimplex/simplex"
)

// NewCommand returns the root command. Logging goes to log.
func NewCommand(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tabsimplex",
		Short:         "Solve max c'x s.t. Ax <= b, x >= 0 with the tableau simplex method",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newSolveCommand(log),
		newExamplesCommand(log),
	)
	return cmd
}

func newSolveCommand(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve problems stored in YAML, JSON or MPS files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, log)
			if err != nil {
				return err
			}
			for i, filename := range args {
				log.WithField("file", filename).Info("loading problem")
				p, err := readProblem(filename)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "--------------------------------")
				}
				if err := run(cmd.OutOrStdout(), log, cfg, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addSolverFlags(cmd.Flags())
	return cmd
}

func newExamplesCommand(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples [NAME...]",
		Short: "Solve the built-in example problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, log)
			if err != nil {
				return err
			}
			problems := instance.Examples()
			if len(args) > 0 {
				problems = problems[:0]
				for _, name := range args {
					p, err := instance.Example(name)
					if err != nil {
						return err
					}
					problems = append(problems, p)
				}
			}
			for i, p := range problems {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "--------------------------------")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", p.Model.Name)
				if err := run(cmd.OutOrStdout(), log, cfg, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addSolverFlags(cmd.Flags())
	return cmd
}

func setup(cmd *cobra.Command, log *logrus.Logger) (*Config, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := cfg.configureLogging(log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readProblem(filename string) (*instance.Problem, error) {
	if strings.EqualFold(filepath.Ext(filename), ".mps") {
		m, err := mps.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		return &instance.Problem{Model: m}, nil
	}
	return instance.NewReader(filename).ConstructModelFromFile()
}

// run solves one problem and prints its statement, optional trace and result.
func run(w io.Writer, log *logrus.Logger, cfg *Config, p *instance.Problem) error {
	rule, err := cfg.rule()
	if err != nil {
		return err
	}
	eps, defaulted := cfg.tolerance(p)

	render.Problem(w, p.Model, eps, defaulted)

	opts := []simplex.Option{
		simplex.WithTolerance(eps),
		simplex.WithMaxIterations(cfg.MaxIterations),
		simplex.WithLogger(logrus.NewEntry(log)),
	}
	if cfg.ruleSet {
		opts = append(opts, simplex.WithRule(rule))
	}
	if cfg.Trace {
		opts = append(opts, simplex.WithObserver(render.Tracer{W: w}))
	}

	res, err := simplex.Solve(p.Model, opts...)
	if err != nil {
		return errors.Wrapf(err, "solving %s", p.Model.Name)
	}
	if cfg.Trace {
		fmt.Fprintln(w, "-----------")
	}
	render.Result(w, res)
	return nil
}
