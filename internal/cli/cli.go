// Package cli implements the mcf command line interface: a single
// command that reads a minimum cost flow instance from a DIMACS
// min-file, solves it, and writes the flow assignment to an output
// file. Diagnostics go to stderr so the output file carries nothing but
// the flow.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rhartert/mcflow/dimacs"
	"github.com/rhartert/mcflow/mcf"
	"github.com/rhartert/mcflow/solver"
)

// Process exit codes. Every error kind of the pipeline maps to a
// distinct code so callers can tell failures apart.
const (
	ExitOK         = 0
	ExitInternal   = 1
	ExitUsage      = 2
	ExitIO         = 3
	ExitFormat     = 4
	ExitConfig     = 5
	ExitInfeasible = 6
)

// UsageError reports a bad invocation of the command.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: mcf <input> <output>: %s", e.Reason)
}

// Execute runs the mcf command on os.Args and returns the process exit
// code.
func Execute() int {
	logger := newLogger(os.Stderr, charmlog.InfoLevel)

	var verbose bool
	root := &cobra.Command{
		Use:           "mcf <input> <output>",
		Short:         "mcf computes a minimum cost flow for a DIMACS min-file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &UsageError{Reason: fmt.Sprintf("want an input and an output path, got %d argument(s)", len(args))}
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, args[0], args[1])
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		return ExitCode(err)
	}
	return ExitOK
}

// run executes the read, solve, write pipeline. The flow assignment is
// rendered in memory first: a failed run must not leave a partial
// output file behind.
func run(logger *charmlog.Logger, input, output string) error {
	inst, err := dimacs.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Info("instance read",
		"nodes", inst.Graph.NumNodes(),
		"arcs", inst.Graph.NumArcs(),
	)

	res, err := solver.Solve(inst, solver.Config{})
	if err != nil {
		return err
	}
	logger.Info("optimal flow found", "cost", res.Cost)
	logger.Debug("search finished",
		"phases", res.Phases,
		"augmentations", res.Augmentations,
	)

	var buf bytes.Buffer
	if err := dimacs.WriteFlow(&buf, inst.Graph, res.Flow); err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Debug("flow written", "path", output)
	return nil
}

// ExitCode maps an error returned by the pipeline to a process exit
// code.
func ExitCode(err error) int {
	var usageErr *UsageError
	var formatErr *dimacs.FormatError
	var configErr *mcf.ConfigError
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.As(err, &formatErr):
		return ExitFormat
	case errors.As(err, &configErr):
		return ExitConfig
	case errors.Is(err, mcf.ErrInfeasible):
		return ExitInfeasible
	case errors.As(err, &pathErr):
		return ExitIO
	default:
		return ExitInternal
	}
}

// newLogger creates a logger writing to w with timestamped, leveled
// output.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
