// Package cli implements the guarddiv command line.
//
// stdout carries only the transcript lines so it can be compared byte for
// byte; every diagnostic goes to stderr.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pkordes/guarddiv/internal/config"
	"github.com/pkordes/guarddiv/internal/domain"
	"github.com/pkordes/guarddiv/internal/logger"
	"github.com/pkordes/guarddiv/internal/service"
)

// Exit codes.
const (
	// ExitOK covers both handled paths: division by zero and success.
	ExitOK = 0
	// ExitUnhandled means an error escaped the guarded block.
	ExitUnhandled = 1
	// ExitUsage means the arguments or environment were invalid.
	ExitUsage = 2
)

// UsageError reports bad arguments or configuration.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Run executes the command with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(stderr, "guarddiv:", err)

	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitUnhandled
}

// NewRootCommand builds the guarddiv cobra command writing the transcript to
// stdout and logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "guarddiv [dividend] [divisor]",
		Short: "Divide two integers, reporting division by zero",
		Long: `guarddiv divides dividend by divisor (defaults: 10 and 0).

Division by zero is reported as "Error: division by zero"; otherwise
"No exception occurred." is printed. "This will always execute." is
printed last in every case. Use -- before negative operands.`,
		Example:       "  guarddiv\n  guarddiv 10 2\n  guarddiv -- -7 2",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}

			logCfg, err := config.LoadLogging()
			if err != nil {
				return &UsageError{Err: err}
			}
			if verbose {
				logCfg.Level = "debug"
			}
			log := logger.New(stderr, logCfg.Level, logCfg.Format)

			_, err = service.NewDivisionService(log).Evaluate(cmd.Context(), stdout, ops)
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the path taken at debug level")

	return cmd
}

// parseOperands maps up to two positional arguments onto the default operands.
func parseOperands(args []string) (domain.Operands, error) {
	ops := domain.DefaultOperands()
	targets := []*int64{&ops.Dividend, &ops.Divisor}
	names := []string{"dividend", "divisor"}
	for i, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return domain.Operands{}, &UsageError{Err: fmt.Errorf("invalid %s %q: %w", names[i], arg, domain.ErrValidation)}
		}
		*targets[i] = n
	}
	return ops, nil
}
