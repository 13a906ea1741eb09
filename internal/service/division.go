// Package service contains the business logic for guarddiv.
// It binds the guarded block's regions to the fixed transcript lines.
// No transport code lives here: callers supply the io.Writer.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/guarddiv/internal/domain"
	"github.com/pkordes/guarddiv/internal/guard"
)

// DivisionService evaluates guarded divisions and reports each one as a
// transcript of output lines.
type DivisionService struct {
	log   *slog.Logger
	newID func() uuid.UUID
}

// NewDivisionService constructs a DivisionService that logs through log.
// A nil logger falls back to slog.Default().
func NewDivisionService(log *slog.Logger) *DivisionService {
	if log == nil {
		log = slog.Default()
	}
	return &DivisionService{log: log, newID: uuid.New}
}

// Evaluate runs one guarded division of ops, writing each transcript line to w.
//
// A zero divisor is handled locally: the error line is written and Evaluate
// returns a nil error. Every other failure, including a write failure inside
// the error or success region, is returned after the cleanup line has been
// attempted. The returned Outcome always reflects the lines that were emitted.
func (s *DivisionService) Evaluate(ctx context.Context, w io.Writer, ops domain.Operands) (domain.Outcome, error) {
	out := domain.Outcome{
		ID:       s.newID(),
		Operands: ops,
		Lines:    []string{},
	}
	log := s.log.With("run_id", out.ID, "dividend", ops.Dividend, "divisor", ops.Divisor)

	emit := func(line string) error {
		out.Lines = append(out.Lines, line)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write %q: %w", line, err)
		}
		return nil
	}

	var quotient int64
	err := guard.Block{
		Try: func() error {
			var err error
			quotient, err = guard.Divide(ops.Dividend, ops.Divisor)
			return err
		},
		Catch: func(dz *domain.DivisionByZeroError) error {
			out.Path = domain.PathError
			out.Error = dz.Error()
			log.DebugContext(ctx, "division failed, handled", "error", dz)
			return emit(domain.ErrorLine(dz.Error()))
		},
		Else: func() error {
			out.Path = domain.PathSuccess
			out.Quotient = &quotient
			log.DebugContext(ctx, "division succeeded", "quotient", quotient)
			return emit(domain.SuccessLine)
		},
		Finally: func() error {
			return emit(domain.CleanupLine)
		},
	}.Run()
	if err != nil {
		log.WarnContext(ctx, "unhandled error", "error", err)
		return out, fmt.Errorf("service.DivisionService.Evaluate: %w", err)
	}
	return out, nil
}
