// Package guard implements a protected region with a handler scoped to
// division-by-zero, a success region and a cleanup region that runs on every
// exit path.
package guard

import (
	"errors"

	"github.com/pkordes/guarddiv/internal/domain"
)

// Block groups the four regions of a guarded evaluation.
// Any region may be nil, in which case it is skipped.
type Block struct {
	// Try is the protected region.
	Try func() error

	// Catch runs only when Try fails with a *domain.DivisionByZeroError.
	// A non-nil return value propagates out of Run.
	Catch func(err *domain.DivisionByZeroError) error

	// Else runs only when Try returns nil.
	Else func() error

	// Finally runs exactly once after everything else, including when an
	// error or panic is leaving Run.
	Finally func() error
}

// Run executes the block and returns the error that escapes it, if any.
//
// Errors from Try other than *domain.DivisionByZeroError are returned
// unchanged, without running Catch or Else. An error from Finally is joined
// with whatever error was already leaving Run.
func (b Block) Run() (err error) {
	if b.Finally != nil {
		defer func() {
			if ferr := b.Finally(); ferr != nil {
				err = errors.Join(err, ferr)
			}
		}()
	}

	if b.Try != nil {
		err = b.Try()
	}
	if err == nil {
		if b.Else != nil {
			return b.Else()
		}
		return nil
	}

	var dz *domain.DivisionByZeroError
	if !errors.As(err, &dz) {
		return err
	}
	if b.Catch != nil {
		return b.Catch(dz)
	}
	return nil
}
