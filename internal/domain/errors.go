package domain

import "errors"

// DivisionByZeroError is the one failure kind the guarded division recovers
// from locally. Match it with errors.As; it is never rethrown.
type DivisionByZeroError struct {
	Message string
}

// NewDivisionByZeroError returns the error raised when the divisor is zero.
func NewDivisionByZeroError() *DivisionByZeroError {
	return &DivisionByZeroError{Message: "division by zero"}
}

// Error satisfies [error].
func (e *DivisionByZeroError) Error() string {
	return e.Message
}

// ErrOverflow is returned when the quotient cannot be represented
// (math.MinInt64 / -1). No handler recognizes it, so it always propagates.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrOverflow = errors.New("integer overflow")

// ErrValidation is returned when operand input is malformed
// (e.g. a non-numeric query parameter or an unknown JSON field).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")
