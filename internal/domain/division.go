// Package domain contains the core data types for guarddiv.
// This package depends only on uuid and is imported by every other
// internal package (guard, service, handler).
package domain

import "github.com/google/uuid"

// Fixed transcript lines. Callers compare against these, never against
// literals, so the CLI and the API cannot drift apart.
const (
	ErrorLinePrefix = "Error: "
	SuccessLine     = "No exception occurred."
	CleanupLine     = "This will always execute."
)

// DefaultDividend and DefaultDivisor are used when the caller omits operands.
const (
	DefaultDividend int64 = 10
	DefaultDivisor  int64 = 0
)

// Operands are the two integers fed to the guarded division.
type Operands struct {
	Dividend int64 `json:"dividend"`
	Divisor  int64 `json:"divisor"`
}

// DefaultOperands returns (10, 0).
func DefaultOperands() Operands {
	return Operands{Dividend: DefaultDividend, Divisor: DefaultDivisor}
}

// Path names the region that ran between the protected region and cleanup.
type Path string

const (
	PathError   Path = "error"
	PathSuccess Path = "success"
)

// Outcome records a single guarded evaluation.
// Exactly one of Quotient (success path) or Error (error path) is set.
type Outcome struct {
	ID       uuid.UUID `json:"id"`
	Operands Operands  `json:"operands"`
	Path     Path      `json:"path,omitempty"`
	Quotient *int64    `json:"quotient,omitempty"`
	Error    string    `json:"error,omitempty"`
	Lines    []string  `json:"lines"`
}

// ErrorLine formats the line emitted by the error region.
func ErrorLine(description string) string {
	return ErrorLinePrefix + description
}
