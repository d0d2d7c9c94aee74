package interp

import (
	"errors"
	"fmt"
)

// SyntaxError is a user-visible, recoverable error: bad parsing, type
// mismatches, missing brackets/quotes, unknown symbols, out-of-bounds array
// access, or an unimplemented feature. The dispatcher catches it, prints
// "SYNTAX ERROR: <msg>", and keeps the REPL alive (§7).
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

// NewSyntaxError builds a SyntaxError from a format string.
func NewSyntaxError(format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}

// FatalError is an engine invariant violation: an unknown value type, or a
// lookup of a registered-but-unbound function. The dispatcher catches it,
// prints it, and terminates the REPL (§7).
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string { return e.Message }

// NewFatalError builds a FatalError from a format string.
func NewFatalError(format string, args ...any) *FatalError {
	return &FatalError{Message: fmt.Sprintf(format, args...)}
}

// IsSyntaxError reports whether err is (or wraps) a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// IsFatalError reports whether err is (or wraps) a *FatalError.
func IsFatalError(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
