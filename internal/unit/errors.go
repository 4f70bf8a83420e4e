package unit

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure in the module wraps exactly one of these, so
// callers test with errors.Is.
var (
	ErrConversionOutOfRange = errors.New("conversion out of range")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrOverflow             = errors.New("arithmetic overflow")
	ErrUnsupportedWidth     = errors.New("unsupported width")
	ErrDomain               = errors.New("argument outside of domain")
)

// OpError provides detailed information about a failed numeric operation.
type OpError struct {
	Op     string // Operation that failed (e.g. "fixed.mul", "cast")
	Kind   error  // One of the Err* kinds above
	Detail string // Additional details
}

// NewError builds an OpError with a formatted detail message.
func NewError(op string, kind error, format string, args ...any) *OpError {
	return &OpError{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

// Unwrap returns the error kind.
func (e *OpError) Unwrap() error {
	return e.Kind
}
