package reducer

import (
	"errors"
	"fmt"

	"github.com/lumen-lang/lumen/internal/span"
)

// ReduceError is a failure raised by a reduction hook, tied to the span of
// the node whose reduction failed.
//
// There is exactly one error taxonomy at this layer: reduction failure.
// Default hooks never fail; every ReduceError originates in a pass override
// and bubbles unchanged to the traversal root. Rendering the error against
// source text is the diagnostics layer's job; this type only guarantees the
// failure is traceable to an exact span.
type ReduceError struct {
	// Code identifies the error category, named by the pass that raised it.
	Code ReduceErrorCode

	// Message is a human-readable description.
	Message string

	// Span locates the node whose reduction failed.
	Span span.Span
}

// ReduceErrorCode categorizes reduction failures.
type ReduceErrorCode string

// Error implements the error interface.
func (e *ReduceError) Error() string {
	return fmt.Sprintf("reduce failed at %s: %s: %s", e.Span, e.Code, e.Message)
}

// Newf constructs a ReduceError with a formatted message.
func Newf(code ReduceErrorCode, sp span.Span, format string, args ...any) *ReduceError {
	return &ReduceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Span:    sp,
	}
}

// AsReduceError unwraps err looking for a ReduceError.
func AsReduceError(err error) (*ReduceError, bool) {
	var re *ReduceError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
