package mediatype

import (
	"fmt"

	"github.com/ghettovoice/mediatype/internal/errorutil"
)

// Error is a string error type of the package.
type Error = errorutil.Error

// ErrInvalidMediaType is the error kind of every rejected input.
// Test for it with [errors.Is].
const ErrInvalidMediaType Error = "invalid media type"

// InvalidMediaTypeError is returned by [Parse] when the input does not match the
// media type grammar. It carries the original input.
type InvalidMediaTypeError struct {
	Input string
	cause error
}

func newInvalidMediaTypeError(input string, cause error) *InvalidMediaTypeError {
	return &InvalidMediaTypeError{Input: input, cause: cause}
}

func (e *InvalidMediaTypeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause == nil {
		return fmt.Sprintf("%s: %q", ErrInvalidMediaType, e.Input)
	}
	return fmt.Sprintf("%s: %q: %v", ErrInvalidMediaType, e.Input, e.cause)
}

// Is reports whether target is [ErrInvalidMediaType].
func (e *InvalidMediaTypeError) Is(target error) bool { return target == ErrInvalidMediaType } //nolint:errorlint

// Unwrap returns the grammar rule that rejected the input.
func (e *InvalidMediaTypeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Grammar reports whether the input was rejected by a grammar rule.
func (e *InvalidMediaTypeError) Grammar() bool {
	return e != nil && errorutil.IsGrammarErr(e.cause)
}
