package ecsuite

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel all validation failures unwrap to, so
// callers can test with errors.Is without matching message text.
var ErrValidation = errors.New("ecsuite: validation failed")

// ValidationError reports an input that failed the library's own format or
// membership checks: an unsupported curve/scheme pair, a public key of the
// wrong length, or a key that does not decode to a curve point.
//
// Failures raised by the underlying primitive libraries during Sign and
// Verify are deliberately not converted to this type; they propagate to the
// caller in their native shape.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "ecsuite: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// validationErrorf creates a new ValidationError.
func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
