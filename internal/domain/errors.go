package domain

import (
	"errors"
	"fmt"
)

// ErrValidation indicates a mutation was rejected because its input is
// malformed. Validation failures are surfaced synchronously and never retried.
var ErrValidation = errors.New("validation failed")

// Validationf wraps ErrValidation with a formatted detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
