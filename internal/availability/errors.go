package availability

import (
	"errors"
	"fmt"
)

// ErrNoRecord is returned by a RecordStore when no availability record
// exists for the requested (user, week start) pair.
var ErrNoRecord = errors.New("availability record not found")

// ValidationError marks a rejected operation: a violated precondition
// aborts the operation without mutating any state and carries a message
// suitable for showing to the user. Storage failures are never wrapped in
// a ValidationError.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a precondition failure rather
// than a storage fault.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
