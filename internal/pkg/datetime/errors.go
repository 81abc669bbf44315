package datetime

import (
	"errors"
	"fmt"
)

// ErrFormat is wrapped by every FormatError.
var ErrFormat = errors.New("malformed date or time")

// FormatError reports an input that could not be parsed as a date, clock time
// or duration.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

func formatError(field, value string) error {
	return &FormatError{Field: field, Value: value}
}
