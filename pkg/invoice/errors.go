package invoice

import (
	"fmt"
	"strings"
)

// ArgumentError is returned when the command is not given exactly one CSV path.
type ArgumentError struct {
	Got int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Not enough or too many arguments (expected 1, got %d)", e.Got)
}

// HeaderMismatchError is returned when the first CSV row is not the expected header.
type HeaderMismatchError struct {
	Expected []string
	Actual   []string
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("header fields expected to be: %s, got: %s",
		strings.Join(e.Expected, ","), strings.Join(e.Actual, ","))
}

// FormatError reports a field value that could not be converted into an Entry.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
