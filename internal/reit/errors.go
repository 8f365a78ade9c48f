package reit

import "fmt"

// InvalidInputError marks request data that failed validation before any
// node call was attempted.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

func errInvalid(format string, a ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, a...)}
}
