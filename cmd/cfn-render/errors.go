package main

import "fmt"

// InputError covers a missing template file, no file matching a pattern, or
// a malformed key=value flag (spec.md §7, exit code 1).
type InputError struct {
	msg string
}

func (e *InputError) Error() string { return e.msg }

func newInputError(format string, args ...any) error {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// ValidationFailure wraps a non-nil error from validate.Adapter.Validate,
// distinguishing "rules ran and something failed" (exit code 2) from every
// other kind of failure (exit code 3).
type ValidationFailure struct {
	err error
}

func (e *ValidationFailure) Error() string { return e.err.Error() }
func (e *ValidationFailure) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	switch err.(type) {
	case *InputError:
		return 1
	case *ValidationFailure:
		return 2
	default:
		return 3
	}
}
