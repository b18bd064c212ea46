package substr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an input that cannot be searched, such as
	// a nil byte slice or text that is not valid UTF-8.
	ErrInvalidArgument = errors.New("substr: invalid argument")

	// ErrInputTooLarge indicates a call whose subject and pattern lengths
	// exceed the Finder's configured work bound.
	ErrInputTooLarge = errors.New("substr: input exceeds work limit")
)

// ArgumentError reports which argument was rejected and why.
// It unwraps to ErrInvalidArgument.
type ArgumentError struct {
	Arg    string
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("substr: invalid argument %s: %s", e.Arg, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
