package menu

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected line of input.
type ErrorKind int

const (
	// OutOfRange is an integer outside [1, number of options].
	OutOfRange ErrorKind = iota + 1
	// NotAnInteger is input that is neither an integer nor the quit token.
	NotAnInteger
	// ReadFailure means no line could be read from the input.
	ReadFailure
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "out_of_range"
	case NotAnInteger:
		return "not_an_integer"
	case ReadFailure:
		return "read_failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// InputError describes why a line did not select an option.
// Error returns the message shown to the user.
type InputError struct {
	Kind  ErrorKind
	Input string
	Err   error // underlying read error, ReadFailure only
}

func (e *InputError) Error() string {
	switch e.Kind {
	case OutOfRange:
		return "Invalid selection."
	case NotAnInteger:
		return "Please enter an integer."
	case ReadFailure:
		return "Error reading option."
	default:
		return fmt.Sprintf("unknown input error %q", e.Input)
	}
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func newInputError(kind ErrorKind, input string) *InputError {
	return &InputError{Kind: kind, Input: input}
}

func isKind(err error, kind ErrorKind) bool {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Kind == kind
	}
	return false
}

// IsOutOfRange returns true if the input was an integer with no matching option.
func IsOutOfRange(err error) bool {
	return isKind(err, OutOfRange)
}

// IsNotAnInteger returns true if the input was neither an integer nor the quit token.
func IsNotAnInteger(err error) bool {
	return isKind(err, NotAnInteger)
}

// IsReadFailure returns true if no line could be read.
func IsReadFailure(err error) bool {
	return isKind(err, ReadFailure)
}
