package cli

import "errors"

// Kinds of user input errors. Every ParseError unwraps to one of these.
var (
	ErrUnknownOption     = errors.New("unknown option")
	ErrMissingValue      = errors.New("missing value")
	ErrInvalidValue      = errors.New("invalid value")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInconsistentFlags = errors.New("inconsistent flags")
)

// ParseError describes a user input error found while scanning arguments.
type ParseError struct {
	Kind    error
	Message string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// ExitError is a custom error type that includes a specific exit code. Any
// output belonging to it has already been written when it is returned.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
