// Package apperrors defines the structured error types shared by the
// arbitrary-precision engine and the application layers, allowing for a
// clear distinction between error classes (malformed input, division by
// zero, invalid argument, overflow, configuration) and for carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method where they carry a cause, so
// that errors.Is() and errors.As() work across the whole chain.
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between backends.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Sentinel errors for the engine's failure taxonomy. Callers can test for
// them with errors.Is regardless of the concrete error type that carries
// the contextual message.
var (
	// ErrInvalidFormat reports a malformed number string: an empty digit
	// sequence, a digit outside the base's alphabet, or a base outside [2,36].
	ErrInvalidFormat = errors.New("invalid number format")

	// ErrDivisionByZero reports a division, remainder, or modular
	// exponentiation with a zero-valued divisor or modulus.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidArgument reports an argument outside an operation's domain,
	// such as a negative factorial operand or a hyperoperation level below 1.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow reports a conversion to a native integer type whose range
	// cannot represent the value.
	ErrOverflow = errors.New("value out of range")
)

// FormatError describes a string that could not be parsed as a number.
// It wraps ErrInvalidFormat so that errors.Is(err, ErrInvalidFormat) holds.
type FormatError struct {
	// Input is the offending string (possibly truncated by the caller).
	Input string
	// Base is the numeric base the string was parsed in.
	Base int
	// Reason explains what made the input invalid.
	Reason string
}

// Error returns the error message for a FormatError.
func (e FormatError) Error() string {
	return fmt.Sprintf("invalid number %q in base %d: %s", e.Input, e.Base, e.Reason)
}

// Unwrap returns ErrInvalidFormat, enabling errors.Is checks.
func (e FormatError) Unwrap() error { return ErrInvalidFormat }

// NewFormatError creates a FormatError for the given input and base.
//
// Parameters:
//   - input: The string that failed to parse.
//   - base: The base it was parsed in.
//   - reason: A short description of the defect.
//
// Returns:
//   - error: A new FormatError instance.
func NewFormatError(input string, base int, reason string) error {
	return FormatError{Input: input, Base: base, Reason: reason}
}

// DivisionByZeroError describes a division-family operation whose divisor or
// modulus was zero. It wraps ErrDivisionByZero.
type DivisionByZeroError struct {
	// Operation is the name of the offending operation ("quo", "rem", "modpow").
	Operation string
}

// Error returns the error message for a DivisionByZeroError.
func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Operation)
}

// Unwrap returns ErrDivisionByZero, enabling errors.Is checks.
func (e DivisionByZeroError) Unwrap() error { return ErrDivisionByZero }

// ArgumentError describes an argument outside an operation's domain.
// It wraps ErrInvalidArgument.
type ArgumentError struct {
	// Operation is the name of the operation that rejected the argument.
	Operation string
	// Message explains the domain constraint that was violated.
	Message string
}

// Error returns the error message for an ArgumentError.
func (e ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap returns ErrInvalidArgument, enabling errors.Is checks.
func (e ArgumentError) Unwrap() error { return ErrInvalidArgument }

// NewArgumentError creates an ArgumentError with a formatted message.
//
// Parameters:
//   - operation: The operation rejecting the argument.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ArgumentError instance.
func NewArgumentError(operation, format string, a ...any) error {
	return ArgumentError{Operation: operation, Message: fmt.Sprintf(format, a...)}
}

// OverflowError describes a conversion to a native integer type that cannot
// represent the value. It wraps ErrOverflow.
type OverflowError struct {
	// Target names the native type ("int64", "uint64").
	Target string
}

// Error returns the error message for an OverflowError.
func (e OverflowError) Error() string {
	return fmt.Sprintf("value does not fit in %s", e.Target)
}

// Unwrap returns ErrOverflow, enabling errors.Is checks.
func (e OverflowError) Unwrap() error { return ErrOverflow }

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ComputationError encapsulates an engine error while preserving the original
// cause. This allows structured handling and inspection of what went wrong
// during an arbitrary-precision computation.
type ComputationError struct {
	// Cause is the underlying error that triggered this computation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e ComputationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e ComputationError) Unwrap() error { return e.Cause }

// ServerError represents errors that occur in the HTTP server component.
// It wraps an underlying error with additional context specific to the
// server operation.
type ServerError struct {
	// Message is a descriptive message about the server error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message for a ServerError, combining the
// descriptive message and the underlying cause if present.
func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError creates a new ServerError with a message and optional cause.
//
// Parameters:
//   - message: A description of the error context.
//   - cause: The underlying error that occurred (can be nil).
//
// Returns:
//   - error: A new ServerError instance.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
