package apperrors

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	err := NewFormatError("12x", 10, "invalid digit 'x'")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Error("FormatError should unwrap to ErrInvalidFormat")
	}
	msg := err.Error()
	for _, part := range []string{"12x", "10", "invalid digit"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error message %q missing %q", msg, part)
		}
	}
}

func TestDivisionByZeroError(t *testing.T) {
	t.Parallel()

	err := DivisionByZeroError{Operation: "mod"}
	if !errors.Is(err, ErrDivisionByZero) {
		t.Error("DivisionByZeroError should unwrap to ErrDivisionByZero")
	}
	if !strings.Contains(err.Error(), "mod") {
		t.Errorf("error message %q missing operation name", err.Error())
	}
}

func TestArgumentError(t *testing.T) {
	t.Parallel()

	err := NewArgumentError("factorial", "negative operand %s", "-5")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("ArgumentError should unwrap to ErrInvalidArgument")
	}
	msg := err.Error()
	if !strings.Contains(msg, "factorial") || !strings.Contains(msg, "-5") {
		t.Errorf("error message %q missing detail", msg)
	}
}

func TestOverflowError(t *testing.T) {
	t.Parallel()

	err := OverflowError{Target: "int64"}
	if !errors.Is(err, ErrOverflow) {
		t.Error("OverflowError should unwrap to ErrOverflow")
	}
	if !strings.Contains(err.Error(), "int64") {
		t.Errorf("error message %q missing target type", err.Error())
	}
}

func TestServerError(t *testing.T) {
	t.Parallel()

	cause := errors.New("listen failed")
	err := NewServerError("startup", cause)
	if !errors.Is(err, cause) {
		t.Error("ServerError should unwrap to its cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil should stay nil")
	}

	base := errors.New("boom")
	wrapped := WrapError(base, "while doing %s", "work")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}
	if !strings.Contains(wrapped.Error(), "while doing work") {
		t.Errorf("wrapped message %q missing context", wrapped.Error())
	}
}
