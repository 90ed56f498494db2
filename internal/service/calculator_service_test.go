package service

import (
	"context"
	"errors"
	"testing"

	"github.com/apmath/intcalc/internal/config"
	apperrors "github.com/apmath/intcalc/internal/errors"
	"github.com/apmath/intcalc/internal/orchestration"
)

func newTestService(maxDigits int) *CalculatorService {
	cfg := config.AppConfig{
		InputBase:  config.DefaultInputBase,
		OutputBase: config.DefaultOutputBase,
		Threshold:  config.DefaultThreshold,
	}
	return NewCalculatorService(orchestration.GlobalFactory(), cfg, maxDigits)
}

func TestComputeOperations(t *testing.T) {
	t.Parallel()

	svc := newTestService(0)
	ctx := context.Background()

	cases := []struct {
		name     string
		op       string
		operands []string
		base     int
		want     string
	}{
		{"Add", "add", []string{"1", "2"}, 10, "3"},
		{"AddHex", "add", []string{"ff", "1"}, 16, "256"},
		{"Factorial", "factorial", []string{"6"}, 10, "720"},
		{"ModPow", "modpow", []string{"1024", "1024", "100"}, 10, "76"},
		{"NegativeDivision", "div", []string{"-7", "2"}, 10, "-3"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := svc.Compute(ctx, tc.op, tc.operands, tc.base)
			if err != nil {
				t.Fatalf("Compute(%s, %v) failed: %v", tc.op, tc.operands, err)
			}
			if got.String() != tc.want {
				t.Errorf("Compute(%s, %v) = %s, want %s", tc.op, tc.operands, got, tc.want)
			}
		})
	}
}

func TestComputeValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(0)
	ctx := context.Background()

	t.Run("UnknownOperation", func(t *testing.T) {
		if _, err := svc.Compute(ctx, "frobnicate", []string{"1"}, 10); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Errorf("expected argument error, got %v", err)
		}
	})

	t.Run("WrongArity", func(t *testing.T) {
		if _, err := svc.Compute(ctx, "add", []string{"1"}, 10); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Errorf("expected arity error, got %v", err)
		}
	})

	t.Run("BadOperand", func(t *testing.T) {
		if _, err := svc.Compute(ctx, "add", []string{"1", "xyz"}, 10); !errors.Is(err, apperrors.ErrInvalidFormat) {
			t.Errorf("expected format error, got %v", err)
		}
	})
}

func TestParseOperandsSizeLimit(t *testing.T) {
	t.Parallel()

	svc := newTestService(5)

	if _, err := svc.ParseOperands("add", []string{"12345", "1"}, 10); err != nil {
		t.Errorf("operand at the limit should pass: %v", err)
	}
	if _, err := svc.ParseOperands("add", []string{"123456", "1"}, 10); !errors.Is(err, ErrOperandTooLarge) {
		t.Errorf("expected ErrOperandTooLarge, got %v", err)
	}

	// Zero means unlimited.
	unlimited := newTestService(0)
	big := make([]byte, 10_000)
	for i := range big {
		big[i] = '7'
	}
	if _, err := unlimited.ParseOperands("incr", []string{string(big)}, 10); err != nil {
		t.Errorf("unlimited service rejected a large operand: %v", err)
	}
}

func TestParseOperandsReturnsParsedValues(t *testing.T) {
	t.Parallel()

	svc := newTestService(0)
	args, err := svc.ParseOperands("modpow", []string{"-ff", "10", "64"}, 16)
	if err != nil {
		t.Fatalf("ParseOperands failed: %v", err)
	}
	if len(args) != 3 {
		t.Fatalf("got %d operands, want 3", len(args))
	}
	if args[0].String() != "-255" || args[1].String() != "16" || args[2].String() != "100" {
		t.Errorf("parsed operands = %v, %v, %v", args[0], args[1], args[2])
	}
}
