package orchestration

import (
	"context"
	"errors"
	"testing"

	"github.com/apmath/intcalc/internal/bigint"
	apperrors "github.com/apmath/intcalc/internal/errors"
)

func parseArgs(t *testing.T, operands ...string) []bigint.Int {
	t.Helper()
	args := make([]bigint.Int, len(operands))
	for i, s := range operands {
		args[i] = bigint.MustParse(s)
	}
	return args
}

func TestNativeBackendOperations(t *testing.T) {
	t.Parallel()

	backend := &NativeBackend{}
	ctx := context.Background()

	cases := []struct {
		op       string
		operands []string
		want     string
	}{
		{"add", []string{"18446744073709551615", "2"}, "18446744073709551617"},
		{"sub", []string{"3", "5"}, "-2"},
		{"mul", []string{"999999999", "999999999"}, "999999998000000001"},
		{"div", []string{"-7", "2"}, "-3"},
		{"mod", []string{"-7", "2"}, "-1"},
		{"pow", []string{"2", "10"}, "1024"},
		{"modpow", []string{"1024", "1024", "100"}, "76"},
		{"factorial", []string{"5"}, "120"},
		{"nextprime", []string{"7"}, "11"},
		{"hyper", []string{"4", "3", "3"}, "7625597484987"},
		{"incr", []string{"999999999"}, "1000000000"},
		{"decr", []string{"0"}, "-1"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.op, func(t *testing.T) {
			t.Parallel()
			got, err := backend.Evaluate(ctx, nil, 0, tc.op, parseArgs(t, tc.operands...), bigint.Options{})
			if err != nil {
				t.Fatalf("Evaluate(%s, %v) failed: %v", tc.op, tc.operands, err)
			}
			if got.String() != tc.want {
				t.Errorf("Evaluate(%s, %v) = %s, want %s", tc.op, tc.operands, got, tc.want)
			}
		})
	}
}

func TestNativeBackendCompare(t *testing.T) {
	t.Parallel()

	backend := &NativeBackend{}
	ctx := context.Background()

	cases := []struct {
		name     string
		operands []string
		want     string
	}{
		{"Less", []string{"-7", "2"}, "-1"},
		{"Equal", []string{"999999999999999999999", "999999999999999999999"}, "0"},
		{"Greater", []string{"2", "-7"}, "1"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := backend.Evaluate(ctx, nil, 0, "compare", parseArgs(t, tc.operands...), bigint.Options{})
			if err != nil {
				t.Fatalf("compare(%v) failed: %v", tc.operands, err)
			}
			if got.String() != tc.want {
				t.Errorf("compare(%v) = %s, want %s", tc.operands, got, tc.want)
			}
		})
	}
}

func TestNativeBackendRandom(t *testing.T) {
	t.Parallel()

	backend := &NativeBackend{}
	got, err := backend.Evaluate(context.Background(), nil, 0, "random", parseArgs(t, "25"), bigint.Options{})
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	if len(got.String()) != 25 {
		t.Errorf("random(25) produced %d digits", len(got.String()))
	}
}

func TestNativeBackendArity(t *testing.T) {
	t.Parallel()

	backend := &NativeBackend{}
	ctx := context.Background()

	if _, err := backend.Evaluate(ctx, nil, 0, "add", parseArgs(t, "1"), bigint.Options{}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected arity error, got %v", err)
	}
	if _, err := backend.Evaluate(ctx, nil, 0, "frobnicate", nil, bigint.Options{}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected unknown-operation error, got %v", err)
	}
}

func TestNativeBackendReportsProgress(t *testing.T) {
	t.Parallel()

	backend := &NativeBackend{}
	ch := make(chan bigint.ProgressUpdate, 64)

	_, err := backend.Evaluate(context.Background(), ch, 3, "factorial", parseArgs(t, "200"), bigint.Options{})
	if err != nil {
		t.Fatalf("factorial failed: %v", err)
	}
	close(ch)

	sawCompletion := false
	for update := range ch {
		if update.OperationIndex != 3 {
			t.Errorf("update carries index %d, want 3", update.OperationIndex)
		}
		if update.Value == 1.0 {
			sawCompletion = true
		}
	}
	if !sawCompletion {
		t.Error("no completion sample observed")
	}
}

func TestNativeBackendSupports(t *testing.T) {
	t.Parallel()

	backend := &NativeBackend{}
	for _, op := range AvailableOperations() {
		if !backend.Supports(op) {
			t.Errorf("native backend should support %q", op)
		}
	}
	if backend.Supports("frobnicate") {
		t.Error("native backend claims to support an unknown operation")
	}
}
