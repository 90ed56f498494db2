package bigint

import (
	"errors"
	"testing"

	apperrors "github.com/apmath/intcalc/internal/errors"
)

func TestRandomDigits(t *testing.T) {
	t.Parallel()

	// Digit counts straddling the limb width of nine decimal digits.
	for _, digits := range []int{1, 2, 8, 9, 10, 17, 18, 19, 50, 100} {
		for trial := 0; trial < 20; trial++ {
			got, err := RandomDigits(digits)
			if err != nil {
				t.Fatalf("RandomDigits(%d) failed: %v", digits, err)
			}
			s := got.String()
			if len(s) != digits {
				t.Fatalf("RandomDigits(%d) produced %d digits: %s", digits, len(s), s)
			}
			if s[0] == '0' && digits > 1 {
				t.Fatalf("RandomDigits(%d) produced leading zero: %s", digits, s)
			}
			if got.Sign() != 1 {
				t.Fatalf("RandomDigits(%d) produced non-positive value: %s", digits, s)
			}
		}
	}
}

func TestRandomDigitsInvalidCount(t *testing.T) {
	t.Parallel()

	for _, digits := range []int{0, -1, -100} {
		if _, err := RandomDigits(digits); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Errorf("RandomDigits(%d): expected argument error, got %v", digits, err)
		}
	}
}

func TestRandomDigitsVaries(t *testing.T) {
	t.Parallel()

	// 40-digit values repeating within ten draws would indicate a broken
	// generator rather than bad luck.
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		got, err := RandomDigits(40)
		if err != nil {
			t.Fatalf("RandomDigits failed: %v", err)
		}
		seen[got.String()] = true
	}
	if len(seen) < 2 {
		t.Error("ten draws of 40 digits produced a single value")
	}
}
