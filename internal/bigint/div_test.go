package bigint

import (
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/apmath/intcalc/internal/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestQuoRemTruncating pins the truncating convention: the quotient rounds
// toward zero and the remainder carries the dividend's sign.
func TestQuoRemTruncating(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x, y, q, r string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"6", "3", "2", "0"},
		{"0", "5", "0", "0"},
		{"5", "7", "0", "5"},
		{"1000000000000000000", "999999999", "1000000001", "1"},
	}
	for _, tc := range cases {
		q, r, err := MustParse(tc.x).QuoRem(MustParse(tc.y))
		if err != nil {
			t.Fatalf("QuoRem(%s, %s) failed: %v", tc.x, tc.y, err)
		}
		if q.String() != tc.q || r.String() != tc.r {
			t.Errorf("QuoRem(%s, %s) = (%s, %s), want (%s, %s)", tc.x, tc.y, q, r, tc.q, tc.r)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()

	x := MustParse("42")
	if _, _, err := x.QuoRem(Zero()); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("QuoRem by zero: expected division-by-zero error, got %v", err)
	}
	if _, err := x.Quo(Zero()); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("Quo by zero: expected division-by-zero error, got %v", err)
	}
	if _, err := x.Rem(Zero()); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("Rem by zero: expected division-by-zero error, got %v", err)
	}
}

// TestKnuthDivisionLarge exercises the multi-limb Knuth path against
// math/big, which uses the same truncating convention in Quo/Rem.
func TestKnuthDivisionLarge(t *testing.T) {
	t.Parallel()

	cases := []struct{ x, y string }{
		{"123456789012345678901234567890123456789", "987654321987654321"},
		{"99999999999999999999999999999999999999", "1000000001"},
		{"-340282366920938463463374607431768211456", "18446744073709551617"},
		{"340282366920938463463374607431768211455", "-4294967297"},
	}
	for _, tc := range cases {
		q, r, err := MustParse(tc.x).QuoRem(MustParse(tc.y))
		if err != nil {
			t.Fatalf("QuoRem(%s, %s) failed: %v", tc.x, tc.y, err)
		}

		bx, _ := new(big.Int).SetString(tc.x, 10)
		by, _ := new(big.Int).SetString(tc.y, 10)
		wq, wr := new(big.Int).QuoRem(bx, by, new(big.Int))

		if q.String() != wq.String() || r.String() != wr.String() {
			t.Errorf("QuoRem(%s, %s) = (%s, %s), want (%s, %s)", tc.x, tc.y, q, r, wq, wr)
		}
	}
}

// TestDivisionProperties verifies the Euclidean identity x = q*y + r and
// the remainder bound |r| < |y| on random values.
func TestDivisionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("x equals q*y + r", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				return true
			}
			x, y := NewFromInt64(a), NewFromInt64(b)
			q, r, err := x.QuoRem(y)
			if err != nil {
				return false
			}
			return q.Mul(y).Add(r).Equal(x)
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("|r| < |y|", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				return true
			}
			x, y := NewFromInt64(a), NewFromInt64(b)
			_, r, err := x.QuoRem(y)
			if err != nil {
				return false
			}
			return r.Abs().Cmp(y.Abs()) < 0
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("remainder carries the dividend's sign", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				return true
			}
			x, y := NewFromInt64(a), NewFromInt64(b)
			_, r, err := x.QuoRem(y)
			if err != nil {
				return false
			}
			return r.IsZero() || r.Sign() == x.Sign()
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}
