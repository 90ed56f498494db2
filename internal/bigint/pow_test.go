package bigint

import (
	"context"
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/apmath/intcalc/internal/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base, exp, want string
	}{
		{"2", "10", "1024"},
		{"0", "0", "1"}, // 0^0 == 1 by convention
		{"0", "5", "0"},
		{"5", "0", "1"},
		{"-2", "3", "-8"},
		{"-2", "4", "16"},
		{"10", "30", "1000000000000000000000000000000"},
		{"3", "100", "515377520732011331036461129765621272702107522001"},
	}
	for _, tc := range cases {
		got, err := Pow(MustParse(tc.base), MustParse(tc.exp))
		if err != nil {
			t.Fatalf("Pow(%s, %s) failed: %v", tc.base, tc.exp, err)
		}
		if got.String() != tc.want {
			t.Errorf("Pow(%s, %s) = %s, want %s", tc.base, tc.exp, got, tc.want)
		}
	}
}

func TestPowNegativeExponent(t *testing.T) {
	t.Parallel()

	if _, err := Pow(MustParse("2"), MustParse("-1")); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected argument error for negative exponent, got %v", err)
	}
}

func TestPowCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := PowContext(ctx, MustParse("2"), MustParse("100000"), Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestModPow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base, exp, mod, want string
	}{
		{"1024", "1024", "100", "76"},
		{"2", "10", "1000", "24"},
		{"5", "0", "7", "1"},
		{"0", "0", "7", "1"},
		{"7", "1", "7", "0"},
		{"4", "13", "497", "445"},
		// Canonical residue: always in [0, |m|) regardless of signs.
		{"-2", "3", "5", "2"},
		{"2", "3", "-5", "3"},
		{"-2", "3", "-5", "2"},
		{"123", "456", "1", "0"},
	}
	for _, tc := range cases {
		got, err := ModPow(MustParse(tc.base), MustParse(tc.exp), MustParse(tc.mod))
		if err != nil {
			t.Fatalf("ModPow(%s, %s, %s) failed: %v", tc.base, tc.exp, tc.mod, err)
		}
		if got.String() != tc.want {
			t.Errorf("ModPow(%s, %s, %s) = %s, want %s", tc.base, tc.exp, tc.mod, got, tc.want)
		}
	}
}

func TestModPowErrors(t *testing.T) {
	t.Parallel()

	if _, err := ModPow(MustParse("2"), MustParse("3"), Zero()); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("expected division-by-zero error for zero modulus, got %v", err)
	}
	if _, err := ModPow(MustParse("2"), MustParse("-3"), MustParse("7")); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected argument error for negative exponent, got %v", err)
	}
}

// TestModPowAgainstMathBig cross-checks against big.Int.Exp, which uses the
// same canonical non-negative residue.
func TestModPowAgainstMathBig(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("matches big.Int.Exp", prop.ForAll(
		func(b int64, e uint8, m int64) bool {
			if m == 0 {
				return true
			}
			got, err := ModPow(NewFromInt64(b), NewFromUint64(uint64(e)), NewFromInt64(m))
			if err != nil {
				return false
			}
			want := new(big.Int).Exp(big.NewInt(b), big.NewInt(int64(e)), big.NewInt(m))
			return got.String() == want.String()
		},
		gen.Int64(), gen.UInt8(), gen.Int64(),
	))

	properties.Property("equals Pow then Rem for non-negative bases", prop.ForAll(
		func(b uint8, e uint8, m int64) bool {
			if m == 0 {
				return true
			}
			base, exp, mod := NewFromUint64(uint64(b)), NewFromUint64(uint64(e)), NewFromInt64(m)
			viaMod, err := ModPow(base, exp, mod)
			if err != nil {
				return false
			}
			full, err := Pow(base, exp)
			if err != nil {
				return false
			}
			viaRem, err := full.Rem(mod)
			if err != nil {
				return false
			}
			if viaRem.Sign() < 0 {
				viaRem = viaRem.Add(mod.Abs())
			}
			return viaMod.Equal(viaRem)
		},
		gen.UInt8(), gen.UInt8(), gen.Int64(),
	))

	properties.TestingRun(t)
}
