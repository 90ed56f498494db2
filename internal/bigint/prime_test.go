package bigint

import (
	"context"
	"errors"
	"math/big"
	"testing"
)

func TestNextPrime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"-100", "2"},
		{"0", "2"},
		{"1", "2"},
		{"2", "3"},
		{"3", "5"},
		{"7", "11"},
		{"8", "11"},
		{"13", "17"},
		{"100", "101"},
		{"7919", "7927"},
		{"1000000", "1000003"},
		// Across the first limb boundary.
		{"999999999", "1000000007"},
		{"1000000000000", "1000000000039"},
	}
	for _, tc := range cases {
		got, err := NextPrime(MustParse(tc.in))
		if err != nil {
			t.Fatalf("NextPrime(%s) failed: %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Errorf("NextPrime(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

// TestNextPrimeAgainstMathBig scans a window and checks every answer with
// big.Int.ProbablyPrime, including that no smaller prime was skipped.
func TestNextPrimeAgainstMathBig(t *testing.T) {
	t.Parallel()

	for n := int64(0); n < 500; n += 7 {
		got, err := NextPrime(NewFromInt64(n))
		if err != nil {
			t.Fatalf("NextPrime(%d) failed: %v", n, err)
		}
		p, _ := new(big.Int).SetString(got.String(), 10)
		if !p.ProbablyPrime(millerRabinRounds) {
			t.Errorf("NextPrime(%d) = %s is not prime", n, got)
		}
		for c := n + 1; c < p.Int64(); c++ {
			if big.NewInt(c).ProbablyPrime(millerRabinRounds) {
				t.Errorf("NextPrime(%d) = %s skipped smaller prime %d", n, got, c)
			}
		}
	}
}

func TestNextPrimeLarge(t *testing.T) {
	t.Parallel()

	// Smallest prime above 10^30.
	got, err := NextPrime(MustParse("1000000000000000000000000000000"))
	if err != nil {
		t.Fatalf("NextPrime failed: %v", err)
	}
	if got.String() != "1000000000000000000000000000057" {
		t.Errorf("NextPrime(10^30) = %s, want 1000000000000000000000000000057", got)
	}
}

func TestNextPrimeCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NextPrimeContext(ctx, MustParse("1000000007"), Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestProbablyPrimeKnownValues(t *testing.T) {
	t.Parallel()

	primes := []string{"2", "3", "5", "97", "7919", "2147483647", "999999000001"}
	for _, p := range primes {
		if !probablyPrime(MustParse(p)) {
			t.Errorf("probablyPrime(%s) = false, want true", p)
		}
	}

	composites := []string{"1", "4", "561", "6601", "2147483649", "999999000003"}
	for _, c := range composites {
		if probablyPrime(MustParse(c)) {
			t.Errorf("probablyPrime(%s) = true, want false", c)
		}
	}
}
