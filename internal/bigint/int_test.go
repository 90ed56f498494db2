package bigint

import (
	"errors"
	"testing"

	apperrors "github.com/apmath/intcalc/internal/errors"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	t.Run("Zero", func(t *testing.T) {
		z := Zero()
		if !z.IsZero() || z.Sign() != 0 {
			t.Errorf("Zero() = %s, want 0", z)
		}
	})

	t.Run("One", func(t *testing.T) {
		o := One()
		if o.String() != "1" || o.Sign() != 1 {
			t.Errorf("One() = %s, want 1", o)
		}
	})

	t.Run("NewFromUint64", func(t *testing.T) {
		cases := []struct {
			in   uint64
			want string
		}{
			{0, "0"},
			{1, "1"},
			{999999999, "999999999"},
			{1000000000, "1000000000"},
			{18446744073709551615, "18446744073709551615"},
		}
		for _, tc := range cases {
			if got := NewFromUint64(tc.in).String(); got != tc.want {
				t.Errorf("NewFromUint64(%d) = %s, want %s", tc.in, got, tc.want)
			}
		}
	})

	t.Run("NewFromInt64", func(t *testing.T) {
		cases := []struct {
			in   int64
			want string
		}{
			{0, "0"},
			{-1, "-1"},
			{-9223372036854775808, "-9223372036854775808"},
			{9223372036854775807, "9223372036854775807"},
		}
		for _, tc := range cases {
			if got := NewFromInt64(tc.in).String(); got != tc.want {
				t.Errorf("NewFromInt64(%d) = %s, want %s", tc.in, got, tc.want)
			}
		}
	})
}

func TestSignNegAbs(t *testing.T) {
	t.Parallel()

	x := MustParse("-42")
	if x.Sign() != -1 {
		t.Errorf("Sign(-42) = %d, want -1", x.Sign())
	}
	if got := x.Neg().String(); got != "42" {
		t.Errorf("Neg(-42) = %s, want 42", got)
	}
	if got := x.Abs().String(); got != "42" {
		t.Errorf("Abs(-42) = %s, want 42", got)
	}
	if got := Zero().Neg(); !got.IsZero() {
		t.Errorf("Neg(0) = %s, want 0", got)
	}
}

func TestCmp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "1", -1},
		{"1", "-1", 1},
		{"-5", "-3", -1},
		{"-3", "-5", 1},
		{"123456789012345678901234567890", "123456789012345678901234567890", 0},
		{"123456789012345678901234567891", "123456789012345678901234567890", 1},
		{"1000000000", "999999999", 1},
	}
	for _, tc := range cases {
		x, y := MustParse(tc.x), MustParse(tc.y)
		if got := x.Cmp(y); got != tc.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	if !MustParse("12345678901234567890").Equal(MustParse("12345678901234567890")) {
		t.Error("equal values reported unequal")
	}
	if MustParse("1").Equal(MustParse("-1")) {
		t.Error("1 and -1 reported equal")
	}
}

func TestInt64Conversion(t *testing.T) {
	t.Parallel()

	t.Run("RoundTrip", func(t *testing.T) {
		for _, v := range []int64{0, 1, -1, 42, -9223372036854775808, 9223372036854775807} {
			got, err := NewFromInt64(v).Int64()
			if err != nil {
				t.Fatalf("Int64 failed for %d: %v", v, err)
			}
			if got != v {
				t.Errorf("Int64 round trip: got %d, want %d", got, v)
			}
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		big := MustParse("9223372036854775808") // max int64 + 1
		if _, err := big.Int64(); !errors.Is(err, apperrors.ErrOverflow) {
			t.Errorf("expected overflow error, got %v", err)
		}
	})
}

func TestUint64Conversion(t *testing.T) {
	t.Parallel()

	t.Run("RoundTrip", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 18446744073709551615} {
			got, err := NewFromUint64(v).Uint64()
			if err != nil {
				t.Fatalf("Uint64 failed for %d: %v", v, err)
			}
			if got != v {
				t.Errorf("Uint64 round trip: got %d, want %d", got, v)
			}
		}
	})

	t.Run("Negative", func(t *testing.T) {
		if _, err := MustParse("-1").Uint64(); !errors.Is(err, apperrors.ErrOverflow) {
			t.Errorf("expected overflow error for negative value, got %v", err)
		}
	})

	t.Run("TooLarge", func(t *testing.T) {
		big := MustParse("18446744073709551616") // max uint64 + 1
		if _, err := big.Uint64(); !errors.Is(err, apperrors.ErrOverflow) {
			t.Errorf("expected overflow error, got %v", err)
		}
	})
}
