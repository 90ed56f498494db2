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

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		base int
		want string
	}{
		{"0", 10, "0"},
		{"-0", 10, "0"}, // negative zero normalizes to zero
		{"+42", 10, "42"},
		{"007", 10, "7"},
		{"123456789012345678901234567890", 10, "123456789012345678901234567890"},
		{"ff", 16, "255"},
		{"FF", 16, "255"}, // both letter cases accepted
		{"-ffffffffffffffff", 16, "-18446744073709551615"},
		{"101", 2, "5"},
		{"zz", 36, "1295"},
		{"777", 8, "511"},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in, tc.base)
		if err != nil {
			t.Fatalf("Parse(%q, %d) failed: %v", tc.in, tc.base, err)
		}
		if got.String() != tc.want {
			t.Errorf("Parse(%q, %d) = %s, want %s", tc.in, tc.base, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		base int
	}{
		{"Empty", "", 10},
		{"SignOnly", "-", 10},
		{"BadDigit", "12a", 10},
		{"DigitOutsideBase", "129", 8},
		{"LetterOutsideBase", "fg", 16},
		{"BaseTooSmall", "101", 1},
		{"BaseTooLarge", "z", 37},
		{"Whitespace", " 42", 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.in, tc.base); !errors.Is(err, apperrors.ErrInvalidFormat) {
				t.Errorf("Parse(%q, %d): expected format error, got %v", tc.in, tc.base, err)
			}
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		base int
		want string
	}{
		{"0", 2, "0"},
		{"255", 16, "ff"},
		{"-255", 16, "-ff"},
		{"5", 2, "101"},
		{"1295", 36, "zz"},
		{"1000000000", 10, "1000000000"},
		{"511", 8, "777"},
	}
	for _, tc := range cases {
		got := MustParse(tc.in).Text(tc.base)
		if got != tc.want {
			t.Errorf("Text(%s, base %d) = %q, want %q", tc.in, tc.base, got, tc.want)
		}
	}
}

// TestTextAgainstMathBig cross-checks rendering in every supported base on a
// value wide enough to exercise the chunked division path.
func TestTextAgainstMathBig(t *testing.T) {
	t.Parallel()

	const value = "123456789012345678901234567890123456789012345678901234567890"
	x := MustParse(value)
	want, _ := new(big.Int).SetString(value, 10)

	for base := MinBase; base <= MaxBase; base++ {
		if got := x.Text(base); got != want.Text(base) {
			t.Errorf("Text(base %d) = %q, want %q", base, got, want.Text(base))
		}
	}
}

// TestBaseRoundTrip verifies that Parse(Text(x, b), b) is the identity for
// random values in every supported base.
func TestBaseRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Parse inverts Text in every base", prop.ForAll(
		func(v int64, base int) bool {
			x := NewFromInt64(v)
			back, err := Parse(x.Text(base), base)
			if err != nil {
				return false
			}
			return back.Equal(x)
		},
		gen.Int64(), gen.IntRange(MinBase, MaxBase),
	))

	properties.TestingRun(t)
}
