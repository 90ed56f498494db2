package bigint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"1", "2", "3"},
		{"999999999", "1", "1000000000"}, // limb carry
		{"18446744073709551615", "2", "18446744073709551617"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"-5", "-3", "-8"},
		{"5", "-5", "0"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "1111111110111111111011111111100"},
	}
	for _, tc := range cases {
		got := MustParse(tc.x).Add(MustParse(tc.y))
		if got.String() != tc.want {
			t.Errorf("%s + %s = %s, want %s", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSub(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"3", "5", "-2"},
		{"1000000000", "1", "999999999"}, // limb borrow
		{"-5", "-3", "-2"},
		{"-5", "3", "-8"},
		{"18446744073709551617", "18446744073709551615", "2"},
	}
	for _, tc := range cases {
		got := MustParse(tc.x).Sub(MustParse(tc.y))
		if got.String() != tc.want {
			t.Errorf("%s - %s = %s, want %s", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMul(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x, y, want string
	}{
		{"0", "123456789", "0"},
		{"1", "-42", "-42"},
		{"-3", "-4", "12"},
		{"999999999", "999999999", "999999998000000001"},
		{"123456789012345678901234567890", "2", "246913578024691357802469135780"},
		{"12345678901234567890", "98765432109876543210", "1219326311370217952237463801111263526900"},
	}
	for _, tc := range cases {
		got := MustParse(tc.x).Mul(MustParse(tc.y))
		if got.String() != tc.want {
			t.Errorf("%s * %s = %s, want %s", tc.x, tc.y, got, tc.want)
		}
	}
}

// TestKaratsubaAgainstSchoolbook cross-checks the Karatsuba path against
// math/big on operands large enough to trip the split threshold.
func TestKaratsubaAgainstSchoolbook(t *testing.T) {
	t.Parallel()

	// 400 decimal digits per operand, well past karatsubaThreshold limbs.
	a := "9"
	b := "7"
	for i := 0; i < 399; i++ {
		a += "8"
		b += "3"
	}

	got := MustParse(a).Mul(MustParse(b))

	wantA, _ := new(big.Int).SetString(a, 10)
	wantB, _ := new(big.Int).SetString(b, 10)
	want := new(big.Int).Mul(wantA, wantB)

	if got.String() != want.String() {
		t.Errorf("large multiplication mismatch:\ngot  %s\nwant %s", got, want)
	}
}

// TestArithmeticProperties verifies the ring axioms hold on random values,
// using math/big as an independent oracle for the raw results.
func TestArithmeticProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b int64) bool {
			x, y := NewFromInt64(a), NewFromInt64(b)
			return x.Add(y).Equal(y.Add(x))
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c int64) bool {
			x, y, z := NewFromInt64(a), NewFromInt64(b), NewFromInt64(c)
			return x.Add(y).Add(z).Equal(x.Add(y.Add(z)))
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b int64) bool {
			x, y := NewFromInt64(a), NewFromInt64(b)
			return x.Mul(y).Equal(y.Mul(x))
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c int64) bool {
			x, y, z := NewFromInt64(a), NewFromInt64(b), NewFromInt64(c)
			return x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z)))
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))

	properties.Property("x - x is zero", prop.ForAll(
		func(a int64) bool {
			x := NewFromInt64(a)
			return x.Sub(x).IsZero()
		},
		gen.Int64(),
	))

	properties.Property("matches math/big on add and mul", prop.ForAll(
		func(a, b int64) bool {
			x, y := NewFromInt64(a), NewFromInt64(b)
			ba, bb := big.NewInt(a), big.NewInt(b)
			sum := new(big.Int).Add(ba, bb)
			product := new(big.Int).Mul(ba, bb)
			return x.Add(y).String() == sum.String() &&
				x.Mul(y).String() == product.String()
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}
