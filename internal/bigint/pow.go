// Exponentiation and modular exponentiation.
//
// Both walk the exponent's decimal digits most significant first, squaring
// and multiplying through a small table of powers of the base. This keeps
// the multiplication count at O(log exponent) without ever converting the
// arbitrary-precision exponent to a native integer, so exponents larger
// than a machine word work unchanged (relevant for |base| <= 1 and for
// modular exponentiation, where results stay bounded).
package bigint

import (
	"context"

	apperrors "github.com/apmath/intcalc/internal/errors"
)

// Pow returns base**exp for a non-negative exponent.
//
// Parameters:
//   - base: The value to raise.
//   - exp: The exponent; must be >= 0.
//
// Returns:
//   - Int: The power.
//   - error: An ArgumentError when exp is negative.
func Pow(base, exp Int) (Int, error) {
	return PowContext(context.Background(), base, exp, Options{})
}

// PowContext is Pow with cancellation and progress reporting. The context
// is checked once per decimal digit of the exponent.
func PowContext(ctx context.Context, base, exp Int, opts Options) (Int, error) {
	if exp.sign < 0 {
		return Int{}, apperrors.NewArgumentError("pow", "negative exponent %s", exp)
	}
	return powLoop(ctx, base, exp, Int{}, opts)
}

// ModPow returns base**exp mod modulus without materializing the unreduced
// power: the running value is reduced after every multiplication, so its
// size stays bounded by the modulus.
//
// The result is the canonical non-negative residue in [0, |modulus|),
// regardless of the signs of base and modulus.
//
// Parameters:
//   - base: The value to raise.
//   - exp: The exponent; must be >= 0.
//   - modulus: The modulus; must be nonzero.
//
// Returns:
//   - Int: base**exp mod modulus, in [0, |modulus|).
//   - error: An ArgumentError for a negative exponent, or a
//     DivisionByZeroError for a zero modulus.
func ModPow(base, exp, modulus Int) (Int, error) {
	return ModPowContext(context.Background(), base, exp, modulus, Options{})
}

// ModPowContext is ModPow with cancellation and progress reporting.
func ModPowContext(ctx context.Context, base, exp, modulus Int, opts Options) (Int, error) {
	if modulus.sign == 0 {
		return Int{}, apperrors.DivisionByZeroError{Operation: "modpow"}
	}
	if exp.sign < 0 {
		return Int{}, apperrors.NewArgumentError("modpow", "negative exponent %s", exp)
	}
	m := modulus.Abs()
	if m.mag[0] == 1 && len(m.mag) == 1 {
		return Int{}, nil // everything is 0 mod 1
	}
	red, err := canonicalMod(base, m)
	if err != nil {
		return Int{}, err
	}
	return powLoop(ctx, red, exp, m, opts)
}

// canonicalMod reduces x to the non-negative residue modulo m > 0.
func canonicalMod(x, m Int) (Int, error) {
	r, err := x.Rem(m)
	if err != nil {
		return Int{}, err
	}
	if r.sign < 0 {
		r = r.Add(m)
	}
	return r, nil
}

// powLoop performs left-to-right base-10 exponentiation. For every decimal
// digit d of the exponent it computes result = result^10 * base^d, using a
// precomputed table of base^0..base^9 and a 4-multiplication chain for the
// tenth power. When mod is nonzero every product is reduced immediately.
func powLoop(ctx context.Context, base, exp Int, mod Int, opts Options) (Int, error) {
	modular := mod.sign != 0

	reduce := func(v Int) (Int, error) {
		if !modular {
			return v, nil
		}
		return canonicalMod(v, mod)
	}

	if exp.sign == 0 {
		// x^0 == 1 for every x, including 0^0 == 1 by the usual convention.
		return reduce(One())
	}

	// Table of base^0 .. base^9.
	var table [10]Int
	table[0] = One()
	b, err := reduce(base)
	if err != nil {
		return Int{}, err
	}
	table[1] = b
	for i := 2; i < 10; i++ {
		if table[i], err = reduce(table[i-1].Mul(b)); err != nil {
			return Int{}, err
		}
	}

	digits := exp.Text(10)
	result := One()
	for i := 0; i < len(digits); i++ {
		if err := ctx.Err(); err != nil {
			return Int{}, err
		}
		// result = result^10: r2 = r^2, r4 = r2^2, r5 = r4*r, r10 = r5^2.
		r2, err := reduce(result.Mul(result))
		if err != nil {
			return Int{}, err
		}
		r4, err := reduce(r2.Mul(r2))
		if err != nil {
			return Int{}, err
		}
		r5, err := reduce(r4.Mul(result))
		if err != nil {
			return Int{}, err
		}
		if result, err = reduce(r5.Mul(r5)); err != nil {
			return Int{}, err
		}
		if d := digits[i] - '0'; d > 0 {
			if result, err = reduce(result.Mul(table[d])); err != nil {
				return Int{}, err
			}
		}
		opts.report(float64(i+1) / float64(len(digits)))
	}
	return result, nil
}
