// Random magnitude generation.
package bigint

import (
	"math/rand/v2"

	apperrors "github.com/apmath/intcalc/internal/errors"
)

// RandomDigits returns a positive Int with exactly digitCount decimal
// digits: the leading digit is drawn from 1..9 and the rest from 0..9.
//
// The source is the math/rand/v2 global generator: fast and uniform-
// looking, with no cryptographic guarantee whatsoever.
//
// Parameters:
//   - digitCount: The exact number of decimal digits; must be >= 1.
//
// Returns:
//   - Int: A positive value with the requested digit count.
//   - error: An ArgumentError when digitCount < 1.
func RandomDigits(digitCount int) (Int, error) {
	if digitCount < 1 {
		return Int{}, apperrors.NewArgumentError("random", "digit count %d is below 1", digitCount)
	}

	// Build limbs from the least significant end: full 9-digit limbs first,
	// then a top limb whose width is the leftover digit count.
	fullLimbs := (digitCount - 1) / limbDigits
	topDigits := digitCount - fullLimbs*limbDigits

	mag := make([]uint32, fullLimbs+1)
	for i := 0; i < fullLimbs; i++ {
		mag[i] = rand.Uint32N(limbBase)
	}

	// The top limb ranges over [10^(topDigits-1), 10^topDigits) so the
	// leading decimal digit is never zero.
	lo := pow10(topDigits - 1)
	hi := pow10(topDigits)
	mag[fullLimbs] = lo + rand.Uint32N(hi-lo)

	return Int{sign: 1, mag: mag}, nil
}

// pow10 returns 10^n for 0 <= n <= limbDigits.
func pow10(n int) uint32 {
	v := uint32(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
