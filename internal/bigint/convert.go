// String and native-integer conversion.
//
// Base 10 is the privileged format: because limbs are base 1e9, a decimal
// string maps to limbs by packing nine digits at a time, and rendering just
// prints each limb. Other bases go through repeated multiplication or
// division by the largest power of the base that fits in one limb, so the
// expensive multi-limb work happens once per chunk rather than once per
// digit.
package bigint

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/apmath/intcalc/internal/errors"
)

// MinBase and MaxBase bound the bases accepted by Parse and Text.
const (
	MinBase = 2
	MaxBase = 36
)

// digitAlphabet maps digit values 0..35 to their lowercase characters.
const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Parse interprets s as an integer in the given base.
//
// The string may start with a single '+' or '-'. Digits beyond 9 are the
// letters a..z, accepted in either case. Leading zeros are allowed and
// ignored. An empty digit sequence, a digit outside the base's alphabet, or
// a base outside [MinBase, MaxBase] yields a FormatError.
//
// Parameters:
//   - s: The textual representation.
//   - base: The numeric base, in [2, 36].
//
// Returns:
//   - Int: The parsed, normalized value.
//   - error: A FormatError describing the defect, or nil.
func Parse(s string, base int) (Int, error) {
	if base < MinBase || base > MaxBase {
		return Int{}, apperrors.NewFormatError(s, base, "base must be in [2,36]")
	}
	digits := s
	sign := int8(1)
	if len(digits) > 0 {
		switch digits[0] {
		case '+':
			digits = digits[1:]
		case '-':
			sign = -1
			digits = digits[1:]
		}
	}
	if len(digits) == 0 {
		return Int{}, apperrors.NewFormatError(s, base, "empty digit sequence")
	}

	var mag []uint32
	var err error
	if base == 10 {
		mag, err = parseDecimal(s, digits)
	} else {
		mag, err = parseGeneral(s, digits, base)
	}
	if err != nil {
		return Int{}, err
	}
	return makeInt(sign, mag), nil
}

// MustParse is like Parse with base 10 but panics on error. It is intended
// for constants and tests where the input is known to be valid.
func MustParse(s string) Int {
	x, err := Parse(s, 10)
	if err != nil {
		panic(err)
	}
	return x
}

// parseDecimal is the base-10 fast path: nine digits pack into one limb
// with no multi-limb arithmetic at all.
func parseDecimal(orig, digits string) ([]uint32, error) {
	mag := make([]uint32, 0, (len(digits)+limbDigits-1)/limbDigits)
	// Walk chunks from the least significant end.
	for end := len(digits); end > 0; end -= limbDigits {
		start := end - limbDigits
		if start < 0 {
			start = 0
		}
		var limb uint32
		for i := start; i < end; i++ {
			c := digits[i]
			if c < '0' || c > '9' {
				return nil, apperrors.NewFormatError(orig, 10, "invalid digit "+strconv.QuoteRune(rune(c)))
			}
			limb = limb*10 + uint32(c-'0')
		}
		mag = append(mag, limb)
	}
	return mag, nil
}

// parseGeneral handles bases other than 10 by folding chunks of digits into
// the accumulated magnitude: mag = mag*base^k + chunk, with base^k the
// largest power of the base below limbBase.
func parseGeneral(orig, digits string, base int) ([]uint32, error) {
	chunkLen, chunkBase := chunkParams(base)
	var mag []uint32

	for start := 0; start < len(digits); {
		end := start + chunkLen
		if rem := len(digits) % chunkLen; start == 0 && rem != 0 {
			end = start + rem
		}
		var chunk, power uint32 = 0, 1
		for i := start; i < end; i++ {
			d, ok := digitValue(digits[i])
			if !ok || int(d) >= base {
				return nil, apperrors.NewFormatError(orig, base, "invalid digit "+strconv.QuoteRune(rune(digits[i])))
			}
			chunk = chunk*uint32(base) + uint32(d)
			power *= uint32(base)
		}
		if start == 0 {
			mag = mulAddLimb(mag, power, chunk)
		} else {
			mag = mulAddLimb(mag, chunkBase, chunk)
		}
		start = end
	}
	return mag, nil
}

// digitValue returns the numeric value of a digit character, accepting
// both letter cases.
func digitValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 10, true
	}
	return 0, false
}

// chunkParams returns the largest digit-count k and value base^k that keep
// base^k below limbBase, for the chunked conversion loops.
func chunkParams(base int) (k int, power uint32) {
	k, power = 0, 1
	for uint64(power)*uint64(base) < limbBase {
		power *= uint32(base)
		k++
	}
	return k, power
}

// Text renders x in the given base. The result uses minimal-length digits
// with a leading '-' for negative values; zero renders as "0" in every
// base. Letter digits are lowercase.
//
// Parameters:
//   - base: The numeric base, in [2, 36].
//
// Returns:
//   - string: The canonical textual representation.
func (x Int) Text(base int) string {
	if base < MinBase || base > MaxBase {
		// Mirror strconv's convention for unusable bases rather than
		// introducing an error return on the render path.
		return "%!(" + strconv.Itoa(base) + ")"
	}
	if x.sign == 0 {
		return "0"
	}
	var body string
	if base == 10 {
		body = formatDecimal(x.mag)
	} else {
		body = formatGeneral(x.mag, base)
	}
	if x.sign < 0 {
		return "-" + body
	}
	return body
}

// String renders x in base 10.
func (x Int) String() string { return x.Text(10) }

// formatDecimal prints base-1e9 limbs directly: the top limb unpadded, the
// rest zero-padded to nine digits.
func formatDecimal(mag []uint32) string {
	var b strings.Builder
	b.Grow(len(mag) * limbDigits)
	b.WriteString(strconv.FormatUint(uint64(mag[len(mag)-1]), 10))
	for i := len(mag) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(mag[i]), 10)
		for p := len(s); p < limbDigits; p++ {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}
	return b.String()
}

// formatGeneral renders a magnitude in an arbitrary base by repeated
// division by base^k, emitting k digits per chunk.
func formatGeneral(mag []uint32, base int) string {
	chunkLen, chunkBase := chunkParams(base)
	work := copyMag(mag)
	var chunks []string
	for len(work) > 0 {
		var rem uint32
		work, rem = divModLimb(work, chunkBase)
		chunks = append(chunks, strconv.FormatUint(uint64(rem), base))
	}

	var b strings.Builder
	b.Grow(len(chunks) * chunkLen)
	// Most significant chunk prints without padding.
	b.WriteString(chunks[len(chunks)-1])
	for i := len(chunks) - 2; i >= 0; i-- {
		for p := len(chunks[i]); p < chunkLen; p++ {
			b.WriteByte('0')
		}
		b.WriteString(chunks[i])
	}
	return b.String()
}

// Int64 converts x to a native int64.
//
// Returns:
//   - int64: The converted value.
//   - error: An OverflowError when x is outside the int64 range.
func (x Int) Int64() (int64, error) {
	u, err := x.magUint64()
	if err != nil {
		return 0, apperrors.OverflowError{Target: "int64"}
	}
	if x.sign >= 0 {
		if u > math.MaxInt64 {
			return 0, apperrors.OverflowError{Target: "int64"}
		}
		return int64(u), nil
	}
	if u > uint64(math.MaxInt64)+1 {
		return 0, apperrors.OverflowError{Target: "int64"}
	}
	return -int64(u-1) - 1, nil
}

// Uint64 converts x to a native uint64.
//
// Returns:
//   - uint64: The converted value.
//   - error: An OverflowError when x is negative or exceeds the uint64 range.
func (x Int) Uint64() (uint64, error) {
	if x.sign < 0 {
		return 0, apperrors.OverflowError{Target: "uint64"}
	}
	u, err := x.magUint64()
	if err != nil {
		return 0, apperrors.OverflowError{Target: "uint64"}
	}
	return u, nil
}

// magUint64 folds the magnitude into a uint64, detecting overflow.
func (x Int) magUint64() (uint64, error) {
	var v uint64
	for i := len(x.mag) - 1; i >= 0; i-- {
		limb := uint64(x.mag[i])
		if v > (math.MaxUint64-limb)/limbBase {
			return 0, apperrors.OverflowError{Target: "uint64"}
		}
		v = v*limbBase + limb
	}
	return v, nil
}
