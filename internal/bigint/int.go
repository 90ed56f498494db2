// Package bigint implements a signed arbitrary-precision integer type with
// value semantics.
//
// An Int stores its magnitude as a little-endian slice of base-1e9 limbs
// together with a sign. The decimal limb base keeps base-10 parsing and
// rendering linear in the number of limbs, which matters for a library whose
// primary interchange format is the decimal string. All operations return
// new, normalized values; no two Ints ever share a limb buffer, so values
// can be read concurrently without synchronization.
package bigint

const (
	// limbBase is the positional base of a single limb. Products of two
	// limbs fit comfortably in a uint64, and one limb holds exactly
	// limbDigits decimal digits.
	limbBase = 1_000_000_000

	// limbDigits is the number of decimal digits stored per limb.
	limbDigits = 9
)

// Int is a signed arbitrary-precision integer.
//
// The zero value of Int is the number 0 and is ready to use. Ints are
// immutable: every arithmetic operation allocates a fresh result. The
// canonical form maintained by all constructors and operations is:
//   - mag has no leading (most-significant) zero limbs,
//   - the number 0 is represented by an empty mag and sign 0,
//   - sign is -1, 0 or +1 and is 0 exactly when mag is empty.
type Int struct {
	sign int8
	mag  []uint32 // base-1e9 limbs, least significant first
}

// makeInt builds a normalized Int from a sign and a limb slice. The slice is
// owned by the new value and must not be retained by the caller.
func makeInt(sign int8, mag []uint32) Int {
	mag = trimMag(mag)
	if len(mag) == 0 {
		return Int{}
	}
	return Int{sign: sign, mag: mag}
}

// trimMag strips leading (most-significant) zero limbs.
func trimMag(mag []uint32) []uint32 {
	i := len(mag)
	for i > 0 && mag[i-1] == 0 {
		i--
	}
	return mag[:i]
}

// copyMag returns a fresh copy of a limb slice, guaranteeing that the result
// shares no storage with the source.
func copyMag(mag []uint32) []uint32 {
	if len(mag) == 0 {
		return nil
	}
	out := make([]uint32, len(mag))
	copy(out, mag)
	return out
}

// Zero returns the Int value 0.
func Zero() Int { return Int{} }

// One returns the Int value 1.
func One() Int { return Int{sign: 1, mag: []uint32{1}} }

// NewFromUint64 creates an Int with the value of v.
//
// Parameters:
//   - v: The native unsigned value.
//
// Returns:
//   - Int: The normalized arbitrary-precision value.
func NewFromUint64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	var mag [3]uint32 // 3 limbs cover the full uint64 range
	n := 0
	for ; v != 0; n++ {
		mag[n] = uint32(v % limbBase)
		v /= limbBase
	}
	return Int{sign: 1, mag: copyMag(mag[:n])}
}

// NewFromInt64 creates an Int with the value of v.
//
// Parameters:
//   - v: The native signed value.
//
// Returns:
//   - Int: The normalized arbitrary-precision value.
func NewFromInt64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	if v > 0 {
		return NewFromUint64(uint64(v))
	}
	// -MinInt64 is not representable in int64; negate in uint64 space.
	x := NewFromUint64(uint64(-(v + 1)) + 1)
	x.sign = -1
	return x
}

// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0.
func (x Int) Sign() int { return int(x.sign) }

// IsZero reports whether x is the number 0.
func (x Int) IsZero() bool { return x.sign == 0 }

// Neg returns -x.
func (x Int) Neg() Int {
	return makeInt(-x.sign, copyMag(x.mag))
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	if x.sign < 0 {
		return Int{sign: 1, mag: copyMag(x.mag)}
	}
	return makeInt(x.sign, copyMag(x.mag))
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// The ordering is total and consistent with Equal and Hash.
func (x Int) Cmp(y Int) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}
	c := cmpMag(x.mag, y.mag)
	if x.sign < 0 {
		return -c
	}
	return c
}

// Equal reports whether x and y represent the same integer.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// isEven reports whether the magnitude of x is even. The least significant
// limb carries the parity because limbBase is even.
func (x Int) isEven() bool {
	if len(x.mag) == 0 {
		return true
	}
	return x.mag[0]%2 == 0
}

// cmpMag compares two normalized magnitudes and returns -1, 0 or +1.
func cmpMag(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
