// Long division on base-1e9 magnitudes (Knuth's algorithm D adapted to a
// decimal limb base), plus the signed quotient/remainder operations built
// on it.
package bigint

import (
	apperrors "github.com/apmath/intcalc/internal/errors"
)

// QuoRem returns the quotient and remainder of x / y.
//
// The convention is truncating division, matching Go's native integer
// operators: the quotient is rounded toward zero and the remainder carries
// the sign of the dividend, so that
//
//	x == q*y + r  with  |r| < |y|
//
// holds for every sign combination. This is not floor division; for
// example (-7).QuoRem(2) yields q = -3, r = -1.
//
// Parameters:
//   - y: The divisor.
//
// Returns:
//   - Int: The truncated quotient.
//   - Int: The remainder, with the dividend's sign.
//   - error: A DivisionByZeroError if y is zero.
func (x Int) QuoRem(y Int) (Int, Int, error) {
	if y.sign == 0 {
		return Int{}, Int{}, apperrors.DivisionByZeroError{Operation: "quorem"}
	}
	if x.sign == 0 {
		return Int{}, Int{}, nil
	}
	qMag, rMag := divMag(x.mag, y.mag)
	q := makeInt(x.sign*y.sign, qMag)
	r := makeInt(x.sign, rMag)
	return q, r, nil
}

// Quo returns the truncated quotient x / y.
// It fails with a DivisionByZeroError when y is zero.
func (x Int) Quo(y Int) (Int, error) {
	if y.sign == 0 {
		return Int{}, apperrors.DivisionByZeroError{Operation: "quo"}
	}
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder x % y under the truncating convention
// documented on QuoRem. It fails with a DivisionByZeroError when y is zero.
func (x Int) Rem(y Int) (Int, error) {
	if y.sign == 0 {
		return Int{}, apperrors.DivisionByZeroError{Operation: "rem"}
	}
	_, r, err := x.QuoRem(y)
	return r, err
}

// divMag divides magnitude a by magnitude b, returning quotient and
// remainder magnitudes. b must be nonzero.
func divMag(a, b []uint32) (q, r []uint32) {
	if cmpMag(a, b) < 0 {
		return nil, copyMag(a)
	}
	if len(b) == 1 {
		q, rl := divModLimb(a, b[0])
		if rl == 0 {
			return q, nil
		}
		return q, []uint32{rl}
	}
	return divMagKnuth(a, b)
}

// divModLimb divides a magnitude by a single limb, returning the quotient
// magnitude and the remainder limb. d must be nonzero.
func divModLimb(a []uint32, d uint32) ([]uint32, uint32) {
	q := make([]uint32, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem*limbBase + uint64(a[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trimMag(q), uint32(rem)
}

// mulLimb returns mag * m for a small multiplier (m < limbBase).
func mulLimb(mag []uint32, m uint32) []uint32 {
	return mulAddLimb(copyMag(mag), m, 0)
}

// divMagKnuth is the multi-limb long division. The divisor is scaled so its
// top limb is at least limbBase/2, which bounds the trial-quotient
// correction loop to at most two iterations per digit.
func divMagKnuth(a, b []uint32) (q, r []uint32) {
	// Normalize: multiply both operands by d so that v's top limb is large.
	d := uint32(limbBase / (uint64(b[len(b)-1]) + 1))
	u := mulLimb(a, d)
	v := mulLimb(b, d)

	n := len(v)
	// Pad u with one extra high limb for the first trial digit.
	if len(u) == len(a) {
		u = append(u, 0)
	}
	for len(u) < n+1 {
		u = append(u, 0)
	}

	m := len(u) - n - 1 // number of quotient digits minus one
	q = make([]uint32, m+1)
	vTop := uint64(v[n-1])
	vNext := uint64(v[n-2])

	for j := m; j >= 0; j-- {
		// Trial digit from the top two limbs of the running remainder.
		num := uint64(u[j+n])*limbBase + uint64(u[j+n-1])
		qhat := num / vTop
		rhat := num % vTop
		if qhat >= limbBase {
			qhat = limbBase - 1
			rhat = num - qhat*vTop
		}
		for rhat < limbBase && qhat*vNext > rhat*limbBase+uint64(u[j+n-2]) {
			qhat--
			rhat += vTop
		}

		// Multiply and subtract: u[j..j+n] -= qhat * v.
		var borrow uint64
		for i := 0; i < n; i++ {
			p := qhat*uint64(v[i]) + borrow
			borrow = p / limbBase
			sub := uint32(p % limbBase)
			if u[j+i] < sub {
				u[j+i] += limbBase - sub
				borrow++
			} else {
				u[j+i] -= sub
			}
		}
		if uint64(u[j+n]) < borrow {
			// Trial digit was one too large: add the divisor back.
			qhat--
			var carry uint32
			for i := 0; i < n; i++ {
				s := u[j+i] + v[i] + carry
				if s >= limbBase {
					s -= limbBase
					carry = 1
				} else {
					carry = 0
				}
				u[j+i] = s
			}
			u[j+n] = uint32(uint64(u[j+n]) + uint64(carry) - borrow)
		} else {
			u[j+n] = uint32(uint64(u[j+n]) - borrow)
		}
		q[j] = uint32(qhat)
	}

	// Undo the normalization scaling on the remainder.
	r = trimMag(u[:n])
	if d > 1 {
		r, _ = divModLimb(r, d)
	}
	return trimMag(q), r
}
