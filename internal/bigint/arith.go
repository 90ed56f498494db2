// This file implements signed addition, subtraction and multiplication on
// top of the unsigned magnitude primitives. The magnitude routines are
// schoolbook limb loops; multiplication switches to Karatsuba above a size
// threshold (see karatsuba.go).
package bigint

// Add returns x + y.
//
// Same signs add the magnitudes and keep the sign; different signs subtract
// the smaller magnitude from the larger and take the sign of the operand
// with the larger magnitude. A zero result always normalizes to sign 0.
func (x Int) Add(y Int) Int {
	if x.sign == 0 {
		return makeInt(y.sign, copyMag(y.mag))
	}
	if y.sign == 0 {
		return makeInt(x.sign, copyMag(x.mag))
	}
	if x.sign == y.sign {
		return makeInt(x.sign, addMag(x.mag, y.mag))
	}
	switch cmpMag(x.mag, y.mag) {
	case 0:
		return Int{}
	case 1:
		return makeInt(x.sign, subMag(x.mag, y.mag))
	default:
		return makeInt(y.sign, subMag(y.mag, x.mag))
	}
}

// Sub returns x - y, implemented as x + (-y).
func (x Int) Sub(y Int) Int {
	y.sign = -y.sign
	return x.Add(y)
}

// Mul returns x * y. The sign of the product follows the usual rule: zero if
// either operand is zero, positive for equal signs, negative otherwise.
func (x Int) Mul(y Int) Int {
	if x.sign == 0 || y.sign == 0 {
		return Int{}
	}
	return makeInt(x.sign*y.sign, mulMag(x.mag, y.mag))
}

// addMag returns a + b at the magnitude level. The result has at most
// max(len(a), len(b)) + 1 limbs.
func addMag(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	for i := 0; i < len(b); i++ {
		s := a[i] + b[i] + carry
		if s >= limbBase {
			s -= limbBase
			carry = 1
		} else {
			carry = 0
		}
		out[i] = s
	}
	for i := len(b); i < len(a); i++ {
		s := a[i] + carry
		if s >= limbBase {
			s -= limbBase
			carry = 1
		} else {
			carry = 0
		}
		out[i] = s
	}
	out[len(a)] = carry
	return out
}

// subMag returns a - b at the magnitude level. The caller must guarantee
// a >= b; the borrow cannot survive past the last limb.
func subMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint32
	for i := 0; i < len(b); i++ {
		d := int64(a[i]) - int64(b[i]) - int64(borrow)
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	for i := len(b); i < len(a); i++ {
		d := int64(a[i]) - int64(borrow)
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return trimMag(out)
}

// mulMag returns a * b at the magnitude level, dispatching between the
// schoolbook routine and Karatsuba based on operand size.
func mulMag(a, b []uint32) []uint32 {
	if len(a) >= karatsubaThreshold && len(b) >= karatsubaThreshold {
		return karatsubaMul(a, b)
	}
	return basicMul(a, b)
}

// basicMul is the schoolbook O(n*m) limb multiplication. Each row
// accumulates into the shared result buffer; the running carry stays below
// limbBase throughout, so every intermediate fits a uint64.
func basicMul(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint32, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		av := uint64(ai)
		var carry uint64
		for j, bj := range b {
			t := uint64(out[i+j]) + av*uint64(bj) + carry
			out[i+j] = uint32(t % limbBase)
			carry = t / limbBase
		}
		// The top limb of the partial sum cannot overflow limbBase, so the
		// leftover carry lands without further propagation.
		out[i+len(b)] = uint32(uint64(out[i+len(b)]) + carry)
	}
	return trimMag(out)
}

// mulAddLimb computes mag*m + a in place for small multipliers (m < limbBase)
// and returns the possibly-grown slice. Used by base conversion.
func mulAddLimb(mag []uint32, m, a uint32) []uint32 {
	carry := uint64(a)
	for i := range mag {
		t := uint64(mag[i])*uint64(m) + carry
		mag[i] = uint32(t % limbBase)
		carry = t / limbBase
	}
	for carry > 0 {
		mag = append(mag, uint32(carry%limbBase))
		carry /= limbBase
	}
	return mag
}
