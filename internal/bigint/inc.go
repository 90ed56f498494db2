// Increment and decrement fast paths.
//
// Adding or removing one unit only disturbs the trailing run of limbs that
// are saturated (all 999999999) or exhausted (all 0), so these paths copy
// the limb buffer once and touch limbs until the first carry or borrow
// stops, instead of running the general addition machinery against the
// constant one. This is the performance-critical path that distinguishes
// counting loops on Int from the naive x.Add(One()).
package bigint

// Incr returns x + 1. The receiver is left untouched and the result never
// aliases the receiver's storage.
func (x Int) Incr() Int {
	switch {
	case x.sign == 0:
		return One()
	case x.sign > 0:
		return Int{sign: 1, mag: incMag(x.mag)}
	default:
		// Negative: the magnitude shrinks by one; -1 crosses to zero.
		return makeInt(-1, decMag(x.mag))
	}
}

// Decr returns x - 1. The receiver is left untouched and the result never
// aliases the receiver's storage.
func (x Int) Decr() Int {
	switch {
	case x.sign == 0:
		return Int{sign: -1, mag: []uint32{1}}
	case x.sign < 0:
		return Int{sign: -1, mag: incMag(x.mag)}
	default:
		return makeInt(1, decMag(x.mag))
	}
}

// incMag returns mag + 1, propagating the carry only through the trailing
// run of maximal limbs.
func incMag(mag []uint32) []uint32 {
	out := make([]uint32, len(mag), len(mag)+1)
	copy(out, mag)
	for i := 0; i < len(out); i++ {
		if out[i] != limbBase-1 {
			out[i]++
			return out
		}
		out[i] = 0
	}
	// Every limb was saturated: 999...9 + 1 grows by one limb.
	return append(out, 1)
}

// decMag returns mag - 1 for a nonzero magnitude, propagating the borrow
// only through the trailing run of zero limbs.
func decMag(mag []uint32) []uint32 {
	out := make([]uint32, len(mag))
	copy(out, mag)
	for i := 0; i < len(out); i++ {
		if out[i] != 0 {
			out[i]--
			return trimMag(out)
		}
		out[i] = limbBase - 1
	}
	// Unreachable for normalized nonzero input.
	return trimMag(out)
}
