// Karatsuba multiplication over base-1e9 limb slices. The recursion
// replaces one n-limb multiplication with three n/2-limb multiplications,
// trading O(n^2) for O(n^1.585). Behavior is identical to basicMul; only
// the cost model differs, so the threshold is a pure tuning knob.
package bigint

// karatsubaThreshold is the limb count above which multiplication switches
// from the schoolbook routine to Karatsuba. Below roughly this size the
// recursion overhead outweighs the saved limb products.
const karatsubaThreshold = 40

// karatsubaMul multiplies two magnitudes using the Karatsuba split
//
//	x = x1*B^m + x0, y = y1*B^m + y0
//	x*y = z2*B^2m + z1*B^m + z0
//	z0 = x0*y0, z2 = x1*y1, z1 = (x0+x1)*(y0+y1) - z0 - z2
//
// falling back to basicMul once either operand drops below the threshold.
func karatsubaMul(a, b []uint32) []uint32 {
	if len(a) < karatsubaThreshold || len(b) < karatsubaThreshold {
		return basicMul(a, b)
	}

	m := max(len(a), len(b)) / 2
	a0, a1 := splitMag(a, m)
	b0, b1 := splitMag(b, m)

	z0 := karatsubaMul(a0, b0)
	z2 := karatsubaMul(a1, b1)

	sa := addMag(a0, a1)
	sb := addMag(b0, b1)
	z1 := karatsubaMul(trimMag(sa), trimMag(sb))
	z1 = subMag(z1, z0)
	z1 = subMag(z1, z2)

	// Assemble z2*B^2m + z1*B^m + z0 into one buffer.
	out := make([]uint32, len(a)+len(b)+1)
	copy(out, z0)
	addIntoMag(out, z1, m)
	addIntoMag(out, z2, 2*m)
	return trimMag(out)
}

// splitMag splits a magnitude into the low m limbs and the rest. Either part
// may be empty when the magnitude is shorter than the split point.
func splitMag(mag []uint32, m int) (lo, hi []uint32) {
	if len(mag) <= m {
		return trimMag(mag), nil
	}
	return trimMag(mag[:m]), mag[m:]
}

// addIntoMag adds src shifted left by shift limbs into dst in place.
// dst must be long enough to absorb the final carry.
func addIntoMag(dst, src []uint32, shift int) {
	var carry uint32
	i := shift
	for j := 0; j < len(src); j, i = j+1, i+1 {
		s := dst[i] + src[j] + carry
		if s >= limbBase {
			s -= limbBase
			carry = 1
		} else {
			carry = 0
		}
		dst[i] = s
	}
	for carry > 0 {
		s := dst[i] + carry
		if s >= limbBase {
			s -= limbBase
			carry = 1
		} else {
			carry = 0
		}
		dst[i] = s
		i++
	}
}
