// Probabilistic primality testing and the next-prime scan.
package bigint

import (
	"context"
)

// millerRabinRounds is the fixed number of Miller-Rabin witnesses tested
// per candidate. The witnesses are the first 25 primes, which makes the
// test deterministic for every candidate below 3.3*10^24 and leaves a
// false-positive probability far below 4^-25 beyond that.
const millerRabinRounds = 25

// smallPrimes are the trial-division sieve and the Miller-Rabin witness
// bases (the first millerRabinRounds primes).
var smallPrimes = [millerRabinRounds]uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97,
}

// NextPrime returns the smallest prime strictly greater than x.
//
// The scan starts at x+1, skips even candidates after 2, discards
// candidates with a small prime factor by trial division, and subjects the
// survivors to Miller-Rabin. The scan has no hard iteration bound (prime
// gaps are finite but unbounded), so the context is the only way to abort
// a pathological run.
func NextPrime(x Int) (Int, error) {
	return NextPrimeContext(context.Background(), x, Options{})
}

// NextPrimeContext is NextPrime with cancellation and progress reporting.
// Progress approaches 1.0 as candidates are consumed relative to the
// average prime gap near x (about 2.3 times its digit count), saturating
// at 99% until a prime is actually found.
func NextPrimeContext(ctx context.Context, x Int, opts Options) (Int, error) {
	two := NewFromUint64(2)
	if x.Cmp(two) < 0 {
		opts.report(1.0)
		return two, nil
	}

	candidate := x.Incr()
	if candidate.isEven() {
		candidate = candidate.Incr()
	}

	// ln(10) ~ 2.3: the expected gap between primes near x.
	expectedGap := 2.3 * float64(len(x.mag)) * limbDigits
	tested := 0

	for {
		if err := ctx.Err(); err != nil {
			return Int{}, err
		}
		if probablyPrime(candidate) {
			opts.report(1.0)
			return candidate, nil
		}
		tested++
		if p := float64(tested*2) / expectedGap; p < 0.99 {
			opts.report(p)
		}
		candidate = candidate.Incr().Incr()
	}
}

// probablyPrime reports whether n is prime with millerRabinRounds rounds of
// Miller-Rabin over the fixed witness bases. n must be positive.
func probablyPrime(n Int) bool {
	if len(n.mag) == 1 {
		// Small candidates resolve exactly against the sieve.
		v := n.mag[0]
		if v < 2 {
			return false
		}
		for _, p := range smallPrimes {
			if v == p {
				return true
			}
			if v%p == 0 {
				return false
			}
			if uint64(p)*uint64(p) > uint64(v) {
				return true
			}
		}
	} else {
		// Trial division first: cheap single-limb remainders eliminate the
		// bulk of composites before any modular exponentiation runs.
		for _, p := range smallPrimes {
			if _, rem := divModLimb(n.mag, p); rem == 0 {
				return false
			}
		}
	}

	// Write n-1 = q * 2^k with q odd.
	nMinus1 := n.Decr()
	q := copyMag(nMinus1.mag)
	k := 0
	for q[0]%2 == 0 {
		q, _ = divModLimb(q, 2)
		k++
	}
	oddPart := makeInt(1, q)

	// Witness loop.
	for _, p := range smallPrimes {
		if !millerRabinWitness(n, nMinus1, oddPart, k, NewFromUint64(uint64(p))) {
			return false
		}
	}
	return true
}

// millerRabinWitness runs one Miller-Rabin round. It reports true when the
// base does not witness compositeness of n (n-1 = oddPart * 2^k).
func millerRabinWitness(n, nMinus1, oddPart Int, k int, base Int) bool {
	x, err := ModPow(base, oddPart, n)
	if err != nil {
		return false
	}
	one := One()
	if x.Equal(one) || x.Equal(nMinus1) {
		return true
	}
	for i := 1; i < k; i++ {
		x, err = ModPow(x, NewFromUint64(2), n)
		if err != nil {
			return false
		}
		if x.Equal(nMinus1) {
			return true
		}
		if x.Equal(one) {
			// A nontrivial square root of 1: composite.
			return false
		}
	}
	return false
}
