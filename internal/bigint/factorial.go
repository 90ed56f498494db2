// Factorial via balanced range products.
//
// n! is computed as rangeProduct(1, n), splitting the range in half
// recursively. The two halves of a large split are similar-sized, which
// keeps the operands of the final multiplications balanced (where Karatsuba
// pays off) and lets the halves run on separate goroutines.
package bigint

import (
	"context"
	"sync"
	"sync/atomic"

	apperrors "github.com/apmath/intcalc/internal/errors"
	"github.com/apmath/intcalc/internal/parallel"
)

// factorialLeafSize is the largest range multiplied by a simple sequential
// loop; ranges above it split recursively.
const factorialLeafSize = 64

// Factorial returns n! for n >= 0.
//
// Parameters:
//   - n: The operand; must be non-negative and fit a uint64 (factorials
//     beyond that are not materializable anyway).
//
// Returns:
//   - Int: The factorial.
//   - error: An ArgumentError for negative n, or an OverflowError when n
//     exceeds the native range.
func Factorial(n Int) (Int, error) {
	return FactorialContext(context.Background(), n, Options{})
}

// FactorialContext is Factorial with cancellation and progress reporting.
// Cancellation is observed between leaf products; progress counts factors
// consumed out of n.
func FactorialContext(ctx context.Context, n Int, opts Options) (Int, error) {
	if n.sign < 0 {
		return Int{}, apperrors.NewArgumentError("factorial", "negative operand %s", n)
	}
	nv, err := n.Uint64()
	if err != nil {
		return Int{}, err
	}
	if nv < 2 {
		return One(), nil
	}

	fc := &factorialComputation{
		ctx:   ctx,
		opts:  opts,
		total: nv,
	}
	result, err := fc.rangeProduct(1, nv)
	if err != nil {
		return Int{}, err
	}
	opts.report(1.0)
	return result, nil
}

// factorialComputation carries the shared state of one factorial run: the
// cancellation context, the progress sink, and the atomic count of factors
// already folded into partial products.
type factorialComputation struct {
	ctx   context.Context
	opts  Options
	total uint64
	done  atomic.Uint64
}

// rangeProduct computes lo * (lo+1) * ... * hi.
func (fc *factorialComputation) rangeProduct(lo, hi uint64) (Int, error) {
	if err := fc.ctx.Err(); err != nil {
		return Int{}, err
	}
	if hi-lo < factorialLeafSize {
		return fc.leafProduct(lo, hi)
	}

	mid := lo + (hi-lo)/2
	if hi-lo < uint64(fc.opts.parallelThreshold()) {
		left, err := fc.rangeProduct(lo, mid)
		if err != nil {
			return Int{}, err
		}
		right, err := fc.rangeProduct(mid+1, hi)
		if err != nil {
			return Int{}, err
		}
		return left.Mul(right), nil
	}

	// Large split: multiply the halves on separate goroutines. The first
	// error wins; the siblings notice cancellation via the shared context.
	var left, right Int
	var wg sync.WaitGroup
	var ec parallel.ErrorCollector
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		left, err = fc.rangeProduct(lo, mid)
		ec.SetError(err)
	}()
	go func() {
		defer wg.Done()
		var err error
		right, err = fc.rangeProduct(mid+1, hi)
		ec.SetError(err)
	}()
	wg.Wait()
	if err := ec.Err(); err != nil {
		return Int{}, err
	}
	return left.Mul(right), nil
}

// leafProduct multiplies a short run of consecutive factors sequentially,
// batching native factors into a uint64 accumulator before touching the
// multi-limb product.
func (fc *factorialComputation) leafProduct(lo, hi uint64) (Int, error) {
	result := One()
	acc := uint64(1)
	for k := lo; k <= hi; k++ {
		// Fold consecutive factors into a native accumulator while the
		// product still fits; one big Mul per batch beats one per factor.
		if acc <= (1<<63)/k {
			acc *= k
			continue
		}
		result = result.Mul(NewFromUint64(acc))
		acc = k
	}
	if acc != 1 {
		result = result.Mul(NewFromUint64(acc))
	}

	consumed := fc.done.Add(hi - lo + 1)
	if fc.total > 0 {
		fc.opts.report(float64(consumed) / float64(fc.total))
	}
	return result, nil
}
