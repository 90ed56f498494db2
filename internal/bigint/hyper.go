// Generalized hyperoperation: the ladder of operations that starts at
// addition and escalates through multiplication, exponentiation and
// tetration.
package bigint

import (
	"context"

	apperrors "github.com/apmath/intcalc/internal/errors"
)

// Hyper evaluates the hyperoperation of the given level applied to a and b:
//
//	level 1: a + b
//	level 2: a * b
//	level 3: a ** b
//	level n >= 4: Hyper(n-1, a, Hyper(n, a, b-1)), with Hyper(n, a, 0) = 1
//
// The base cases at b = 0 follow from the recursion: level 1 yields a,
// level 2 yields 0, and every level >= 3 yields 1.
//
// Parameters:
//   - level: The hyperoperation level; must be >= 1.
//   - a: The left operand.
//   - b: The right operand; must be >= 0.
//
// Returns:
//   - Int: The hyperoperation value.
//   - error: An ArgumentError when level < 1 or b < 0.
func Hyper(level int, a, b Int) (Int, error) {
	return HyperContext(context.Background(), level, a, b, Options{})
}

// HyperContext is Hyper with cancellation. Tetration-and-above growth is
// so violent that the context check at every recursion step is the only
// practical bound.
func HyperContext(ctx context.Context, level int, a, b Int, opts Options) (Int, error) {
	if level < 1 {
		return Int{}, apperrors.NewArgumentError("hyper", "level %d is below 1", level)
	}
	if b.sign < 0 {
		return Int{}, apperrors.NewArgumentError("hyper", "negative right operand %s", b)
	}
	return hyperRec(ctx, level, a, b, opts)
}

// hyperRec is the recursion behind HyperContext; arguments are assumed
// validated.
func hyperRec(ctx context.Context, level int, a, b Int, opts Options) (Int, error) {
	if err := ctx.Err(); err != nil {
		return Int{}, err
	}
	switch level {
	case 1:
		return a.Add(b), nil
	case 2:
		return a.Mul(b), nil
	case 3:
		return PowContext(ctx, a, b, opts)
	}
	// Level >= 4 unrolls the b-recursion into a loop: starting from the
	// b = 0 base case, apply the next-lower level b times.
	result := One()
	for i := Zero(); i.Cmp(b) < 0; i = i.Incr() {
		var err error
		result, err = hyperRec(ctx, level-1, a, result, opts)
		if err != nil {
			return Int{}, err
		}
	}
	return result, nil
}
