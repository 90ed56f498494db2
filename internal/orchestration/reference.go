package orchestration

import (
	"context"
	"math/big"

	"github.com/apmath/intcalc/internal/bigint"
	apperrors "github.com/apmath/intcalc/internal/errors"
)

func init() {
	_ = RegisterBackend("math/big", func() Backend { return &BigIntBackend{} })
}

// BigIntBackend evaluates operations with the standard library's math/big,
// serving as the reference implementation for cross-checking the native
// engine. It follows the same conventions: truncated division, canonical
// non-negative modpow residues, and 25 Miller-Rabin rounds for primality.
type BigIntBackend struct{}

// Name returns the name of the backend.
func (b *BigIntBackend) Name() string {
	return "math/big"
}

// Supports reports true for every operation except "random", which cannot
// be reproduced across engines.
func (b *BigIntBackend) Supports(op string) bool {
	if op == "random" {
		return false
	}
	_, ok := operationArity[op]
	return ok
}

// Evaluate dispatches one operation to math/big.
func (b *BigIntBackend) Evaluate(ctx context.Context, progressChan chan<- bigint.ProgressUpdate, index int, op string, args []bigint.Int, opts bigint.Options) (bigint.Int, error) {
	if err := checkArity(op, args); err != nil {
		return bigint.Int{}, err
	}
	if op == "random" {
		return bigint.Int{}, apperrors.NewArgumentError(op, "not reproducible by the reference backend")
	}

	big0 := make([]*big.Int, len(args))
	for i, a := range args {
		big0[i] = toBig(a)
	}

	observer := bigint.NewChannelObserver(progressChan)

	var result *big.Int
	var err error
	switch op {
	case "add":
		result = new(big.Int).Add(big0[0], big0[1])
	case "sub":
		result = new(big.Int).Sub(big0[0], big0[1])
	case "mul":
		result = new(big.Int).Mul(big0[0], big0[1])
	case "compare":
		result = big.NewInt(int64(big0[0].Cmp(big0[1])))
	case "div":
		result, err = refQuo(big0[0], big0[1])
	case "mod":
		result, err = refRem(big0[0], big0[1])
	case "pow":
		result, err = refPow(big0[0], big0[1])
	case "modpow":
		result, err = refModPow(big0[0], big0[1], big0[2])
	case "factorial":
		result, err = refFactorial(big0[0])
	case "nextprime":
		result, err = refNextPrime(ctx, big0[0])
	case "hyper":
		result, err = refHyper(ctx, big0)
	case "incr":
		result = new(big.Int).Add(big0[0], oneBig())
	case "decr":
		result = new(big.Int).Sub(big0[0], oneBig())
	default:
		err = apperrors.NewArgumentError(op, "unknown operation")
	}
	if err != nil {
		return bigint.Int{}, err
	}
	observer.Update(index, 1.0)
	return fromBig(result)
}

// millerRabinRounds matches the native engine's witness count.
const millerRabinRounds = 25

func oneBig() *big.Int { return big.NewInt(1) }

// toBig converts an engine value into a math/big integer. The decimal text
// round-trip is slow but exercises the conversion path of both engines,
// which is exactly what a cross-check wants.
func toBig(x bigint.Int) *big.Int {
	v, _ := new(big.Int).SetString(x.String(), 10)
	return v
}

// fromBig converts a math/big integer back into an engine value.
func fromBig(v *big.Int) (bigint.Int, error) {
	return bigint.Parse(v.String(), 10)
}

func refQuo(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, &apperrors.DivisionByZeroError{Operation: "div"}
	}
	return new(big.Int).Quo(x, y), nil
}

func refRem(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, &apperrors.DivisionByZeroError{Operation: "mod"}
	}
	return new(big.Int).Rem(x, y), nil
}

func refPow(base, exp *big.Int) (*big.Int, error) {
	if exp.Sign() < 0 {
		return nil, apperrors.NewArgumentError("pow", "negative exponent %s", exp)
	}
	return new(big.Int).Exp(base, exp, nil), nil
}

func refModPow(base, exp, mod *big.Int) (*big.Int, error) {
	if mod.Sign() == 0 {
		return nil, &apperrors.DivisionByZeroError{Operation: "modpow"}
	}
	if exp.Sign() < 0 {
		return nil, apperrors.NewArgumentError("modpow", "negative exponent %s", exp)
	}
	// big.Exp already reduces into [0, |m|)
	return new(big.Int).Exp(base, exp, mod), nil
}

func refFactorial(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, apperrors.NewArgumentError("factorial", "negative operand %s", n)
	}
	if !n.IsInt64() {
		return nil, &apperrors.OverflowError{Target: "factorial operand"}
	}
	return new(big.Int).MulRange(1, n.Int64()), nil
}

func refNextPrime(ctx context.Context, x *big.Int) (*big.Int, error) {
	two := big.NewInt(2)
	if x.Cmp(two) < 0 {
		return two, nil
	}
	candidate := new(big.Int).Add(x, oneBig())
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, oneBig())
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if candidate.ProbablyPrime(millerRabinRounds) {
			return candidate, nil
		}
		candidate.Add(candidate, two)
	}
}

// refHyper mirrors the native hyperoperation ladder: level 1 is addition,
// 2 multiplication, 3 exponentiation, and each level above folds the level
// below b times starting from 1.
func refHyper(ctx context.Context, args []*big.Int) (*big.Int, error) {
	if !args[0].IsInt64() {
		return nil, &apperrors.OverflowError{Target: "hyper level"}
	}
	level := args[0].Int64()
	a, b := args[1], args[2]
	if level < 1 {
		return nil, apperrors.NewArgumentError("hyper", "level %d is below 1", level)
	}
	if b.Sign() < 0 {
		return nil, apperrors.NewArgumentError("hyper", "negative right operand %s", b)
	}
	return refHyperRec(ctx, level, a, b)
}

func refHyperRec(ctx context.Context, level int64, a, b *big.Int) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch level {
	case 1:
		return new(big.Int).Add(a, b), nil
	case 2:
		return new(big.Int).Mul(a, b), nil
	case 3:
		return refPow(a, b)
	}
	result := oneBig()
	for i := new(big.Int); i.Cmp(b) < 0; i.Add(i, oneBig()) {
		var err error
		result, err = refHyperRec(ctx, level-1, a, result)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
