package orchestration

import (
	"context"

	"github.com/apmath/intcalc/internal/bigint"
	apperrors "github.com/apmath/intcalc/internal/errors"
)

func init() {
	_ = RegisterBackend("native", func() Backend { return &NativeBackend{} })
}

// NativeBackend evaluates operations with the in-process limb engine. It is
// the backend whose results are reported to the user; the others exist to
// cross-check it.
type NativeBackend struct{}

// Name returns the name of the backend.
func (b *NativeBackend) Name() string {
	return "native"
}

// Supports reports true for every known operation.
func (b *NativeBackend) Supports(op string) bool {
	_, ok := operationArity[op]
	return ok
}

// Evaluate dispatches one operation to the limb engine.
func (b *NativeBackend) Evaluate(ctx context.Context, progressChan chan<- bigint.ProgressUpdate, index int, op string, args []bigint.Int, opts bigint.Options) (bigint.Int, error) {
	if err := checkArity(op, args); err != nil {
		return bigint.Int{}, err
	}
	opts.Observer = bigint.NewChannelObserver(progressChan)
	opts.OperationIndex = index

	var result bigint.Int
	var err error
	switch op {
	case "add":
		result = args[0].Add(args[1])
	case "sub":
		result = args[0].Sub(args[1])
	case "mul":
		result = args[0].Mul(args[1])
	case "compare":
		result = bigint.NewFromInt64(int64(args[0].Cmp(args[1])))
	case "div":
		result, err = args[0].Quo(args[1])
	case "mod":
		result, err = args[0].Rem(args[1])
	case "pow":
		result, err = bigint.PowContext(ctx, args[0], args[1], opts)
	case "modpow":
		result, err = bigint.ModPowContext(ctx, args[0], args[1], args[2], opts)
	case "factorial":
		result, err = bigint.FactorialContext(ctx, args[0], opts)
	case "nextprime":
		result, err = bigint.NextPrimeContext(ctx, args[0], opts)
	case "random":
		result, err = evalRandom(args[0])
	case "hyper":
		result, err = evalHyper(ctx, args, opts)
	case "incr":
		result = args[0].Incr()
	case "decr":
		result = args[0].Decr()
	default:
		err = apperrors.NewArgumentError(op, "unknown operation")
	}
	if err != nil {
		return bigint.Int{}, err
	}
	opts.Observer.Update(index, 1.0)
	return result, nil
}

// evalRandom draws a random value with the requested decimal digit count.
func evalRandom(digitArg bigint.Int) (bigint.Int, error) {
	digits, err := digitArg.Int64()
	if err != nil {
		return bigint.Int{}, err
	}
	return bigint.RandomDigits(int(digits))
}

// evalHyper unpacks the hyperoperation level from the first operand.
func evalHyper(ctx context.Context, args []bigint.Int, opts bigint.Options) (bigint.Int, error) {
	level, err := args[0].Int64()
	if err != nil {
		return bigint.Int{}, err
	}
	return bigint.HyperContext(ctx, int(level), args[1], args[2], opts)
}

// checkArity verifies the operand count against the operation table.
func checkArity(op string, args []bigint.Int) error {
	want, ok := operationArity[op]
	if !ok {
		return apperrors.NewArgumentError(op, "unknown operation")
	}
	if len(args) != want {
		return apperrors.NewArgumentError(op, "expected %d operand(s), got %d", want, len(args))
	}
	return nil
}
