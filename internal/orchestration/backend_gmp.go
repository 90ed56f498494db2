//go:build gmp

// This file provides a GMP-backed reference backend, conditionally compiled
// with the "gmp" build tag. The build tag architecture ensures that:
//   - Projects can build without GMP (the default)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: Requires MinGW or WSL with libgmp

package orchestration

import (
	"context"

	"github.com/ncw/gmp"

	"github.com/apmath/intcalc/internal/bigint"
	apperrors "github.com/apmath/intcalc/internal/errors"
)

func init() {
	_ = RegisterBackend("gmp", func() Backend { return &GMPBackend{} })
}

// GMPBackend evaluates operations with the GMP library through ncw/gmp,
// which mirrors the math/big API over GMP's assembly-optimized routines.
// It covers the arithmetic core; the probabilistic and random operations
// stay with the other backends.
type GMPBackend struct{}

// Name returns the name of the backend.
func (b *GMPBackend) Name() string {
	return "gmp"
}

// Supports reports true for the deterministic arithmetic operations.
func (b *GMPBackend) Supports(op string) bool {
	switch op {
	case "add", "sub", "mul", "compare", "div", "mod", "pow", "modpow", "factorial", "incr", "decr", "hyper":
		return true
	}
	return false
}

// Evaluate dispatches one operation to GMP.
func (b *GMPBackend) Evaluate(ctx context.Context, progressChan chan<- bigint.ProgressUpdate, index int, op string, args []bigint.Int, opts bigint.Options) (bigint.Int, error) {
	if err := checkArity(op, args); err != nil {
		return bigint.Int{}, err
	}
	if !b.Supports(op) {
		return bigint.Int{}, apperrors.NewArgumentError(op, "not supported by the gmp backend")
	}

	g := make([]*gmp.Int, len(args))
	for i, a := range args {
		g[i] = toGMP(a)
	}

	observer := bigint.NewChannelObserver(progressChan)

	var result *gmp.Int
	var err error
	switch op {
	case "add":
		result = new(gmp.Int).Add(g[0], g[1])
	case "sub":
		result = new(gmp.Int).Sub(g[0], g[1])
	case "mul":
		result = new(gmp.Int).Mul(g[0], g[1])
	case "compare":
		result = gmp.NewInt(int64(g[0].Cmp(g[1])))
	case "div":
		result, err = gmpQuo(g[0], g[1])
	case "mod":
		result, err = gmpRem(g[0], g[1])
	case "pow":
		result, err = gmpPow(g[0], g[1])
	case "modpow":
		result, err = gmpModPow(g[0], g[1], g[2])
	case "factorial":
		result, err = gmpFactorial(ctx, g[0])
	case "hyper":
		result, err = gmpHyper(ctx, g)
	case "incr":
		result = new(gmp.Int).Add(g[0], gmp.NewInt(1))
	case "decr":
		result = new(gmp.Int).Sub(g[0], gmp.NewInt(1))
	}
	if err != nil {
		return bigint.Int{}, err
	}
	observer.Update(index, 1.0)
	return fromGMP(result)
}

// toGMP converts an engine value into a gmp integer via decimal text.
func toGMP(x bigint.Int) *gmp.Int {
	v, _ := new(gmp.Int).SetString(x.String(), 10)
	return v
}

// fromGMP converts a gmp integer back into an engine value.
func fromGMP(v *gmp.Int) (bigint.Int, error) {
	return bigint.Parse(v.String(), 10)
}

func gmpQuo(x, y *gmp.Int) (*gmp.Int, error) {
	if y.Sign() == 0 {
		return nil, &apperrors.DivisionByZeroError{Operation: "div"}
	}
	return new(gmp.Int).Quo(x, y), nil
}

func gmpRem(x, y *gmp.Int) (*gmp.Int, error) {
	if y.Sign() == 0 {
		return nil, &apperrors.DivisionByZeroError{Operation: "mod"}
	}
	return new(gmp.Int).Rem(x, y), nil
}

func gmpPow(base, exp *gmp.Int) (*gmp.Int, error) {
	if exp.Sign() < 0 {
		return nil, apperrors.NewArgumentError("pow", "negative exponent %s", exp)
	}
	return new(gmp.Int).Exp(base, exp, nil), nil
}

func gmpModPow(base, exp, mod *gmp.Int) (*gmp.Int, error) {
	if mod.Sign() == 0 {
		return nil, &apperrors.DivisionByZeroError{Operation: "modpow"}
	}
	if exp.Sign() < 0 {
		return nil, apperrors.NewArgumentError("modpow", "negative exponent %s", exp)
	}
	return new(gmp.Int).Exp(base, exp, mod), nil
}

func gmpFactorial(ctx context.Context, n *gmp.Int) (*gmp.Int, error) {
	if n.Sign() < 0 {
		return nil, apperrors.NewArgumentError("factorial", "negative operand %s", n)
	}
	nv := n.Int64()
	result := gmp.NewInt(1)
	factor := new(gmp.Int)
	for k := int64(2); k <= nv; k++ {
		if k%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		factor.SetInt64(k)
		result.Mul(result, factor)
	}
	return result, nil
}

func gmpHyper(ctx context.Context, args []*gmp.Int) (*gmp.Int, error) {
	level := args[0].Int64()
	a, b := args[1], args[2]
	if level < 1 {
		return nil, apperrors.NewArgumentError("hyper", "level %d is below 1", level)
	}
	if b.Sign() < 0 {
		return nil, apperrors.NewArgumentError("hyper", "negative right operand %s", b)
	}
	return gmpHyperRec(ctx, level, a, b)
}

func gmpHyperRec(ctx context.Context, level int64, a, b *gmp.Int) (*gmp.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch level {
	case 1:
		return new(gmp.Int).Add(a, b), nil
	case 2:
		return new(gmp.Int).Mul(a, b), nil
	case 3:
		return gmpPow(a, b)
	}
	result := gmp.NewInt(1)
	one := gmp.NewInt(1)
	for i := new(gmp.Int); i.Cmp(b) < 0; i.Add(i, one) {
		var err error
		result, err = gmpHyperRec(ctx, level-1, a, result)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
