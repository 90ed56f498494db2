// Package orchestration coordinates the execution of arbitrary-precision
// operations across one or more computation backends and compares their
// results. The native limb engine is always available; reference backends
// (math/big, optionally GMP) serve as cross-checks in verify mode.
package orchestration

import (
	"context"
	"sort"

	"github.com/apmath/intcalc/internal/bigint"
)

// Backend evaluates calculator operations. Implementations wrap one
// arbitrary-precision engine each.
type Backend interface {
	// Name returns a descriptive name for the backend.
	Name() string

	// Supports reports whether the backend can evaluate the given operation.
	// Backends that cannot reproduce an operation (e.g. a random draw) are
	// excluded from cross-checking.
	Supports(op string) bool

	// Evaluate runs one operation.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for progress updates (may be nil).
	//   - index: The backend index, used to tag progress updates.
	//   - op: The operation name.
	//   - args: The parsed operands.
	//   - opts: Tuning options for the engine.
	//
	// Returns:
	//   - bigint.Int: The computed value.
	//   - error: An error if the evaluation failed.
	Evaluate(ctx context.Context, progressChan chan<- bigint.ProgressUpdate, index int, op string, args []bigint.Int, opts bigint.Options) (bigint.Int, error)
}

// operationArity maps each operation name to its operand count. For
// "hyper" the first operand is the level, for "random" the single operand
// is the digit count; both still arrive as textual integers.
var operationArity = map[string]int{
	"add":       2,
	"sub":       2,
	"mul":       2,
	"compare":   2,
	"div":       2,
	"mod":       2,
	"pow":       2,
	"modpow":    3,
	"factorial": 1,
	"nextprime": 1,
	"random":    1,
	"hyper":     3,
	"incr":      1,
	"decr":      1,
}

// AvailableOperations returns the sorted list of operation names.
//
// Returns:
//   - []string: A sorted slice of operation names.
func AvailableOperations() []string {
	names := make([]string, 0, len(operationArity))
	for name := range operationArity {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OperationArity returns the operand count of an operation.
//
// Parameters:
//   - op: The operation name.
//
// Returns:
//   - int: The number of operands the operation takes.
//   - bool: false if the operation is unknown.
func OperationArity(op string) (int, bool) {
	n, ok := operationArity[op]
	return n, ok
}
