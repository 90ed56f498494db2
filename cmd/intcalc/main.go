// Command intcalc is an arbitrary-precision integer calculator.
//
// It evaluates a single operation (arithmetic, modular exponentiation,
// factorial, primality search, hyperoperations, ...) on decimal or
// arbitrary-base operands, optionally cross-checking the result against
// independent backends, and can also run as an HTTP computation server.
//
// Usage:
//
//	intcalc [flags] <operation> [operand...]
//	intcalc --server --port 8080
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apmath/intcalc/internal/app"
	apperrors "github.com/apmath/intcalc/internal/errors"
)

func main() {
	// Version flag works in any position and short-circuits everything else.
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
