package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/apmath/intcalc/internal/config"
)

// FormatExpression renders an operation and its operands as a compact
// call-style expression for display, e.g. "factorial(120)". Long operands
// are shortened to their edges so the expression stays on one line.
//
// Parameters:
//   - op: The operation name.
//   - operands: The textual operands.
//
// Returns:
//   - string: The formatted expression.
func FormatExpression(op string, operands []string) string {
	shortened := make([]string, len(operands))
	for i, operand := range operands {
		if len(operand) > TruncationLimit {
			operand = operand[:DisplayEdges] + "..." + operand[len(operand)-DisplayEdges:]
		}
		shortened[i] = operand
	}
	return fmt.Sprintf("%s(%s)", op, strings.Join(shortened, ", "))
}

// PrintExecutionConfig displays the current execution configuration to the
// user: the operation, the timeout, environment details and tuning
// thresholds.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	writeOut(out, "--- Execution Configuration ---\n")
	writeOut(out, "Evaluating %s%s%s with a timeout of %s%s%s.\n",
		ColorMagenta(), FormatExpression(cfg.Op, cfg.Operands), ColorReset(), ColorYellow(), cfg.Timeout, ColorReset())
	writeOut(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
	writeOut(out, "Bases: input=%s%d%s, output=%s%d%s. Parallelism threshold: %s%d%s factors.\n",
		ColorCyan(), cfg.InputBase, ColorReset(), ColorCyan(), cfg.OutputBase, ColorReset(),
		ColorCyan(), cfg.Threshold, ColorReset())
}

// PrintExecutionMode displays the execution mode (single backend vs
// cross-checked comparison).
//
// Parameters:
//   - backendNames: The names of the backends that will run.
//   - out: The writer for standard output.
func PrintExecutionMode(backendNames []string, out io.Writer) {
	var modeDesc string
	if len(backendNames) > 1 {
		modeDesc = fmt.Sprintf("Cross-checked run of [%s]", strings.Join(backendNames, ", "))
	} else {
		modeDesc = fmt.Sprintf("Single computation with the %s%s%s backend",
			ColorGreen(), backendNames[0], ColorReset())
	}
	writeOut(out, "Execution mode: %s.\n", modeDesc)
	writeOut(out, "\n--- Starting Execution ---\n")
}

// writeOut writes a formatted string to the output writer.
func writeOut(out io.Writer, format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}
