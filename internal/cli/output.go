// Package cli provides output utilities for exporting computation results.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/apmath/intcalc/internal/bigint"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// OutputBase is the base the result is rendered in.
	OutputBase int
	// Quiet mode suppresses everything but the value itself.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
}

// WriteResultToFile writes a computation result to a file, with a small
// header describing the run.
//
// Parameters:
//   - result: The computed value.
//   - expr: A textual description of the evaluated operation.
//   - duration: The computation duration.
//   - backend: The backend name that produced the result.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result bigint.Int, expr string, duration time.Duration, backend string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	text := result.Text(config.OutputBase)

	// Write header
	fmt.Fprintf(file, "# Integer Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Backend: %s\n", backend)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Expression: %s\n", expr)
	fmt.Fprintf(file, "# Base: %d\n", config.OutputBase)
	fmt.Fprintf(file, "# Digits: %d\n", len(text))
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "%s =\n%s\n", expr, text)

	return nil
}

// FormatQuietResult formats a result for quiet mode output: the bare value
// in the requested base, suitable for scripting.
//
// Parameters:
//   - result: The computed value.
//   - outputBase: The base the result is rendered in.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(result bigint.Int, outputBase int) string {
	return result.Text(outputBase)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - result: The computed value.
//   - outputBase: The base the result is rendered in.
func DisplayQuietResult(out io.Writer, result bigint.Int, outputBase int) {
	fmt.Fprintln(out, FormatQuietResult(result, outputBase))
}

// DisplayResultWithConfig displays a result with the given output
// configuration. This is the unified entry point handling all output modes.
//
// Parameters:
//   - out: The output writer.
//   - result: The computed value.
//   - expr: A textual description of the evaluated operation.
//   - duration: The computation duration.
//   - backend: The backend name that produced the result.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result bigint.Int, expr string, duration time.Duration, backend string, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result, config.OutputBase)
	} else {
		DisplayResult(result, expr, config.OutputBase, duration, config.Verbose, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(result, expr, duration, backend, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%sResult saved to:%s %s\n", ColorGreen(), ColorReset(), config.OutputFile)
		}
	}

	return nil
}
