package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/apmath/intcalc/internal/cli"
	"github.com/apmath/intcalc/internal/config"
	apperrors "github.com/apmath/intcalc/internal/errors"
	"github.com/apmath/intcalc/internal/orchestration"
	"github.com/apmath/intcalc/internal/server"
	"github.com/apmath/intcalc/internal/service"
	"github.com/apmath/intcalc/internal/ui"
)

// Application represents the intcalc application instance. It encapsulates
// the configuration and provides methods to run the application in its
// various modes (CLI, server).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Factory provides access to the computation backends.
	Factory *orchestration.BackendFactory
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := "intcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, orchestration.AvailableOperations())
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Factory:   orchestration.GlobalFactory(),
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode. It dispatches
// to the appropriate handler (server or CLI computation).
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	// Server mode
	if a.Config.ServerMode {
		return a.runServer()
	}

	// Standard CLI computation mode
	return a.runCompute(ctx, out)
}

// runServer starts the HTTP server mode.
func (a *Application) runServer() int {
	srv := server.NewServer(a.Factory, a.Config)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runCompute orchestrates the execution of the CLI computation command.
func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	// Validate and parse the operands up front; a bad operand should fail
	// before any backend spins up.
	svc := service.NewCalculatorService(a.Factory, a.Config, 0)
	args, err := svc.ParseOperands(a.Config.Op, a.Config.Operands, a.Config.InputBase)
	if err != nil {
		return apperrors.HandleComputationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}

	backends := orchestration.BackendsFor(a.Config.Op, a.Config.Verify)
	expr := cli.FormatExpression(a.Config.Op, a.Config.Operands)

	// Skip verbose output in quiet mode
	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(backendNames(backends), out)
	}

	// Progress display would pollute machine-readable output, so quiet and
	// JSON modes discard it.
	progressOut := out
	if a.Config.Quiet || a.Config.JSONOutput {
		progressOut = io.Discard
	}

	// Execute the computation on every selected backend
	results := orchestration.ExecuteComputations(ctx, backends, a.Config.Op, args, a.Config, progressOut)

	// Handle JSON output
	if a.Config.JSONOutput {
		return printJSONResults(results, a.Config.OutputBase, out)
	}

	// Handle quiet mode: the bare value of the first successful backend
	if a.Config.Quiet {
		return a.printQuietResult(results, expr, out)
	}

	return orchestration.AnalyzeComparisonResults(results, a.Config, expr, out)
}

// printQuietResult emits only the result value, for scripting.
func (a *Application) printQuietResult(results []orchestration.ComputationResult, expr string, out io.Writer) int {
	best := findBestResult(results)
	if best == nil {
		var firstErr error
		for _, res := range results {
			if res.Err != nil {
				firstErr = res.Err
				break
			}
		}
		return apperrors.HandleComputationError(firstErr, 0, a.ErrWriter, cli.CLIColorProvider{})
	}

	cli.DisplayQuietResult(out, best.Result, a.Config.OutputBase)

	if a.Config.OutputFile != "" {
		outputCfg := cli.OutputConfig{
			OutputFile: a.Config.OutputFile,
			OutputBase: a.Config.OutputBase,
			Quiet:      true,
		}
		if err := cli.WriteResultToFile(best.Result, expr, best.Duration, best.Name, outputCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with
// success after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// backendNames extracts the display names of the selected backends.
func backendNames(backends []orchestration.Backend) []string {
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.Name()
	}
	return names
}

// findBestResult returns the fastest successful result, or nil when every
// backend failed.
func findBestResult(results []orchestration.ComputationResult) *orchestration.ComputationResult {
	var best *orchestration.ComputationResult
	for i := range results {
		if results[i].Err == nil {
			if best == nil || results[i].Duration < best.Duration {
				best = &results[i]
			}
		}
	}
	return best
}

// jsonResult represents a single backend result in JSON format.
type jsonResult struct {
	Backend  string `json:"backend"`
	Duration string `json:"duration"`
	Result   string `json:"result,omitempty"`
	Error    string `json:"error,omitempty"`
}

// printJSONResults formats the backend results as a JSON array and writes
// them to the output, for programmatic consumption.
func printJSONResults(results []orchestration.ComputationResult, outputBase int, out io.Writer) int {
	output := make([]jsonResult, len(results))
	for i, res := range results {
		jr := jsonResult{
			Backend:  res.Name,
			Duration: res.Duration.String(),
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		} else {
			jr.Result = res.Result.Text(outputBase)
		}
		output[i] = jr
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
