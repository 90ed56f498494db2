package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/apmath/intcalc/internal/bigint"
	"github.com/apmath/intcalc/internal/cli"
	"github.com/apmath/intcalc/internal/config"
	apperrors "github.com/apmath/intcalc/internal/errors"
	"github.com/apmath/intcalc/internal/ui"
)

// ComputationResult encapsulates the outcome of one backend's evaluation.
// It is the standardized container used for comparison and reporting.
type ComputationResult struct {
	// Name is the identifier of the backend used (e.g., "native").
	Name string
	// Result is the computed value. Only meaningful when Err is nil.
	Result bigint.Int
	// Duration is the time taken to complete the evaluation.
	Duration time.Duration
	// Err contains any error that occurred during the evaluation.
	Err error
}

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of dropping
// samples when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteComputations orchestrates the concurrent evaluation of one
// operation on one or more backends.
//
// It manages the lifecycle of the evaluation goroutines, collects their
// results, and coordinates the display of progress updates. This function
// is the core of the application's concurrency model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - backends: The backends to run.
//   - op: The operation name.
//   - args: The parsed operands.
//   - cfg: The application configuration (thresholds, etc.).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []ComputationResult: A slice containing the result of each backend.
func ExecuteComputations(ctx context.Context, backends []Backend, op string, args []bigint.Int, cfg config.AppConfig, out io.Writer) []ComputationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]ComputationResult, len(backends))
	progressChan := make(chan bigint.ProgressUpdate, len(backends)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, progressChan, len(backends), out)

	for i, b := range backends {
		idx, backend := i, b
		g.Go(func() error {
			startTime := time.Now()
			res, err := backend.Evaluate(ctx, progressChan, idx, op, args, cfg.ToCalculationOptions())
			results[idx] = ComputationResult{
				Name: backend.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple backends and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful evaluations, and displays a comparative table. It holds the
// logic for determining global success or failure based on the individual
// outcomes.
//
// Parameters:
//   - results: The slice of computation results to analyze.
//   - cfg: The application configuration.
//   - expr: The textual form of the evaluated operation, for display.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []ComputationResult, cfg config.AppConfig, expr string, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *ComputationResult
	var firstError error
	successCount := 0

	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sBackend%s\t%sDuration%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())

	for i, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
			if firstError == nil {
				firstError = res.Err
			}
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
			successCount++
			if firstValid == nil {
				firstValid = &results[i]
			}
		}
		duration := cli.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(tw, "%s%s%s\t%s%s%s\t%s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(),
			ui.ColorYellow(), duration, ui.ColorReset(),
			status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No backend could complete the computation.\n")
		return apperrors.HandleComputationError(firstError, 0, out, cli.CLIColorProvider{})
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && !res.Result.Equal(firstValid.Result) {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the backends.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	outputCfg := cli.OutputConfig{
		OutputFile: cfg.OutputFile,
		OutputBase: cfg.OutputBase,
		Quiet:      cfg.Quiet,
		Verbose:    cfg.Verbose,
	}
	if err := cli.DisplayResultWithConfig(out, firstValid.Result, expr, firstValid.Duration, firstValid.Name, outputCfg); err != nil {
		fmt.Fprintf(out, "Warning: failed to write result: %v\n", err)
	}
	return apperrors.ExitSuccess
}
