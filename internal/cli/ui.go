// The cli package provides functions for building the command-line interface
// of the integer calculator. It handles the asynchronous display of
// computation progress and formats results for a clear and readable
// presentation.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/apmath/intcalc/internal/bigint"
	"github.com/apmath/intcalc/internal/ui"
	"github.com/briandowns/spinner"
)

// Color functions return ANSI escape codes from the current theme. They
// delegate to the ui package so the CLI never captures a stale theme.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return ui.GetCurrentTheme().Reset }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return ui.GetCurrentTheme().Error }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return ui.GetCurrentTheme().Success }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return ui.GetCurrentTheme().Warning }

// ColorBlue returns the primary color from the current theme.
func ColorBlue() string { return ui.GetCurrentTheme().Primary }

// ColorMagenta returns the info color from the current theme.
func ColorMagenta() string { return ui.GetCurrentTheme().Info }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return ui.GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return ui.GetCurrentTheme().Bold }

// CLIColorProvider implements the apperrors.ColorProvider interface using
// the CLI color scheme.
type CLIColorProvider struct{}

// Yellow returns the warning color code.
func (c CLIColorProvider) Yellow() string { return ColorYellow() }

// Reset returns the reset color code.
func (c CLIColorProvider) Reset() string { return ColorReset() }

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This gives a more human-readable output for short computations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation,
// which keeps the display loop testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner behind the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to keep the animation in step
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState aggregates the progress of concurrent backends. It keeps the
// individual progress of each backend and computes the average, which gives
// a single consolidated progress view when verification runs several
// backends in parallel.
type ProgressState struct {
	progresses  []float64
	numBackends int
}

// NewProgressState creates and initializes a new ProgressState tracking the
// given number of backends.
//
// Parameters:
//   - numBackends: The number of backends to track.
//
// Returns:
//   - *ProgressState: A pointer to the new progress state object.
func NewProgressState(numBackends int) *ProgressState {
	return &ProgressState{
		progresses:  make([]float64, numBackends),
		numBackends: numBackends,
	}
}

// Update records a new progress value for a specific backend. Updates with
// an out-of-range index are ignored.
//
// Parameters:
//   - index: The index of the backend (0 to numBackends-1).
//   - value: The progress value (0.0 to 1.0).
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked
// backends.
//
// Returns:
//   - float64: The average progress (0.0 to 1.0).
func (ps *ProgressState) CalculateAverage() float64 {
	var totalProgress float64
	for _, p := range ps.progresses {
		totalProgress += p
	}
	if ps.numBackends == 0 {
		return 0.0
	}
	return totalProgress / float64(ps.numBackends)
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress manages the asynchronous display of a spinner and progress
// bar. It is designed to run in a dedicated goroutine for the duration of
// the computation.
//
// The function's responsibilities include:
//   - Receiving progress updates from a channel.
//   - Aggregating these updates to calculate the average progress.
//   - Calculating and displaying the estimated time remaining (ETA).
//   - Periodically refreshing the spinner and progress bar.
//   - Gracefully shutting down when the progress channel is closed.
//
// Parameters:
//   - wg: A WaitGroup to signal when the display routine is complete.
//   - progressChan: The channel receiving progress updates.
//   - numBackends: The number of backends contributing to the progress.
//   - out: The io.Writer to which the progress bar is rendered.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bigint.ProgressUpdate, numBackends int, out io.Writer) {
	defer wg.Done()
	if numBackends <= 0 {
		for range progressChan { // Drain the channel
		}
		return
	}

	state := NewProgressWithETA(numBackends)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	spinnerStopped := false
	defer func() {
		if !spinnerStopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				// Stop the spinner first to free the line
				if !spinnerStopped {
					s.Stop()
					spinnerStopped = true
				}

				// Print a final 100% line so the bar persists after the run
				bar := progressBar(1.0, ProgressBarWidth)
				label := "Progress"
				if numBackends > 1 {
					label = "Avg progress"
				}
				fmt.Fprintf(out, "%s: %6.2f%% [%s] ETA: %s\n", label, 100.0, bar, "< 1s")
				return
			}
			state.UpdateWithETA(update.OperationIndex, update.Value)
		case <-ticker.C:
			avgProgress := state.CalculateAverage()
			eta := state.GetETA()
			bar := progressBar(avgProgress, ProgressBarWidth)
			label := "Progress"
			if numBackends > 1 {
				label = "Avg progress"
			}
			etaStr := FormatETA(eta)
			s.UpdateSuffix(fmt.Sprintf(" %s: %6.2f%% [%s] ETA: %s", label, avgProgress*100, bar, etaStr))
		}
	}
}

// DisplayResult formats and prints the final computation result.
// For very large numbers it truncates the output unless verbose is true,
// showing only the leading and trailing digits.
//
// Parameters:
//   - result: The computed value.
//   - expr: A textual description of the evaluated operation, e.g.
//     "factorial(120)".
//   - outputBase: The base the result is rendered in.
//   - duration: The time taken for the computation.
//   - verbose: If true, prints the full number regardless of size.
//   - out: The io.Writer for the output.
func DisplayResult(result bigint.Int, expr string, outputBase int, duration time.Duration, verbose bool, out io.Writer) {
	resultStr := result.Text(outputBase)
	numDigits := len(resultStr)
	if result.Sign() < 0 {
		numDigits--
	}

	fmt.Fprintf(out, "\n%s--- Result ---%s\n", ColorBold(), ColorReset())
	durationStr := FormatExecutionDuration(duration)
	if duration == 0 {
		durationStr = "< 1µs"
	}
	fmt.Fprintf(out, "Computation time : %s%s%s\n", ColorGreen(), durationStr, ColorReset())
	fmt.Fprintf(out, "Number of digits : %s%s%s (base %d)\n", ColorCyan(), formatNumberString(fmt.Sprintf("%d", numDigits)), ColorReset(), outputBase)

	if verbose {
		fmt.Fprintf(out, "%s%s%s =\n%s%s%s\n", ColorMagenta(), expr, ColorReset(), ColorGreen(), groupDigits(resultStr, outputBase), ColorReset())
	} else if numDigits > TruncationLimit {
		fmt.Fprintf(out, "%s%s%s (truncated) = %s%s...%s%s\n",
			ColorMagenta(), expr, ColorReset(),
			ColorGreen(), resultStr[:DisplayEdges], resultStr[len(resultStr)-DisplayEdges:], ColorReset())
		fmt.Fprintf(out, "(Tip: use the %s-v%s option to display the full value)\n", ColorYellow(), ColorReset())
	} else {
		fmt.Fprintf(out, "%s%s%s = %s%s%s\n", ColorMagenta(), expr, ColorReset(), ColorGreen(), groupDigits(resultStr, outputBase), ColorReset())
	}
}

// groupDigits inserts thousand separators when the rendering base is 10;
// other bases pass through untouched, since separator grouping is a decimal
// convention.
func groupDigits(s string, base int) string {
	if base != 10 {
		return s
	}
	return formatNumberString(s)
}

// formatNumberString inserts thousand separators into a numeric string.
//
// Parameters:
//   - s: The numeric string to format.
//
// Returns:
//   - string: The formatted string with comma separators.
func formatNumberString(s string) string {
	if len(s) == 0 {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	// Grow to the exact final size to avoid reallocations
	numSeparators := (n - 1) / 3
	capacity := len(prefix) + n + numSeparators
	var builder strings.Builder
	builder.Grow(capacity)
	builder.WriteString(prefix)

	firstGroupLen := n % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(s[:firstGroupLen])

	for i := firstGroupLen; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}
