// Package config provides the configuration management for the intcalc
// application. It defines the configuration structure, parses command-line
// arguments, applies environment overrides and validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apmath/intcalc/internal/bigint"
	apperrors "github.com/apmath/intcalc/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by intcalc.
	// Environment variables provide an alternative to CLI flags, following
	// the 12-Factor App methodology.
	EnvPrefix = "INTCALC_"
)

// Default configuration values. These can be overridden via command-line
// flags or environment variables.
const (
	// DefaultTimeout is the default computation timeout.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultInputBase is the default base for parsing operands.
	DefaultInputBase = 10
	// DefaultOutputBase is the default base for rendering results.
	DefaultOutputBase = 10
	// DefaultThreshold is the default parallelism threshold, in factors of a
	// product range.
	DefaultThreshold = bigint.DefaultParallelThreshold
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. The operation and its operands arrive as
// positional arguments; everything else is a flag.
type AppConfig struct {
	// Op is the operation to evaluate (add, mul, factorial, ...).
	Op string
	// Operands are the textual operands of the operation, parsed in InputBase.
	Operands []string
	// InputBase is the base operands are written in (2..36).
	InputBase int
	// OutputBase is the base results are rendered in (2..36).
	OutputBase int
	// Timeout sets the maximum duration for the computation.
	Timeout time.Duration
	// Verify, if true, cross-checks the native engine against the reference
	// backends and reports mismatches.
	Verify bool
	// Threshold determines the range size at which products are parallelized.
	Threshold int
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// Quiet mode - minimal output for scripting purposes. Suppresses
	// progress bars, banners, and informational messages.
	Quiet bool
	// Verbose, if true, displays the full result value even when very long.
	Verbose bool
}

// ToCalculationOptions converts the application configuration into
// bigint.Options for use by the engine.
func (c AppConfig) ToCalculationOptions() bigint.Options {
	return bigint.Options{
		ParallelThreshold: c.Threshold,
	}
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Parameters:
//   - availableOps: A slice of strings listing the valid operation names.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableOps []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Threshold < 0 {
		return apperrors.NewConfigError("parallelism threshold cannot be negative: %d", c.Threshold)
	}
	if c.InputBase < bigint.MinBase || c.InputBase > bigint.MaxBase {
		return apperrors.NewConfigError("input base %d outside the supported range %d..%d", c.InputBase, bigint.MinBase, bigint.MaxBase)
	}
	if c.OutputBase < bigint.MinBase || c.OutputBase > bigint.MaxBase {
		return apperrors.NewConfigError("output base %d outside the supported range %d..%d", c.OutputBase, bigint.MinBase, bigint.MaxBase)
	}
	if c.ServerMode {
		// The server receives operations per request; nothing more to check.
		return nil
	}
	if c.Op == "" {
		return apperrors.NewConfigError("no operation given. Valid operations are: [%s]", strings.Join(availableOps, ", "))
	}
	for _, op := range availableOps {
		if op == c.Op {
			return nil
		}
	}
	return apperrors.NewConfigError("unrecognized operation: '%s'. Valid operations are: [%s]", c.Op, strings.Join(availableOps, ", "))
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. After parsing, the first positional
// argument becomes the operation and the rest its operands, and the
// resulting configuration is validated.
//
// The function is designed to be testable by allowing the input arguments
// and output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//   - availableOps: A slice of valid operation names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableOps []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.IntVar(&config.InputBase, "base", DefaultInputBase, "Base the operands are written in (2..36).")
	fs.IntVar(&config.OutputBase, "obase", DefaultOutputBase, "Base the result is rendered in (2..36).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the computation.")
	fs.BoolVar(&config.Verify, "verify", false, "Cross-check the result against the reference backends.")
	fs.IntVar(&config.Threshold, "threshold", DefaultThreshold, "Threshold (in factors) for parallelizing range products.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full value of the result (can be very long).")

	setCustomUsage(fs, availableOps)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	rest := fs.Args()
	if len(rest) > 0 {
		config.Op = strings.ToLower(rest[0])
		config.Operands = rest[1:]
	}

	if err := config.Validate(availableOps); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
