// Package config parses and validates the paracc command line.
//
// Values are resolved in this order, highest priority first:
//  1. command-line flags
//  2. PARACC_* environment variables
//  3. the TOML file named by -config (or PARACC_CONFIG)
//  4. adaptive defaults derived from the host (ApplyAdaptiveDefaults)
//  5. the static defaults below
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/paracc/internal/errors"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "PARACC_"

// Static defaults.
const (
	// DefaultN matches the benchmark's historical sequence length.
	DefaultN       = 1_000_000_000
	DefaultAlgo    = "all"
	DefaultTimeout = 5 * time.Minute
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the number of elements of the iota sequence 0..N-1.
	N int
	// Init is the initial accumulator value.
	Init int64
	// Algo selects the runner: "parallel", "sequential" or "all".
	Algo string
	// MinChunk is the minimum number of elements per worker. Zero means the
	// reducer default.
	MinChunk int
	// Workers caps the hardware parallelism used for planning. Zero means
	// detect.
	Workers int
	// Checked enables overflow detection in the reducer.
	Checked bool
	// Materialize backs the sequence with a slice instead of computing
	// elements on the fly.
	Materialize bool
	// Timeout bounds the whole benchmark.
	Timeout time.Duration
	// Verbose enables per-worker debug logging.
	Verbose bool
	// Details prints the partition plan and a system report.
	Details bool
	// Quiet prints only the result.
	Quiet bool
	// NoColor disables ANSI colors.
	NoColor bool
	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string
	// ConfigFile is an optional TOML file.
	ConfigFile string
}

// Validate checks the semantic validity of the configuration.
//
// Parameters:
//   - availableAlgos: the runner names the caller can execute.
//
// Returns:
//   - error: an apperrors.ConfigError wrapping the apperrors.ValidationError
//     of the first invalid field.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.N < 0 {
		return apperrors.NewInvalidFieldError("n", "sequence length must be non-negative, got %d", c.N)
	}
	if c.MinChunk < 0 {
		return apperrors.NewInvalidFieldError("min-chunk", "min-chunk must be non-negative, got %d", c.MinChunk)
	}
	if c.Workers < 0 {
		return apperrors.NewInvalidFieldError("workers", "workers must be non-negative, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewInvalidFieldError("timeout", "timeout must be strictly positive, got %s", c.Timeout)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewInvalidFieldError("quiet", "-quiet and -v cannot be combined")
	}
	algo := strings.ToLower(c.Algo)
	if algo != "all" && !slices.Contains(availableAlgos, algo) {
		return apperrors.NewInvalidFieldError("algo", "unrecognized algorithm %q; valid algorithms: all, %s",
			c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}

// ParseConfig parses the command-line arguments, overlays the TOML file and
// the environment, and validates the result.
//
// Parameters:
//   - programName: the name used in usage output.
//   - args: the arguments without the program name.
//   - errWriter: destination of usage and parse errors.
//   - availableAlgos: the runner names accepted by -algo.
//
// Returns:
//   - AppConfig: the resolved configuration.
//   - error: flag.ErrHelp for -h/--help, a ConfigError, or a file error.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	fs.IntVar(&config.N, "n", DefaultN, "Number of elements in the sequence 0..n-1.")
	fs.Int64Var(&config.Init, "init", 0, "Initial accumulator value.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo,
		fmt.Sprintf("Runner to execute: 'all' or one of %s.", strings.Join(availableAlgos, ", ")))
	fs.IntVar(&config.MinChunk, "min-chunk", 0, "Minimum elements per worker (0 = default).")
	fs.IntVar(&config.Workers, "workers", 0, "Hardware parallelism to plan for (0 = detect).")
	fs.BoolVar(&config.Checked, "checked", false, "Fail on accumulator overflow instead of wrapping.")
	fs.BoolVar(&config.Materialize, "materialize", false, "Back the sequence with an in-memory slice.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the benchmark.")
	fs.BoolVar(&config.Verbose, "v", false, "Log one line per worker.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.Details, "d", false, "Print the partition plan and a system report.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.Quiet, "q", false, "Print only the result.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Alias for -q.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&config.ConfigFile, "config", "", "Path to a TOML configuration file.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if !isFlagSet(fs, "config") {
		config.ConfigFile = getEnvString("CONFIG", config.ConfigFile)
	}
	if config.ConfigFile != "" {
		if err := applyFileConfig(&config, config.ConfigFile, fs); err != nil {
			return AppConfig{}, err
		}
	}
	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}
