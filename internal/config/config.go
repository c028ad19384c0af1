// Package config defines the application configuration and its
// resolution chain: CLI flags take priority over environment variables,
// which take priority over built-in defaults.
package config

import (
	"errors"
	"flag"
	"time"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application
// reads.
const EnvPrefix = "BIGNUM_"

// Default configuration values.
const (
	DefaultTimeout  = 5 * time.Minute
	DefaultOp       = "mul"
	DefaultAlgo     = "auto"
	DefaultLogLevel = "info"
)

// Operations lists the calculator operations the CLI accepts.
var Operations = []string{
	"add", "sub", "mul", "div", "mod", "divrem",
	"pow", "modpow", "gcd", "lcm", "verify", "repl",
}

// Algorithms lists the accepted multiplication algorithm selectors.
// "auto" defers to the size-based dispatcher.
var Algorithms = []string{"auto", "schoolbook", "karatsuba", "fft"}

// AppConfig holds the full runtime configuration of the calculator.
type AppConfig struct {
	// Op is the operation to perform.
	Op string
	// A and B are the decimal operands. B is unused by unary operations.
	A string
	B string
	// Exp is the exponent operand for pow and modpow.
	Exp string
	// Mod is the modulus operand for modpow.
	Mod string
	// Algo forces a multiplication algorithm instead of the dispatcher.
	Algo string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// OutputFile receives the full result when set.
	OutputFile string
	// MetricsAddr enables the metrics HTTP server when non-empty.
	MetricsAddr string
	// LogLevel selects the zerolog level (debug, info, warn, error).
	LogLevel string
	// Verbose enables per-step progress output.
	Verbose bool
	// Quiet suppresses everything except the result.
	Quiet bool
	// FullValue prints the complete decimal expansion instead of the
	// truncated preview.
	FullValue bool
}

// DefaultConfig returns the configuration used when no flag or
// environment variable overrides a value.
func DefaultConfig() AppConfig {
	return AppConfig{
		Op:       DefaultOp,
		Algo:     DefaultAlgo,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// RegisterFlags declares every CLI flag on fs, binding them to cfg.
// Short aliases share the backing field with their long form.
func RegisterFlags(fs *flag.FlagSet, cfg *AppConfig) {
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation: add, sub, mul, div, mod, divrem, pow, modpow, gcd, lcm, verify, repl")
	fs.StringVar(&cfg.A, "a", cfg.A, "first operand (decimal, optional leading '-')")
	fs.StringVar(&cfg.B, "b", cfg.B, "second operand")
	fs.StringVar(&cfg.Exp, "exp", cfg.Exp, "exponent for pow and modpow")
	fs.StringVar(&cfg.Mod, "mod", cfg.Mod, "modulus for modpow")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, "multiplication algorithm: auto, schoolbook, karatsuba, fft")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "global timeout for the run")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write the full result to this file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "alias for -output")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "listen address for the Prometheus endpoint (empty disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "verbose progress output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "alias for -verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress everything except the result")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "alias for -quiet")
	fs.BoolVar(&cfg.FullValue, "full", cfg.FullValue, "print the complete decimal value")
}

// ParseConfig parses args into an AppConfig, applying the resolution
// chain and validating the result.
//
// Parameters:
//   - fs: The flag set to parse with. Must not have been parsed yet.
//   - args: The command-line arguments, without the program name.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError describing the first invalid value found.
func ParseConfig(fs *flag.FlagSet, args []string) (AppConfig, error) {
	cfg := DefaultConfig()
	RegisterFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("invalid arguments: %v", err)
	}

	applyEnvOverrides(&cfg, fs)

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints. Operand syntax is validated
// later by the parser so that error messages carry the offending input.
func Validate(cfg AppConfig) error {
	if !contains(Operations, cfg.Op) {
		return apperrors.NewConfigError("unknown operation %q", cfg.Op)
	}
	if !contains(Algorithms, cfg.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q", cfg.Algo)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Verbose && cfg.Quiet {
		return apperrors.NewConfigError("verbose and quiet are mutually exclusive")
	}
	if cfg.Op == "modpow" && cfg.Mod == "" {
		return apperrors.NewConfigError("operation modpow requires -mod")
	}
	if (cfg.Op == "pow" || cfg.Op == "modpow") && cfg.Exp == "" {
		return apperrors.NewConfigError("operation %s requires -exp", cfg.Op)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
