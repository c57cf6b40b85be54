// Package config provides the configuration management for the intseq CLI.
// It defines the configuration structure, parses command-line arguments with
// environment-variable defaults, and validates the resulting values.
package config

import (
	"flag"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/intseq/internal/errors"
)

// EnvPrefix is the prefix for all environment variables used by intseq.
// Environment variables provide defaults that command-line flags override.
const EnvPrefix = "INTSEQ_"

// Default configuration values, overridable via flags or environment.
const (
	// DefaultSequence is the sequence generated when none is selected.
	DefaultSequence = "prime"
	// DefaultCount is the default number of terms to generate.
	DefaultCount = 20
	// DefaultSides is the default polygon side count for -seq=polygonal.
	DefaultSides = 3
	// DefaultP and DefaultQ are the default Lucas parameters (Pell numbers).
	DefaultP int64 = 2
	DefaultQ int64 = -1
	// DefaultTimeout is the default generation timeout.
	DefaultTimeout = 1 * time.Minute
)

// knownSequences lists the accepted values of the -seq flag.
var knownSequences = []string{"prime", "composite", "fibonacci", "pell", "lucas", "polygonal", "all"}

// AppConfig aggregates the CLI's configuration parameters.
type AppConfig struct {
	// Sequence selects which stream to generate ("all" for every one).
	Sequence string
	// Count is the number of terms to generate.
	Count int
	// Sides is the polygon side count for the polygonal stream.
	Sides int
	// P and Q are the Lucas parameters for the lucas stream.
	P, Q int64
	// JSONOutput, if true, emits the result as JSON instead of text.
	JSONOutput bool
	// NoColor disables the spinner and any colored output.
	NoColor bool
	// Verbose enables debug logging.
	Verbose bool
	// Timeout bounds the total generation time.
	Timeout time.Duration
}

// ParseFlags parses command-line arguments into an AppConfig, applying
// environment-variable defaults first, then validates it.
//
// Parameters:
//   - args: The raw arguments, excluding the program name.
//   - output: The writer for flag-package usage output.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: A ConfigError on invalid flags or values.
func ParseFlags(args []string, output io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet("intseq", flag.ContinueOnError)
	fs.SetOutput(output)

	var cfg AppConfig
	fs.StringVar(&cfg.Sequence, "seq", getEnvString("SEQ", DefaultSequence),
		"sequence to generate: "+strings.Join(knownSequences, ", "))
	fs.IntVar(&cfg.Count, "count", getEnvInt("COUNT", DefaultCount),
		"number of terms to generate")
	fs.IntVar(&cfg.Sides, "sides", getEnvInt("SIDES", DefaultSides),
		"polygon sides for -seq=polygonal")
	fs.Int64Var(&cfg.P, "p", getEnvInt64("P", DefaultP), "Lucas parameter P")
	fs.Int64Var(&cfg.Q, "q", getEnvInt64("Q", DefaultQ), "Lucas parameter Q")
	fs.BoolVar(&cfg.JSONOutput, "json", getEnvBool("JSON", false), "emit JSON output")
	fs.BoolVar(&cfg.NoColor, "no-color", getEnvBool("NO_COLOR", false), "disable spinner and colors")
	fs.BoolVar(&cfg.Verbose, "v", getEnvBool("VERBOSE", false), "enable debug logging")
	fs.DurationVar(&cfg.Timeout, "timeout", getEnvDuration("TIMEOUT", DefaultTimeout),
		"generation timeout")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, apperrors.NewConfigError("invalid arguments: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration values for consistency.
//
// Returns:
//   - error: A ConfigError describing the first invalid value, or nil.
func (c AppConfig) Validate() error {
	valid := false
	for _, s := range knownSequences {
		if c.Sequence == s {
			valid = true
			break
		}
	}
	if !valid {
		return apperrors.NewConfigError("unknown sequence %q (want one of %s)",
			c.Sequence, strings.Join(knownSequences, ", "))
	}
	if c.Count < 1 {
		return apperrors.NewConfigError("count must be at least 1, got %d", c.Count)
	}
	if c.Sides < 3 {
		return apperrors.NewConfigError("a polygon requires at least 3 sides, got %d", c.Sides)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
