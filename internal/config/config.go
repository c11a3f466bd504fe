// Package config defines the application configuration and its parsing from
// command-line flags, environment variables and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/agbru/colorstats/internal/errors"
	"github.com/agbru/colorstats/internal/extract"
	"github.com/agbru/colorstats/internal/fetch"
	"github.com/agbru/colorstats/internal/logging"
	"github.com/agbru/colorstats/internal/orchestration"
)

// EnvPrefix is prepended to every environment variable read by the
// configuration layer.
const EnvPrefix = "COLORSTATS_"

// DefaultEnvFile is the .env file loaded when --env-file is not given.
const DefaultEnvFile = ".env"

// AppConfig aggregates the configuration parameters of one run.
type AppConfig struct {
	// DocID is the identifier of the source document.
	DocID string
	// URLTemplate builds the document URL; its single %s receives DocID.
	URLTemplate string
	// Timeout bounds the whole run, document retrieval included.
	Timeout time.Duration

	// Target is the label whose probability is reported.
	Target string
	// Search is the label located with binary search.
	Search string
	// FibN is the number of Fibonacci terms to sum.
	FibN uint64
	// Seed initializes the random bit generator.
	Seed int64
	// Bits is the width of the generated binary number.
	Bits int

	// Column is the zero-based cell index holding the color list.
	Column int
	// Case is the normalization mode: none, title, upper or lower.
	Case string
	// OnError is the ingestion failure policy: degrade or abort.
	OnError string

	// OutputFile also receives the report when set.
	OutputFile string
	// MetricsFile receives a Prometheus textfile export when set.
	MetricsFile string
	// LogLevel is the minimum diagnostic level.
	LogLevel string
	// Quiet suppresses the spinner and informational logs.
	Quiet bool
	// EnvFile is the .env file consulted for COLORSTATS_* values.
	EnvFile string
}

// Default returns the configuration of the reference run.
func Default() AppConfig {
	opts := orchestration.DefaultOptions()
	return AppConfig{
		DocID:       opts.DocumentID,
		URLTemplate: fetch.DefaultURLTemplate,
		Timeout:     fetch.DefaultTimeout,
		Target:      opts.Target,
		Search:      opts.SearchTarget,
		FibN:        opts.FibTerms,
		Seed:        opts.Seed,
		Bits:        opts.Bits,
		Column:      opts.Extract.Column,
		Case:        string(opts.Extract.Case),
		OnError:     string(opts.Policy),
		LogLevel:    "info",
		EnvFile:     DefaultEnvFile,
	}
}

// ParseConfig parses args into an AppConfig. Priority is CLI flags, then
// COLORSTATS_* environment variables, then the .env file, then defaults.
// flag.ErrHelp is returned unwrapped when help was requested; any other
// failure is a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Fetches a weekly outfit table and prints color statistics.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	config := Default()
	fs.StringVar(&config.DocID, "doc-id", config.DocID, "Identifier of the source document.")
	fs.StringVar(&config.URLTemplate, "url-template", config.URLTemplate, "Document URL template; %s is replaced by the document ID.")
	fs.DurationVar(&config.Timeout, "timeout", config.Timeout, "Maximum run time, e.g. 30s or 1m.")
	fs.StringVar(&config.Target, "target", config.Target, "Color whose probability is reported.")
	fs.StringVar(&config.Search, "search", config.Search, "Color located with binary search.")
	fs.Uint64Var(&config.FibN, "fib-n", config.FibN, "Number of Fibonacci terms to sum.")
	fs.Int64Var(&config.Seed, "seed", config.Seed, "Seed of the random bit generator.")
	fs.IntVar(&config.Bits, "bits", config.Bits, "Width of the generated binary number (1-64).")
	fs.IntVar(&config.Column, "column", config.Column, "Zero-based table column holding the color list.")
	fs.StringVar(&config.Case, "case", config.Case, "Color normalization: none, title, upper or lower.")
	fs.StringVar(&config.OnError, "on-error", config.OnError, "Behavior when the document cannot be read: degrade or abort.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file.")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level: debug, info, warn or error.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Suppress the spinner and informational logs.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.StringVar(&config.EnvFile, "env-file", config.EnvFile, "Optional .env file with COLORSTATS_* settings.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	dotenv, err := readEnvFile(config.EnvFile)
	if err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&config, fs, osLookup.withFallback(dotenv))

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// readEnvFile returns the variables declared in path. A missing file yields
// an empty map.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewConfigError("read env file %s: %v", path, err)
	}
	return vars, nil
}

// Validate checks ranges and enumerations. All failures are ConfigErrors.
func (c AppConfig) Validate() error {
	if c.DocID == "" {
		return apperrors.NewConfigError("--doc-id must not be empty")
	}
	if _, err := fetch.DocumentURL(c.URLTemplate, c.DocID); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.Bits < 1 || c.Bits > 64 {
		return apperrors.NewConfigError("--bits must be between 1 and 64, got %d", c.Bits)
	}
	if c.Column < 0 {
		return apperrors.NewConfigError("--column must not be negative, got %d", c.Column)
	}
	if _, err := extract.ParseCaseMode(c.Case); err != nil {
		return apperrors.NewConfigError("--case: %v", err)
	}
	if _, err := orchestration.ParseErrorPolicy(c.OnError); err != nil {
		return apperrors.NewConfigError("--on-error: %v", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("--log-level: %v", err)
	}
	return nil
}
