// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envLookup resolves an environment variable by its full name.
type envLookup func(key string) (string, bool)

// osLookup reads the process environment.
var osLookup envLookup = os.LookupEnv

// withFallback returns a lookup that consults l first and then vars. Process
// variables therefore win over .env entries.
func (l envLookup) withFallback(vars map[string]string) envLookup {
	return func(key string) (string, bool) {
		if v, ok := l(key); ok && v != "" {
			return v, true
		}
		v, ok := vars[key]
		return v, ok && v != ""
	}
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the COLORSTATS_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// Unparseable values are ignored and leave the current setting in place.
var envOverrides = []envOverride{
	// Numeric overrides
	{"FIB_N", []string{"fib-n"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.FibN = parsed
		}
	}},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},
	{"BITS", []string{"bits"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Bits = parsed
		}
	}},
	{"COLUMN", []string{"column"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Column = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"DOC_ID", []string{"doc-id"}, func(c *AppConfig, v string) {
		c.DocID = v
	}},
	{"URL_TEMPLATE", []string{"url-template"}, func(c *AppConfig, v string) {
		c.URLTemplate = v
	}},
	{"TARGET", []string{"target"}, func(c *AppConfig, v string) {
		c.Target = v
	}},
	{"SEARCH", []string{"search"}, func(c *AppConfig, v string) {
		c.Search = v
	}},
	{"CASE", []string{"case"}, func(c *AppConfig, v string) {
		c.Case = v
	}},
	{"ON_ERROR", []string{"on-error"}, func(c *AppConfig, v string) {
		c.OnError = v
	}},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) {
		c.MetricsFile = v
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) {
		c.LogLevel = v
	}},

	// Boolean overrides
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
//
// Supported environment variables (all prefixed with COLORSTATS_):
//   - DOC_ID, URL_TEMPLATE, TIMEOUT, TARGET, SEARCH, FIB_N, SEED, BITS,
//     COLUMN, CASE, ON_ERROR, OUTPUT, METRICS_FILE, LOG_LEVEL, QUIET
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet, lookup envLookup) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val, ok := lookup(EnvPrefix + o.envKey); ok && val != "" {
			o.apply(config, val)
		}
	}
}
