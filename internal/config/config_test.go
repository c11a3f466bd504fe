package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/agbru/colorstats/internal/errors"
)

// noEnvFile points --env-file at a path that does not exist so tests are
// not affected by a .env in the working directory.
func noEnvFile(t *testing.T) string {
	return "--env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("colorstats", []string{noEnvFile(t)}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	want := Default()
	want.EnvFile = cfg.EnvFile
	if cfg != want {
		t.Errorf("ParseConfig() = %+v, want %+v", cfg, want)
	}
	if cfg.Target != "Red" || cfg.Search != "Blue" || cfg.FibN != 50 || cfg.Bits != 4 || cfg.Seed != 42 {
		t.Errorf("unexpected reference defaults: %+v", cfg)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{
		noEnvFile(t),
		"--doc-id", "abc",
		"--url-template", "http://localhost:9/%s",
		"--timeout", "5s",
		"--target", "blue",
		"--search", "green",
		"--fib-n", "10",
		"--seed", "-3",
		"--bits", "8",
		"--column", "0",
		"--case", "upper",
		"--on-error", "abort",
		"-o", "out.txt",
		"--metrics-file", "m.prom",
		"--log-level", "debug",
		"-q",
	}
	cfg, err := ParseConfig("colorstats", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}

	checks := []struct {
		name string
		ok   bool
	}{
		{"DocID", cfg.DocID == "abc"},
		{"URLTemplate", cfg.URLTemplate == "http://localhost:9/%s"},
		{"Timeout", cfg.Timeout == 5*time.Second},
		{"Target", cfg.Target == "blue"},
		{"Search", cfg.Search == "green"},
		{"FibN", cfg.FibN == 10},
		{"Seed", cfg.Seed == -3},
		{"Bits", cfg.Bits == 8},
		{"Column", cfg.Column == 0},
		{"Case", cfg.Case == "upper"},
		{"OnError", cfg.OnError == "abort"},
		{"OutputFile", cfg.OutputFile == "out.txt"},
		{"MetricsFile", cfg.MetricsFile == "m.prom"},
		{"LogLevel", cfg.LogLevel == "debug"},
		{"Quiet", cfg.Quiet},
	}
	for _, c := range checks {
		if !c.ok {
			t.Errorf("%s not applied: %+v", c.name, cfg)
		}
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := ParseConfig("colorstats", []string{"--help"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"positional", []string{"extra"}},
		{"bits zero", []string{"--bits", "0"}},
		{"bits too wide", []string{"--bits", "65"}},
		{"negative column", []string{"--column", "-1"}},
		{"bad case", []string{"--case", "snake"}},
		{"bad policy", []string{"--on-error", "retry"}},
		{"bad level", []string{"--log-level", "loud"}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"template without verb", []string{"--url-template", "https://example.com/doc"}},
		{"template with bad scheme", []string{"--url-template", "ftp://example.com/%s"}},
		{"empty doc", []string{"--doc-id", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{noEnvFile(t)}, tt.args...)
			_, err := ParseConfig("colorstats", args, io.Discard)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Fatalf("want ConfigError, got %v", err)
			}
			if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
				t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
			}
		})
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("COLORSTATS_TARGET", "Green")
	t.Setenv("COLORSTATS_BITS", "12")
	t.Setenv("COLORSTATS_TIMEOUT", "1m")
	t.Setenv("COLORSTATS_QUIET", "yes")
	t.Setenv("COLORSTATS_SEED", "not-a-number")

	cfg, err := ParseConfig("colorstats", []string{noEnvFile(t), "--bits", "6"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Target != "Green" {
		t.Errorf("Target = %q, want env value Green", cfg.Target)
	}
	if cfg.Bits != 6 {
		t.Errorf("Bits = %d, flag should win over env", cfg.Bits)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %s, want 1m", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be enabled from env")
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, invalid env value should be ignored", cfg.Seed)
	}
}

func TestParseConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "COLORSTATS_SEARCH=Yellow\nCOLORSTATS_FIB_N=20\nCOLORSTATS_CASE=lower\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COLORSTATS_FIB_N", "30")

	cfg, err := ParseConfig("colorstats", []string{"--env-file", path, "--case", "none"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Search != "Yellow" {
		t.Errorf("Search = %q, want .env value Yellow", cfg.Search)
	}
	if cfg.FibN != 30 {
		t.Errorf("FibN = %d, process env should win over .env", cfg.FibN)
	}
	if cfg.Case != "none" {
		t.Errorf("Case = %q, flag should win over .env", cfg.Case)
	}
}

func TestParseConfig_MalformedEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.env")
	if err := os.WriteFile(path, []byte("COLORSTATS_TARGET='unterminated\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := ParseConfig("colorstats", []string{"--env-file", path}, io.Discard)
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestEnvLookupWithFallback(t *testing.T) {
	t.Parallel()
	primary := envLookup(func(key string) (string, bool) {
		if key == "A" {
			return "process", true
		}
		if key == "EMPTY" {
			return "", true
		}
		return "", false
	})
	lookup := primary.withFallback(map[string]string{"A": "file", "B": "file", "EMPTY": "file"})

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"A", "process", true},
		{"B", "file", true},
		{"EMPTY", "file", true},
		{"C", "", false},
	}
	for _, tt := range tests {
		got, ok := lookup(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("lookup(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}
