// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 99, "--bits"),
			expected: "invalid value 99 for flag --bits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			var configErr ConfigError
			if !errors.As(tt.err, &configErr) {
				t.Error("expected error to be ConfigError type")
			}
		})
	}
}

func TestFetchError(t *testing.T) {
	t.Parallel()
	err := &FetchError{URL: "https://example.test/doc", StatusCode: 404, Status: "404 Not Found"}

	if !strings.Contains(err.Error(), "404 Not Found") {
		t.Errorf("message should contain status, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "https://example.test/doc") {
		t.Errorf("message should contain URL, got %q", err.Error())
	}

	wrapped := fmt.Errorf("collect: %w", err)
	var target *FetchError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find FetchError through wrapping")
	}
	if target.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", target.StatusCode)
	}
}

func TestFetchError_Cause(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := &FetchError{URL: "https://example.test/doc", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("message should contain the cause, got %q", err.Error())
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	cause := errors.New("unexpected EOF")
	err := &ParseError{Cause: cause}

	if err.Error() != "parse document: unexpected EOF" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := TimeoutError{Operation: "fetch", Limit: 30 * time.Second}
	want := `operation "fetch" timed out after 30s`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context %d", 1) != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wraps with context", func(t *testing.T) {
		t.Parallel()
		base := errors.New("connection refused")
		err := WrapError(base, "fetch document %s", "abc")
		if err.Error() != "fetch document abc: connection refused" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should unwrap to base")
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), true},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"timeout type", TimeoutError{Operation: "fetch", Limit: time.Second}, ExitErrorTimeout},
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"fetch", &FetchError{URL: "u", StatusCode: 500, Status: "500 Internal Server Error"}, ExitErrorIngest},
		{"transport", &FetchError{URL: "u", Err: errors.New("connection refused")}, ExitErrorIngest},
		{"fetch deadline", &FetchError{URL: "u", Err: context.DeadlineExceeded}, ExitErrorTimeout},
		{"fetch canceled", &FetchError{URL: "u", Err: context.Canceled}, ExitErrorCanceled},
		{"parse", fmt.Errorf("extract: %w", &ParseError{Cause: errors.New("x")}), ExitErrorIngest},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorTimeout":  ExitErrorTimeout,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorIngest":   ExitErrorIngest,
		"ExitErrorCanceled": ExitErrorCanceled,
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if other, dup := seen[code]; dup {
			t.Errorf("%s and %s share exit code %d", name, other, code)
		}
		seen[code] = name
	}
}
