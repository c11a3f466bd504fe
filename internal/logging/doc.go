// Package logging provides the structured logging interface used by colorstats.
// It wraps zerolog behind a small Logger interface so pipeline stages can log
// diagnostics without depending on a concrete backend.
package logging
