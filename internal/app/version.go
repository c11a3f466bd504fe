package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the release version, set at build time with
// -ldflags "-X github.com/agbru/colorstats/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args request the version banner. Parsing
// stops at a "--" terminator.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "colorstats %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
