package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/agbru/colorstats/internal/orchestration"
)

// SpinnerRefreshRate defines the refresh frequency of the spinner.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner abstracts a terminal spinner so the fetch wrapper can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SpinnerSource wraps a DocumentSource and shows a spinner on Out while a
// fetch is in flight.
type SpinnerSource struct {
	Source orchestration.DocumentSource
	Out    io.Writer
}

// Verify interface compliance.
var _ orchestration.DocumentSource = SpinnerSource{}

// Fetch delegates to the wrapped source.
func (s SpinnerSource) Fetch(ctx context.Context, id string) ([]byte, error) {
	sp := newSpinner(spinner.WithWriter(s.Out), spinner.WithHiddenCursor(true))
	sp.UpdateSuffix(" Fetching document " + id)
	sp.Start()
	defer sp.Stop()
	return s.Source.Fetch(ctx, id)
}

// WithSpinner returns source wrapped in a SpinnerSource when out is a
// terminal and quiet is false, and source unchanged otherwise.
func WithSpinner(source orchestration.DocumentSource, out io.Writer, quiet bool) orchestration.DocumentSource {
	if quiet || !IsTerminal(out) {
		return source
	}
	return SpinnerSource{Source: source, Out: out}
}
