//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"context"
	"io"
)

// DocumentSource retrieves the raw bytes of a document by its identifier.
// The fetch package provides the HTTP implementation.
type DocumentSource interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// ReportPresenter renders a finished report. This interface decouples the
// pipeline from output formatting so the CLI can choose how results look.
type ReportPresenter interface {
	PresentReport(report Report, out io.Writer) error
}

// ReportPresenterFunc is a function adapter that implements ReportPresenter.
type ReportPresenterFunc func(report Report, out io.Writer) error

// PresentReport calls the underlying function.
func (f ReportPresenterFunc) PresentReport(report Report, out io.Writer) error {
	return f(report, out)
}
