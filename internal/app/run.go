package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/agbru/colorstats/internal/cli"
	apperrors "github.com/agbru/colorstats/internal/errors"
	"github.com/agbru/colorstats/internal/fetch"
	"github.com/agbru/colorstats/internal/format"
	"github.com/agbru/colorstats/internal/logging"
	"github.com/agbru/colorstats/internal/metrics"
	"github.com/agbru/colorstats/internal/orchestration"
)

// runReport runs the pipeline, prints the report and writes the optional
// report and metrics files.
func (a *Application) runReport(ctx context.Context, out io.Writer, runID string, logger logging.Logger) int {
	opts, err := pipelineOptions(a.Config)
	if err != nil {
		return a.fail(apperrors.NewConfigError("%v", err), logger)
	}

	m := metrics.New()
	defer a.writeMetrics(m, logger)

	source := a.documentSource(fetch.Options{
		URLTemplate: a.Config.URLTemplate,
		Timeout:     a.Config.Timeout,
		Logger:      logger,
		Metrics:     m,
	})
	source = cli.WithSpinner(source, a.ErrWriter, a.Config.Quiet)

	pipeline := orchestration.NewPipeline(source, opts,
		orchestration.WithLogger(logger),
		orchestration.WithMetrics(m))

	logger.Debug("run started",
		logging.String("doc_id", opts.DocumentID),
		logging.String("policy", string(opts.Policy)),
		logging.Duration("timeout", a.Config.Timeout))

	report, err := pipeline.Run(ctx)
	if err != nil {
		return a.fail(err, logger)
	}

	if err := a.Presenter.PresentReport(report, out); err != nil {
		return a.fail(apperrors.WrapError(err, "print report"), logger)
	}

	outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, RunID: runID}
	if err := cli.WriteReportToFile(report, a.Presenter, outputCfg); err != nil {
		return a.fail(apperrors.WrapError(err, "save report"), logger)
	}
	if a.Config.OutputFile != "" {
		logger.Info("report saved", logging.String("path", a.Config.OutputFile))
	}

	logger.Info("run finished",
		logging.Int("colors", len(report.Colors)),
		logging.String("elapsed", format.FormatExecutionDuration(report.Elapsed)),
		logging.Bool("degraded", report.Degraded))
	return apperrors.ExitSuccess
}

// fail logs err and returns its exit code. A deadline expiry or network
// timeout is reported as a TimeoutError carrying the configured limit.
func (a *Application) fail(err error, logger logging.Logger) int {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		err = fmt.Errorf("%w: %w", apperrors.TimeoutError{Operation: "run", Limit: a.Config.Timeout}, err)
	}
	logger.Error("run failed", err)
	return apperrors.ExitCodeFor(err)
}

// writeMetrics exports m when --metrics-file is set. Failures are logged and
// do not change the exit code.
func (a *Application) writeMetrics(m *metrics.Metrics, logger logging.Logger) {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := m.WriteTextfile(a.Config.MetricsFile); err != nil {
		logger.Warn("could not write metrics file",
			logging.String("path", a.Config.MetricsFile),
			logging.Err(err))
	}
}
