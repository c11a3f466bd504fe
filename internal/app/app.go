package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agbru/colorstats/internal/cli"
	"github.com/agbru/colorstats/internal/config"
	"github.com/agbru/colorstats/internal/extract"
	"github.com/agbru/colorstats/internal/fetch"
	"github.com/agbru/colorstats/internal/logging"
	"github.com/agbru/colorstats/internal/orchestration"
)

// Application represents the colorstats application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	// Source overrides the HTTP fetcher when set.
	Source orchestration.DocumentSource
	// HTTPClient is handed to the HTTP fetcher when set.
	HTTPClient *http.Client
	Presenter  orchestration.ReportPresenter
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSource replaces the HTTP fetcher with a custom DocumentSource.
func WithSource(s orchestration.DocumentSource) AppOption {
	return func(a *Application) { a.Source = s }
}

// WithHTTPClient sets the client used by the HTTP fetcher.
func WithHTTPClient(c *http.Client) AppOption {
	return func(a *Application) { a.HTTPClient = c }
}

// WithPresenter sets the presenter used for standard output and the report
// file.
func WithPresenter(p orchestration.ReportPresenter) AppOption {
	return func(a *Application) { a.Presenter = p }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Presenter == nil {
		app.Presenter = cli.TextPresenter{}
	}

	programName := "colorstats"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes one pipeline run and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	runID := uuid.NewString()
	logger := a.newLogger(runID)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return a.runReport(ctx, out, runID, logger)
}

// newLogger builds the run logger on ErrWriter. Quiet mode raises the level
// to warn.
func (a *Application) newLogger(runID string) *logging.ZerologAdapter {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if a.Config.Quiet && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	return logging.NewConsoleLogger(a.ErrWriter, "colorstats", level).
		With(logging.String("run_id", runID))
}

// pipelineOptions translates the validated configuration.
func pipelineOptions(cfg config.AppConfig) (orchestration.Options, error) {
	caseMode, err := extract.ParseCaseMode(cfg.Case)
	if err != nil {
		return orchestration.Options{}, err
	}
	policy, err := orchestration.ParseErrorPolicy(cfg.OnError)
	if err != nil {
		return orchestration.Options{}, err
	}

	opts := orchestration.DefaultOptions()
	opts.DocumentID = cfg.DocID
	opts.Extract.Column = cfg.Column
	opts.Extract.Case = caseMode
	opts.Target = cfg.Target
	opts.SearchTarget = cfg.Search
	opts.FibTerms = cfg.FibN
	opts.Seed = cfg.Seed
	opts.Bits = cfg.Bits
	opts.Policy = policy
	return opts, nil
}

// documentSource returns the configured source, defaulting to the HTTP
// fetcher.
func (a *Application) documentSource(opts fetch.Options) orchestration.DocumentSource {
	if a.Source != nil {
		return a.Source
	}
	opts.Client = a.HTTPClient
	return fetch.New(opts)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
