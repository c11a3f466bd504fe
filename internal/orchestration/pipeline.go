package orchestration

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/agbru/colorstats/internal/binary"
	apperrors "github.com/agbru/colorstats/internal/errors"
	"github.com/agbru/colorstats/internal/extract"
	"github.com/agbru/colorstats/internal/fibonacci"
	"github.com/agbru/colorstats/internal/logging"
	"github.com/agbru/colorstats/internal/metrics"
	"github.com/agbru/colorstats/internal/search"
	"github.com/agbru/colorstats/internal/stats"
)

// Defaults reproducing the reference run.
const (
	DefaultDocumentID   = "1nf9WMDjZWIUnlnKyz7qomEYDdtWfW1Uf"
	DefaultTarget       = "Red"
	DefaultSearchTarget = "Blue"
	DefaultSeed         = 42
)

// Options configures a Pipeline.
type Options struct {
	DocumentID string
	Extract    extract.Options

	// Target is the label whose probability is estimated. SearchTarget is
	// looked up with binary search. Both are normalized with Extract.Case.
	Target       string
	SearchTarget string

	FibTerms uint64
	Seed     int64
	Bits     int
	Policy   ErrorPolicy
}

// DefaultOptions returns the options of the reference run.
func DefaultOptions() Options {
	return Options{
		DocumentID:   DefaultDocumentID,
		Extract:      extract.DefaultOptions(),
		Target:       DefaultTarget,
		SearchTarget: DefaultSearchTarget,
		FibTerms:     fibonacci.DefaultSumTerms,
		Seed:         DefaultSeed,
		Bits:         binary.DefaultWidth,
		Policy:       PolicyDegrade,
	}
}

// Pipeline runs the stages in order against one DocumentSource.
type Pipeline struct {
	source  DocumentSource
	opts    Options
	logger  logging.Logger
	metrics *metrics.Metrics
}

// PipelineOption configures a Pipeline during construction.
type PipelineOption func(*Pipeline)

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) PipelineOption {
	return func(p *Pipeline) { p.logger = l }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) PipelineOption {
	return func(p *Pipeline) { p.metrics = m }
}

// NewPipeline creates a Pipeline reading from source.
func NewPipeline(source DocumentSource, opts Options, options ...PipelineOption) *Pipeline {
	p := &Pipeline{source: source, opts: opts}
	for _, o := range options {
		o(p)
	}
	if p.logger == nil {
		p.logger = logging.Nop()
	}
	if p.opts.Policy == "" {
		p.opts.Policy = PolicyDegrade
	}
	return p
}

// Collect retrieves the document and extracts its color tokens.
func (p *Pipeline) Collect(ctx context.Context) ColorResult {
	body, err := p.source.Fetch(ctx, p.opts.DocumentID)
	if err != nil {
		return ColorResult{Err: err}
	}

	ex, err := extract.Extract(bytes.NewReader(body), p.opts.Extract)
	if err != nil {
		return ColorResult{Err: err}
	}
	p.metrics.ObserveExtraction(len(ex.Colors), ex.SkippedRows)
	p.logger.Debug("colors extracted",
		logging.Int("colors", len(ex.Colors)),
		logging.Int("rows", ex.Rows),
		logging.Int("skipped_rows", ex.SkippedRows))

	return ColorResult{Colors: ex.Colors, Rows: ex.Rows, SkippedRows: ex.SkippedRows}
}

// Run executes the whole pipeline. Under PolicyAbort an ingestion failure is
// returned as the error; under PolicyDegrade it is logged and recorded in the
// report. Cancellation always aborts.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	start := time.Now()

	// Seeded before any draw so a run is reproducible end to end.
	gen := binary.NewGenerator(p.opts.Seed)

	report := Report{DocumentID: p.opts.DocumentID}

	res := p.Collect(ctx)
	if !res.OK() {
		if p.opts.Policy == PolicyAbort || errors.Is(res.Err, context.Canceled) {
			p.metrics.ObserveRun(metrics.RunFailed)
			return Report{}, res.Err
		}
		p.logger.Error("error fetching data, continuing with no colors", res.Err,
			logging.String("doc_id", p.opts.DocumentID))
		report.Degraded = true
		report.IngestErr = res.Err
	}

	colors := slices.Clone(res.Colors)
	slices.Sort(colors)
	report.Colors = colors

	normalize := p.opts.Extract.Case.Normalizer()

	report.Summary = stats.Summarize(colors)
	report.Frequencies = stats.Count(colors)

	report.Target = normalize(p.opts.Target)
	report.Probability = stats.Probability(colors, report.Target)

	report.SearchTarget = normalize(p.opts.SearchTarget)
	report.SearchIndex = search.IterativeSearch(colors, report.SearchTarget)

	number, err := gen.Generate(p.opts.Bits)
	if err != nil {
		p.metrics.ObserveRun(metrics.RunFailed)
		return Report{}, apperrors.NewConfigError("%v", err)
	}
	report.Binary = number

	report.FibTerms = p.opts.FibTerms
	report.FibSum = fibonacci.Sum(p.opts.FibTerms)

	report.Elapsed = time.Since(start)
	if report.Degraded {
		p.metrics.ObserveRun(metrics.RunDegraded)
	} else {
		p.metrics.ObserveRun(metrics.RunOK)
	}
	return report, nil
}
