// Package metrics records pipeline measurements in a Prometheus registry.
// A run exports them with WriteTextfile, in the node_exporter textfile
// collector format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "colorstats"

// Fetch outcomes.
const (
	FetchSuccess        = "success"
	FetchHTTPError      = "http_error"
	FetchTransportError = "transport_error"
)

// Run results.
const (
	RunOK       = "ok"
	RunDegraded = "degraded"
	RunFailed   = "failed"
)

// Metrics holds the collectors for one process. All methods are safe to call
// on a nil *Metrics, which records nothing.
type Metrics struct {
	registry *prometheus.Registry

	fetchTotal      *prometheus.CounterVec
	fetchDuration   prometheus.Histogram
	documentBytes   prometheus.Gauge
	colorsExtracted prometheus.Gauge
	rowsSkipped     prometheus.Counter
	runsTotal       *prometheus.CounterVec
}

// New creates a Metrics backed by its own registry, including Go runtime
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Document retrievals by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent retrieving the source document.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		documentBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "document_bytes",
			Help:      "Size of the last retrieved document.",
		}),
		colorsExtracted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "colors_extracted",
			Help:      "Color tokens extracted in the last run.",
		}),
		rowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_skipped_total",
			Help:      "Table rows skipped for lacking the color cell.",
		}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Pipeline runs by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.fetchTotal,
		m.fetchDuration,
		m.documentBytes,
		m.colorsExtracted,
		m.rowsSkipped,
		m.runsTotal,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry exposes the underlying registry as a Gatherer.
func (m *Metrics) Registry() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// ObserveFetch records one retrieval attempt.
func (m *Metrics) ObserveFetch(outcome string, elapsed time.Duration, size int) {
	if m == nil {
		return
	}
	m.fetchTotal.WithLabelValues(outcome).Inc()
	m.fetchDuration.Observe(elapsed.Seconds())
	if outcome == FetchSuccess {
		m.documentBytes.Set(float64(size))
	}
}

// ObserveExtraction records the size of an extraction.
func (m *Metrics) ObserveExtraction(colors, skippedRows int) {
	if m == nil {
		return
	}
	m.colorsExtracted.Set(float64(colors))
	m.rowsSkipped.Add(float64(skippedRows))
}

// ObserveRun records the final result of a pipeline run.
func (m *Metrics) ObserveRun(result string) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(result).Inc()
}

// WriteTextfile atomically writes all metrics to path in the Prometheus text
// exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry())
}
