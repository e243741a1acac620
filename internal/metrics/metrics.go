// file: internal/metrics/metrics.go

package metrics

import (
	"errors"
	"fmt"
	"sync/atomic"

	"galgen/internal/cmdline"
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for classificationsTotal.
const (
	ResultClassified = "classified"
	ResultFailed     = "failed"
)

// reasonMalformed labels tokenizer failures, which carry no grammar reason.
const reasonMalformed = "malformed input"

// Metrics counts classification outcomes for batch runs.
type Metrics struct {
	registry *prometheus.Registry

	classificationsTotal *prometheus.CounterVec
	classificationErrors *prometheus.CounterVec
	tokensTotal          *prometheus.CounterVec
	interpretersTotal    *prometheus.CounterVec
	lintDuration         prometheus.Gauge

	// Internal counters for atomic operations
	stats struct {
		classified uint64
		failed     uint64
	}
}

// NewMetrics creates a new metrics instance with all collectors registered
func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		registry: registry,

		classificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "galgen_classifications_total",
				Help: "Total number of example commandlines by outcome",
			},
			[]string{"result"},
		),
		classificationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "galgen_classification_errors_total",
				Help: "Total number of failed commandlines by reason",
			},
			[]string{"reason"},
		),
		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "galgen_tokens_total",
				Help: "Total number of classified tokens by kind",
			},
			[]string{"kind"},
		),
		interpretersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "galgen_interpreters_total",
				Help: "Total number of classified executables by interpreter",
			},
			[]string{"interpreter"},
		),
		lintDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "galgen_lint_duration_seconds",
				Help: "Wall time of the last lint run",
			},
		),
	}

	collectors := []prometheus.Collector{
		m.classificationsTotal,
		m.classificationErrors,
		m.tokensTotal,
		m.interpretersTotal,
		m.lintDuration,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// GetRegistry returns the Prometheus registry
func (m *Metrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

// ObserveInvocation records a successful classification.
func (m *Metrics) ObserveInvocation(inv *cmdline.Invocation) {
	m.classificationsTotal.WithLabelValues(ResultClassified).Inc()
	atomic.AddUint64(&m.stats.classified, 1)

	for _, tok := range inv.Tokens() {
		m.tokensTotal.WithLabelValues(tok.Kind.String()).Inc()
	}

	interp := string(inv.Executable.Interpreter)
	if interp == "" {
		interp = "none"
	}
	m.interpretersTotal.WithLabelValues(interp).Inc()
}

// ObserveError records a failed tokenize or classify call.
func (m *Metrics) ObserveError(err error) {
	m.classificationsTotal.WithLabelValues(ResultFailed).Inc()
	atomic.AddUint64(&m.stats.failed, 1)
	m.classificationErrors.WithLabelValues(errorReason(err)).Inc()
}

// SetLintDuration records how long the last lint run took.
func (m *Metrics) SetLintDuration(seconds float64) {
	m.lintDuration.Set(seconds)
}

// GetStats returns current statistics
func (m *Metrics) GetStats() (classified, failed uint64) {
	return atomic.LoadUint64(&m.stats.classified),
		atomic.LoadUint64(&m.stats.failed)
}

// WriteTextfile writes all metrics in the text exposition format, suitable
// for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func errorReason(err error) string {
	var cerr *cmdline.ClassificationError
	if errors.As(err, &cerr) {
		return cerr.Reason
	}
	if errors.Is(err, cmdline.ErrMalformedInput) {
		return reasonMalformed
	}
	return "unknown"
}
