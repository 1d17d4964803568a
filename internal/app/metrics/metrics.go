package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	apperrors "video-transcriber/internal/app/errors"
	"video-transcriber/internal/app/pipeline"
)

// Request results recorded by RecordRequest
const (
	ResultTranscribed = "transcribed"
	ResultCached      = "cached"
)

// Metrics holds the service collectors on a private registry
type Metrics struct {
	registry      *prometheus.Registry
	stageDuration *prometheus.HistogramVec
	runs          *prometheus.CounterVec
	requests      *prometheus.CounterVec
}

// New registers all collectors. Process and Go runtime collectors are
// included so /metrics is useful on its own.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vtt",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		}, []string{"stage"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vtt",
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome (ok or the error kind).",
		}, []string{"outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vtt",
			Name:      "transcribe_requests_total",
			Help:      "Transcribe requests by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.stageDuration,
		m.runs,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StageStarted implements pipeline.Observer
func (m *Metrics) StageStarted(pipeline.Stage) {}

// StageFinished implements pipeline.Observer
func (m *Metrics) StageFinished(stage pipeline.Stage, elapsed time.Duration, _ error) {
	m.stageDuration.WithLabelValues(string(stage)).Observe(elapsed.Seconds())
}

// RunFinished implements pipeline.Observer
func (m *Metrics) RunFinished(_ time.Duration, err error) {
	m.runs.WithLabelValues(outcome(err)).Inc()
}

// RecordRequest counts one transcribe request
func (m *Metrics) RecordRequest(result string) {
	m.requests.WithLabelValues(result).Inc()
}

// RecordError counts a failed transcribe request by error kind
func (m *Metrics) RecordError(err error) {
	m.requests.WithLabelValues(string(apperrors.KindOf(err))).Inc()
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return string(apperrors.KindOf(err))
}
