// Package observability exposes Prometheus metrics for the federation
// data path.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics aggregates the counters and histograms recorded along the
// transfer path. All methods are safe for concurrent use.
type Metrics struct {
	recordsStreamed  *prometheus.CounterVec
	recordsDenied    *prometheus.CounterVec
	labelFailures    *prometheus.CounterVec
	chunksSent       prometheus.Counter
	bytesSent        prometheus.Counter
	transferDuration *prometheus.HistogramVec
	registry         *prometheus.Registry
}

// New builds a Metrics set registered on its own registry.
func New() *Metrics {
	m := &Metrics{
		recordsStreamed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "federator_records_streamed_total",
			Help: "Records delivered to a recipient after access filtering.",
		}, []string{"topic"}),
		recordsDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "federator_records_denied_total",
			Help: "Records withheld because the recipient grant did not satisfy the security label.",
		}, []string{"topic"}),
		labelFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "federator_label_parse_failures_total",
			Help: "Records withheld because their security label could not be parsed.",
		}, []string{"topic"}),
		chunksSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "federator_chunks_sent_total",
			Help: "Transfer chunks written to recipients, terminal chunks included.",
		}),
		bytesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "federator_bytes_sent_total",
			Help: "Payload bytes written to recipients.",
		}),
		transferDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "federator_transfer_duration_seconds",
			Help:    "Wall-clock duration of a complete resource transfer.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.recordsStreamed,
		m.recordsDenied,
		m.labelFailures,
		m.chunksSent,
		m.bytesSent,
		m.transferDuration,
	)
	return m
}

// Handler returns the HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordStreamed(topic string) {
	m.recordsStreamed.WithLabelValues(topic).Inc()
}

func (m *Metrics) RecordDenied(topic string) {
	m.recordsDenied.WithLabelValues(topic).Inc()
}

func (m *Metrics) LabelParseFailure(topic string) {
	m.labelFailures.WithLabelValues(topic).Inc()
}

func (m *Metrics) ChunkSent(payloadBytes int) {
	m.chunksSent.Inc()
	m.bytesSent.Add(float64(payloadBytes))
}

func (m *Metrics) ObserveTransfer(kind string, d time.Duration) {
	m.transferDuration.WithLabelValues(kind).Observe(d.Seconds())
}
