// Package metrics exposes Prometheus instrumentation for the specialty services.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "specialty"

// Metrics groups the collectors recorded by services. A nil *Metrics records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	opLatency  *prometheus.HistogramVec
	embeddings prometheus.Counter
	inserts    *prometheus.CounterVec
	matches    prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of specialty operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "status"}),
		embeddings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "embeddings_generated_total",
			Help:      "Total embeddings produced by the embedding model",
		}),
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_inserts_total",
			Help:      "Total specialty inserts issued against the store",
		}, []string{"status"}),
		matches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_results",
			Help:      "Number of matches returned per similarity query",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}),
	}
	m.registry.MustRegister(m.opLatency, m.embeddings, m.inserts, m.matches)
	m.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// ObserveOperation records how long op took and whether it failed.
func (m *Metrics) ObserveOperation(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.opLatency.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
}

func (m *Metrics) AddEmbeddings(n int) {
	if m == nil {
		return
	}
	m.embeddings.Add(float64(n))
}

func (m *Metrics) IncInsert(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.inserts.WithLabelValues("error").Inc()
		return
	}
	m.inserts.WithLabelValues("ok").Inc()
}

func (m *Metrics) ObserveMatches(n int) {
	if m == nil {
		return
	}
	m.matches.Observe(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
