// Package metrics exposes Prometheus collectors for view reloads, zone
// lookups and HTTP requests.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "netzone"

type Metrics struct {
	gatherer prometheus.Gatherer

	ViewReloadsTotal   *prometheus.CounterVec
	ViewReloadDuration *prometheus.HistogramVec
	ViewEntries        *prometheus.GaugeVec
	LookupsTotal       *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		gatherer: reg,
		ViewReloadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_reloads_total",
			Help:      "View loader runs by view and result.",
		}, []string{"view", "result"}),
		ViewReloadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "view_reload_duration_seconds",
			Help:      "View loader duration in seconds.",
			Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"view"}),
		ViewEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "view_entries",
			Help:      "Subnet records held by each view after its last successful load.",
		}, []string{"view"}),
		LookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "zone_lookups_total",
			Help:      "Zone resolutions by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"code", "method"}),
	}

	reg.MustRegister(
		m.ViewReloadsTotal,
		m.ViewReloadDuration,
		m.ViewEntries,
		m.LookupsTotal,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveReload records one loader run of the named view.
func (m *Metrics) ObserveReload(view string, size int, took time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ViewReloadsTotal.WithLabelValues(view, result).Inc()
	m.ViewReloadDuration.WithLabelValues(view).Observe(took.Seconds())
	if err == nil {
		m.ViewEntries.WithLabelValues(view).Set(float64(size))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware times every request passing through next.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(m.RequestDuration, next)
}
