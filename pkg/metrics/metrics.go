// Package metrics собирает счётчики загрузок снимка и операций записи.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gearguard"

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Metrics struct {
	registry        *prometheus.Registry
	loads           *prometheus.CounterVec
	loadDuration    prometheus.Histogram
	loadsInFlight   prometheus.Gauge
	snapshotVersion prometheus.Gauge
	mutations       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_loads_total",
			Help:      "Загрузки полного снимка по результату.",
		}, []string{"result"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_load_duration_seconds",
			Help:      "Длительность загрузки всех шести коллекций.",
			Buckets:   prometheus.DefBuckets,
		}),
		loadsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_loads_in_flight",
			Help:      "Количество загрузок, которые ещё не завершились.",
		}),
		snapshotVersion: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_version",
			Help:      "Версия текущего опубликованного снимка.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Операции записи в удалённый API.",
		}, []string{"resource", "operation", "result"}),
	}
	m.registry.MustRegister(
		m.loads,
		m.loadDuration,
		m.loadsInFlight,
		m.snapshotVersion,
		m.mutations,
		collectors.NewGoCollector(),
	)
	return m
}

// Все методы допускают nil-получатель: метрики необязательны.

func (m *Metrics) LoadStarted() {
	if m == nil {
		return
	}
	m.loadsInFlight.Inc()
}

func (m *Metrics) LoadFinished(started time.Time, err error, version uint64) {
	if m == nil {
		return
	}
	m.loadsInFlight.Dec()
	m.loadDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		m.loads.WithLabelValues(ResultFailure).Inc()
		return
	}
	m.loads.WithLabelValues(ResultSuccess).Inc()
	m.snapshotVersion.Set(float64(version))
}

func (m *Metrics) Mutation(resource, operation string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.mutations.WithLabelValues(resource, operation, result).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
