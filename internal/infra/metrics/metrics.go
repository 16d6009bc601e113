// Package metrics holds the Prometheus instruments of the hazardmap API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hazardmap"

// Lookup outcomes recorded on RiskLookups.
const (
	OutcomeOK      = "ok"
	OutcomeNoMatch = "no_match"
	OutcomeError   = "error"
)

// Metrics holds the counters and histograms recorded by the usecases.
type Metrics struct {
	registry *prometheus.Registry

	RiskLookups        *prometheus.CounterVec // labels: outcome={ok,no_match,error}
	RiskLookupDuration prometheus.Histogram
	HazardRecords      prometheus.Gauge

	ShelterQueries prometheus.Counter

	FavoriteOps *prometheus.CounterVec // labels: op={create,list,delete}, outcome={ok,error}

	DeviceClaims         *prometheus.CounterVec // labels: reason={register,claim_device}
	FavoritesTransferred prometheus.Counter
	EventPublishFailures prometheus.Counter
}

// New creates the metrics on a private registry that also exports the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RiskLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_lookups_total",
			Help:      "Risk lookups by outcome.",
		}, []string{"outcome"}),
		RiskLookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_lookup_duration_seconds",
			Help:      "Duration of a nearest hazard record search.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		HazardRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hazard_records_scanned",
			Help:      "Number of hazard records scanned by the latest lookup.",
		}),
		ShelterQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shelter_queries_total",
			Help:      "Nearest shelter queries served.",
		}),
		FavoriteOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "favorite_operations_total",
			Help:      "Favorite operations by kind and outcome.",
		}, []string{"op", "outcome"}),
		DeviceClaims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "device_claims_total",
			Help:      "Orphaned favorite transfers by trigger.",
		}, []string{"reason"}),
		FavoritesTransferred: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "favorites_transferred_total",
			Help:      "Favorites moved from a device into an account.",
		}),
		EventPublishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Domain events that could not be delivered to the broker.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RiskLookups,
		m.RiskLookupDuration,
		m.HazardRecords,
		m.ShelterQueries,
		m.FavoriteOps,
		m.DeviceClaims,
		m.FavoritesTransferred,
		m.EventPublishFailures,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
