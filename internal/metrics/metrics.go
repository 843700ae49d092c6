// Package metrics exposes prometheus collectors for scraping, catalog and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "streamy"

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeCached  = "cached"
)

// Manager owns a private registry and the collectors recorded by the services.
// A nil *Manager is valid and records nothing.
type Manager struct {
	registry *prometheus.Registry

	listingFetches  *prometheus.CounterVec
	listingDuration *prometheus.HistogramVec
	catalogRequests *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
}

func NewManager() *Manager {
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Manager{
		registry: registry,
		listingFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listing_fetch_total",
			Help:      "Torrent index page fetches by category and outcome",
		}, []string{"category", "outcome"}),
		listingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "listing_fetch_duration_seconds",
			Help:      "Duration of torrent index page fetches including retries",
			Buckets:   prometheus.DefBuckets,
		}, []string{"category"}),
		catalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_requests_total",
			Help:      "Catalog API requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by route and status",
		}, []string{"route", "status"}),
	}

	registry.MustRegister(m.listingFetches, m.listingDuration, m.catalogRequests, m.httpRequests)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{DisableCompression: true})
}

func (m *Manager) ObserveListingFetch(category, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.listingFetches.WithLabelValues(category, outcome).Inc()
	m.listingDuration.WithLabelValues(category).Observe(elapsed.Seconds())
}

func (m *Manager) ObserveCatalogRequest(operation, outcome string) {
	if m == nil {
		return
	}
	m.catalogRequests.WithLabelValues(operation, outcome).Inc()
}

func (m *Manager) ObserveHTTPRequest(route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
