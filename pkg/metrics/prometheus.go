// Package metrics provides Prometheus metrics for the player role dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Query metrics
	searchQueries      prometheus.Counter
	searchEmptyQueries prometheus.Counter
	searchNoMatch      prometheus.Counter
	searchResultCount  prometheus.Histogram
	searchLatency      prometheus.Histogram
	similarQueries     prometheus.Counter
	similarCrossRole   prometheus.Counter
	similarLatency     prometheus.Histogram

	// Catalog metrics
	catalogPlayers       prometheus.Gauge
	catalogClusters      prometheus.Gauge
	catalogDimensions    prometheus.Gauge
	catalogBuildDuration prometheus.Histogram
	catalogBuildFailures prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "roledash",
		subsystem:        "catalog",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.searchQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_queries_total",
		Help:      "Total number of player search queries served",
	})

	m.searchEmptyQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_empty_queries_total",
		Help:      "Total number of queries that normalized to the empty string",
	})

	m.searchNoMatch = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_no_match_total",
		Help:      "Total number of queries that matched no player",
	})

	m.searchResultCount = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_result_count",
		Help:      "Histogram of result counts returned per search",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
	})

	m.searchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_latency_milliseconds",
		Help:      "Search latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.similarQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "similar_queries_total",
		Help:      "Total number of similar-player queries served",
	})

	m.similarCrossRole = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "similar_cross_role_total",
		Help:      "Total number of similar-player queries spanning all clusters",
	})

	m.similarLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "similar_latency_milliseconds",
		Help:      "Similar-player query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.catalogPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_total",
		Help:      "Number of players in the loaded catalog",
	})

	m.catalogClusters = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "clusters_total",
		Help:      "Number of role clusters in the loaded catalog",
	})

	m.catalogDimensions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "coordinate_dimensions",
		Help:      "Dimensionality of the player coordinate space",
	})

	m.catalogBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_duration_milliseconds",
		Help:      "Catalog construction duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.catalogBuildFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_failures_total",
		Help:      "Total number of failed catalog construction attempts",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of error responses by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Current number of goroutines",
	})
}

// GetRegistry returns the registry backing the global manager, for serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordSearchQuery increments the search query counter.
func RecordSearchQuery() {
	globalManager.searchQueries.Inc()
}

// RecordSearchEmptyQuery increments the empty-query counter.
func RecordSearchEmptyQuery() {
	globalManager.searchEmptyQueries.Inc()
}

// RecordSearchNoMatch increments the no-match counter.
func RecordSearchNoMatch() {
	globalManager.searchNoMatch.Inc()
}

// RecordSearchResultCount observes the number of results returned by a search.
func RecordSearchResultCount(n int) {
	globalManager.searchResultCount.Observe(float64(n))
}

// RecordSearchLatency records search latency in milliseconds.
func RecordSearchLatency(latencyMs float64) {
	globalManager.searchLatency.Observe(latencyMs)
}

// RecordSimilarQuery increments the similar-player query counter.
// crossRole marks queries that were not restricted to the target's cluster.
func RecordSimilarQuery(crossRole bool) {
	globalManager.similarQueries.Inc()
	if crossRole {
		globalManager.similarCrossRole.Inc()
	}
}

// RecordSimilarLatency records similar-player query latency in milliseconds.
func RecordSimilarLatency(latencyMs float64) {
	globalManager.similarLatency.Observe(latencyMs)
}

// UpdateCatalogPlayers sets the player count gauge.
func UpdateCatalogPlayers(count int) {
	globalManager.catalogPlayers.Set(float64(count))
}

// UpdateCatalogClusters sets the cluster count gauge.
func UpdateCatalogClusters(count int) {
	globalManager.catalogClusters.Set(float64(count))
}

// UpdateCatalogDimensions sets the coordinate dimensionality gauge.
func UpdateCatalogDimensions(dims int) {
	globalManager.catalogDimensions.Set(float64(dims))
}

// RecordCatalogBuildDuration records catalog construction time in milliseconds.
func RecordCatalogBuildDuration(durationMs float64) {
	globalManager.catalogBuildDuration.Observe(durationMs)
}

// RecordCatalogBuildFailure increments the failed-build counter.
func RecordCatalogBuildFailure() {
	globalManager.catalogBuildFailures.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records an error response for an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}
