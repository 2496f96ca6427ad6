// Package metrics provides Prometheus metrics for the campus portal service.
package metrics

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the campus service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          atomic.Bool
	refreshInterval  atomic.Int64 // nanoseconds
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Query Metrics - Dashboard aggregations and searches
	queriesTotal *prometheus.CounterVec
	queryLatency *prometheus.HistogramVec
	queryErrors  *prometheus.CounterVec

	// Cache Metrics - Memoized query results
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cacheSize   prometheus.Gauge

	// Dataset Metrics - Snapshot replacement and size
	snapshotReplaces        *prometheus.CounterVec
	snapshotReplaceDuration *prometheus.HistogramVec
	snapshotLastUnix        *prometheus.GaugeVec
	datasetRecords          *prometheus.GaugeVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "campus",
		subsystem:        "portal",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	m.enabled.Store(true)
	m.refreshInterval.Store(int64(defaultRefreshInterval))

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.customLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)

	// Query Metrics
	m.queriesTotal = auto.NewCounterVec(
		m.counterOpts("queries_total", "Total number of dashboard queries by name"),
		[]string{"query"},
	)
	m.queryLatency = auto.NewHistogramVec(
		m.histogramOpts("query_latency_milliseconds", "Query evaluation latency in milliseconds", m.histogramBuckets),
		[]string{"query"},
	)
	m.queryErrors = auto.NewCounterVec(
		m.counterOpts("query_errors_total", "Total number of failed queries by name"),
		[]string{"query"},
	)

	// Cache Metrics
	m.cacheHits = auto.NewCounter(m.counterOpts("cache_hits_total", "Total number of memoized query hits"))
	m.cacheMisses = auto.NewCounter(m.counterOpts("cache_misses_total", "Total number of memoized query misses"))
	m.cacheSize = auto.NewGauge(m.gaugeOpts("cache_entries", "Current number of memoized query results"))

	// Dataset Metrics
	m.snapshotReplaces = auto.NewCounterVec(
		m.counterOpts("dataset_replaces_total", "Total number of dataset snapshots published"),
		[]string{"dataset"},
	)
	m.snapshotReplaceDuration = auto.NewHistogramVec(
		m.histogramOpts("dataset_replace_duration_milliseconds", "Dataset replacement duration in milliseconds", m.histogramBuckets),
		[]string{"dataset"},
	)
	m.snapshotLastUnix = auto.NewGaugeVec(
		m.gaugeOpts("dataset_last_replace_unix", "Unix timestamp of the last dataset replacement"),
		[]string{"dataset"},
	)
	m.datasetRecords = auto.NewGaugeVec(
		m.gaugeOpts("dataset_records", "Number of records in the current dataset snapshot"),
		[]string{"dataset"},
	)

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	// Error Metrics
	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total number of errors by component"),
		[]string{"component", "error_type"},
	)
	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorLatency = auto.NewHistogramVec(
		m.histogramOpts("error_latency_milliseconds", "Latency of operations that resulted in errors", m.histogramBuckets),
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts(
		"system_gc_pause_time_milliseconds",
		"GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	))
}

// Query Metrics Functions.

// RecordQuery increments the counter for the named query.
func RecordQuery(query string) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.queriesTotal.WithLabelValues(query).Inc()
}

// RecordQueryLatency records query latency in milliseconds.
func RecordQueryLatency(query string, latencyMs float64) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.queryLatency.WithLabelValues(query).Observe(latencyMs)
}

// RecordQueryError increments the error counter for the named query.
func RecordQueryError(query string) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.queryErrors.WithLabelValues(query).Inc()
}

// Cache Metrics Functions.

// RecordCacheHit increments the cache hit counter.
func RecordCacheHit() {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.cacheHits.Inc()
}

// RecordCacheMiss increments the cache miss counter.
func RecordCacheMiss() {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.cacheMisses.Inc()
}

// UpdateCacheSize sets the number of memoized entries.
func UpdateCacheSize(size int) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.cacheSize.Set(float64(size))
}

// Dataset Metrics Functions.

// RecordSnapshotReplace counts a published snapshot and stamps its time.
func RecordSnapshotReplace(dataset string) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.snapshotReplaces.WithLabelValues(dataset).Inc()
	globalManager.snapshotLastUnix.WithLabelValues(dataset).Set(float64(time.Now().Unix()))
}

// RecordSnapshotReplaceLatency records how long a replacement took.
func RecordSnapshotReplaceLatency(dataset string, latencyMs float64) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.snapshotReplaceDuration.WithLabelValues(dataset).Observe(latencyMs)
}

// UpdateDatasetRecords sets the record count of a dataset.
func UpdateDatasetRecords(dataset string, count int) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.datasetRecords.WithLabelValues(dataset).Set(float64(count))
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if !globalManager.enabled.Load() {
		return
	}
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// Runtime Settings.

// SetEnabled turns recording on or off. Disabled record functions are no-ops;
// already collected values stay in the registry.
func SetEnabled(enabled bool) {
	globalManager.enabled.Store(enabled)
}

// Enabled reports whether recording is on.
func Enabled() bool {
	return globalManager.enabled.Load()
}

// SetRefreshInterval sets how often gauge updaters should run. Non-positive
// intervals are ignored.
func SetRefreshInterval(interval time.Duration) {
	if interval > 0 {
		globalManager.refreshInterval.Store(int64(interval))
	}
}

// RefreshInterval returns how often gauge updaters should run.
func RefreshInterval() time.Duration {
	return time.Duration(globalManager.refreshInterval.Load())
}

// Families gathers the registry and returns the metric family names.
func Families() ([]string, error) {
	mfs, err := customRegistry.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistryGather, err)
	}
	names := make([]string, 0, len(mfs))
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	return names, nil
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
