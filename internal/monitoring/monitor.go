package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

// Monitor collects metrics for API calls and screen events. A nil *Monitor
// is valid and records nothing.
type Monitor struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	conflicts   prometheus.Counter
	navigations *prometheus.CounterVec
	startTime   time.Time
}

// NewMonitor creates a monitor and registers its collectors with reg
func NewMonitor(reg prometheus.Registerer) *Monitor {
	m := &Monitor{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Storefront API requests by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Storefront API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_conflicts_total",
			Help:      "Create-order calls rejected because another restaurant holds the open order.",
		}),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Screen navigations by target path.",
		}, []string{"path"}),
		startTime: time.Now(),
	}

	reg.MustRegister(m.requests, m.latency, m.conflicts, m.navigations)
	return m
}

// ObserveRequest records one API round trip. code 0 means the request never
// got a response.
func (m *Monitor) ObserveRequest(endpoint string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.requests.WithLabelValues(endpoint, label).Inc()
	m.latency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// RecordConflict counts a 406 on order creation
func (m *Monitor) RecordConflict() {
	if m == nil {
		return
	}
	m.conflicts.Inc()
}

// RecordNavigation counts a screen transition
func (m *Monitor) RecordNavigation(path string) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(path).Inc()
}

// Uptime returns how long the monitor has existed
func (m *Monitor) Uptime() time.Duration {
	if m == nil {
		return 0
	}
	return time.Since(m.startTime)
}
