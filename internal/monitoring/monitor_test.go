package monitoring

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMonitor_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMonitor(reg)

	m.ObserveRequest("fetch_foods", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("fetch_foods", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest("post_line_foods", 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("fetch_foods", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("post_line_foods", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.latency))
}

func TestMonitor_RecordConflictAndNavigation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMonitor(reg)

	m.RecordConflict()
	m.RecordNavigation("/orders")
	m.RecordNavigation("/orders")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflicts))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.navigations.WithLabelValues("/orders")))
}

func TestMonitor_NilIsNoop(t *testing.T) {
	var m *Monitor

	assert.NotPanics(t, func() {
		m.ObserveRequest("fetch_foods", http.StatusOK, time.Millisecond)
		m.RecordConflict()
		m.RecordNavigation("/orders")
	})
	assert.Zero(t, m.Uptime())
}

func TestMonitor_Uptime(t *testing.T) {
	m := NewMonitor(prometheus.NewRegistry())
	assert.GreaterOrEqual(t, m.Uptime(), time.Duration(0))
}
