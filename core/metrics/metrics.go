package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "food_logs"

// Metrics holds the service counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	syncRuns       *prometheus.CounterVec
	syncRows       *prometheus.CounterVec
	orphansRemoved prometheus.Counter
	remoteFailures *prometheus.CounterVec
	localFallbacks *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		syncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Local to remote sync runs by result.",
		}, []string{"result"}),
		syncRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_rows_inserted_total",
			Help:      "Rows inserted into the remote store by sync, by kind.",
		}, []string{"kind"}),
		orphansRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orphaned_logs_removed_total",
			Help:      "Remote food logs deleted because their food was missing.",
		}),
		remoteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_failures_total",
			Help:      "Failed remote store operations by operation.",
		}, []string{"op"}),
		localFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "local_fallbacks_total",
			Help:      "Writes redirected to the local store after a remote failure.",
		}, []string{"op"}),
	}

	reg.MustRegister(m.syncRuns, m.syncRows, m.orphansRemoved, m.remoteFailures, m.localFallbacks)
	return m
}

// SyncRun records one sync outcome (ok, noop, error).
func (m *Metrics) SyncRun(result string) {
	if m == nil {
		return
	}
	m.syncRuns.WithLabelValues(result).Inc()
}

// SyncRows records rows inserted by a sync.
func (m *Metrics) SyncRows(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.syncRows.WithLabelValues(kind).Add(float64(n))
}

// OrphansRemoved records deleted orphan logs.
func (m *Metrics) OrphansRemoved(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.orphansRemoved.Add(float64(n))
}

// RemoteFailure records a failed remote operation.
func (m *Metrics) RemoteFailure(op string) {
	if m == nil {
		return
	}
	m.remoteFailures.WithLabelValues(op).Inc()
}

// LocalFallback records a write that fell back to the local store.
func (m *Metrics) LocalFallback(op string) {
	if m == nil {
		return
	}
	m.localFallbacks.WithLabelValues(op).Inc()
}

// Handler exposes g in the prometheus text format as a Fiber handler.
func Handler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
