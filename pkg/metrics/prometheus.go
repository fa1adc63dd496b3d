package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the client-side RPC metrics registry: every outgoing call that
// passes through acpinstance.MetricsInterceptor is counted and timed here,
// labeled by method, by the collection derived from the method name (not a
// business operation), and by an ok/error result.
type Metrics struct {
	RPCRequestsTotal   *prometheus.CounterVec
	RPCRequestDuration *prometheus.HistogramVec
	RPCRequestsInFlight prometheus.Gauge

	HandleCacheSize *prometheus.GaugeVec

	ClientInfo *prometheus.GaugeVec

	requests *RequestTracker
}

var defaultMetrics *Metrics

// InitMetrics builds and registers a fresh Metrics under namespace/subsystem.
func InitMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		RPCRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rpc_requests_total",
				Help:      "Total number of RPCs issued to the ACP server",
			},
			[]string{"method", "collection", "status"},
		),

		RPCRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rpc_request_duration_seconds",
				Help:      "Duration of RPCs issued to the ACP server",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "collection"},
		),

		RPCRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rpc_requests_in_flight",
				Help:      "Current number of RPCs awaiting a response",
			},
		),

		HandleCacheSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "handle_cache_size",
				Help:      "Number of live entries in a collection's handle cache",
			},
			[]string{"collection"},
		),

		ClientInfo: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "client_info",
				Help:      "Client build and negotiated server version",
			},
			[]string{"client_version", "server_version"},
		),
	}

	m.requests = NewRequestTracker(m.RPCRequestsInFlight)
	prometheus.MustRegister(NewRuntimeCollector(namespace, subsystem))

	defaultMetrics = m
	return m
}

// Get returns the process-wide Metrics, lazily initializing one under the
// "acp_client" namespace if InitMetrics was never called.
func Get() *Metrics {
	if defaultMetrics == nil {
		return InitMetrics("acp_client", "")
	}
	return defaultMetrics
}

// TrackInFlight marks method as in flight against RPCRequestsInFlight until
// the returned function is called.
func (m *Metrics) TrackInFlight(method string) func() {
	m.requests.Start(method)
	return func() { m.requests.End(method) }
}

// StartTimer begins timing an RPC against RPCRequestDuration, labeled by
// method and collection.
func (m *Metrics) StartTimer(method, collection string) *Timer {
	return NewTimer(m.RPCRequestDuration, method, collection)
}

// RecordRPC records one completed RPC: method name, the resource path's
// collection label (empty for instance-level calls), and whether it
// succeeded or was translated into an error.
func (m *Metrics) RecordRPC(method, collection string, status string, duration time.Duration) {
	m.RPCRequestsTotal.WithLabelValues(method, collection, status).Inc()
	m.RPCRequestDuration.WithLabelValues(method, collection).Observe(duration.Seconds())
}

// SetHandleCacheSize records the current size of a collection's handle cache.
func (m *Metrics) SetHandleCacheSize(collection string, size int) {
	m.HandleCacheSize.WithLabelValues(collection).Set(float64(size))
}

// SetClientInfo records the negotiated server version against the running
// client build, as a constant-value info-style gauge.
func (m *Metrics) SetClientInfo(clientVersion, serverVersion string) {
	m.ClientInfo.WithLabelValues(clientVersion, serverVersion).Set(1)
}

// Handler returns an HTTP handler serving the registered metrics in the
// Prometheus exposition format, for an application embedding this client to
// mount on its own mux.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartMetricsServer starts a standalone HTTP server exposing /metrics, for
// applications that have no mux of their own.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return server.ListenAndServe()
}
