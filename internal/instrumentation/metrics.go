package instrumentation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the MCP server.
type Metrics struct {
	// Tool dispatch
	ToolInvocations *prometheus.CounterVec
	ToolLatencyMs   *prometheus.HistogramVec

	// Upstream client
	UpstreamRequests  *prometheus.CounterVec
	UpstreamLatencyMs *prometheus.HistogramVec

	// Response cache
	CacheRequests *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics against reg.
// A nil reg registers against the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ToolInvocations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "prism_mcp_tool_invocations_total",
			Help: "Total number of tool invocations by tool and outcome",
		}, []string{"tool", "outcome"}),

		ToolLatencyMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prism_mcp_tool_latency_ms",
			Help:    "End-to-end tool invocation latency in milliseconds",
			Buckets: []float64{5, 25, 50, 100, 250, 500, 1000, 2500, 5000, 15000},
		}, []string{"tool"}),

		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "prism_mcp_upstream_requests_total",
			Help: "Total number of upstream API requests by operation and HTTP status",
		}, []string{"op", "status"}),

		UpstreamLatencyMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prism_mcp_upstream_latency_ms",
			Help:    "Upstream API request latency in milliseconds",
			Buckets: []float64{5, 25, 50, 100, 250, 500, 1000, 2500, 5000, 15000},
		}, []string{"op"}),

		CacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "prism_mcp_cache_requests_total",
			Help: "Response cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
	}
}

// ObserveTool records one tool invocation.
func (m *Metrics) ObserveTool(tool, outcome string, latency time.Duration) {
	m.ToolInvocations.WithLabelValues(tool, outcome).Inc()
	m.ToolLatencyMs.WithLabelValues(tool).Observe(float64(latency.Milliseconds()))
}

// ObserveUpstream records one upstream request. status is the HTTP status code
// as a string, or "error" when no response was received.
func (m *Metrics) ObserveUpstream(op, status string, latency time.Duration) {
	m.UpstreamRequests.WithLabelValues(op, status).Inc()
	m.UpstreamLatencyMs.WithLabelValues(op).Observe(float64(latency.Milliseconds()))
}

// ObserveCache records a cache lookup result.
func (m *Metrics) ObserveCache(result string) {
	m.CacheRequests.WithLabelValues(result).Inc()
}
