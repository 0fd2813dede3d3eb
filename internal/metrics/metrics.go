// Package metrics exposes Prometheus counters for RPC traffic and the
// settlement, pairing and skins engines.
package metrics

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tripwiser"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec

	settlements     prometheus.Counter
	settlementRuns  prometheus.Counter
	pairings        prometheus.Counter
	skinsRecomputed prometheus.Counter
}

// New registers all collectors, including the Go runtime and process ones.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Connect RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Connect RPC latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		settlements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_computed_total",
			Help:      "Settlement payments produced by the debt minimizer.",
		}),
		settlementRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_runs_total",
			Help:      "Times the debt minimizer ran.",
		}),
		pairings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairings_generated_total",
			Help:      "Random group partitions generated.",
		}),
		skinsRecomputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skins_recomputed_total",
			Help:      "Skins games adjudicated.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.settlements,
		m.settlementRuns,
		m.pairings,
		m.skinsRecomputed,
	)
	return m
}

// Registry returns the registry backing these metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Interceptor counts every RPC and observes its latency.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			procedure := req.Spec().Procedure
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.rpcRequests.WithLabelValues(procedure, code).Inc()
			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// SettlementsComputed records one run of the debt minimizer and the number
// of payments it produced. Safe on a nil receiver, as are the other recorders.
func (m *Metrics) SettlementsComputed(n int) {
	if m == nil {
		return
	}
	m.settlementRuns.Inc()
	m.settlements.Add(float64(n))
}

func (m *Metrics) PairingGenerated() {
	if m == nil {
		return
	}
	m.pairings.Inc()
}

func (m *Metrics) SkinsRecomputed() {
	if m == nil {
		return
	}
	m.skinsRecomputed.Inc()
}
