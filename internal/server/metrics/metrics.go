// Package metrics exposes Prometheus counters for gRPC calls and session
// lifecycle events.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Session event outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collector owns a private registry so tests and embedded servers do not
// collide on the global one.
type Collector struct {
	registry      *prometheus.Registry
	rpcTotal      *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
	sessionEvents *prometheus.CounterVec
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		rpcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accountkeeper",
			Name:      "grpc_requests_total",
			Help:      "Handled gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "accountkeeper",
			Name:      "grpc_request_duration_seconds",
			Help:      "gRPC handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		sessionEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accountkeeper",
			Name:      "session_events_total",
			Help:      "Login, refresh, logout and password change attempts by outcome.",
		}, []string{"event", "outcome"}),
	}

	c.registry.MustRegister(
		c.rpcTotal,
		c.rpcDuration,
		c.sessionEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// SessionEvent counts one session operation.
func (c *Collector) SessionEvent(event, outcome string) {
	c.sessionEvents.WithLabelValues(event, outcome).Inc()
}

// UnaryServerInterceptor records count and latency of every unary call.
func (c *Collector) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		c.rpcDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		c.rpcTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
