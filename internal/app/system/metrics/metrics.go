// Package metrics records per-invocation counters and latencies for the
// admin dispatcher.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the dispatcher's Prometheus collectors. A nil *Recorder is
// valid and records nothing.
type Recorder struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg. When the
// collectors are already registered (a second recorder on the same
// registry) the existing ones are reused. A nil reg leaves them
// unregistered.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	invocations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tendadmin",
			Name:      "invocations_total",
			Help:      "Admin invocations by route, method and response status.",
		},
		[]string{"route", "method", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tendadmin",
			Name:      "invocation_duration_seconds",
			Help:      "Latency of admin invocations in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	if reg != nil {
		invocations = register(reg, invocations)
		duration = register(reg, duration)
	}
	return &Recorder{invocations: invocations, duration: duration}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// Observe records one finished invocation.
func (r *Recorder) Observe(route, method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.invocations.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}
