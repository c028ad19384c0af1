// Package metrics exposes Prometheus instrumentation for the calculator
// engine plus a lightweight runtime memory collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry bundles the application's Prometheus collectors behind one
// registry so the HTTP endpoint and tests never touch global state.
type Registry struct {
	registry *prometheus.Registry

	operationsTotal      *prometheus.CounterVec
	operationErrors      *prometheus.CounterVec
	multiplicationsTotal *prometheus.CounterVec
	operationDuration    *prometheus.HistogramVec
	operandDigits        prometheus.Histogram
}

// NewRegistry creates a Registry with every collector registered,
// including the Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bignum_operations_total",
			Help: "Arithmetic operations performed, by operation name.",
		}, []string{"op"}),
		operationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bignum_operation_errors_total",
			Help: "Arithmetic operations that returned an error, by operation name.",
		}, []string{"op"}),
		multiplicationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bignum_multiplications_total",
			Help: "Multiplications dispatched, by selected algorithm.",
		}, []string{"algorithm"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bignum_operation_duration_seconds",
			Help:    "Wall-clock duration of arithmetic operations.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op"}),
		operandDigits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bignum_operand_digits",
			Help:    "Decimal digit count of operands entering the engine.",
			Buckets: prometheus.ExponentialBuckets(1, 10, 9),
		}),
	}

	reg.MustRegister(
		r.operationsTotal,
		r.operationErrors,
		r.multiplicationsTotal,
		r.operationDuration,
		r.operandDigits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Gatherer returns the underlying gatherer for the HTTP endpoint.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordOperation records a completed operation with its duration.
// Failed operations are additionally counted in the error series.
func (r *Registry) RecordOperation(op string, d time.Duration, err error) {
	r.operationsTotal.WithLabelValues(op).Inc()
	r.operationDuration.WithLabelValues(op).Observe(d.Seconds())
	if err != nil {
		r.operationErrors.WithLabelValues(op).Inc()
	}
}

// RecordMultiplication records one dispatch to the named multiplication
// algorithm.
func (r *Registry) RecordMultiplication(algorithm string) {
	r.multiplicationsTotal.WithLabelValues(algorithm).Inc()
}

// RecordOperandDigits records the decimal size of an operand.
func (r *Registry) RecordOperandDigits(digits int) {
	r.operandDigits.Observe(float64(digits))
}
