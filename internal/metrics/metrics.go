// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus metrics for the engine and the HTTP API.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lincalc/calc"
	"github.com/katalvlaran/lincalc/coord"
	"github.com/katalvlaran/lincalc/matrix"
	"github.com/katalvlaran/lincalc/solver"
	"github.com/katalvlaran/lincalc/symbolic"
	"github.com/katalvlaran/lincalc/vector"
)

const namespace = "lincalc"

// Registry holds every lincalc metric on its own prometheus.Registry.
type Registry struct {
	reg *prometheus.Registry

	Operations        *prometheus.CounterVec
	OperationErrors   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	RateLimited       prometheus.Counter
}

var _ calc.Recorder = (*Registry)(nil)

// New creates and registers the metrics. withRuntime adds the Go and
// process collectors.
func New(withRuntime bool) *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Engine operations by name and result (ok or error).",
		}, []string{"op", "result"}),
		OperationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Engine operation failures by name and error class.",
		}, []string{"op", "error_type"}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Engine operation latency in seconds.",
			Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 0.01, 0.05},
		}, []string{"op"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
	r.reg.MustRegister(r.Operations, r.OperationErrors, r.OperationDuration,
		r.HTTPRequests, r.HTTPDuration, r.RateLimited)
	if withRuntime {
		r.reg.MustRegister(collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	return r
}

// Observe implements calc.Recorder.
func (r *Registry) Observe(op string, took time.Duration, err error) {
	r.OperationDuration.WithLabelValues(op).Observe(took.Seconds())
	if err != nil {
		r.Operations.WithLabelValues(op, "error").Inc()
		r.OperationErrors.WithLabelValues(op, ErrorType(err)).Inc()
		return
	}
	r.Operations.WithLabelValues(op, "ok").Inc()
}

// ObserveHTTP records one served request.
func (r *Registry) ObserveHTTP(route, method string, status int, took time.Duration) {
	r.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.HTTPDuration.WithLabelValues(route).Observe(took.Seconds())
}

// Gatherer exposes the underlying registry, e.g. for testutil.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Handler serves the exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

var errorClasses = []struct {
	err  error
	name string
}{
	{matrix.ErrDimensionMismatch, "dimension_mismatch"},
	{matrix.ErrNonSquare, "non_square"},
	{matrix.ErrSingular, "singular"},
	{matrix.ErrNaNInf, "non_finite"},
	{matrix.ErrEmpty, "empty"},
	{matrix.ErrRagged, "ragged"},
	{matrix.ErrNilMatrix, "nil_matrix"},
	{vector.ErrUnsupportedDimension, "unsupported_dimension"},
	{vector.ErrZeroVector, "zero_vector"},
	{solver.ErrInvalidSystemShape, "invalid_system"},
	{symbolic.ErrInvalidToken, "invalid_token"},
	{calc.ErrUnknownOperation, "unknown_operation"},
	{calc.ErrMissingOperand, "missing_operand"},
	{calc.ErrUnknownMode, "unknown_mode"},
	{coord.ErrInvalidInput, "invalid_input"},
}

// ErrorType maps an error onto a bounded label value.
func ErrorType(err error) string {
	for _, c := range errorClasses {
		if errors.Is(err, c.err) {
			return c.name
		}
	}

	return "other"
}
