// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics counts installer operation outcomes for Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder owns a private registry so tests and multiple servers never
// collide on the global one. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	requests   *prometheus.CounterVec
}

func New() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "installer",
			Name:      "operation_total",
			Help:      "Installer operations by name and outcome.",
		}, []string{"operation", "result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "installer",
			Name:      "step_requests_total",
			Help:      "Wizard requests by step and HTTP method.",
		}, []string{"step", "method"}),
	}

	reg.MustRegister(
		r.operations,
		r.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveOperation counts one installer operation outcome
func (r *Recorder) ObserveOperation(operation string, ok bool) {
	if r == nil {
		return
	}
	result := ResultSuccess
	if !ok {
		result = ResultFailure
	}
	r.operations.WithLabelValues(operation, result).Inc()
}

// ObserveRequest counts one wizard request
func (r *Recorder) ObserveRequest(step, method string) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(step, method).Inc()
}

// Operations exposes the operation counter for assertions
func (r *Recorder) Operations() *prometheus.CounterVec {
	return r.operations
}

// Requests exposes the request counter for assertions
func (r *Recorder) Requests() *prometheus.CounterVec {
	return r.requests
}

// Handler serves the registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
