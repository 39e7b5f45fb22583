// Package metric holds the prometheus metrics of gobulma.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values of RenderCounter.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// IncrementalCounter counts events by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter wraps a prometheus counter vector.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one to the series of the label values val.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounterWithRegistry registers a counter with reg. It panics when the name is already taken.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// NewRenderCounter returns the counter of rendered widgets, labeled by widget kind and result.
func NewRenderCounter(reg prometheus.Registerer) IncrementalCounter {
	return NewCounterWithRegistry(reg, "gobulma_widgets_rendered_total", "Number of rendered widgets.", "kind", "result")
}

// Result maps a render error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}

	return ResultOK
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
