// Package metric provides RED-style instrumentation for service middlewares:
// a request counter and a duration histogram per service method.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// REDClient records requests, errors, and durations for a named service.
type REDClient struct {
	count    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// ClientOptFn is an option for a REDClient.
type ClientOptFn func(*clientOpts)

type clientOpts struct {
	namespace string
}

// WithNamespace sets the metric namespace; defaults to "catalog".
func WithNamespace(namespace string) ClientOptFn {
	return func(o *clientOpts) {
		o.namespace = namespace
	}
}

// New creates a new REDClient for the named service and registers its
// collectors with reg.
func New(reg prometheus.Registerer, service string, opts ...ClientOptFn) *REDClient {
	o := clientOpts{namespace: "catalog"}
	for _, opt := range opts {
		opt(&o)
	}

	client := &REDClient{
		count: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: service,
			Name:      "call_total",
			Help:      "Number of calls",
		}, []string{"method", "error"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: service,
			Name:      "duration_seconds",
			Help:      "Duration of calls",
		}, []string{"method"}),
	}

	reg.MustRegister(client.count, client.duration)

	return client
}

// Record returns a recorder for the given method. The returned function
// observes the call's duration and outcome and passes the error through
// unchanged.
func (c *REDClient) Record(method string) func(error) error {
	start := time.Now()
	return func(err error) error {
		c.duration.With(prometheus.Labels{
			"method": method,
		}).Observe(time.Since(start).Seconds())

		errString := "false"
		if err != nil {
			errString = "true"
		}
		c.count.With(prometheus.Labels{
			"method": method,
			"error":  errString,
		}).Inc()

		return err
	}
}
