// Package prommetrics exports ffwd list metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/hupe1980/ffwd"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements ffwd.MetricsCollector on top of Prometheus.
type Collector struct {
	opLatency *prometheus.HistogramVec
	ops       *prometheus.CounterVec
	items     prometheus.Counter
	results   prometheus.Histogram
}

var _ ffwd.MetricsCollector = (*Collector)(nil)

// Option configures a Collector.
type Option func(*options)

type options struct {
	namespace string
	buckets   []float64
}

// WithNamespace prefixes every metric name. Defaults to "ffwd".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithBuckets sets the latency histogram buckets in seconds.
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		o.buckets = buckets
	}
}

// New creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func New(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	o := options{
		namespace: "ffwd",
		buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10), // 100ns .. ~26ms
	}
	for _, fn := range optFns {
		fn(&o)
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of list operations",
			Buckets:   o.buckets,
		}, []string{"op", "status"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "operations_total",
			Help:      "Total list operations",
		}, []string{"op", "status"}),
		items: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "extended_items_total",
			Help:      "Total items appended by bulk extends",
		}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "query_results",
			Help:      "Number of positions returned by lookups",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	for _, m := range []prometheus.Collector{c.opLatency, c.ops, c.items, c.results} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (c *Collector) observe(op string, d time.Duration, err error) {
	s := status(err)
	c.opLatency.WithLabelValues(op, s).Observe(d.Seconds())
	c.ops.WithLabelValues(op, s).Inc()
}

// RecordPush implements ffwd.MetricsCollector.
func (c *Collector) RecordPush(d time.Duration, err error) {
	c.observe("push", d, err)
}

// RecordExtend implements ffwd.MetricsCollector.
func (c *Collector) RecordExtend(count int, d time.Duration, err error) {
	c.observe("extend", d, err)
	if err == nil {
		c.items.Add(float64(count))
	}
}

// RecordUpdate implements ffwd.MetricsCollector.
func (c *Collector) RecordUpdate(d time.Duration, err error) {
	c.observe("update", d, err)
}

// RecordRemove implements ffwd.MetricsCollector.
func (c *Collector) RecordRemove(d time.Duration) {
	c.observe("remove", d, nil)
}

// RecordQuery implements ffwd.MetricsCollector.
func (c *Collector) RecordQuery(results int, d time.Duration) {
	c.observe("query", d, nil)
	c.results.Observe(float64(results))
}
