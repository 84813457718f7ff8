// Package prometheus exposes metrics.Client on top of a dedicated
// Prometheus registry.
package prometheus

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
)

type (
	Client struct {
		namespace   string
		registry    *prometheus.Registry
		descriptors map[string]metrics.Descriptor

		mu         sync.Mutex
		counters   map[string]*counterVec
		histograms map[string]*histogramVec
	}

	Option func(*Client)

	counterVec struct {
		vec    *prometheus.CounterVec
		labels []string
	}

	histogramVec struct {
		vec    *prometheus.HistogramVec
		labels []string
	}
)

// WithDescriptors attaches help text to known keys.
func WithDescriptors(descriptors map[string]metrics.Descriptor) Option {
	return func(c *Client) {
		for key, d := range descriptors {
			c.descriptors[key] = d
		}
	}
}

// WithRuntimeCollectors registers the go and process collectors.
func WithRuntimeCollectors() Option {
	return func(c *Client) {
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

func NewClient(namespace string, opts ...Option) *Client {
	c := &Client{
		namespace:   namespace,
		registry:    prometheus.NewRegistry(),
		descriptors: make(map[string]metrics.Descriptor),
		counters:    make(map[string]*counterVec),
		histograms:  make(map[string]*histogramVec),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Inc adds value to the counter named after key. Non numeric values count as one.
func (c *Client) Inc(_ context.Context, key string, value any, attributes ...attribute.KeyValue) {
	amount, ok := metrics.ToFloat(value)
	if !ok {
		amount = 1
	}

	if amount < 0 {
		return
	}

	counter := c.counter(key, attributes)
	if counter == nil {
		return
	}

	counter.vec.WithLabelValues(labelValues(counter.labels, attributes)...).Add(amount)
}

// Observe records value into the histogram named after key.
func (c *Client) Observe(_ context.Context, key string, value float64, attributes ...attribute.KeyValue) {
	histogram := c.histogram(key, attributes)
	if histogram == nil {
		return
	}

	histogram.vec.WithLabelValues(labelValues(histogram.labels, attributes)...).Observe(value)
}

func (c *Client) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Client) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Client) Shutdown(_ context.Context) error {
	return nil
}

func (c *Client) counter(key string, attributes []attribute.KeyValue) *counterVec {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.counters[key]; ok {
		return existing
	}

	labels := labelNames(attributes)
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: metrics.SanitizeName(c.namespace, key) + "_total",
		Help: c.help(key),
	}, labels)

	if err := c.registry.Register(vec); err != nil {
		return nil
	}

	entry := &counterVec{vec: vec, labels: labels}
	c.counters[key] = entry

	return entry
}

func (c *Client) histogram(key string, attributes []attribute.KeyValue) *histogramVec {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.histograms[key]; ok {
		return existing
	}

	labels := labelNames(attributes)
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    metrics.SanitizeName(c.namespace, key) + "_seconds",
		Help:    c.help(key),
		Buckets: prometheus.DefBuckets,
	}, labels)

	if err := c.registry.Register(vec); err != nil {
		return nil
	}

	entry := &histogramVec{vec: vec, labels: labels}
	c.histograms[key] = entry

	return entry
}

func (c *Client) help(key string) string {
	if d, ok := c.descriptors[key]; ok && d.Description != "" {
		return d.Description
	}

	return key
}

func labelNames(attributes []attribute.KeyValue) []string {
	names := make([]string, 0, len(attributes))
	seen := make(map[string]struct{}, len(attributes))

	for _, attr := range attributes {
		name := metrics.SanitizeName("", string(attr.Key))
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// labelValues maps attributes onto the label set fixed at first use.
// Missing labels are left empty, unknown ones dropped.
func labelValues(labels []string, attributes []attribute.KeyValue) []string {
	byName := make(map[string]string, len(attributes))
	for _, attr := range attributes {
		byName[metrics.SanitizeName("", string(attr.Key))] = attr.Value.Emit()
	}

	values := make([]string, len(labels))
	for i, label := range labels {
		values[i] = byName[label]
	}

	return values
}
