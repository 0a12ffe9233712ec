package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/paracc/internal/reduce"
)

const namespace = "paracc"

// Collector owns the Prometheus collectors for reductions. Each Collector
// has its own registry so that tests and embedded uses do not share state.
type Collector struct {
	registry *prometheus.Registry

	runs          *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
	elements      *prometheus.CounterVec
	workers       *prometheus.GaugeVec
	blocks        *prometheus.CounterVec
	blockDuration *prometheus.HistogramVec
	scrapes       prometheus.Counter
}

// NewCollector creates and registers all reduction collectors, together
// with the Go runtime and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed reduction runs.",
		}, []string{"runner", "status"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of reduction runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"runner"}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "elements_total",
			Help:      "Elements folded by successful runs.",
		}, []string{"runner"}),
		workers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers",
			Help:      "Workers used by the most recent run.",
		}, []string{"runner"}),
		blocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "block",
			Name:      "completed_total",
			Help:      "Blocks completed by workers.",
		}, []string{"runner", "inline"}),
		blockDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "block",
			Name:      "duration_seconds",
			Help:      "Time spent by one worker on its block.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
		}, []string{"runner"}),
		scrapes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metrics_scrapes_total",
			Help:      "Requests served by the metrics endpoint.",
		}),
	}
	c.registry.MustRegister(
		c.runs, c.runDuration, c.elements, c.workers, c.blocks, c.blockDuration, c.scrapes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry returns the registry holding the collectors.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// IncScrapes counts one request to the metrics endpoint.
func (c *Collector) IncScrapes() { c.scrapes.Inc() }

// RecordRun records the outcome of one run.
func (c *Collector) RecordRun(runner string, elements, workers int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	c.runs.WithLabelValues(runner, status).Inc()
	c.runDuration.WithLabelValues(runner).Observe(d.Seconds())
	c.workers.WithLabelValues(runner).Set(float64(workers))
	if err == nil {
		c.elements.WithLabelValues(runner).Add(float64(elements))
	}
}

// BlockObserver returns a reduce.BlockObserver that records every finished
// block under the given runner label.
func BlockObserver[E, A reduce.Integer](c *Collector, runner string) reduce.BlockObserver[E, A] {
	inline := c.blocks.WithLabelValues(runner, "true")
	dispatched := c.blocks.WithLabelValues(runner, "false")
	duration := c.blockDuration.WithLabelValues(runner)
	return reduce.ObserverFunc[E, A](func(r reduce.BlockReport[E, A]) {
		if r.Inline {
			inline.Inc()
		} else {
			dispatched.Inc()
		}
		duration.Observe(r.Elapsed.Seconds())
	})
}
