// Package prometheus exports translator metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, _ := dptxprom.NewCollector(reg, "knx")
//	t, _ := dptx.New(dptx.DptGeneralStatus, dptx.WithMetricsCollector(mc))
package prometheus

import (
	"time"

	"github.com/hupe1980/dptx"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Collector implements dptx.MetricsCollector with Prometheus counters and a
// latency histogram.
type Collector struct {
	operations *prom.CounterVec
	items      *prom.CounterVec
	latency    *prom.HistogramVec
}

// NewCollector creates a collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prom.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	c := &Collector{
		operations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "dptx_operations_total",
			Help:      "Total translator operations",
		}, []string{"dpt", "op", "status"}),
		items: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "dptx_items_total",
			Help:      "Total items translated successfully",
		}, []string{"dpt", "op"}),
		latency: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "dptx_operation_duration_seconds",
			Help:      "Latency of translator operations",
			Buckets:   prom.ExponentialBuckets(1e-7, 4, 8),
		}, []string{"op"}),
	}
	for _, m := range []prom.Collector{c.operations, c.items, c.latency} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordTranslate implements dptx.MetricsCollector.
func (c *Collector) RecordTranslate(subtype string, op dptx.Op, items int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.operations.WithLabelValues(subtype, op.String(), status).Inc()
	if err == nil {
		c.items.WithLabelValues(subtype, op.String()).Add(float64(items))
	}
	c.latency.WithLabelValues(op.String()).Observe(duration.Seconds())
}
