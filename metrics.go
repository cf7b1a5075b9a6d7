package dptx

import (
	"sync/atomic"
	"time"
)

// Op identifies a translator operation for logging and metrics.
type Op uint8

const (
	OpSetNumeric Op = iota
	OpSetFlags
	OpSetText
	OpSetData
	OpSetBitSet
	OpNumeric
	OpText
	OpFlags
	OpData
	OpBitSet
	numOps
)

var opNames = [numOps]string{
	OpSetNumeric: "set_numeric",
	OpSetFlags:   "set_flags",
	OpSetText:    "set_text",
	OpSetData:    "set_data",
	OpSetBitSet:  "set_bitset",
	OpNumeric:    "numeric",
	OpText:       "text",
	OpFlags:      "flags",
	OpData:       "data",
	OpBitSet:     "bitset",
}

func (o Op) String() string {
	if o >= numOps {
		return "unknown"
	}
	return opNames[o]
}

// IsSet reports whether the operation replaces translator items.
func (o Op) IsSet() bool { return o <= OpSetBitSet }

// MetricsCollector defines an interface for collecting translation metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus; see package metrics/prometheus.
type MetricsCollector interface {
	// RecordTranslate is called after each translator operation.
	// subtype is the datapoint type id, items the number of items touched,
	// err is nil if successful.
	RecordTranslate(subtype string, op Op, items int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTranslate(string, Op, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SetCount   atomic.Int64
	SetErrors  atomic.Int64
	SetItems   atomic.Int64
	GetCount   atomic.Int64
	GetErrors  atomic.Int64
	TotalNanos atomic.Int64
}

// RecordTranslate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTranslate(_ string, op Op, items int, duration time.Duration, err error) {
	b.TotalNanos.Add(duration.Nanoseconds())
	if op.IsSet() {
		b.SetCount.Add(1)
		if err != nil {
			b.SetErrors.Add(1)
			return
		}
		b.SetItems.Add(int64(items))
		return
	}
	b.GetCount.Add(1)
	if err != nil {
		b.GetErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SetCount:  b.SetCount.Load(),
		SetErrors: b.SetErrors.Load(),
		SetItems:  b.SetItems.Load(),
		GetCount:  b.GetCount.Load(),
		GetErrors: b.GetErrors.Load(),
		AvgNanos:  b.getAvgNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgNanos() int64 {
	count := b.SetCount.Load() + b.GetCount.Load()
	if count == 0 {
		return 0
	}
	return b.TotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SetCount  int64
	SetErrors int64
	SetItems  int64
	GetCount  int64
	GetErrors int64
	AvgNanos  int64
}
