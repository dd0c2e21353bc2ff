package labgrid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    selectCounter   prometheus.Counter
//	    selectHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSelect(kept int, duration time.Duration, err error) {
//	    p.selectCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordConstruct is called after each array construction.
	// rank is the number of axes, duration is the total time taken,
	// err is nil if successful.
	RecordConstruct(rank int, duration time.Duration, err error)

	// RecordSelect is called after each label selection.
	// kept is the number of surviving axes.
	RecordSelect(kept int, duration time.Duration, err error)

	// RecordReduce is called after each axis reduction.
	RecordReduce(duration time.Duration, err error)

	// RecordRearrange is called after each axis rearrangement.
	RecordRearrange(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConstruct(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSelect(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordReduce(time.Duration, error)         {}
func (NoopMetricsCollector) RecordRearrange(time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConstructCount      atomic.Int64
	ConstructErrors     atomic.Int64
	ConstructTotalNanos atomic.Int64
	SelectCount         atomic.Int64
	SelectErrors        atomic.Int64
	SelectTotalNanos    atomic.Int64
	ReduceCount         atomic.Int64
	ReduceErrors        atomic.Int64
	RearrangeCount      atomic.Int64
	RearrangeErrors     atomic.Int64
}

// RecordConstruct implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConstruct(rank int, duration time.Duration, err error) {
	b.ConstructCount.Add(1)
	b.ConstructTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConstructErrors.Add(1)
	}
}

// RecordSelect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelect(kept int, duration time.Duration, err error) {
	b.SelectCount.Add(1)
	b.SelectTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SelectErrors.Add(1)
	}
}

// RecordReduce implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReduce(duration time.Duration, err error) {
	b.ReduceCount.Add(1)
	if err != nil {
		b.ReduceErrors.Add(1)
	}
}

// RecordRearrange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRearrange(duration time.Duration, err error) {
	b.RearrangeCount.Add(1)
	if err != nil {
		b.RearrangeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConstructCount:    b.ConstructCount.Load(),
		ConstructErrors:   b.ConstructErrors.Load(),
		ConstructAvgNanos: b.getAvgConstructNanos(),
		SelectCount:       b.SelectCount.Load(),
		SelectErrors:      b.SelectErrors.Load(),
		SelectAvgNanos:    b.getAvgSelectNanos(),
		ReduceCount:       b.ReduceCount.Load(),
		ReduceErrors:      b.ReduceErrors.Load(),
		RearrangeCount:    b.RearrangeCount.Load(),
		RearrangeErrors:   b.RearrangeErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgConstructNanos() int64 {
	count := b.ConstructCount.Load()
	if count == 0 {
		return 0
	}
	return b.ConstructTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgSelectNanos() int64 {
	count := b.SelectCount.Load()
	if count == 0 {
		return 0
	}
	return b.SelectTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConstructCount    int64
	ConstructErrors   int64
	ConstructAvgNanos int64
	SelectCount       int64
	SelectErrors      int64
	SelectAvgNanos    int64
	ReduceCount       int64
	ReduceErrors      int64
	RearrangeCount    int64
	RearrangeErrors   int64
}
