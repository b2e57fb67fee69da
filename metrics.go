package bitkit

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting storage metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    grows      prometheus.Counter
//	    growErrors prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordGrow(fromBits, toBits int, err error) {
//	    p.grows.Inc()
//	    // ... record error state, sizes, etc.
//	}
type MetricsCollector interface {
	// RecordGrow is called after each storage resize attempt.
	// err is nil if the allocator provided the new storage.
	RecordGrow(fromBits, toBits int, err error)

	// RecordFree is called after each ClearAndFree.
	RecordFree(bits int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, error) {}
func (NoopMetricsCollector) RecordFree(int, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe to share between sets used from different goroutines.
type BasicMetricsCollector struct {
	GrowCount  atomic.Int64
	GrowErrors atomic.Int64
	GrownBits  atomic.Int64
	FreeCount  atomic.Int64
	FreeErrors atomic.Int64
	FreedBits  atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(fromBits, toBits int, err error) {
	b.GrowCount.Add(1)
	if err != nil {
		b.GrowErrors.Add(1)
		return
	}
	b.GrownBits.Add(int64(toBits - fromBits))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(bits int, err error) {
	b.FreeCount.Add(1)
	if err != nil {
		b.FreeErrors.Add(1)
		return
	}
	b.FreedBits.Add(int64(bits))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:  b.GrowCount.Load(),
		GrowErrors: b.GrowErrors.Load(),
		GrownBits:  b.GrownBits.Load(),
		FreeCount:  b.FreeCount.Load(),
		FreeErrors: b.FreeErrors.Load(),
		FreedBits:  b.FreedBits.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount  int64
	GrowErrors int64
	GrownBits  int64
	FreeCount  int64
	FreeErrors int64
	FreedBits  int64
}
