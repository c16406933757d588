package ffwd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus; package prommetrics ships such an implementation.
type MetricsCollector interface {
	// RecordPush is called after each push.
	// err is nil if the item was appended.
	RecordPush(duration time.Duration, err error)

	// RecordExtend is called after each bulk append.
	// count is the number of items in the batch.
	RecordExtend(count int, duration time.Duration, err error)

	// RecordUpdate is called after each update.
	RecordUpdate(duration time.Duration, err error)

	// RecordRemove is called after each removal or tombstone.
	RecordRemove(duration time.Duration)

	// RecordQuery is called after each resolved lookup.
	// results is the number of positions found.
	RecordQuery(results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush(time.Duration, error)        {}
func (NoopMetricsCollector) RecordExtend(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordUpdate(time.Duration, error)      {}
func (NoopMetricsCollector) RecordRemove(time.Duration)             {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount       atomic.Int64
	PushErrors      atomic.Int64
	PushTotalNanos  atomic.Int64
	ExtendCount     atomic.Int64
	ExtendItems     atomic.Int64
	ExtendErrors    atomic.Int64
	UpdateCount     atomic.Int64
	UpdateErrors    atomic.Int64
	RemoveCount     atomic.Int64
	QueryCount      atomic.Int64
	QueryResults    atomic.Int64
	QueryTotalNanos atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush(duration time.Duration, err error) {
	b.PushCount.Add(1)
	b.PushTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PushErrors.Add(1)
	}
}

// RecordExtend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExtend(count int, duration time.Duration, err error) {
	b.ExtendCount.Add(1)
	if err != nil {
		b.ExtendErrors.Add(1)
		return
	}
	b.ExtendItems.Add(int64(count))
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(duration time.Duration, err error) {
	b.UpdateCount.Add(1)
	if err != nil {
		b.UpdateErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration) {
	b.RemoveCount.Add(1)
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PushCount:     b.PushCount.Load(),
		PushErrors:    b.PushErrors.Load(),
		PushAvgNanos:  avg(b.PushTotalNanos.Load(), b.PushCount.Load()),
		ExtendCount:   b.ExtendCount.Load(),
		ExtendItems:   b.ExtendItems.Load(),
		ExtendErrors:  b.ExtendErrors.Load(),
		UpdateCount:   b.UpdateCount.Load(),
		UpdateErrors:  b.UpdateErrors.Load(),
		RemoveCount:   b.RemoveCount.Load(),
		QueryCount:    b.QueryCount.Load(),
		QueryResults:  b.QueryResults.Load(),
		QueryAvgNanos: avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PushCount     int64
	PushErrors    int64
	PushAvgNanos  int64
	ExtendCount   int64
	ExtendItems   int64
	ExtendErrors  int64
	UpdateCount   int64
	UpdateErrors  int64
	RemoveCount   int64
	QueryCount    int64
	QueryResults  int64
	QueryAvgNanos int64
}
