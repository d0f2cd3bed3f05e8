package arenalist

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives operational metrics from a Sequence. Implement
// it to integrate with monitoring systems like Prometheus; implementations
// must be safe for concurrent use when sequences share a collector.
type MetricsCollector interface {
	// RecordAppend is called after each single append.
	RecordAppend(duration time.Duration, err error)

	// RecordAppendBatch is called after each batch append. count is the
	// number of values attempted; on error none of them were appended.
	RecordAppendBatch(count int, duration time.Duration, err error)

	// RecordSnapshot is called after each snapshot write. count is the
	// number of values written.
	RecordSnapshot(count int, duration time.Duration, err error)

	// RecordRestore is called after each restore. count is the number of
	// values decoded.
	RecordRestore(count int, duration time.Duration, err error)
}

// NoopMetricsCollector discards all metrics. The default.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAppend(time.Duration, error)           {}
func (NoopMetricsCollector) RecordAppendBatch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSnapshot(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordRestore(int, time.Duration, error)     {}

// BasicMetricsCollector keeps simple in-memory counters. Useful for tests
// and basic monitoring without an external system.
type BasicMetricsCollector struct {
	AppendCount      atomic.Int64
	AppendErrors     atomic.Int64
	AppendTotalNanos atomic.Int64
	BatchCount       atomic.Int64
	BatchItems       atomic.Int64
	BatchErrors      atomic.Int64
	SnapshotCount    atomic.Int64
	SnapshotErrors   atomic.Int64
	RestoreCount     atomic.Int64
	RestoreErrors    atomic.Int64
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(duration time.Duration, err error) {
	b.AppendCount.Add(1)
	b.AppendTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AppendErrors.Add(1)
	}
}

// RecordAppendBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppendBatch(count int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	if err != nil {
		b.BatchErrors.Add(1)
		return
	}
	b.BatchItems.Add(int64(count))
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(count int, duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}

// RecordRestore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRestore(count int, duration time.Duration, err error) {
	b.RestoreCount.Add(1)
	if err != nil {
		b.RestoreErrors.Add(1)
	}
}

// Stats is a snapshot of BasicMetricsCollector state.
type Stats struct {
	AppendCount    int64
	AppendErrors   int64
	AppendAvgNanos int64
	BatchCount     int64
	BatchItems     int64
	BatchErrors    int64
	SnapshotCount  int64
	SnapshotErrors int64
	RestoreCount   int64
	RestoreErrors  int64
}

// GetStats returns a consistent-enough snapshot of the counters.
func (b *BasicMetricsCollector) GetStats() Stats {
	s := Stats{
		AppendCount:    b.AppendCount.Load(),
		AppendErrors:   b.AppendErrors.Load(),
		BatchCount:     b.BatchCount.Load(),
		BatchItems:     b.BatchItems.Load(),
		BatchErrors:    b.BatchErrors.Load(),
		SnapshotCount:  b.SnapshotCount.Load(),
		SnapshotErrors: b.SnapshotErrors.Load(),
		RestoreCount:   b.RestoreCount.Load(),
		RestoreErrors:  b.RestoreErrors.Load(),
	}
	if s.AppendCount > 0 {
		s.AppendAvgNanos = b.AppendTotalNanos.Load() / s.AppendCount
	}
	return s
}
