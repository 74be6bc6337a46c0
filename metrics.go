package clusterkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting search metrics.
// Implement this interface to integrate with monitoring systems, or to
// record per-round behavior in experiments.
type MetricsCollector interface {
	// RecordIteration is called after every Lloyd iteration with the
	// SSE of the freshly recomputed state.
	RecordIteration(sse float64)

	// RecordRun is called once per top-level strategy run.
	// err is nil if the run completed.
	RecordRun(strategy string, iterations int, duration time.Duration, err error)

	// RecordTrial is called after each restart trial with its best SSE.
	RecordTrial(sse float64)

	// RecordSwap is called after each swap round. accepted reports
	// whether the perturbation improved the best SSE; sse is the SSE
	// reached by the round's local search.
	RecordSwap(accepted bool, sse float64)

	// RecordRepair is called for each empty-cluster repair pass with
	// the number of reseeded slots.
	RecordRepair(reseeded int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(float64)                     {}
func (NoopMetricsCollector) RecordRun(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTrial(float64)                         {}
func (NoopMetricsCollector) RecordSwap(bool, float64)                    {}
func (NoopMetricsCollector) RecordRepair(int)                            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and experiment bookkeeping without external
// dependencies.
type BasicMetricsCollector struct {
	IterationCount atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunTotalNanos  atomic.Int64
	TrialCount     atomic.Int64
	SwapCount      atomic.Int64
	SwapAccepted   atomic.Int64
	RepairCount    atomic.Int64
	RepairReseeded atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(float64) {
	b.IterationCount.Add(1)
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(strategy string, iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordTrial implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrial(float64) {
	b.TrialCount.Add(1)
}

// RecordSwap implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSwap(accepted bool, _ float64) {
	b.SwapCount.Add(1)
	if accepted {
		b.SwapAccepted.Add(1)
	}
}

// RecordRepair implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRepair(reseeded int) {
	b.RepairCount.Add(1)
	b.RepairReseeded.Add(int64(reseeded))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IterationCount: b.IterationCount.Load(),
		RunCount:       b.RunCount.Load(),
		RunErrors:      b.RunErrors.Load(),
		RunAvgNanos:    b.getAvgRunNanos(),
		TrialCount:     b.TrialCount.Load(),
		SwapCount:      b.SwapCount.Load(),
		SwapAccepted:   b.SwapAccepted.Load(),
		RepairCount:    b.RepairCount.Load(),
		RepairReseeded: b.RepairReseeded.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IterationCount int64
	RunCount       int64
	RunErrors      int64
	RunAvgNanos    int64
	TrialCount     int64
	SwapCount      int64
	SwapAccepted   int64
	RepairCount    int64
	RepairReseeded int64
}
