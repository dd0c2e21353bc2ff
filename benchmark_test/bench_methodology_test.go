package benchmark_test

import (
	"runtime"
	"testing"
)

// ============================================================================
// BENCHMARK METHODOLOGY — Clean, Reproducible Measurements
// ============================================================================
//
// This file provides utilities for noise-free benchmarks. Key principles:
//
// 1. WARMUP PHASE: Run N iterations before measurement to:
//    - Warm CPU branch predictors
//    - Populate caches (L1/L2/L3, Go runtime, label lookup maps)
//
// 2. GC CONTROL: Force GC before measurement to:
//    - Clear allocation pressure from fixture setup
//    - Prevent GC pauses during measurement
//
// 3. ONE OPERATION PER ITERATION: Each b.N iteration = exactly 1 selection,
//    reduction or rearrange, so latency and allocations are per-operation.
//
// 4. NO StopTimer/StartTimer: These have overhead (~50-100ns) and
//    cause timing instability.
//
// Usage:
//
//	func BenchmarkSelect(b *testing.B) {
//		arr := BuildHazardArray(b, sizeMedium)
//		queries := MakeSelQueries(100, sizeMedium, 0)
//
//		BenchLoop(b, len(queries), func(i int) {
//			_, _ = arr.Sel(queries[i]...)
//		})
//	}

// WarmupIterations is the number of warmup iterations before measurement.
// This should be enough to warm caches and branch predictors.
const WarmupIterations = 10

// BenchLoop runs a benchmark with proper methodology:
// 1. Warmup phase (WarmupIterations)
// 2. GC to clear allocation pressure
// 3. Reset timer
// 4. Run b.N iterations
//
// The queryCount parameter is used to cycle through queries (i % queryCount).
// The fn receives the current iteration index.
func BenchLoop(b *testing.B, queryCount int, fn func(i int)) {
	b.Helper()

	// Phase 1: Warmup
	for i := 0; i < WarmupIterations; i++ {
		fn(i % queryCount)
	}

	// Phase 2: GC to clear setup allocations
	runtime.GC()

	// Phase 3: Reset and run
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fn(i % queryCount)
	}
}
