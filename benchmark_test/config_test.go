package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/labgrid"
	"github.com/hupe1980/labgrid/axis"
	"github.com/hupe1980/labgrid/grid"
	"github.com/hupe1980/labgrid/testutil"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Standard station counts used across benchmarks for consistency.
const (
	sizeSmall  = 100    // Quick iteration
	sizeMedium = 1_000  // Default CI
	sizeLarge  = 10_000 // Production-scale site sets
)

// Fixed extents for the non-station axes. Hazard grids are tall and thin:
// many stations, a handful of intensity measures, a few dozen realizations.
const (
	imCount  = 8
	relCount = 32
)

// Seed for deterministic benchmarks - enables reproducible comparisons.
const benchSeed = 42

// ============================================================================
// Benchmark Helpers
// ============================================================================

// BuildHazardArray constructs a stations x ims x rels array filled with
// uniform values and labelled on every axis.
func BuildHazardArray(b *testing.B, stations int) *labgrid.Array[float64] {
	b.Helper()

	data := make([]float64, stations*imCount*relCount)
	rng := testutil.NewRNG(benchSeed)
	rng.FillUniform(data)

	g, err := grid.FromSlice(data, stations, imCount, relCount)
	if err != nil {
		b.Fatalf("failed to build grid: %v", err)
	}

	arr, err := labgrid.New(g, [][]string{
		testutil.Labels("s", stations),
		testutil.Labels("im", imCount),
		testutil.Labels("r", relCount),
	}, labgrid.WithAxisNames("station", "im", "rel"))
	if err != nil {
		b.Fatalf("failed to build array: %v", err)
	}
	return arr
}

// MakeSelQueries generates n selector triples addressing random cells.
// The trailing wild axes are wildcards, so the result keeps that many axes:
// wild=0 yields scalars, wild=1 series, wild=2 tables.
func MakeSelQueries(n, stations, wild int) [][]axis.Selector {
	rng := testutil.NewRNG(benchSeed + 1) // Different seed from data
	queries := make([][]axis.Selector, n)
	for i := range queries {
		sels := []axis.Selector{
			axis.Label(fmt.Sprintf("s%d", rng.Intn(stations))),
			axis.Label(fmt.Sprintf("im%d", rng.Intn(imCount))),
			axis.Label(fmt.Sprintf("r%d", rng.Intn(relCount))),
		}
		for ax := 3 - wild; ax < 3; ax++ {
			sels[ax] = axis.All()
		}
		queries[i] = sels
	}
	return queries
}

// MakeSubsetQueries generates selector triples whose rel axis picks a random
// label subset, exercising the mask-backed gather path.
func MakeSubsetQueries(n, stations, subsetSize int) [][]axis.Selector {
	rng := testutil.NewRNG(benchSeed + 2)
	queries := make([][]axis.Selector, n)
	for i := range queries {
		picks := rng.Perm(relCount)[:subsetSize]
		labels := make([]string, subsetSize)
		for j, p := range picks {
			labels[j] = fmt.Sprintf("r%d", p)
		}
		queries[i] = []axis.Selector{
			axis.Label(fmt.Sprintf("s%d", rng.Intn(stations))),
			axis.All(),
			axis.Labels(labels...),
		}
	}
	return queries
}
