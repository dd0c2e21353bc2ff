// Package testutil provides testing utilities for labgrid.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded thread-safe RNG and fixture generators for
// label vectors and row-major value data.
//
// # Deterministic Data
//
//	rng := testutil.NewRNG(seed)
//	values := make([]float64, 64)
//	rng.FillUniform(values) // uniform [0, 1)
//
// # Fixtures
//
//	labels := testutil.Labels("s", 4) // ["s0" "s1" "s2" "s3"]
//	values := testutil.Sequential(8)  // [0 1 2 ... 7]
package testutil
