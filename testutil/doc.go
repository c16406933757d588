// Package testutil provides testing utilities for ffwd.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, seedable RNG and helpers for generating
// skewed key workloads.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.ZipfKeys(1000, 50, 1.5) // 1000 keys out of 50, heavy tail
//	op := rng.Choice(6, 3, 1)           // weighted operation pick
package testutil
