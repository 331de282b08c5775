// Package testutil provides testing utilities for vecstore.
//
// This package is intended for use in tests, benchmarks, and demos.
// It provides seeded random vector generation plus the circle/sphere
// point fixtures used by the visualizer.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformRangeVectors(100, 3, -1, 1)
//
// # Geometry Fixtures
//
//	ring := testutil.CircleVectors(8, 2.0)
//	ball := testutil.SphereVectors(20, 2.0)
package testutil
