// Package vecstore provides an in-memory vector container with linear
// nearest-neighbor search.
//
// Vectors are grouped into named, dimension-fixed keyspaces, and
// keyspaces are registered under a named VectorStore. Search is a
// brute-force scan: exact, simple, and fast enough for small to
// mid-sized collections.
//
// # Quick Start
//
//	store := vecstore.New("demo")
//	ks, _ := store.CreateKeyspace(3, "embeddings")
//
//	ks.AddVector(vecstore.VectorFromSlice([]float64{0.1, 0.2, 0.3}))
//	ks.AddVector(vecstore.VectorFromSlice([]float64{0.9, 0.8, 0.7}))
//
//	query := vecstore.VectorFromSlice([]float64{0.1, 0.2, 0.25})
//	idx, _ := ks.NearestNeighbor(query)
//
// # Threshold Search
//
// NeighborsAboveThreshold converts Euclidean distance to a similarity
// score in (0, 1] via 1/(1+distance) and returns every stored vector
// meeting the cutoff, ranked descending:
//
//	results, _ := ks.NeighborsAboveThreshold(query, 0.5)
//	for _, r := range results {
//	    fmt.Println(r.Index, r.Similarity)
//	}
//
// # Concurrency
//
// Keyspaces and stores are safe for concurrent use. Writers take an
// exclusive lock, readers share a lock, so searches proceed in
// parallel with each other and serialize only against mutation.
//
// # Key Features
//
//   - Exact brute-force nearest-neighbor and threshold search
//   - Euclidean, Manhattan, and cosine metrics on float64 vectors
//   - Named keyspace registry with shared keyspace handles
//   - Structured logging (log/slog) and pluggable metrics collection
//   - Terminal visualizer for 2D/3D keyspaces (cmd/vecstore)
package vecstore
