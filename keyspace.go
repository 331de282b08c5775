package vecstore

import (
	"slices"
	"sync"
	"time"
)

// SearchResult pairs a stored vector's position with its similarity score.
type SearchResult struct {
	Index      int     // Position in insertion order
	Similarity float64 // 1 / (1 + euclidean distance), in (0, 1]
}

// Keyspace is a named, thread-safe collection of same-dimension vectors
// with linear search.
//
// Vectors are stored by value in insertion order; indices are 0-based
// positions that shift down on removal. Writers take an exclusive lock,
// readers a shared lock, so concurrent searches never observe a torn
// sequence.
//
// A Keyspace handle is a shared reference: removing a keyspace from a
// VectorStore does not invalidate handles already held elsewhere.
type Keyspace struct {
	name      string
	dimension int

	mu      sync.RWMutex
	vectors []Vector

	logger  *Logger
	metrics MetricsCollector
}

// NewKeyspace creates an empty keyspace with a fixed name and dimension.
func NewKeyspace(name string, dimension int, optFns ...func(o *Options)) (*Keyspace, error) {
	if dimension <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}

	opts := applyOptions(optFns...)

	k := &Keyspace{
		name:      name,
		dimension: dimension,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}

	k.logger.LogKeyspaceEvent("keyspace created", name, dimension)

	return k, nil
}

// Name returns the keyspace name.
func (k *Keyspace) Name() string { return k.name }

// Dimension returns the fixed vector dimension.
func (k *Keyspace) Dimension() int { return k.dimension }

// Size returns the number of stored vectors.
func (k *Keyspace) Size() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.vectors)
}

// AddVector appends a vector to the end of the keyspace.
// The vector is cloned; later mutation by the caller has no effect on
// stored data.
func (k *Keyspace) AddVector(vec Vector) error {
	start := time.Now()
	index, err := k.addVector(vec)
	k.metrics.RecordAdd(time.Since(start), err)
	k.logger.LogAdd(k.name, index, err)
	return err
}

func (k *Keyspace) addVector(vec Vector) (int, error) {
	if vec.Dimension() != k.dimension {
		return 0, &ErrDimensionMismatch{Expected: k.dimension, Actual: vec.Dimension()}
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	k.vectors = append(k.vectors, vec.Clone())
	return len(k.vectors) - 1, nil
}

// BatchAddVectors appends multiple vectors in a single operation.
//
// The batch is atomic: every vector is validated before any is
// appended, and a single dimension mismatch rejects the whole batch
// with no mutation.
func (k *Keyspace) BatchAddVectors(vectors []Vector) error {
	start := time.Now()
	err := k.batchAddVectors(vectors)
	k.metrics.RecordBatchAdd(len(vectors), time.Since(start), err)
	k.logger.LogBatchAdd(k.name, len(vectors), err)
	return err
}

func (k *Keyspace) batchAddVectors(vectors []Vector) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	// Validate everything first: all-or-nothing.
	for _, vec := range vectors {
		if vec.Dimension() != k.dimension {
			return &ErrDimensionMismatch{Expected: k.dimension, Actual: vec.Dimension()}
		}
	}

	k.vectors = slices.Grow(k.vectors, len(vectors))
	for _, vec := range vectors {
		k.vectors = append(k.vectors, vec.Clone())
	}

	return nil
}

// RemoveVector removes the vector at the given position.
// Subsequent indices shift down by one.
func (k *Keyspace) RemoveVector(index int) error {
	start := time.Now()
	err := k.removeVector(index)
	k.metrics.RecordRemove(time.Since(start), err)
	k.logger.LogRemove(k.name, index, err)
	return err
}

func (k *Keyspace) removeVector(index int) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if index < 0 || index >= len(k.vectors) {
		return &ErrOutOfRange{Index: index, Size: len(k.vectors)}
	}

	k.vectors = append(k.vectors[:index], k.vectors[index+1:]...)
	return nil
}

// VectorAt returns the vector at the given position.
// The returned vector is a copy; mutating it has no effect on stored data.
func (k *Keyspace) VectorAt(index int) (Vector, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if index < 0 || index >= len(k.vectors) {
		return Vector{}, &ErrOutOfRange{Index: index, Size: len(k.vectors)}
	}

	return k.vectors[index].Clone(), nil
}

// NearestNeighbor returns the position of the stored vector with the
// smallest Euclidean distance to query. The scan runs in insertion
// order and keeps the first index on ties.
func (k *Keyspace) NearestNeighbor(query Vector) (int, error) {
	start := time.Now()
	index, err := k.nearestNeighbor(query)
	k.metrics.RecordSearch(1, time.Since(start), err)
	k.logger.LogSearch(k.name, "nearest", 1, err)
	return index, err
}

func (k *Keyspace) nearestNeighbor(query Vector) (int, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if len(k.vectors) == 0 {
		return 0, ErrEmptyKeyspace
	}
	if query.Dimension() != k.dimension {
		return 0, &ErrDimensionMismatch{Expected: k.dimension, Actual: query.Dimension()}
	}

	nearest := 0
	minDist, _ := query.EuclideanDistance(k.vectors[0])

	for i := 1; i < len(k.vectors); i++ {
		dist, _ := query.EuclideanDistance(k.vectors[i])
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest, nil
}

// NeighborsAboveThreshold returns every stored vector whose similarity
// to query meets the threshold, ranked descending by similarity.
//
// Similarity is derived from Euclidean distance as 1/(1+distance), so
// it lies in (0, 1] with 1 meaning an exact match. The sort is stable:
// entries with equal similarity keep their insertion-index order.
func (k *Keyspace) NeighborsAboveThreshold(query Vector, threshold float64) ([]SearchResult, error) {
	start := time.Now()
	results, err := k.neighborsAboveThreshold(query, threshold)
	k.metrics.RecordSearch(len(results), time.Since(start), err)
	k.logger.LogSearch(k.name, "threshold", len(results), err)
	return results, err
}

func (k *Keyspace) neighborsAboveThreshold(query Vector, threshold float64) ([]SearchResult, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if len(k.vectors) == 0 {
		return nil, ErrEmptyKeyspace
	}
	if query.Dimension() != k.dimension {
		return nil, &ErrDimensionMismatch{Expected: k.dimension, Actual: query.Dimension()}
	}

	var results []SearchResult
	for i, vec := range k.vectors {
		dist, _ := query.EuclideanDistance(vec)
		similarity := 1.0 / (1.0 + dist)
		if similarity >= threshold {
			results = append(results, SearchResult{Index: i, Similarity: similarity})
		}
	}

	slices.SortStableFunc(results, func(a, b SearchResult) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		default:
			return 0
		}
	})

	return results, nil
}
