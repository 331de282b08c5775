package vecstore

import "math"

// Vector is a fixed-dimension tuple of float64 components.
//
// The dimension is set at construction and never changes. A Vector
// header is cheap to copy, but the copy shares the backing array; use
// Clone for an independent vector. Keyspaces always store clones, so
// mutating a vector after AddVector never affects stored data.
type Vector struct {
	data []float64
}

// NewVector creates a zero-filled vector of the given dimension.
func NewVector(dimension int) (Vector, error) {
	if dimension <= 0 {
		return Vector{}, &ErrInvalidDimension{Dimension: dimension}
	}
	return Vector{data: make([]float64, dimension)}, nil
}

// VectorFromSlice creates a vector with the given components.
// The input slice is copied.
func VectorFromSlice(values []float64) Vector {
	data := make([]float64, len(values))
	copy(data, values)
	return Vector{data: data}
}

// Dimension returns the number of components.
func (v Vector) Dimension() int { return len(v.data) }

// Element returns the component at index i.
func (v Vector) Element(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, &ErrOutOfRange{Index: i, Size: len(v.data)}
	}
	return v.data[i], nil
}

// SetElement sets the component at index i.
func (v Vector) SetElement(i int, value float64) error {
	if i < 0 || i >= len(v.data) {
		return &ErrOutOfRange{Index: i, Size: len(v.data)}
	}
	v.data[i] = value
	return nil
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return Vector{data: data}
}

// EuclideanDistance calculates the L2 distance between v and other.
func (v Vector) EuclideanDistance(other Vector) (float64, error) {
	if len(v.data) != len(other.data) {
		return 0, &ErrDimensionMismatch{Expected: len(v.data), Actual: len(other.data)}
	}

	var sum float64
	for i, a := range v.data {
		d := a - other.data[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// ManhattanDistance calculates the L1 distance between v and other.
func (v Vector) ManhattanDistance(other Vector) (float64, error) {
	if len(v.data) != len(other.data) {
		return 0, &ErrDimensionMismatch{Expected: len(v.data), Actual: len(other.data)}
	}

	var sum float64
	for i, a := range v.data {
		sum += math.Abs(a - other.data[i])
	}

	return sum, nil
}

// CosineSimilarity calculates the cosine of the angle between v and other.
// It returns exactly 0 when either vector has zero magnitude.
func (v Vector) CosineSimilarity(other Vector) (float64, error) {
	if len(v.data) != len(other.data) {
		return 0, &ErrDimensionMismatch{Expected: len(v.data), Actual: len(other.data)}
	}

	var dot, normA, normB float64
	for i, a := range v.data {
		b := other.data[i]
		dot += a * b
		normA += a * a
		normB += b * b
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / math.Sqrt(normA*normB), nil
}
