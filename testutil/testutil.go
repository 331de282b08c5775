package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/vecstore"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformRangeVectors generates random vectors with values in range
// [minVal, maxVal). Each vector gets its own storage; a single scratch
// row is reused between iterations since VectorFromSlice copies.
func (r *RNG) UniformRangeVectors(num, dimensions int, minVal, maxVal float64) []vecstore.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	row := make([]float64, dimensions)
	vectors := make([]vecstore.Vector, num)

	for i := 0; i < num; i++ {
		for j := range row {
			row[j] = minVal + r.rand.Float64()*span
		}
		vectors[i] = vecstore.VectorFromSlice(row)
	}

	return vectors
}

// UniformRangeVector generates a single random vector with values in
// range [minVal, maxVal).
func (r *RNG) UniformRangeVector(dimensions int, minVal, maxVal float64) vecstore.Vector {
	row := make([]float64, dimensions)
	r.FillUniformRange(row, minVal, maxVal)
	return vecstore.VectorFromSlice(row)
}

// CircleVectors returns num 2D vectors evenly spaced on a circle of the
// given radius, centered at the origin.
func CircleVectors(num int, radius float64) []vecstore.Vector {
	vectors := make([]vecstore.Vector, num)
	for i := 0; i < num; i++ {
		angle := 2 * math.Pi * float64(i) / float64(num)
		vectors[i] = vecstore.VectorFromSlice([]float64{
			radius * math.Cos(angle),
			radius * math.Sin(angle),
		})
	}
	return vectors
}

// SphereVectors returns num 3D vectors on a spiral over a sphere of the
// given radius, centered at the origin.
func SphereVectors(num int, radius float64) []vecstore.Vector {
	vectors := make([]vecstore.Vector, num)
	for i := 0; i < num; i++ {
		theta := 2 * math.Pi * float64(i) / float64(num)
		phi := math.Pi * float64(i) / float64(num)
		vectors[i] = vecstore.VectorFromSlice([]float64{
			radius * math.Sin(phi) * math.Cos(theta),
			radius * math.Sin(phi) * math.Sin(theta),
			radius * math.Cos(phi),
		})
	}
	return vectors
}
