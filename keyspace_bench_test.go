package vecstore

import (
	"math/rand"
	"testing"
)

func benchKeyspace(b *testing.B, num, dim int) (*Keyspace, Vector) {
	b.Helper()

	rng := rand.New(rand.NewSource(1))
	ks, err := NewKeyspace("bench", dim)
	if err != nil {
		b.Fatal(err)
	}

	vectors := make([]Vector, num)
	for i := range vectors {
		data := make([]float64, dim)
		for j := range data {
			data[j] = rng.Float64()*2 - 1
		}
		vectors[i] = VectorFromSlice(data)
	}
	if err := ks.BatchAddVectors(vectors); err != nil {
		b.Fatal(err)
	}

	query := make([]float64, dim)
	for j := range query {
		query[j] = rng.Float64()*2 - 1
	}
	return ks, VectorFromSlice(query)
}

func BenchmarkAddVector(b *testing.B) {
	ks, query := benchKeyspace(b, 1, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ks.AddVector(query); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNearestNeighbor(b *testing.B) {
	ks, query := benchKeyspace(b, 10000, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ks.NearestNeighbor(query); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNeighborsAboveThreshold(b *testing.B) {
	ks, query := benchKeyspace(b, 10000, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ks.NeighborsAboveThreshold(query, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}
