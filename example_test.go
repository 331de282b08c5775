package vecstore_test

import (
	"fmt"

	"github.com/hupe1980/vecstore"
)

func Example() {
	store := vecstore.New("example")

	ks, err := store.CreateKeyspace(2, "points")
	if err != nil {
		panic(err)
	}

	err = ks.BatchAddVectors([]vecstore.Vector{
		vecstore.VectorFromSlice([]float64{0, 0}),
		vecstore.VectorFromSlice([]float64{1, 0}),
		vecstore.VectorFromSlice([]float64{3, 0}),
	})
	if err != nil {
		panic(err)
	}

	query := vecstore.VectorFromSlice([]float64{0, 0})

	idx, err := ks.NearestNeighbor(query)
	if err != nil {
		panic(err)
	}
	fmt.Println("nearest:", idx)

	results, err := ks.NeighborsAboveThreshold(query, 0.5)
	if err != nil {
		panic(err)
	}
	for _, r := range results {
		fmt.Printf("index=%d similarity=%.2f\n", r.Index, r.Similarity)
	}

	// Output:
	// nearest: 0
	// index=0 similarity=1.00
	// index=1 similarity=0.50
}
