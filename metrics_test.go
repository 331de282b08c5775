package vecstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	store := New("metrics_store", WithMetrics(metrics))
	ks, err := store.CreateKeyspace(2, "m")
	require.NoError(t, err)

	require.NoError(t, ks.AddVector(VectorFromSlice([]float64{1, 2})))
	require.Error(t, ks.AddVector(VectorFromSlice([]float64{1})))

	require.NoError(t, ks.BatchAddVectors([]Vector{
		VectorFromSlice([]float64{3, 4}),
		VectorFromSlice([]float64{5, 6}),
	}))

	_, err = ks.NearestNeighbor(VectorFromSlice([]float64{0, 0}))
	require.NoError(t, err)

	require.NoError(t, ks.RemoveVector(0))

	assert.Equal(t, int64(2), metrics.AddCount.Load())
	assert.Equal(t, int64(1), metrics.AddErrors.Load())
	assert.Equal(t, int64(1), metrics.BatchAddCount.Load())
	assert.Equal(t, int64(2), metrics.BatchAddItems.Load())
	assert.Equal(t, int64(1), metrics.SearchCount.Load())
	assert.Equal(t, int64(1), metrics.RemoveCount.Load())
}

func TestBasicMetricsCollectorRejectedBatch(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	ks, err := NewKeyspace("m", 2, WithMetrics(metrics))
	require.NoError(t, err)

	err = ks.BatchAddVectors([]Vector{
		VectorFromSlice([]float64{1, 2}),
		VectorFromSlice([]float64{1, 2, 3}),
	})
	require.Error(t, err)

	// A rejected batch contributes no items.
	assert.Equal(t, int64(1), metrics.BatchAddCount.Load())
	assert.Equal(t, int64(1), metrics.BatchAddErrors.Load())
	assert.Equal(t, int64(0), metrics.BatchAddItems.Load())
}

func TestBasicMetricsCollectorAverages(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	assert.Zero(t, metrics.AverageAddLatency())
	assert.Zero(t, metrics.AverageSearchLatency())

	ks, err := NewKeyspace("m", 1, WithMetrics(metrics))
	require.NoError(t, err)
	require.NoError(t, ks.AddVector(VectorFromSlice([]float64{1})))

	assert.GreaterOrEqual(t, metrics.AverageAddLatency().Nanoseconds(), int64(0))
}
