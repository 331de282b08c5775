package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecstore"
)

func TestRunDemo(t *testing.T) {
	cfg := DemoConfig{Dimension: 3, Vectors: 5, Threshold: 0.5, Seed: 42}

	var out bytes.Buffer
	require.NoError(t, runDemo(cfg, &out, vecstore.NoopLogger()))

	assert.Contains(t, out.String(), "Nearest neighbor index:")
	assert.Contains(t, out.String(), `Removed 1 keyspace(s) named "demo_keyspace"`)
	assert.Contains(t, out.String(), "keyspace not found")
}

func TestRunBench(t *testing.T) {
	cfg := BenchConfig{
		Vectors:   64,
		Dimension: 4,
		Keyspaces: 2,
		Searches:  3,
		Writers:   2,
		Seed:      42,
	}

	var out bytes.Buffer
	require.NoError(t, runBench(cfg, &out, vecstore.NoopLogger()))
	assert.Contains(t, out.String(), "Concurrent insert: 64 vectors with 2 writers")
}

func TestSeedVisualizerStore(t *testing.T) {
	t.Run("2D", func(t *testing.T) {
		store, err := seedVisualizerStore(2, 8, 5, 1)
		require.NoError(t, err)

		ks, err := store.Keyspace("points")
		require.NoError(t, err)
		assert.Equal(t, 13, ks.Size())
		assert.Equal(t, 2, ks.Dimension())
	})

	t.Run("3D", func(t *testing.T) {
		store, err := seedVisualizerStore(3, 20, 0, 1)
		require.NoError(t, err)

		ks, err := store.Keyspace("points")
		require.NoError(t, err)
		assert.Equal(t, 20, ks.Size())
		assert.Equal(t, 3, ks.Dimension())
	})
}

// Flag overrides land after the config file is loaded, so the merged
// values must be re-validated: zero writers or searches would otherwise
// divide by zero inside runBench.
func TestBenchCommandRejectsZeroFlags(t *testing.T) {
	for name, args := range map[string][]string{
		"ZeroWriters":  {"bench", "-n", "8", "-d", "2", "-k", "1", "-w", "0"},
		"ZeroSearches": {"bench", "-n", "8", "-d", "2", "-k", "1", "-s", "0"},
	} {
		t.Run(name, func(t *testing.T) {
			cmd := NewRootCommand("test")
			cmd.SetArgs(args)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			require.NotPanics(t, func() {
				assert.Error(t, cmd.Execute())
			})
		})
	}
}

func TestDemoCommandRejectsZeroFlags(t *testing.T) {
	cmd := NewRootCommand("test")
	cmd.SetArgs([]string{"demo", "-n", "0"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.Error(t, cmd.Execute())
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand("test")
	require.NotNil(t, cmd)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"demo", "bench", "visualize", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
