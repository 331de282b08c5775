package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecstore"
	"github.com/hupe1980/vecstore/testutil"
)

func newDemoCommand() *cobra.Command {
	var (
		dimension int
		vectors   int
		threshold float64
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the end-to-end keyspace walkthrough",
		Long: `Creates a store with one keyspace, batch-adds random vectors, runs a
nearest-neighbor and a threshold search, then removes the keyspace and
shows the lookup failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dimension") {
				cfg.Demo.Dimension = dimension
			}
			if cmd.Flags().Changed("vectors") {
				cfg.Demo.Vectors = vectors
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Demo.Threshold = threshold
			}
			if cmd.Flags().Changed("seed") {
				cfg.Demo.Seed = seed
			}

			if err := cfg.validate(); err != nil {
				return err
			}

			return runDemo(cfg.Demo, cmd.OutOrStdout(), newLogger())
		},
	}

	cmd.Flags().IntVarP(&dimension, "dimension", "d", 3, "vector dimension")
	cmd.Flags().IntVarP(&vectors, "vectors", "n", 5, "number of random vectors")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.5, "similarity threshold")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func runDemo(cfg DemoConfig, out io.Writer, logger *vecstore.Logger) error {
	rng := testutil.NewRNG(cfg.Seed)

	store := vecstore.New("demo_store", vecstore.WithLogger(logger))

	ks, err := store.CreateKeyspace(cfg.Dimension, "demo_keyspace")
	if err != nil {
		return err
	}

	batch := rng.UniformRangeVectors(cfg.Vectors, cfg.Dimension, -1, 1)
	if err := ks.BatchAddVectors(batch); err != nil {
		return err
	}

	query := rng.UniformRangeVector(cfg.Dimension, -1, 1)

	nearest, err := ks.NearestNeighbor(query)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Nearest neighbor index: %d\n", nearest)

	neighbors, err := ks.NeighborsAboveThreshold(query, cfg.Threshold)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Found %d neighbors above threshold %.2f\n", len(neighbors), cfg.Threshold)
	for _, n := range neighbors {
		fmt.Fprintf(out, "  index=%d similarity=%.4f\n", n.Index, n.Similarity)
	}

	removed := store.RemoveKeyspace("demo_keyspace")
	fmt.Fprintf(out, "Removed %d keyspace(s) named %q\n", removed, "demo_keyspace")

	if _, err := store.Keyspace("demo_keyspace"); errors.Is(err, vecstore.ErrNotFound) {
		fmt.Fprintln(out, "Lookup after removal failed as expected: keyspace not found")
	} else if err != nil {
		return err
	}

	return nil
}
