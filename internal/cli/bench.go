package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecstore"
	"github.com/hupe1980/vecstore/testutil"
)

func newBenchCommand() *cobra.Command {
	var (
		vectors   int
		dimension int
		keyspaces int
		searches  int
		writers   int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure insert and search throughput",
		Long: `Inserts random vectors across several keyspaces, sequentially and with
concurrent writers, then times nearest-neighbor and threshold searches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("vectors") {
				cfg.Bench.Vectors = vectors
			}
			if cmd.Flags().Changed("dimension") {
				cfg.Bench.Dimension = dimension
			}
			if cmd.Flags().Changed("keyspaces") {
				cfg.Bench.Keyspaces = keyspaces
			}
			if cmd.Flags().Changed("searches") {
				cfg.Bench.Searches = searches
			}
			if cmd.Flags().Changed("writers") {
				cfg.Bench.Writers = writers
			}
			if cmd.Flags().Changed("seed") {
				cfg.Bench.Seed = seed
			}

			// Flag overrides bypass LoadConfig, so the merged
			// config is validated again here.
			if err := cfg.validate(); err != nil {
				return err
			}

			return runBench(cfg.Bench, cmd.OutOrStdout(), newLogger())
		},
	}

	cmd.Flags().IntVarP(&vectors, "vectors", "n", 10000, "number of vectors to insert")
	cmd.Flags().IntVarP(&dimension, "dimension", "d", 128, "vector dimension")
	cmd.Flags().IntVarP(&keyspaces, "keyspaces", "k", 4, "number of keyspaces")
	cmd.Flags().IntVarP(&searches, "searches", "s", 100, "number of timed searches")
	cmd.Flags().IntVarP(&writers, "writers", "w", 4, "concurrent writers")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func runBench(cfg BenchConfig, out io.Writer, logger *vecstore.Logger) error {
	fmt.Fprintf(out, "Benchmark: %d vectors of dimension %d across %d keyspaces\n",
		cfg.Vectors, cfg.Dimension, cfg.Keyspaces)

	rng := testutil.NewRNG(cfg.Seed)
	metrics := &vecstore.BasicMetricsCollector{}

	start := time.Now()
	store := vecstore.New("benchmark_store",
		vecstore.WithLogger(logger),
		vecstore.WithMetrics(metrics),
	)
	fmt.Fprintf(out, "Store creation: %v\n", time.Since(start))

	spaces := make([]*vecstore.Keyspace, cfg.Keyspaces)
	for i := range spaces {
		ks, err := store.CreateKeyspace(cfg.Dimension, fmt.Sprintf("keyspace_%d", i))
		if err != nil {
			return err
		}
		spaces[i] = ks
	}

	vectors := rng.UniformRangeVectors(cfg.Vectors, cfg.Dimension, -1, 1)

	// Sequential inserts, round-robin over the keyspaces.
	start = time.Now()
	for i, vec := range vectors {
		if err := spaces[i%len(spaces)].AddVector(vec); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	fmt.Fprintf(out, "Sequential insert: %d vectors in %v (%.0f vec/s)\n",
		cfg.Vectors, elapsed, float64(cfg.Vectors)/elapsed.Seconds())

	// Concurrent inserts into one fresh keyspace.
	concurrent, err := store.CreateKeyspace(cfg.Dimension, "keyspace_concurrent")
	if err != nil {
		return err
	}

	perWriter := cfg.Vectors / cfg.Writers
	start = time.Now()
	var g errgroup.Group
	for w := 0; w < cfg.Writers; w++ {
		chunk := vectors[w*perWriter : (w+1)*perWriter]
		g.Go(func() error {
			return concurrent.BatchAddVectors(chunk)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed = time.Since(start)
	inserted := perWriter * cfg.Writers
	fmt.Fprintf(out, "Concurrent insert: %d vectors with %d writers in %v (%.0f vec/s)\n",
		inserted, cfg.Writers, elapsed, float64(inserted)/elapsed.Seconds())

	// Timed searches against the first keyspace.
	start = time.Now()
	for i := 0; i < cfg.Searches; i++ {
		query := rng.UniformRangeVector(cfg.Dimension, -1, 1)
		if _, err := spaces[0].NearestNeighbor(query); err != nil {
			return err
		}
		if _, err := spaces[0].NeighborsAboveThreshold(query, 0.5); err != nil {
			return err
		}
	}
	elapsed = time.Since(start)
	fmt.Fprintf(out, "Search: %d nearest+threshold pairs in %v (%v per pair)\n",
		cfg.Searches, elapsed, elapsed/time.Duration(cfg.Searches))

	fmt.Fprintf(out, "Collector averages: add=%v search=%v\n",
		metrics.AverageAddLatency(), metrics.AverageSearchLatency())

	return nil
}
