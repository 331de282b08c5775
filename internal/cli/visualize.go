package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecstore"
	"github.com/hupe1980/vecstore/internal/ui"
	"github.com/hupe1980/vecstore/testutil"
)

func newVisualizeCommand() *cobra.Command {
	var (
		dimension int
		points    int
		jitter    int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Render a keyspace as a terminal scatter plot",
		Long: `Seeds a keyspace with points on a circle (2D) or sphere (3D) plus a few
random jitter points, then opens the interactive visualizer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dimension != 2 && dimension != 3 {
				return fmt.Errorf("dimension must be 2 or 3, got %d", dimension)
			}

			store, err := seedVisualizerStore(dimension, points, jitter, seed)
			if err != nil {
				return err
			}

			return ui.Run(store, "points")
		},
	}

	cmd.Flags().IntVarP(&dimension, "dimension", "d", 2, "keyspace dimension (2 or 3)")
	cmd.Flags().IntVarP(&points, "points", "n", 8, "points on the circle/sphere")
	cmd.Flags().IntVarP(&jitter, "jitter", "j", 5, "additional random points")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func seedVisualizerStore(dimension, points, jitter int, seed int64) (*vecstore.VectorStore, error) {
	store := vecstore.New("visualizer_store")

	ks, err := store.CreateKeyspace(dimension, "points")
	if err != nil {
		return nil, err
	}

	const radius = 2.0
	var shape []vecstore.Vector
	if dimension == 2 {
		shape = testutil.CircleVectors(points, radius)
	} else {
		shape = testutil.SphereVectors(points, radius)
	}
	if err := ks.BatchAddVectors(shape); err != nil {
		return nil, err
	}

	rng := testutil.NewRNG(seed)
	if err := ks.BatchAddVectors(rng.UniformRangeVectors(jitter, dimension, -1, 1)); err != nil {
		return nil, err
	}

	return store, nil
}
