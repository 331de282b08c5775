// Package cli wires the vecstore demo, benchmark, and visualizer
// commands. Everything here talks to the core through its public API
// only.
package cli

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecstore"
)

var (
	cfgFile string
	verbose bool
	jsonLog bool
)

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vecstore",
		Short: "In-memory vector store with linear nearest-neighbor search",
		Long: `vecstore is an in-memory vector container organized into named keyspaces.

It supports exact brute-force nearest-neighbor and similarity-threshold
search over fixed-dimension float64 vectors, and ships a terminal
visualizer for inspecting 2D and 3D keyspaces.`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "emit logs as JSON")

	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newBenchCommand())
	rootCmd.AddCommand(newVisualizeCommand())
	rootCmd.AddCommand(newVersionCommand(version))

	return rootCmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "dev"
			}
			fmt.Printf("vecstore %s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// newLogger builds the logger shared by all commands from the global flags.
func newLogger() *vecstore.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if jsonLog {
		return vecstore.NewJSONLogger(level)
	}
	return vecstore.NewTextLogger(level)
}

// loadConfig returns the defaults, overlaid with the --config file when
// one is given.
func loadConfig() (*Config, error) {
	if cfgFile == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(cfgFile)
}
