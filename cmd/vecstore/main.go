package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/vecstore/internal/cli"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
