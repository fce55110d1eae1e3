// Command tetralife-run runs, inspects and seeds tetrahedral Game of Life
// universes without a window.
package main

import (
	"fmt"
	"os"

	"tetralife/internal/config"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
