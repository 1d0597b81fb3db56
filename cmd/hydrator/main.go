// Package main provides the hydrator CLI.
//
// hydrator checks binding files and applies them to YAML mappings:
//   - check validates a binding file and prints its diagnostics
//   - apply extracts or hydrates a YAML mapping through one binding
//   - version prints build information
package main

import (
	"fmt"
	"os"
)

var (
	// Version information, set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
