// Package main provides the CLI entrypoint for cin-generator.
//
// cin-generator turns ChhoeTaigi dictionary CSV exports into a .cin
// input-method table:
//   - Loads every dictionary source and derives typeable keys per row
//   - Merges the per-source maps key by key
//   - Writes the sorted table with its %keyname/%chardef framing
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
