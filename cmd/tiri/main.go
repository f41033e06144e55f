// Command tiri is the demo/inspection CLI for the tiling core: `tiri demo`
// runs the interactive terminal visualizer, `tiri snapshot` runs a
// scripted scenario and prints the resulting GET_TREE-style JSON snapshot
// (SPEC_FULL.md §1.1). Wiring cobra here matches the CLI tooling used
// elsewhere in the retrieved corpus (cogentcore-core, bnema-dumber).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
