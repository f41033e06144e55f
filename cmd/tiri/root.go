package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the tiri command tree, grounded on the corpus's own
// cobra root-command shape (bnema-dumber's internal/cli/root.go:
// NewRootCmd returning a *cobra.Command with subcommands attached via
// AddCommand, a persistent --config flag instead of a positional arg).
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "tiri",
		Short: "Tiri tiling layout engine demo CLI",
		Long:  "tiri exercises the tiling core's Tree, Navigator, and Arranger outside of a real Wayland compositor.",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a tiling Options TOML file (defaults built in if omitted)")

	root.AddCommand(newDemoCmd(&configPath))
	root.AddCommand(newSnapshotCmd(&configPath))
	return root
}
