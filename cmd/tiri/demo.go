package main

import (
	"github.com/spf13/cobra"

	"github.com/tiri-wm/tiri/render"
	"github.com/tiri-wm/tiri/tiling"
)

// newDemoCmd builds `tiri demo`: an interactive terminal session over a
// single in-memory workspace, driven by render.App. If --config names a
// file, it is watched for edits; each edit triggers a full re-arrange via
// Workspace.SetOptions. The watcher itself runs on its own goroutine, so
// it is only ever started from inside App.Run (through StartWatch) and
// hands updates back through App.QueueOptions rather than touching the
// Workspace directly — the tree has no lock and is single-threaded by
// contract (spec §5).
func newDemoCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive tiling-core terminal visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(*configPath)
			if err != nil {
				return err
			}

			app := render.NewApp(opts)
			app.StartWatch = func(onChange func(*tiling.Options)) (func(), error) {
				return watchOptions(*configPath, onChange)
			}

			return app.Run()
		},
	}
}
