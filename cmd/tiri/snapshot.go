package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiri-wm/tiri/geom"
	"github.com/tiri-wm/tiri/tiling"
	"github.com/tiri-wm/tiri/workspace"
)

// newSnapshotCmd builds `tiri snapshot`: run a small scripted scenario
// over a headless Workspace and print the resulting GET_TREE-style JSON
// (tiling.Snapshot), so the inspection API (spec.md §6) can be exercised
// and eyeballed without a terminal session.
func newSnapshotCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Run a scripted scenario and print the resulting tree snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(*configPath)
			if err != nil {
				return err
			}

			ws := workspace.New(opts, geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}, nil, nil)
			runScenario(ws)

			out, err := json.MarshalIndent(ws.Tree.Snapshot(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal snapshot: %w", err)
			}
			cmd.Println(string(out))
			return nil
		},
	}
}

// runScenario inserts three windows, splits the second one vertically,
// and moves focus back to the first — enough tree shape to exercise
// containers, a split, and a non-trivial focus path in the printed
// snapshot.
func runScenario(ws *workspace.Workspace) {
	var next tiling.WindowID
	insert := func() {
		next++
		ws.Insert(next, nil, workspace.WindowMeta{}, tiling.InsertPolicy{})
	}

	insert()
	insert()
	ws.Split(tiling.SplitV)
	insert()
	ws.FocusDirection(tiling.Left)
}
