// Package workspace is the boundary layer between the tiling core and the
// rest of the compositor. A Workspace owns exactly one tiling.Tree plus a
// floating-layer stub, and exposes the hook points the core's Non-goals
// name (spec.md §1: "persistence of the tree across restarts;
// implementing window rules ... the core exposes hooks for these but does
// not own them").
package workspace

import "github.com/tiri-wm/tiri/tiling"

// WindowMeta is the minimal window metadata a RuleHook needs to decide an
// insertion site. It is intentionally small: criteria matching itself
// (app-id globs, title regexes, and so on) is a Non-goal of this repo,
// same as the core's.
type WindowMeta struct {
	AppID string
	Title string
}

// RuleHook lets an external window-rule engine influence where a newly
// mapped window lands, without the workspace package ever implementing
// rule matching itself (spec.md §1 Non-goals). Adapted from the teacher's
// ControlBus register/call pattern (core/control_bus.go), collapsed to
// the single call site this hook needs instead of a generic dispatch
// table.
type RuleHook interface {
	// Apply is consulted before Insert. ok is false to fall through to
	// the workspace's own default policy.
	Apply(window tiling.WindowID, meta WindowMeta) (policy tiling.InsertPolicy, ok bool)
}

// noRuleHook is the default RuleHook: it never overrides the caller's
// policy.
type noRuleHook struct{}

func (noRuleHook) Apply(tiling.WindowID, WindowMeta) (tiling.InsertPolicy, bool) {
	return tiling.InsertPolicy{}, false
}

// PersistenceHook lets an external store save and restore a workspace's
// tree shape across restarts — a Non-goal the core itself never
// implements (spec.md §1). The persistence package in this repo provides
// a JSON-file-backed implementation; workspace only depends on the
// interface.
type PersistenceHook interface {
	Save(snapshot tiling.Snapshot) error
	Load() (snapshot tiling.Snapshot, ok bool, err error)
}

// noPersistence is the default PersistenceHook: Load always reports
// nothing saved, Save is a no-op.
type noPersistence struct{}

func (noPersistence) Save(tiling.Snapshot) error { return nil }

func (noPersistence) Load() (tiling.Snapshot, bool, error) { return tiling.Snapshot{}, false, nil }
