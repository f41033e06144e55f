package tiling

import "errors"

// Sentinel outcomes returned by the Mutation API. All are recoverable; the
// core never treats them as fatal (spec §7). Callers compare with
// errors.Is, matching the teacher's control_bus.go error style rather than
// a custom wrapping framework.
var (
	// ErrNotFound means a window identity is not present in the tree.
	ErrNotFound = errors.New("tiling: window not found")

	// ErrNoTargetInDirection means directional navigation walked up to the
	// root without finding a compatible ancestor.
	ErrNoTargetInDirection = errors.New("tiling: no target in direction")

	// ErrAlreadyAtRoot means focus_parent was invoked when focus depth is
	// already at the root's level.
	ErrAlreadyAtRoot = errors.New("tiling: already at root")

	// ErrInvalidPolicy means an insertion policy referenced a non-existent
	// anchor (e.g. "into focused container" when the focused Tile has no
	// parent Container).
	ErrInvalidPolicy = errors.New("tiling: invalid insertion policy")

	// ErrEmptyTree means the operation requires a non-empty tree.
	ErrEmptyTree = errors.New("tiling: tree is empty")
)

// InvariantViolation is panicked when a public operation discovers that an
// invariant from spec §3 no longer holds. This can only happen because of
// a bug, never because of caller input — see spec §7. It carries a
// snapshot of the tree at the moment of failure so the panic message (or a
// recovering caller, such as workspace.Workspace) can log useful context.
type InvariantViolation struct {
	Reason   string
	Snapshot Snapshot
}

func (v InvariantViolation) Error() string {
	return "tiling: invariant violated: " + v.Reason
}

func panicInvariant(t *Tree, reason string) {
	panic(InvariantViolation{Reason: reason, Snapshot: t.Snapshot()})
}
