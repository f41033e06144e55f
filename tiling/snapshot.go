package tiling

import "github.com/tiri-wm/tiri/geom"

// NodeKind distinguishes a Snapshot node's underlying type.
type NodeKind string

const (
	KindTile      NodeKind = "tile"
	KindContainer NodeKind = "container"
)

// NodeSnapshot is one node of a Snapshot tree (SPEC_FULL.md §3.1). Its
// shape mirrors the real niri IPC JSON — a stable integer ID, optional
// fields for whichever kind the node is — rather than inventing an ad hoc
// shape: window ids and container ids are both spelled as uint64 and
// tagged with `json` struct tags so cmd/tiri's `snapshot` subcommand can
// marshal it directly with encoding/json.
type NodeSnapshot struct {
	Kind       NodeKind       `json:"kind"`
	Rect       geom.Rect      `json:"rect"`
	Layout     LayoutMode     `json:"layout,omitempty"`
	ContainerID uint64        `json:"container_id,omitempty"`
	WindowID   *WindowID      `json:"window_id,omitempty"`
	Fullscreen bool           `json:"fullscreen,omitempty"`
	Children   []NodeSnapshot `json:"children,omitempty"`
}

// Snapshot is the GET_TREE-style inspection result (spec §6): the whole
// tree structure plus the focus path at the moment of the call.
type Snapshot struct {
	Root      *NodeSnapshot `json:"root,omitempty"`
	FocusPath []int         `json:"focus_path"`
}

// Snapshot produces a structurally stable snapshot of t: every Container
// reports the same ContainerID across calls regardless of reordering
// elsewhere in the tree (SPEC_FULL.md §3.1), so an external consumer (IPC,
// renderer) can track reorders.
func (t *Tree) Snapshot() Snapshot {
	var root *NodeSnapshot
	if t.Root != nil {
		n := snapshotNode(t.Root)
		root = &n
	}
	return Snapshot{Root: root, FocusPath: append([]int(nil), t.FocusPath...)}
}

func snapshotNode(n *Node) NodeSnapshot {
	if n.Tile != nil {
		w := n.Tile.Window
		return NodeSnapshot{
			Kind:       KindTile,
			Rect:       n.Tile.Rect,
			WindowID:   &w,
			Fullscreen: n.Tile.Fullscreen,
		}
	}
	c := n.Container
	children := make([]NodeSnapshot, len(c.Children))
	for i, child := range c.Children {
		children[i] = snapshotNode(child)
	}
	return NodeSnapshot{
		Kind:        KindContainer,
		Rect:        c.Rect,
		Layout:      c.Layout,
		ContainerID: c.id,
		Children:    children,
	}
}

// IterateTiles calls f for every Tile in the tree along with its layout
// mode ancestry (innermost last), for the Inspection API's "iterate all
// Tiles with their assigned rectangles and layout-mode ancestry" (spec
// §6).
func (t *Tree) IterateTiles(f func(tile *Tile, ancestry []LayoutMode)) {
	var walk func(n *Node, ancestry []LayoutMode)
	walk = func(n *Node, ancestry []LayoutMode) {
		if n == nil {
			return
		}
		if n.Tile != nil {
			f(n.Tile, ancestry)
			return
		}
		next := append(append([]LayoutMode(nil), ancestry...), n.Container.Layout)
		for _, child := range n.Container.Children {
			walk(child, next)
		}
	}
	walk(t.Root, nil)
}
