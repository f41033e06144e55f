package tiling

import "github.com/tiri-wm/tiri/geom"

// LayoutMode is the arrangement strategy a Container applies to its
// children (spec §3).
type LayoutMode int

const (
	SplitH LayoutMode = iota
	SplitV
	Tabbed
	Stacked
)

func (m LayoutMode) String() string {
	switch m {
	case SplitH:
		return "split_h"
	case SplitV:
		return "split_v"
	case Tabbed:
		return "tabbed"
	case Stacked:
		return "stacked"
	default:
		return "unknown"
	}
}

// axis identifies which dimension a layout mode divides along. Tabbed and
// Stacked don't divide space at all, but for the purposes of directional
// navigation compatibility (spec §4.2: "SplitH and Tabbed are compatible
// with Left/Right; SplitV and Stacked are compatible with Up/Down") they
// behave as if they did.
type axis int

const (
	axisHorizontal axis = iota // Left/Right
	axisVertical                // Up/Down
)

func (m LayoutMode) axis() axis {
	switch m {
	case SplitH, Tabbed:
		return axisHorizontal
	default:
		return axisVertical
	}
}

// Node is the tagged-variant {Container | Leaf} the Design Notes (spec
// §9) call for: "a tagged-variant Node (Container | Leaf)". Exactly one
// of Tile or Container is non-nil. There is deliberately no parent
// pointer — ownership flows one way, root to leaf, and ancestor lookup is
// done positionally through the Tree's focus path or an explicit path
// argument, never via a back-link (spec §9: "parent being a positional
// focus path plus index-based sibling access, not a back-pointer").
type Node struct {
	Tile      *Tile
	Container *Container
}

func leafNode(t *Tile) *Node { return &Node{Tile: t} }

func containerNode(c *Container) *Node { return &Node{Container: c} }

// IsLeaf reports whether n wraps a Tile.
func (n *Node) IsLeaf() bool { return n.Tile != nil }

// Container is an internal node (spec §3): a layout mode, an ordered list
// of children, one size fraction per child, and the index of the child
// currently on the focus path (meaningful only while this Container lies
// on the focus path; otherwise it is the most-recently-focused child,
// used for "focus-inactive descent", spec §4.2).
type Container struct {
	id           uint64
	Layout       LayoutMode
	Children     []*Node
	Fractions    []float64
	FocusedChild int
	Rect         geom.Rect
}

// ID is a stable identity taken from a per-Tree counter once when the
// Container is created and never reused or derived from position
// (SPEC_FULL.md §3.1), so Inspection API consumers can track a Container
// across a reorder.
func (c *Container) ID() uint64 { return c.id }

// rescaleForInsert implements spec §4.1's fraction rule for Insert: each
// existing fraction is multiplied by n/(n+1) and the new child receives
// 1/(n+1), where n is the number of siblings before insertion.
func rescaleForInsert(fractions []float64) (scaled []float64, newFraction float64) {
	n := len(fractions)
	scaled = make([]float64, n)
	factor := float64(n) / float64(n+1)
	for i, f := range fractions {
		scaled[i] = f * factor
	}
	return scaled, 1.0 / float64(n+1)
}

// renormalize divides every fraction by the current sum so the result
// sums to exactly 1, the rule spec §4.1's Remove operation and §8's
// invariant both require.
func renormalize(fractions []float64) {
	sum := 0.0
	for _, f := range fractions {
		sum += f
	}
	if sum <= 0 {
		equal := 1.0 / float64(len(fractions))
		for i := range fractions {
			fractions[i] = equal
		}
		return
	}
	for i := range fractions {
		fractions[i] /= sum
	}
}
