package tiling

import "github.com/tiri-wm/tiri/geom"

// Arrange recomputes the rectangle assigned to every Tile and Container
// in t, starting from t.WorkingArea (spec §4.4). It is a stateless
// recursive computation: calling it twice with the same tree and working
// area produces the same result. Callers should call it once per batch of
// mutations, per the single dirty-flag rule in spec §5.
func Arrange(t *Tree) {
	if t.Root != nil {
		arrangeNode(t, t.Root, t.WorkingArea)
	}
	t.Dirty = false
}

func arrangeNode(t *Tree, n *Node, rect geom.Rect) {
	if n.Tile != nil {
		tile := n.Tile
		if tile.Fullscreen {
			// Fullscreen tiles bypass Arranger output entirely and receive
			// the workspace's full rectangle (spec §4.4, §4.5).
			tile.requestSize(t.WorkingArea, true)
			return
		}
		tile.requestSize(rect, false)
		return
	}

	c := n.Container
	switch c.Layout {
	case SplitH:
		c.Rect = rect
		arrangeSplit(t, c, rect, true)
	case SplitV:
		c.Rect = rect
		arrangeSplit(t, c, rect, false)
	case Tabbed:
		arrangeOverlaid(t, c, rect, t.Options.TabBarHeight)
	case Stacked:
		arrangeOverlaid(t, c, rect, t.Options.TitleStripHeight*len(c.Children))
	}
}

// arrangeSplit implements spec §4.4's SplitH/SplitV rule: widths (or
// heights) proportional to each child's fraction, all-but-last child
// floored and the last taking the remainder so the sum is exact, with the
// inner gap subtracted from the distributable span before allocation and
// reinserted between children.
func arrangeSplit(t *Tree, c *Container, rect geom.Rect, horizontal bool) {
	n := len(c.Children)
	if n == 0 {
		return
	}
	gap := t.Options.InnerGap

	if horizontal {
		distributable := rect.W - gap*(n-1)
		if distributable < 0 {
			distributable = 0
		}
		spans := geom.SplitFractions(distributable, c.Fractions)
		x := rect.X
		for i, child := range c.Children {
			childRect := geom.Rect{X: x, Y: rect.Y, W: spans[i], H: rect.H}
			arrangeNode(t, child, childRect)
			x += spans[i] + gap
		}
		return
	}

	distributable := rect.H - gap*(n-1)
	if distributable < 0 {
		distributable = 0
	}
	spans := geom.SplitFractions(distributable, c.Fractions)
	y := rect.Y
	for i, child := range c.Children {
		childRect := geom.Rect{X: rect.X, Y: y, W: rect.W, H: spans[i]}
		arrangeNode(t, child, childRect)
		y += spans[i] + gap
	}
}

// arrangeOverlaid implements spec §4.4's Tabbed/Stacked rule: every child
// receives the same content rectangle (parent rect minus a reserved
// region of the given height at the top), regardless of which child is
// focused, so a focus change never needs a reconfigure round-trip.
//
// Per SPEC_FULL.md §9's resolution of the tab-indicator-geometry open
// question: with TabIndicatorOutside the reserved region is subtracted
// from the Container's own cached Rect (what a hit-test or decoration
// layer sees is just the content area); with TabIndicatorWithinColumn the
// cached Rect is the full incoming rect and only the children's rect
// shrinks.
func arrangeOverlaid(t *Tree, c *Container, rect geom.Rect, reserved int) {
	content := rect
	content.Y += reserved
	content.H -= reserved
	if content.H < 0 {
		content.H = 0
	}

	if t.Options.TabIndicatorPlacement == TabIndicatorWithinColumn {
		c.Rect = rect
	} else {
		c.Rect = content
	}

	for _, child := range c.Children {
		arrangeNode(t, child, content)
	}
}
