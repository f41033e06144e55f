// Package render is the terminal visualizer that stands in for "the
// renderer" spec.md treats as an external collaborator (spec.md §2's data
// flow ends with "on next frame, renderer reads Tile geometries"). It
// exists only so this repo exercises tiling.Tree end to end; SPEC_FULL.md
// §1.1 is explicit that this is ambient presentation plumbing, not part of
// the tiling core budget. The event loop shape is grounded on the
// teacher's standalone/runner.go (PollEvent switch, screen.Clear/Show
// around a single draw pass); the cell-by-cell write loop mirrors
// runner.go's own `screen.SetContent(x, y, cell.Ch, nil, cell.Style)`.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tiri-wm/tiri/geom"
	"github.com/tiri-wm/tiri/style"
	"github.com/tiri-wm/tiri/tiling"
)

// Draw paints tree onto the whole screen (the background fills every cell
// of screen.Size()), using theme for border and tab-strip colors. It only reads Tile/Container geometry
// (spec §6's inspection API contract: "iterate all Tiles with their
// assigned rectangles and layout-mode ancestry") — it never mutates tree.
func Draw(screen tcell.Screen, tree *tiling.Tree, theme style.Theme) {
	screenW, screenH := screen.Size()
	background(screen, screenW, screenH, theme.Color("bg.base"))

	if tree.Root == nil {
		drawCentered(screen, screenW, screenH, "(empty workspace)", theme.Color("text.muted"))
		return
	}

	drawNode(screen, tree.Root, tree.FocusPath, true, theme)
}

func background(screen tcell.Screen, w, h int, bg tcell.Color) {
	sty := tcell.StyleDefault.Background(bg)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, y, ' ', nil, sty)
		}
	}
}

func drawCentered(screen tcell.Screen, w, h int, text string, fg tcell.Color) {
	x := (w - len(text)) / 2
	y := h / 2
	drawText(screen, x, y, text, tcell.StyleDefault.Foreground(fg))
}

// drawNode recurses depth-first over the node tree, rendering a border for
// every SplitH/SplitV Container, the indicator strip (and only the focused
// child) for every Tabbed/Stacked Container, and a border plus the window
// identity for every Tile.
// focusPath is the remaining suffix of the tree's focus path at this
// node's depth; onPath reports whether this node itself descends from the
// root purely along focused-child indices (distinct from len(focusPath)
// == 0, which only tells us the path ran out — true both for "this is the
// focused leaf" and for "this subtree was never on the path to begin
// with").
func drawNode(screen tcell.Screen, n *tiling.Node, focusPath []int, onPath bool, theme style.Theme) {
	if n.Tile != nil {
		drawTile(screen, n.Tile, onPath, theme)
		return
	}

	c := n.Container
	switch c.Layout {
	case tiling.Tabbed, tiling.Stacked:
		drawIndicatorStrip(screen, c, theme)
	default:
		drawBorder(screen, c.Rect, onPath, theme)
	}

	for i, child := range c.Children {
		if c.Layout == tiling.Tabbed || c.Layout == tiling.Stacked {
			// Non-focused-path children of an overlaid container still get
			// drawn only if they are the visible (focused) child — spec
			// §4.4: "Only the focused child is visible."
			if i != c.FocusedChild {
				continue
			}
		}
		childOnPath := onPath && len(focusPath) > 0 && focusPath[0] == i
		var childRemaining []int
		if childOnPath {
			childRemaining = focusPath[1:]
		}
		drawNode(screen, child, childRemaining, childOnPath, theme)
	}
}

func drawBorder(screen tcell.Screen, rect geom.Rect, focused bool, theme style.Theme) {
	if rect.Empty() {
		return
	}
	color := theme.Color("border.inactive")
	if focused {
		color = theme.Color("border.active")
	}
	sty := tcell.StyleDefault.Foreground(color)

	x0, y0, x1, y1 := rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1
	for x := x0; x <= x1; x++ {
		screen.SetContent(x, y0, tcell.RuneHLine, nil, sty)
		screen.SetContent(x, y1, tcell.RuneHLine, nil, sty)
	}
	for y := y0; y <= y1; y++ {
		screen.SetContent(x0, y, tcell.RuneVLine, nil, sty)
		screen.SetContent(x1, y, tcell.RuneVLine, nil, sty)
	}
	screen.SetContent(x0, y0, tcell.RuneULCorner, nil, sty)
	screen.SetContent(x1, y0, tcell.RuneURCorner, nil, sty)
	screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, sty)
	screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, sty)
}

// drawIndicatorStrip renders the Tabbed/Stacked reserved region: one cell
// per child, highlighting the focused one, using the container's own
// cached Rect (spec §4.4's reserved-region rule; SPEC_FULL.md's
// tab-indicator-placement resolution decides whether that Rect already
// excludes the content area).
func drawIndicatorStrip(screen tcell.Screen, c *tiling.Container, theme style.Theme) {
	if c.Rect.Empty() || len(c.Children) == 0 {
		return
	}
	width := c.Rect.W / len(c.Children)
	if width < 1 {
		width = 1
	}
	for i := range c.Children {
		bg := theme.Color("tab.inactive_bg")
		fg := theme.Color("tab.inactive_fg")
		if i == c.FocusedChild {
			bg = theme.Color("tab.active_bg")
			fg = theme.Color("tab.active_fg")
		}
		sty := tcell.StyleDefault.Background(bg).Foreground(fg)
		x := c.Rect.X + i*width
		label := fmt.Sprintf(" %d ", i+1)
		for dx := 0; dx < width; dx++ {
			ch := ' '
			if dx < len(label) {
				ch = rune(label[dx])
			}
			screen.SetContent(x+dx, c.Rect.Y, ch, nil, sty)
		}
	}
}

func drawTile(screen tcell.Screen, tile *tiling.Tile, focused bool, theme style.Theme) {
	drawBorder(screen, tile.Rect, focused, theme)
	if tile.Rect.W <= 2 || tile.Rect.H <= 1 {
		return
	}
	label := fmt.Sprintf("window %d", tile.Window)
	if tile.Fullscreen {
		label += " (fullscreen)"
	}
	fg := theme.Color("text.primary")
	x := tile.Rect.X + 1
	y := tile.Rect.Y + tile.Rect.H/2
	drawText(screen, x, y, truncate(label, tile.Rect.W-2), tcell.StyleDefault.Foreground(fg))
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func drawText(screen tcell.Screen, x, y int, text string, sty tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, sty)
	}
}
