package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/tiri-wm/tiri/geom"
	"github.com/tiri-wm/tiri/style"
	"github.com/tiri-wm/tiri/tiling"
)

// newSimScreen builds a tcell.SimulationScreen sized w x h, tcell's own
// headless backend, so Draw can be exercised without a real terminal.
func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newDemoTree(t *testing.T) *tiling.Tree {
	t.Helper()
	tree := tiling.NewTree(tiling.DefaultOptions())
	tree.SetWorkingArea(geom.Rect{X: 0, Y: 0, W: 40, H: 20})
	if err := tree.Insert(1, nil, tiling.InsertPolicy{}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tree.Insert(2, nil, tiling.InsertPolicy{}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	tiling.Arrange(tree)
	return tree
}

func TestDrawEmptyTreeShowsPlaceholder(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	tree := tiling.NewTree(tiling.DefaultOptions())
	tree.SetWorkingArea(geom.Rect{X: 0, Y: 0, W: 40, H: 20})

	Draw(screen, tree, style.DefaultTheme())

	cells, w, _ := screen.GetContents()
	found := false
	for _, cell := range cells {
		if len(cell.Runes) > 0 && cell.Runes[0] == '(' {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected the empty-workspace placeholder somewhere in a %d-wide screen", w)
	}
}

func TestDrawNonEmptyTreeLeavesNoPanicAndPaintsBorder(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	tree := newDemoTree(t)

	Draw(screen, tree, style.DefaultTheme())

	cells, _, _ := screen.GetContents()
	sawVertical := false
	for _, cell := range cells {
		if len(cell.Runes) > 0 && cell.Runes[0] == tcell.RuneVLine {
			sawVertical = true
			break
		}
	}
	if !sawVertical {
		t.Fatal("expected at least one container/tile border to be drawn")
	}
}
