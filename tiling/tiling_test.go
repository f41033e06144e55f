package tiling

import (
	"testing"

	"github.com/tiri-wm/tiri/geom"
)

// mockSurface is the "mock surface for tests" variant spec §9's Design
// Notes call for, recording the last rect/fullscreen/transaction a Tile
// forwarded to it.
type mockSurface struct {
	rect          geom.Rect
	fullscreen    bool
	transactionID uint64
	configures    int
}

func (s *mockSurface) Configure(rect geom.Rect, fullscreen bool, transactionID uint64) {
	s.rect = rect
	s.fullscreen = fullscreen
	s.transactionID = transactionID
	s.configures++
}

func newScenarioTree() *Tree {
	t := NewTree(DefaultOptions())
	t.SetWorkingArea(geom.Rect{X: 0, Y: 0, W: 1000, H: 1000})
	return t
}

func rectOf(t *testing.T, tree *Tree, w WindowID) geom.Rect {
	t.Helper()
	tile, _, ok := tree.ResolveWindow(w)
	if !ok {
		t.Fatalf("window %d not found in tree", w)
	}
	return tile.Rect
}

func assertRect(t *testing.T, got geom.Rect, want geom.Rect) {
	t.Helper()
	if got != want {
		t.Fatalf("rect = %+v, want %+v", got, want)
	}
}

func assertPath(t *testing.T, got []int, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("focus path = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("focus path = %v, want %v", got, want)
		}
	}
}

// TestScenario1 covers spec §8 scenario 1: insert W1 into an empty tree.
func TestScenario1(t *testing.T) {
	tree := newScenarioTree()
	if err := tree.Insert(1, nil, InsertPolicy{}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	Arrange(tree)

	assertPath(t, tree.FocusPath, nil)
	assertRect(t, rectOf(t, tree, 1), geom.Rect{X: 0, Y: 0, W: 1000, H: 1000})
}

// TestScenario2 covers spec §8 scenario 2: insert W1 then W2.
func TestScenario2(t *testing.T) {
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	mustInsert(t, tree, 2)
	Arrange(tree)

	if tree.Root.Container == nil || tree.Root.Container.Layout != SplitH {
		t.Fatalf("expected root to be a SplitH container")
	}
	assertPath(t, tree.FocusPath, []int{1})
	assertRect(t, rectOf(t, tree, 1), geom.Rect{X: 0, Y: 0, W: 500, H: 1000})
	assertRect(t, rectOf(t, tree, 2), geom.Rect{X: 500, Y: 0, W: 500, H: 1000})
}

// scenario3Tree builds the tree state from spec §8 scenario 3 and returns
// it already arranged.
func scenario3Tree(t *testing.T) *Tree {
	t.Helper()
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	mustInsert(t, tree, 2)
	if err := tree.Split(SplitV); err != nil {
		t.Fatalf("Split: %v", err)
	}
	mustInsert(t, tree, 3)
	Arrange(tree)
	return tree
}

func TestScenario3(t *testing.T) {
	tree := scenario3Tree(t)

	assertPath(t, tree.FocusPath, []int{1, 1})
	assertRect(t, rectOf(t, tree, 1), geom.Rect{X: 0, Y: 0, W: 500, H: 1000})
	assertRect(t, rectOf(t, tree, 2), geom.Rect{X: 500, Y: 0, W: 500, H: 500})
	assertRect(t, rectOf(t, tree, 3), geom.Rect{X: 500, Y: 500, W: 500, H: 500})
}

func TestScenario4(t *testing.T) {
	tree := scenario3Tree(t)

	if err := tree.FocusDirection(Left); err != nil {
		t.Fatalf("FocusDirection(Left): %v", err)
	}
	assertPath(t, tree.FocusPath, []int{0})
	assertRect(t, rectOf(t, tree, 1), geom.Rect{X: 0, Y: 0, W: 500, H: 1000})
}

func scenario5Tree(t *testing.T) *Tree {
	t.Helper()
	tree := scenario3Tree(t)
	if err := tree.MoveDirection(Up); err != nil {
		t.Fatalf("MoveDirection(Up): %v", err)
	}
	Arrange(tree)
	return tree
}

func TestScenario5(t *testing.T) {
	tree := scenario5Tree(t)

	assertPath(t, tree.FocusPath, []int{1, 0})
	assertRect(t, rectOf(t, tree, 3), geom.Rect{X: 500, Y: 0, W: 500, H: 500})
	assertRect(t, rectOf(t, tree, 2), geom.Rect{X: 500, Y: 500, W: 500, H: 500})
}

func TestScenario6(t *testing.T) {
	tree := scenario5Tree(t)

	if err := tree.Remove(2); err != nil {
		t.Fatalf("Remove(W2): %v", err)
	}
	Arrange(tree)

	if tree.Root.Container == nil || tree.Root.Container.Layout != SplitH {
		t.Fatalf("expected root to remain a SplitH container after flatten")
	}
	if len(tree.Root.Container.Children) != 2 {
		t.Fatalf("expected root to have 2 children after flatten, got %d", len(tree.Root.Container.Children))
	}
	assertPath(t, tree.FocusPath, []int{1})
	assertRect(t, rectOf(t, tree, 3), geom.Rect{X: 500, Y: 0, W: 500, H: 1000})
	assertRect(t, rectOf(t, tree, 1), geom.Rect{X: 0, Y: 0, W: 500, H: 1000})
}

func mustInsert(t *testing.T, tree *Tree, w WindowID) {
	t.Helper()
	if err := tree.Insert(w, &mockSurface{}, InsertPolicy{}); err != nil {
		t.Fatalf("Insert(%d): %v", w, err)
	}
}

func TestRemoveUnknownWindowIsNotFound(t *testing.T) {
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	if err := tree.Remove(99); err == nil {
		t.Fatalf("expected ErrNotFound")
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	mustInsert(t, tree, 2)
	mustInsert(t, tree, 3)

	before := tree.Snapshot()

	mustInsert(t, tree, 4)
	if err := tree.Remove(4); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	after := tree.Snapshot()
	if len(before.Root.Children) != len(after.Root.Children) {
		t.Fatalf("window set changed across insert/remove round trip: before=%d after=%d",
			len(before.Root.Children), len(after.Root.Children))
	}
}

func TestFractionsSumToOne(t *testing.T) {
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	mustInsert(t, tree, 2)
	mustInsert(t, tree, 3)
	mustInsert(t, tree, 4)

	tree.Walk(func(n *Node) {
		if n.Container == nil {
			return
		}
		sum := 0.0
		for _, f := range n.Container.Fractions {
			sum += f
		}
		if sum < 1-1e-9 || sum > 1+1e-9 {
			t.Fatalf("container %d fractions sum to %f, want 1", n.Container.ID(), sum)
		}
	})
}

func TestNoEmptyContainers(t *testing.T) {
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	mustInsert(t, tree, 2)
	mustInsert(t, tree, 3)

	if err := tree.Remove(2); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := tree.Remove(3); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	tree.Walk(func(n *Node) {
		if n.Container != nil && len(n.Container.Children) == 0 {
			t.Fatalf("found empty container %d", n.Container.ID())
		}
	})
}

func TestFocusDirectionChainStepsExactlyNMinusOne(t *testing.T) {
	tree := newScenarioTree()
	const n = 4
	for i := WindowID(1); i <= n; i++ {
		mustInsert(t, tree, i)
	}

	steps := 0
	for {
		if err := tree.FocusDirection(Left); err != nil {
			break
		}
		steps++
	}
	if steps != n-1 {
		t.Fatalf("expected %d steps before NoTargetInDirection, got %d", n-1, steps)
	}
}

func TestMoveDirectionRoundTrip(t *testing.T) {
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	mustInsert(t, tree, 2)

	before := tree.Snapshot()

	if err := tree.MoveDirection(Left); err != nil {
		t.Fatalf("MoveDirection(Left): %v", err)
	}
	if err := tree.MoveDirection(Right); err != nil {
		t.Fatalf("MoveDirection(Right): %v", err)
	}

	after := tree.Snapshot()
	for i := range before.Root.Children {
		if before.Root.Children[i].WindowID == nil || after.Root.Children[i].WindowID == nil {
			continue
		}
		if *before.Root.Children[i].WindowID != *after.Root.Children[i].WindowID {
			t.Fatalf("sibling order not restored at index %d", i)
		}
	}
}

func TestSetLayoutModePreservesFractions(t *testing.T) {
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	mustInsert(t, tree, 2)

	before := append([]float64(nil), tree.Root.Container.Fractions...)
	if err := tree.SetLayoutMode(Tabbed); err != nil {
		t.Fatalf("SetLayoutMode: %v", err)
	}
	after := tree.Root.Container.Fractions
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("fractions changed on layout mode switch: before=%v after=%v", before, after)
		}
	}
}

func TestResizeTransfersBetweenSiblings(t *testing.T) {
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	mustInsert(t, tree, 2)

	if err := tree.Resize(0.1); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	sum := tree.Root.Container.Fractions[0] + tree.Root.Container.Fractions[1]
	if sum < 1-1e-9 || sum > 1+1e-9 {
		t.Fatalf("fractions no longer sum to 1 after resize: %v", tree.Root.Container.Fractions)
	}
}

func TestFullscreenTileBypassesArranger(t *testing.T) {
	tree := newScenarioTree()
	mustInsert(t, tree, 1)
	mustInsert(t, tree, 2)
	if err := tree.SetFocusedFullscreen(true); err != nil {
		t.Fatalf("SetFocusedFullscreen: %v", err)
	}
	Arrange(tree)

	assertRect(t, rectOf(t, tree, 2), geom.Rect{X: 0, Y: 0, W: 1000, H: 1000})
}
