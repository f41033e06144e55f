package tiling

// Direction is a directional navigation/move request (spec §4.2).
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) axis() axis {
	if d == Left || d == Right {
		return axisHorizontal
	}
	return axisVertical
}

func (d Direction) delta() int {
	if d == Left || d == Up {
		return -1
	}
	return 1
}

func (d Direction) opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Split wraps the current focus target in a new Container of layout L
// (spec §4.1, §2: Navigator owns split).
func (t *Tree) Split(layout LayoutMode) error {
	err := t.splitFocused(layout)
	if err == nil {
		t.markDirty()
	}
	return err
}

// FocusDirection moves focus to the nearest Tile in direction d (spec
// §4.2). It never mutates the tree's structure, only FocusPath and the
// FocusedChild index of each Container along the new path.
func (t *Tree) FocusDirection(d Direction) error {
	if t.Root == nil {
		return ErrEmptyTree
	}
	ancestors := t.ancestors()
	i := findCompatibleAncestorWithRoom(ancestors, t.FocusPath, d)
	if i < 0 {
		return ErrNoTargetInDirection
	}
	desired := t.FocusPath[i] + d.delta()

	newPath := append([]int(nil), t.FocusPath[:i]...)
	newPath = append(newPath, desired)
	newPath = t.descendToFocusedLeaf(newPath)
	node := t.Root
	for _, idx := range newPath {
		node.Container.FocusedChild = idx
		node = node.Container.Children[idx]
	}
	t.FocusPath = newPath
	t.FocusDepth = 0
	return nil
}

// findCompatibleAncestorWithRoom returns the index, within ancestors, of
// the deepest ancestor whose layout axis matches d and that has room for
// the step (sibling index in range), or -1 if there is none; spec §4.2:
// "If in range, descend ... If out of range, continue walking up."
func findCompatibleAncestorWithRoom(ancestors []*Container, path []int, d Direction) int {
	for i := len(ancestors) - 1; i >= 0; i-- {
		c := ancestors[i]
		if c.Layout.axis() != d.axis() {
			continue
		}
		desired := path[i] + d.delta()
		if desired >= 0 && desired < len(c.Children) {
			return i
		}
	}
	return -1
}

// MoveDirection swaps the focused Tile's ancestor subtree with its
// adjacent sibling in direction d (spec §4.2). If no compatible ancestor
// has room and Options.PromoteOnMove is set, the Tile is promoted to a
// new sibling at the root instead (SPEC_FULL.md §9, Open Questions).
func (t *Tree) MoveDirection(d Direction) error {
	if t.Root == nil {
		return ErrEmptyTree
	}
	ancestors := t.ancestors()
	i := findCompatibleAncestorWithRoom(ancestors, t.FocusPath, d)
	if i < 0 {
		if t.Options.PromoteOnMove {
			return t.promote(d)
		}
		return ErrNoTargetInDirection
	}

	c := ancestors[i]
	cur := t.FocusPath[i]
	desired := cur + d.delta()

	c.Children[cur], c.Children[desired] = c.Children[desired], c.Children[cur]
	c.Fractions[cur], c.Fractions[desired] = c.Fractions[desired], c.Fractions[cur]
	c.FocusedChild = desired

	t.FocusPath[i] = desired
	t.markDirty()
	return nil
}

// promote lifts the focused Tile out of its current parent and inserts
// it as a new top-level sibling, wrapping Root in a Container whose axis
// matches d if Root is not already such a container (spec §4.2: "remove
// it from its current parent, insert it as a new sibling of the nearest
// compatible ancestor"). Any parent left with one child is flattened
// afterward, per spec's requirement on implementations that enable
// promotion.
func (t *Tree) promote(d Direction) error {
	tileNode := t.focusedNode()
	if tileNode == nil || tileNode.Tile == nil {
		return ErrNoTargetInDirection
	}
	tile := tileNode.Tile
	path := append([]int(nil), t.FocusPath...)

	if len(path) == 0 {
		// Already the sole root node; nothing to promote past.
		return ErrNoTargetInDirection
	}

	parentPath := path[:len(path)-1]
	removedIdx := path[len(path)-1]
	parentNode := nodeAt(t.Root, parentPath)
	parent := parentNode.Container
	parent.Children = append(parent.Children[:removedIdx], parent.Children[removedIdx+1:]...)
	parent.Fractions = append(parent.Fractions[:removedIdx], parent.Fractions[removedIdx+1:]...)
	if len(parent.Fractions) > 0 {
		renormalize(parent.Fractions)
		if parent.FocusedChild >= len(parent.Children) {
			parent.FocusedChild = len(parent.Children) - 1
		}
	}
	if len(parent.Children) == 0 {
		t.collapseEmptyContainer(parentPath)
	} else {
		t.flattenAncestors(parentPath)
	}

	old := t.Root
	wantAxis := d.axis()
	newFraction := t.Options.MinFraction
	if newFraction <= 0 || newFraction >= 1 {
		newFraction = 0.1
	}
	if old.Container != nil && old.Container.Layout.axis() == wantAxis {
		c := old.Container
		scaled, frac := rescaleForInsert(c.Fractions)
		insertAt := len(c.Children)
		if d.delta() < 0 {
			insertAt = 0
		}
		children := make([]*Node, 0, len(c.Children)+1)
		fractions := make([]float64, 0, len(scaled)+1)
		children = append(children, c.Children[:insertAt]...)
		fractions = append(fractions, scaled[:insertAt]...)
		children = append(children, leafNode(tile))
		fractions = append(fractions, frac)
		children = append(children, c.Children[insertAt:]...)
		fractions = append(fractions, scaled[insertAt:]...)
		c.Children = children
		c.Fractions = fractions
		c.FocusedChild = insertAt
		t.FocusPath = []int{insertAt}
	} else {
		layout := SplitH
		if wantAxis == axisVertical {
			layout = SplitV
		}
		var children []*Node
		var fractions []float64
		if d.delta() < 0 {
			children = []*Node{leafNode(tile), old}
			fractions = []float64{newFraction, 1 - newFraction}
			t.FocusPath = []int{0}
		} else {
			children = []*Node{old, leafNode(tile)}
			fractions = []float64{1 - newFraction, newFraction}
			t.FocusPath = []int{1}
		}
		c := t.newContainer(layout, children, fractions)
		c.FocusedChild = t.FocusPath[0]
		t.Root = containerNode(c)
	}

	t.FocusDepth = 0
	t.markDirty()
	return nil
}

// Resize transfers a fraction delta between the focused Container's
// (per FocusDepth) child and its next sibling, or its previous sibling
// when the focused child is the last one — the interactive border-resize
// operation supplemented in SPEC_FULL.md §9.1, grounded on the ancestor
// repo's adjustBorder/findBorderToResize. A positive delta grows the
// focused slot at that sibling's expense; negative shrinks it. The
// transfer is clamped so neither sibling's fraction drops below
// Options.MinFraction.
func (t *Tree) Resize(delta float64) error {
	path, container, err := t.focusedContainerPath()
	if err != nil {
		return err
	}
	if len(container.Children) < 2 {
		return ErrNoTargetInDirection
	}
	idx := path[len(path)-1]
	other := idx + 1
	if other >= len(container.Children) {
		other = idx - 1
	}
	if other < 0 {
		return ErrNoTargetInDirection
	}

	min := t.Options.MinFraction
	if min <= 0 {
		min = 0.05
	}
	lo, hi := idx, other
	sign := 1.0
	if other < idx {
		lo, hi = other, idx
		sign = -1.0
	}
	d := delta * sign
	if d < min-container.Fractions[lo] {
		d = min - container.Fractions[lo]
	}
	if d > container.Fractions[hi]-min {
		d = container.Fractions[hi] - min
	}
	container.Fractions[lo] += d
	container.Fractions[hi] -= d
	t.markDirty()
	return nil
}
