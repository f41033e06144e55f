package tiling

import "github.com/tiri-wm/tiri/geom"

// InsertSite selects where Insert places a new window (spec §4.1).
type InsertSite int

const (
	// SiteAuto resolves to SiteAtRoot when the tree is empty or has no
	// focus, and to SiteAfterFocusedSibling otherwise.
	SiteAuto InsertSite = iota
	SiteAtRoot
	SiteAfterFocusedSibling
	SiteIntoFocusedContainer
	SiteWrapFocusedNewContainer
)

// InsertPolicy is the policy argument to Insert. WrapLayout is only
// consulted when Site is SiteWrapFocusedNewContainer.
type InsertPolicy struct {
	Site       InsertSite
	WrapLayout LayoutMode
}

// Tree is the root-holding structure owned by exactly one Workspace
// (spec §3). It carries the working-area rectangle, scale, the focus
// path, and the options snapshot arrange uses. There is no mutex here:
// the tiling core is single-threaded and cooperative by contract (spec
// §5) — see DESIGN.md for why the teacher's UIManager lock is not
// carried into this type.
type Tree struct {
	Root        *Node
	WorkingArea geom.Rect
	Scale       float64
	FocusPath   []int
	Options     *Options

	// FocusDepth is the ancillary "focus depth" spec §4.1 describes for
	// focus_parent/focus_child: it does not change FocusPath, only which
	// ancestor Container subsequent set_layout_mode/resize calls target.
	FocusDepth int

	// Dirty is the single per-Tree flag spec §5 calls for: multiple
	// mutations batched within one event loop iteration set it, and the
	// caller arranges once at the end.
	Dirty bool

	nextContainerID uint64
}

// NewTree creates an empty tree. A nil options argument is replaced with
// DefaultOptions.
func NewTree(options *Options) *Tree {
	if options == nil {
		options = DefaultOptions()
	}
	return &Tree{Options: options}
}

func (t *Tree) newContainer(layout LayoutMode, children []*Node, fractions []float64) *Container {
	t.nextContainerID++
	return &Container{
		id:        t.nextContainerID,
		Layout:    layout,
		Children:  children,
		Fractions: fractions,
	}
}

func (t *Tree) markDirty() { t.Dirty = true }

// ancestors returns the chain of Containers the focus path descends
// through, root first, immediate parent of the focused Tile last. It is
// the positional replacement for a back-pointer (spec §9's Design Notes):
// ancestor lookup always walks down from Root rather than up a link.
func (t *Tree) ancestors() []*Container {
	if len(t.FocusPath) == 0 {
		return nil
	}
	result := make([]*Container, 0, len(t.FocusPath))
	node := t.Root
	for _, idx := range t.FocusPath {
		if node == nil || node.Container == nil {
			panicInvariant(t, "focus path descends through a non-container node")
		}
		c := node.Container
		if idx < 0 || idx >= len(c.Children) {
			panicInvariant(t, "focus path index out of range")
		}
		result = append(result, c)
		node = c.Children[idx]
	}
	return result
}

// nodeAt walks from Root through the given path of child indices.
func nodeAt(root *Node, path []int) *Node {
	node := root
	for _, idx := range path {
		if node == nil || node.Container == nil {
			return nil
		}
		if idx < 0 || idx >= len(node.Container.Children) {
			return nil
		}
		node = node.Container.Children[idx]
	}
	return node
}

// focusedNode returns the node the focus path currently designates (the
// focused Tile, wrapped in *Node).
func (t *Tree) focusedNode() *Node {
	if t.Root == nil {
		return nil
	}
	return nodeAt(t.Root, t.FocusPath)
}

// FocusedTile returns the currently focused Tile, if any.
func (t *Tree) FocusedTile() (*Tile, bool) {
	n := t.focusedNode()
	if n == nil || n.Tile == nil {
		return nil, false
	}
	return n.Tile, true
}

// focusedContainerPath resolves the Container that subsequent
// SetLayoutMode/Resize calls target, honoring FocusDepth (spec §4.1:
// "Set layout mode changes ... the Container containing the focused Tile
// (not the focused node itself if it is a leaf)"). Depth 0 means "the
// parent of the focused Tile"; each increment walks one level up.
func (t *Tree) focusedContainerPath() (path []int, container *Container, err error) {
	ancestors := t.ancestors()
	if len(ancestors) == 0 {
		return nil, nil, ErrEmptyTree
	}
	level := len(ancestors) - 1 - t.FocusDepth
	if level < 0 {
		return nil, nil, ErrAlreadyAtRoot
	}
	return t.FocusPath[:level+1], ancestors[level], nil
}

// Walk visits every node in the tree, root first, depth-first —
// SPEC_FULL.md §9.1's supplemented Tree.Walk, grounded on the ancestor
// repo's tree.Traverse.
func (t *Tree) Walk(f func(*Node)) {
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		f(n)
		if n.Container != nil {
			for _, child := range n.Container.Children {
				walk(child)
			}
		}
	}
	walk(t.Root)
}

// ResolveWindow finds the Tile for a window identity, and the path to it.
func (t *Tree) ResolveWindow(window WindowID) (*Tile, []int, bool) {
	var found *Tile
	var foundPath []int
	var walk func(n *Node, path []int)
	walk = func(n *Node, path []int) {
		if n == nil || found != nil {
			return
		}
		if n.Tile != nil {
			if n.Tile.Window == window {
				found = n.Tile
				foundPath = append([]int(nil), path...)
			}
			return
		}
		for i, child := range n.Container.Children {
			walk(child, append(path, i))
		}
	}
	walk(t.Root, nil)
	return found, foundPath, found != nil
}

// SetWorkingArea updates the rectangle Arrange distributes among Tiles
// and marks the tree dirty.
func (t *Tree) SetWorkingArea(rect geom.Rect) {
	t.WorkingArea = rect
	t.markDirty()
}

// SetFocusedFullscreen toggles the fullscreen flag on the focused Tile.
// Fullscreen tiles bypass the Arranger and receive the workspace's full
// rectangle directly (spec §4.4, §4.5).
func (t *Tree) SetFocusedFullscreen(fullscreen bool) error {
	tile, ok := t.FocusedTile()
	if !ok {
		return ErrEmptyTree
	}
	tile.Fullscreen = fullscreen
	t.markDirty()
	return nil
}

// Insert adds a window to the tree per the given policy (spec §4.1). The
// new Tile becomes focused; FocusDepth resets to 0.
func (t *Tree) Insert(window WindowID, surface Surface, policy InsertPolicy) error {
	tile := NewTile(window, surface)

	if t.Root == nil {
		t.Root = leafNode(tile)
		t.FocusPath = nil
		t.FocusDepth = 0
		t.markDirty()
		return nil
	}

	site := policy.Site
	if site == SiteAuto {
		site = SiteAfterFocusedSibling
	}

	switch site {
	case SiteAtRoot:
		t.wrapRootWith(tile)

	case SiteAfterFocusedSibling:
		ancestors := t.ancestors()
		if len(ancestors) == 0 {
			// Focus is the lone root Tile: there is no parent container
			// yet, so "after focused sibling" degrades to wrapping root.
			t.wrapRootWith(tile)
			break
		}
		parent := ancestors[len(ancestors)-1]
		afterIdx := t.FocusPath[len(t.FocusPath)-1]
		t.insertIntoContainer(parent, afterIdx+1, tile)
		t.FocusPath[len(t.FocusPath)-1] = afterIdx + 1

	case SiteIntoFocusedContainer:
		path, container, err := t.focusedContainerPath()
		if err != nil {
			return ErrInvalidPolicy
		}
		newIdx := len(container.Children)
		t.insertIntoContainer(container, newIdx, tile)
		t.FocusPath = append(append([]int(nil), path...), newIdx)

	case SiteWrapFocusedNewContainer:
		if err := t.splitFocused(policy.WrapLayout); err != nil {
			return err
		}
		ancestors := t.ancestors()
		parent := ancestors[len(ancestors)-1]
		t.insertIntoContainer(parent, 1, tile)
		t.FocusPath[len(t.FocusPath)-1] = 1

	default:
		return ErrInvalidPolicy
	}

	t.FocusDepth = 0
	t.markDirty()
	return nil
}

// wrapRootWith replaces Root with a new SplitH Container whose children
// are [oldRoot, tile], and focuses tile.
func (t *Tree) wrapRootWith(tile *Tile) {
	old := t.Root
	fractions := []float64{t.Options.DefaultSplitRatio, 1 - t.Options.DefaultSplitRatio}
	c := t.newContainer(SplitH, []*Node{old, leafNode(tile)}, fractions)
	c.FocusedChild = 1
	t.Root = containerNode(c)
	t.FocusPath = []int{1}
}

// insertIntoContainer adds tile as a new child of container at index,
// applying spec §4.1's fraction rescale (n/(n+1) for existing siblings,
// 1/(n+1) for the new one).
func (t *Tree) insertIntoContainer(container *Container, index int, tile *Tile) {
	scaled, newFraction := rescaleForInsert(container.Fractions)
	children := make([]*Node, 0, len(container.Children)+1)
	fractions := make([]float64, 0, len(scaled)+1)
	children = append(children, container.Children[:index]...)
	fractions = append(fractions, scaled[:index]...)
	children = append(children, leafNode(tile))
	fractions = append(fractions, newFraction)
	children = append(children, container.Children[index:]...)
	fractions = append(fractions, scaled[index:]...)
	container.Children = children
	container.Fractions = fractions
	container.FocusedChild = index
}

// Remove detaches the Tile for window from the tree (spec §4.1).
// Removing an unknown window is a no-op returning ErrNotFound, never a
// panic — idempotent per spec.
func (t *Tree) Remove(window WindowID) error {
	_, path, ok := t.ResolveWindow(window)
	if !ok {
		return ErrNotFound
	}

	if len(path) == 0 {
		// The lone root Tile is being removed.
		t.Root = nil
		t.FocusPath = nil
		t.FocusDepth = 0
		t.markDirty()
		return nil
	}

	parentPath := path[:len(path)-1]
	removedIdx := path[len(path)-1]
	parentNode := nodeAt(t.Root, parentPath)
	parent := parentNode.Container

	parent.Children = append(parent.Children[:removedIdx], parent.Children[removedIdx+1:]...)
	parent.Fractions = append(parent.Fractions[:removedIdx], parent.Fractions[removedIdx+1:]...)
	if len(parent.Fractions) > 0 {
		renormalize(parent.Fractions)
	}

	if len(parent.Children) == 0 {
		t.collapseEmptyContainer(parentPath)
	} else {
		newIdx := removedIdx
		if newIdx >= len(parent.Children) {
			newIdx = len(parent.Children) - 1
		}
		parent.FocusedChild = newIdx
		childPath := append(append([]int(nil), parentPath...), newIdx)
		// Set FocusPath before flattening: flattenAt rewrites it in place
		// as containers above it collapse, so it must already describe
		// the path through the node that is about to be flattened.
		t.FocusPath = t.descendToFocusedLeaf(childPath)
		t.flattenAncestors(parentPath)
	}

	t.FocusDepth = 0
	t.markDirty()
	return nil
}

// collapseEmptyContainer removes a now-empty Container from its own
// parent, recursively (spec §4.1: "if the parent now has zero children,
// remove the parent recursively from its grandparent"), then sets
// t.FocusPath to land on the grandparent's surviving descendant and
// flattens from there.
func (t *Tree) collapseEmptyContainer(path []int) {
	if len(path) == 0 {
		t.Root = nil
		t.FocusPath = nil
		return
	}
	grandparentPath := path[:len(path)-1]
	idx := path[len(path)-1]
	grandNode := nodeAt(t.Root, grandparentPath)
	if grandNode == nil {
		t.Root = nil
		t.FocusPath = nil
		return
	}
	grand := grandNode.Container
	grand.Children = append(grand.Children[:idx], grand.Children[idx+1:]...)
	grand.Fractions = append(grand.Fractions[:idx], grand.Fractions[idx+1:]...)
	if len(grand.Fractions) > 0 {
		renormalize(grand.Fractions)
	}
	if len(grand.Children) == 0 {
		t.collapseEmptyContainer(grandparentPath)
		return
	}
	newIdx := idx
	if newIdx >= len(grand.Children) {
		newIdx = len(grand.Children) - 1
	}
	grand.FocusedChild = newIdx
	childPath := append(append([]int(nil), grandparentPath...), newIdx)
	t.FocusPath = t.descendToFocusedLeaf(childPath)
	t.flattenAncestors(grandparentPath)
}

// descendToFocusedLeaf follows FocusedChild indices down from path until
// it reaches a Tile (spec §4.1: promote focus to "the parent's surviving
// descendant"; spec §4.2 calls this focus-inactive descent).
func (t *Tree) descendToFocusedLeaf(path []int) []int {
	node := nodeAt(t.Root, path)
	full := append([]int(nil), path...)
	for node != nil && node.Container != nil {
		idx := node.Container.FocusedChild
		if idx < 0 || idx >= len(node.Container.Children) {
			idx = 0
		}
		full = append(full, idx)
		node = node.Container.Children[idx]
	}
	return full
}

// flattenAncestors eliminates the two redundancy patterns from spec §4.3
// along the chain from Root down to (and including) the container at
// path, walking outward from the deepest affected node.
func (t *Tree) flattenAncestors(path []int) {
	for depth := len(path); depth >= 0; depth-- {
		prefix := path[:depth]
		t.flattenAt(prefix)
	}
}

// flattenAt applies one flattening step at the Container addressed by
// path (or the Root, if path is empty), if that container is itself
// redundant under either pattern in spec §4.3. Flattening a node can make
// its own parent newly redundant; callers iterate outward to reach a
// fixed point (spec: "flattening must be confluent").
func (t *Tree) flattenAt(path []int) {
	node := nodeAt(t.Root, path)
	if node == nil || node.Container == nil {
		return
	}
	c := node.Container

	// Pattern 2: a child Container sharing this container's split axis
	// gets its children merged in, fractions distributed as
	// outer_share * inner_fraction.
	for {
		merged := false
		var newChildren []*Node
		var newFractions []float64
		for i, child := range c.Children {
			if child.Container != nil && child.Container.Layout.axis() == c.Layout.axis() &&
				sameSplitFamily(c.Layout, child.Container.Layout) {
				inner := child.Container
				share := c.Fractions[i]
				for j, innerChild := range inner.Children {
					newChildren = append(newChildren, innerChild)
					newFractions = append(newFractions, share*inner.Fractions[j])
				}
				merged = true
				continue
			}
			newChildren = append(newChildren, child)
			newFractions = append(newFractions, c.Fractions[i])
		}
		if !merged {
			break
		}
		c.Children = newChildren
		c.Fractions = newFractions
		if c.FocusedChild >= len(c.Children) {
			c.FocusedChild = len(c.Children) - 1
		}
	}

	// Pattern 1: a Container with exactly one child is redundant; replace
	// it with that child in place (preserving the child's own layout and
	// fractions), absorbing this container's fraction share.
	if len(c.Children) != 1 {
		return
	}
	only := c.Children[0]
	if len(path) == 0 {
		t.Root = only
		if len(t.FocusPath) > 0 {
			t.FocusPath = t.FocusPath[1:]
		}
		if only.Container != nil {
			t.flattenAt(nil)
		}
		return
	}
	parentPath := path[:len(path)-1]
	idx := path[len(path)-1]
	parentNode := nodeAt(t.Root, parentPath)
	parentNode.Container.Children[idx] = only
	if len(t.FocusPath) > len(path) {
		copy(t.FocusPath[len(path):], t.FocusPath[len(path)+1:])
		t.FocusPath = t.FocusPath[:len(t.FocusPath)-1]
	}
}

// sameSplitFamily is only ever asked about two same-axis layouts (the
// caller already filtered on axis equality); SplitH/SplitV merge with
// their own kind but a Tabbed or Stacked container is never merged away
// even when axis-compatible, since merging would change which children
// share a tab/stack visually.
func sameSplitFamily(outer, inner LayoutMode) bool {
	return outer == inner && (outer == SplitH || outer == SplitV)
}

// Split wraps the current focus target in a new Container of the given
// layout (spec §4.1). Exposed here as splitFocused; Split (the public
// Mutation API entry point) lives in navigator.go alongside the other
// Navigator-owned operations per spec §2's component split.
func (t *Tree) splitFocused(layout LayoutMode) error {
	if t.Root == nil {
		return ErrEmptyTree
	}
	target, path := t.focusTargetAndPath()
	wrapper := t.newContainer(layout, []*Node{target}, []float64{1})

	if len(path) == 0 {
		t.Root = containerNode(wrapper)
		if len(t.FocusPath) == 0 {
			t.FocusPath = []int{0}
		} else {
			t.FocusPath = append([]int{0}, t.FocusPath...)
		}
		return nil
	}
	parentPath := path[:len(path)-1]
	idx := path[len(path)-1]
	parentNode := nodeAt(t.Root, parentPath)
	parentNode.Container.Children[idx] = containerNode(wrapper)
	t.FocusPath = append(append([]int(nil), path...), 0)
	return nil
}

// focusTargetAndPath returns the node FocusDepth currently designates as
// "the current focus target" (spec §4.1's split description covers both
// "leaf or container"), and its path from Root.
func (t *Tree) focusTargetAndPath() (*Node, []int) {
	if t.FocusDepth == 0 || len(t.FocusPath) == 0 {
		return t.focusedNode(), t.FocusPath
	}
	level := len(t.FocusPath) - t.FocusDepth
	if level < 0 {
		level = 0
	}
	path := t.FocusPath[:level]
	return nodeAt(t.Root, path), path
}

// SetLayoutMode changes the layout mode of the Container containing the
// focused Tile (spec §4.1). Fractions and child order are preserved.
func (t *Tree) SetLayoutMode(layout LayoutMode) error {
	_, container, err := t.focusedContainerPath()
	if err != nil {
		return err
	}
	container.Layout = layout
	t.markDirty()
	return nil
}

// FocusParent moves the ancillary focus depth up one level without
// re-homing the Tile (spec §4.1).
func (t *Tree) FocusParent() error {
	if len(t.FocusPath) == 0 || t.FocusDepth >= len(t.FocusPath) {
		return ErrAlreadyAtRoot
	}
	t.FocusDepth++
	return nil
}

// FocusChild descends the focus depth back toward the leaf.
func (t *Tree) FocusChild() error {
	if t.FocusDepth == 0 {
		return nil
	}
	t.FocusDepth--
	return nil
}
