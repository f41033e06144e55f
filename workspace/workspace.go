package workspace

import (
	"log"

	"github.com/tiri-wm/tiri/geom"
	"github.com/tiri-wm/tiri/tiling"
)

// FloatingWindow is the boundary-only floating-layer stub spec.md §2
// describes ("each workspace owns exactly one tiling tree plus one
// floating layer"). Its interior design (stacking order, drag/resize
// interaction) is out of scope for this core; a Workspace only needs
// enough of it to keep a floating window out of the tiling tree.
type FloatingWindow struct {
	Window tiling.WindowID
	Rect   geom.Rect
}

// Workspace owns exactly one tiling.Tree and is the integration point
// spec.md §2 describes ("a workspace object ... owns exactly one tiling
// tree plus one floating layer"). It keeps the refresh-notification idiom
// from the teacher's ancestor workspace.go (a non-blocking channel send
// the event loop selects on) since that signalling concern is orthogonal
// to the tree itself carrying no lock (SPEC_FULL.md §5).
type Workspace struct {
	Tree     *tiling.Tree
	Floating []FloatingWindow

	rules       RuleHook
	persistence PersistenceHook

	refresh chan struct{}
}

// New creates a Workspace with an empty tree over the given options and
// working area. A nil RuleHook/PersistenceHook is replaced with the
// no-op default.
func New(options *tiling.Options, workingArea geom.Rect, rules RuleHook, persistence PersistenceHook) *Workspace {
	if rules == nil {
		rules = noRuleHook{}
	}
	if persistence == nil {
		persistence = noPersistence{}
	}
	tree := tiling.NewTree(options)
	tree.SetWorkingArea(workingArea)
	return &Workspace{
		Tree:        tree,
		rules:       rules,
		persistence: persistence,
		refresh:     make(chan struct{}, 1),
	}
}

// RequestRefresh notifies the event loop that this workspace needs a
// redraw, without blocking if nobody is listening yet — the same
// non-blocking-send idiom the ancestor repo's workspace.go uses for its
// refreshChan/drawChan pair.
func (w *Workspace) RequestRefresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Refresh returns the channel the event loop selects on to learn a redraw
// is needed.
func (w *Workspace) Refresh() <-chan struct{} {
	return w.refresh
}

// Insert maps a new window into the tree, consulting the RuleHook first
// (spec.md §1's rule-matching hook). meta is passed through unexamined by
// Workspace itself; only a real RuleHook implementation interprets it.
func (w *Workspace) Insert(window tiling.WindowID, surface tiling.Surface, meta WindowMeta, fallback tiling.InsertPolicy) error {
	policy := fallback
	if p, ok := w.rules.Apply(window, meta); ok {
		policy = p
	}
	if err := w.Tree.Insert(window, surface, policy); err != nil {
		log.Printf("workspace: insert window %d: %v", window, err)
		return err
	}
	w.arrangeAndRefresh()
	return nil
}

// Remove detaches a window from the tree. Removing an unmapped window is
// reported as tiling.ErrNotFound, not logged as an error — the core
// itself treats this as routine (spec.md §4.6), so the workspace follows
// suit.
func (w *Workspace) Remove(window tiling.WindowID) error {
	err := w.Tree.Remove(window)
	if err != nil && err != tiling.ErrNotFound {
		log.Printf("workspace: remove window %d: %v", window, err)
	}
	w.arrangeAndRefresh()
	return err
}

// FocusDirection, MoveDirection, Split, SetLayoutMode, FocusParent,
// FocusChild, and Resize forward directly to the Tree, logging failures
// at the level the event loop would otherwise have to duplicate (spec.md
// §7: "the core never logs on its own; it reports outcomes to the caller
// ... which chooses logging level").

func (w *Workspace) FocusDirection(d tiling.Direction) error {
	err := w.Tree.FocusDirection(d)
	w.logOutcome("focus_direction", err)
	w.arrangeAndRefresh()
	return err
}

func (w *Workspace) MoveDirection(d tiling.Direction) error {
	err := w.Tree.MoveDirection(d)
	w.logOutcome("move_direction", err)
	w.arrangeAndRefresh()
	return err
}

func (w *Workspace) Split(layout tiling.LayoutMode) error {
	err := w.Tree.Split(layout)
	w.logOutcome("split", err)
	w.arrangeAndRefresh()
	return err
}

func (w *Workspace) SetLayoutMode(layout tiling.LayoutMode) error {
	err := w.Tree.SetLayoutMode(layout)
	w.logOutcome("set_layout_mode", err)
	w.arrangeAndRefresh()
	return err
}

func (w *Workspace) FocusParent() error {
	err := w.Tree.FocusParent()
	w.logOutcome("focus_parent", err)
	return err
}

func (w *Workspace) FocusChild() error {
	err := w.Tree.FocusChild()
	w.logOutcome("focus_child", err)
	return err
}

func (w *Workspace) Resize(delta float64) error {
	err := w.Tree.Resize(delta)
	w.logOutcome("resize", err)
	w.arrangeAndRefresh()
	return err
}

// SetFocusedFullscreen toggles the focused Tile's fullscreen flag and
// re-arranges, so a fullscreen tile immediately receives the workspace's
// full rectangle (spec §4.4, §4.5) rather than waiting for the next
// unrelated mutation to trigger arrange.
func (w *Workspace) SetFocusedFullscreen(fullscreen bool) error {
	err := w.Tree.SetFocusedFullscreen(fullscreen)
	w.logOutcome("set_focused_fullscreen", err)
	w.arrangeAndRefresh()
	return err
}

// SetWorkingArea updates the tree's working area (e.g. on monitor
// resize/rotation) and re-arranges.
func (w *Workspace) SetWorkingArea(rect geom.Rect) {
	w.Tree.SetWorkingArea(rect)
	w.arrangeAndRefresh()
}

// SetOptions replaces the tree's options snapshot and triggers a full
// re-arrange (Design Notes, spec.md §9: "the source carries an Options
// reference inside the tree ... options changes trigger a full
// re-arrange"). Used by cmd/tiri's config file watcher.
func (w *Workspace) SetOptions(options *tiling.Options) {
	w.Tree.Options = options
	w.Tree.Dirty = true
	w.arrangeAndRefresh()
}

func (w *Workspace) logOutcome(op string, err error) {
	if err != nil {
		log.Printf("workspace: %s: %v", op, err)
	}
}

// arrangeAndRefresh recovers from tiling.InvariantViolation (a bug, never
// caller input per spec.md §7) by logging its reason and the attached
// snapshot's focus path and notifying the event loop anyway. An
// InvariantViolation is not re-panicked here, in tests or otherwise; any
// other panic value is re-panicked.
func (w *Workspace) arrangeAndRefresh() {
	defer func() {
		if r := recover(); r != nil {
			if v, ok := r.(tiling.InvariantViolation); ok {
				log.Printf("workspace: invariant violation: %s (snapshot focus_path=%v)", v.Reason, v.Snapshot.FocusPath)
				w.RequestRefresh()
				return
			}
			panic(r)
		}
	}()
	tiling.Arrange(w.Tree)
	w.RequestRefresh()
}

// Teardown runs hook over every Tile before discarding the workspace
// (e.g. closing all surfaces), grounded on Tree.Walk / the ancestor's
// tree.Traverse (SPEC_FULL.md §9.1).
func (w *Workspace) Teardown(closeTile func(*tiling.Tile)) {
	w.Tree.Walk(func(n *tiling.Node) {
		if n.Tile != nil {
			closeTile(n.Tile)
		}
	})
}

// Save persists the current tree shape through the configured
// PersistenceHook.
func (w *Workspace) Save() error {
	return w.persistence.Save(w.Tree.Snapshot())
}
