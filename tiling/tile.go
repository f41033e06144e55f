package tiling

import "github.com/tiri-wm/tiri/geom"

// WindowID is a stable window identity. It is a plain uint64 rather than
// an opaque struct — grounded directly against the real niri IPC shape
// (Window.Id uint64) found in the retrieved corpus, which is exactly what
// spec.md §3 means by "a stable window identity" (SPEC_FULL.md §9.1).
type WindowID uint64

// Constraints carries the intrinsic min/max size a client window reports.
// Zero means "no constraint" on that bound.
type Constraints struct {
	MinW, MinH int
	MaxW, MaxH int
}

// Surface is the external collaborator a Tile forwards size requests to.
// The core treats it as opaque (spec §6's "Tile side-effect contract");
// the teacher's Design Notes §9 analogue is its generic LayoutElement
// polymorphism, re-expressed here as the capability set {request-size,
// ack} rather than inheritance.
type Surface interface {
	// Configure asks the surface to resize to rect, optionally fullscreen,
	// tagged with a transaction id the surface must echo back via Ack.
	Configure(rect geom.Rect, fullscreen bool, transactionID uint64)
}

// Tile is a leaf node wrapping one managed window (spec §3).
type Tile struct {
	Window      WindowID
	Rect        geom.Rect
	Constraints Constraints
	Fullscreen  bool

	surface   Surface
	nextTxn   uint64
	pendingTx uint64
}

// NewTile constructs a Tile bound to the given window identity and
// surface. A nil surface is valid for tests that only exercise tree
// structure (the teacher's tests use a similarly bare widget for the same
// reason).
func NewTile(window WindowID, surface Surface) *Tile {
	return &Tile{Window: window, surface: surface}
}

// requestSize implements the Arranger's call into the Tile adapter (spec
// §4.5). Fullscreen tiles still record the rect they're given — callers
// that want the "bypass Arranger, use full workspace rect" behavior pass
// the workspace rect in directly; the Tile itself has no opinion about
// where that rect came from.
func (t *Tile) requestSize(rect geom.Rect, fullscreen bool) {
	t.Rect = rect
	t.Fullscreen = fullscreen
	t.nextTxn++
	t.pendingTx = t.nextTxn
	if t.surface != nil {
		t.surface.Configure(rect, fullscreen, t.pendingTx)
	}
}

// Ack receives a surface's acknowledgement of a transaction. Acks whose id
// is not the pending transaction are ignored, and a matching ack changes
// no state either: the Tile keeps no separate pending rectangle, and Rect
// is already set by requestSize when the request is made, so Rect is the
// last requested size, not the last acknowledged one. The core never
// blocks waiting for this to be called.
func (t *Tile) Ack(transactionID uint64) {
	if transactionID != t.pendingTx {
		return
	}
}

// PendingTransaction returns the most recent transaction id handed to the
// surface, for collaborators implementing their own ack-timeout policy
// (spec §5: that policy lives outside the core).
func (t *Tile) PendingTransaction() uint64 {
	return t.pendingTx
}
