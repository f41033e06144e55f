package persistence

import (
	"path/filepath"
	"testing"

	"github.com/tiri-wm/tiri/geom"
	"github.com/tiri-wm/tiri/tiling"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "tree.json"))

	id := tiling.WindowID(7)
	snapshot := tiling.Snapshot{
		Root: &tiling.NodeSnapshot{
			Kind:     tiling.KindTile,
			Rect:     geom.Rect{X: 0, Y: 0, W: 100, H: 50},
			WindowID: &id,
		},
		FocusPath: []int{0},
	}

	if err := store.Save(snapshot); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load: expected ok=true after Save")
	}
	if got.Root == nil || got.Root.WindowID == nil || *got.Root.WindowID != id {
		t.Fatalf("Load: window id mismatch, got %+v", got.Root)
	}
	if len(got.FocusPath) != 1 || got.FocusPath[0] != 0 {
		t.Fatalf("Load: focus path mismatch, got %v", got.FocusPath)
	}
}

func TestStoreLoadMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "nonexistent.json"))

	_, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load: unexpected error for missing file: %v", err)
	}
	if ok {
		t.Fatal("Load: expected ok=false for missing file")
	}
}

func TestStoreSaveCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "nested", "deeper", "tree.json"))

	if err := store.Save(tiling.Snapshot{FocusPath: []int{}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, ok, err := store.Load(); err != nil || !ok {
		t.Fatalf("Load after Save into nested directory: ok=%v err=%v", ok, err)
	}
}

func TestStoreSaveOverwritesPreviousContent(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "tree.json"))

	first := tiling.WindowID(1)
	second := tiling.WindowID(2)

	if err := store.Save(tiling.Snapshot{Root: &tiling.NodeSnapshot{Kind: tiling.KindTile, WindowID: &first}}); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := store.Save(tiling.Snapshot{Root: &tiling.NodeSnapshot{Kind: tiling.KindTile, WindowID: &second}}); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if got.Root == nil || got.Root.WindowID == nil || *got.Root.WindowID != second {
		t.Fatalf("expected overwritten snapshot with window %d, got %+v", second, got.Root)
	}
}
