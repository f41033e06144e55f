// Package persistence is a JSON-file-backed implementation of
// workspace.PersistenceHook, the tree-persistence boundary interface
// spec.md §1 declares a Non-goal of the tiling core itself ("persistence
// of the tree across restarts ... the core exposes hooks for these but
// does not own them"). Only cmd/tiri uses this package; tiling and
// workspace depend only on the hook interface.
//
// The atomic-write discipline (temp file in the same directory, then
// rename) is grounded on the teacher-adjacent bnema-dumber repo's
// internal/infrastructure/config/writer.go, which uses the same pattern to
// keep a concurrent file watcher from observing a half-written file —
// the same hazard a tree-snapshot file has if cmd/tiri's fsnotify watcher
// (SPEC_FULL.md §2.1) is watching the same directory.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tiri-wm/tiri/tiling"
)

// filePerm matches the permission bits bnema-dumber's config writer uses
// for its own atomically-written files.
const filePerm = 0o644

// Store is a workspace.PersistenceHook backed by a single JSON file on
// disk. It is safe for concurrent Save calls (each is independently
// atomic); it is not safe for concurrent Save and Load of the same
// in-flight write, which matches this core's single-threaded contract
// (spec §5) — callers only ever use a Store from the compositor's main
// thread.
type Store struct {
	path string
}

// NewStore creates a Store that reads and writes snapshots at path. The
// parent directory is created on first Save if missing.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes snapshot to disk atomically: encode to a temp file in the
// same directory, then rename over the target, so a reader (or an
// fsnotify watcher) never observes a partially written file.
func (s *Store) Save(snapshot tiling.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("persistence: encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("persistence: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tiri-tree-*.tmp")
	if err != nil {
		return fmt.Errorf("persistence: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("persistence: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persistence: close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return fmt.Errorf("persistence: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("persistence: rename into place: %w", err)
	}
	success = true
	return nil
}

// Load reads a previously saved snapshot. ok is false (with a nil error)
// when no file exists yet, matching workspace.PersistenceHook's contract
// that "nothing saved" is not itself an error.
func (s *Store) Load() (tiling.Snapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return tiling.Snapshot{}, false, nil
		}
		return tiling.Snapshot{}, false, fmt.Errorf("persistence: read %s: %w", s.path, err)
	}

	var snapshot tiling.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return tiling.Snapshot{}, false, fmt.Errorf("persistence: decode %s: %w", s.path, err)
	}
	return snapshot, true, nil
}
