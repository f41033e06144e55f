package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tiri-wm/tiri/tiling"
)

func TestLoadOptionsEmptyPathReturnsDefaults(t *testing.T) {
	opts, err := loadOptions("")
	if err != nil {
		t.Fatalf("loadOptions(\"\"): %v", err)
	}
	if opts.InnerGap != 0 {
		t.Fatalf("InnerGap = %d, want the default 0", opts.InnerGap)
	}
}

func TestLoadOptionsMissingFileReturnsDefaults(t *testing.T) {
	opts, err := loadOptions(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("loadOptions(missing file): %v", err)
	}
	if opts.DefaultSplitRatio != 0.5 {
		t.Fatalf("DefaultSplitRatio = %v, want the default 0.5", opts.DefaultSplitRatio)
	}
}

func TestLoadOptionsDecodesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	body := "inner_gap = 12\ndefault_split_ratio = 0.3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	opts, err := loadOptions(path)
	if err != nil {
		t.Fatalf("loadOptions: %v", err)
	}
	if opts.InnerGap != 12 {
		t.Fatalf("InnerGap = %d, want 12", opts.InnerGap)
	}
	if opts.DefaultSplitRatio != 0.3 {
		t.Fatalf("DefaultSplitRatio = %v, want 0.3", opts.DefaultSplitRatio)
	}
}

func TestLoadOptionsUnknownKeysAreIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	body := "inner_gap = 5\nsome_future_key = \"whatever\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	opts, err := loadOptions(path)
	if err != nil {
		t.Fatalf("loadOptions with unknown key: %v", err)
	}
	if opts.InnerGap != 5 {
		t.Fatalf("InnerGap = %d, want 5", opts.InnerGap)
	}
}

func TestWatchOptionsEmptyPathDisablesWatching(t *testing.T) {
	stop, err := watchOptions("", func(*tiling.Options) {})
	if err != nil {
		t.Fatalf("watchOptions(\"\"): %v", err)
	}
	stop()
}

func TestWatchOptionsNotifiesOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	if err := os.WriteFile(path, []byte("inner_gap = 1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	changed := make(chan int, 1)
	stop, err := watchOptions(path, func(opts *tiling.Options) {
		changed <- opts.InnerGap
	})
	if err != nil {
		t.Fatalf("watchOptions: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("inner_gap = 9\n"), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}

	select {
	case gap := <-changed:
		if gap != 9 {
			t.Fatalf("onChange InnerGap = %d, want 9", gap)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watchOptions to notice the rewrite")
	}
}
