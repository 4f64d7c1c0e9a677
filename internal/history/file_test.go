package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "nope.toml"))
	h, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h.Len() != 0 || h.ID != "" {
		t.Errorf("missing file should load as empty history, got %+v", h)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "history.toml"))

	want := &History{
		ID:       "run-1",
		Epics:    []Entry{{Summary: "Backend: Expose an api", Key: "PX-1"}},
		Stories:  []Entry{{Summary: "Implement CRUD operations", Key: "PX-2", Parent: "PX-1"}},
		Subtasks: []Entry{{Summary: "Test CRUD operations", Key: "PX-3", Parent: "PX-2"}},
	}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore_SaveLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "history.toml"))
	if err := store.Save(context.Background(), &History{ID: "x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "history.toml" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only history.toml, got %v", names)
	}
}

func TestFileStore_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "history.toml"))

	seeded := &History{ID: "old", Epics: []Entry{{Summary: "something", Key: "PX-9"}}}
	if err := store.Save(ctx, seeded); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("reset history should be empty, has %d entries", got.Len())
	}
	if got.ID == "" || got.ID == "old" {
		t.Errorf("reset should stamp a fresh ID, got %q", got.ID)
	}
}
