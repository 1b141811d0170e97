package manifest

import (
	"path/filepath"
	"testing"
	"time"

	"pkg.jsn.cam/datagen/pkg/dataset"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "manifest.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRun() Run {
	return NewRun(time.Now().UTC(), 42, []dataset.FileInfo{
		{Name: "uniform_10.txt", Distribution: "uniform", Size: 10, Bytes: 200},
		{Name: "normal_10.txt", Distribution: "normal", Size: 10, Bytes: 210},
	})
}

func TestRecordAndGet(t *testing.T) {
	store := openTestStore(t)
	run := testRun()

	if err := store.Record(run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := store.Get(run.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != run.ID {
		t.Errorf("Got run ID %q, want %q", got.ID, run.ID)
	}
	if got.Seed != run.Seed {
		t.Errorf("Got seed %d, want %d", got.Seed, run.Seed)
	}
	if len(got.Files) != len(run.Files) {
		t.Fatalf("Got %d files, want %d", len(got.Files), len(run.Files))
	}
	if got.Files[0] != run.Files[0] {
		t.Errorf("Got file %+v, want %+v", got.Files[0], run.Files[0])
	}
}

func TestGetMissingRun(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Get("no-such-run"); err == nil {
		t.Error("Expected error for missing run, got nil")
	}
}

func TestList(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected empty store, got %d runs", len(runs))
	}

	first := testRun()
	second := testRun()
	if err := store.Record(first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("Expected 2 runs, got %d", len(runs))
	}
}

func TestNewRunUniqueIDs(t *testing.T) {
	a := testRun()
	b := testRun()
	if a.ID == b.ID {
		t.Error("NewRun produced duplicate IDs")
	}
}
