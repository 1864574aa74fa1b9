package identity_test

import (
	"context"
	"path/filepath"
	"testing"

	"crosswalk/internal/identity"
)

func openStore(t *testing.T, path string) *identity.Store {
	t.Helper()
	store, err := identity.Open(path)
	if err != nil {
		t.Fatalf("identity.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSyncAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identities.db")
	store := openStore(t, path)

	m := identity.NewMap()
	id := m.GetOrCreate(sample())

	if err := store.Sync(context.Background(), m); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	entries, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if entries["A:1"] != id {
		t.Fatalf("persisted assignment missing: %v", entries)
	}

	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 persisted entry, got %d", count)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identities.db")

	store, err := identity.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	m := identity.NewMap()
	id := m.GetOrCreate(sample())
	if err := store.Sync(context.Background(), m); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := openStore(t, path)
	entries, err := reopened.Load(context.Background())
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if entries["A:1"] != id {
		t.Fatalf("assignment lost across reopen: %v", entries)
	}
}

func TestStoreUpsertUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identities.db")
	store := openStore(t, path)

	first := identity.NewMap()
	first.Restore(map[string]string{"A:1": "aaaaaaaaaaaa"})
	if err := store.Sync(context.Background(), first); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	second := identity.NewMap()
	second.Restore(map[string]string{"A:1": "bbbbbbbbbbbb"})
	if err := store.Sync(context.Background(), second); err != nil {
		t.Fatalf("second sync: %v", err)
	}

	entries, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if entries["A:1"] != "bbbbbbbbbbbb" {
		t.Fatalf("upsert did not replace value: %v", entries)
	}
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identities.db")
	store := openStore(t, path)

	m := identity.NewMap()
	m.GetOrCreate(sample())
	if err := store.Sync(context.Background(), m); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty store after clear, got %d", count)
	}
}

func TestStoreLockRejectsSecondOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identities.db")
	openStore(t, path)

	if _, err := identity.Open(path); err == nil {
		t.Fatal("expected second open against a locked database to fail")
	}
}
