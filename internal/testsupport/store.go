package testsupport

import (
	"testing"

	"crosswalk/internal/config"
	"crosswalk/internal/identity"
)

// MustOpenStore opens an identity.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *identity.Store {
	t.Helper()

	store, err := identity.Open(cfg.Paths.IdentityDB)
	if err != nil {
		t.Fatalf("identity.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
