package testsupport

import (
	"testing"

	"aafkit/internal/config"
	"aafkit/internal/index"
)

// MustOpenIndex opens the catalogue named by cfg and registers cleanup.
func MustOpenIndex(t testing.TB, cfg *config.Config) *index.Store {
	t.Helper()

	store, err := index.Open(cfg.Paths.IndexDB)
	if err != nil {
		t.Fatalf("index.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
