// Package testutil provides shared fixtures for tests: a pinned wall clock
// and temporary store fleets.
package testutil

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/store"
)

// OpenFleet creates a fleet of temporary store databases with schemas
// applied. The fleet is closed automatically when the test ends.
func OpenFleet(t *testing.T) *store.Fleet {
	t.Helper()

	fleet, err := store.OpenFleet(store.DefaultConfig(t.TempDir()), zap.NewNop())
	if err != nil {
		t.Fatalf("OpenFleet() failed: %v", err)
	}
	t.Cleanup(func() { fleet.Close() })

	if err := fleet.InitSchemas(context.Background()); err != nil {
		t.Fatalf("InitSchemas() failed: %v", err)
	}

	return fleet
}
