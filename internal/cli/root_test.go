package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/travel"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "seed")
}

func TestAllocatorFor(t *testing.T) {
	logger := zap.NewNop()

	alloc, err := allocatorFor("opaque", logger)
	require.NoError(t, err)
	assert.IsType(t, travel.OpaqueAllocator{}, alloc)

	alloc, err = allocatorFor("sequential", logger)
	require.NoError(t, err)
	assert.IsType(t, travel.SequentialAllocator{}, alloc)

	_, err = allocatorFor("galactic", logger)
	assert.Error(t, err)
}

func TestFleetConfig_DefaultsToDataDir(t *testing.T) {
	cfg, err := fleetConfig(&RootOptions{DataDir: "/var/lib/tripstitch"})
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/tripstitch", cfg.DataDir)
	assert.Equal(t, "booking.db", cfg.Booking)
}

func TestInitAndSeedCommands(t *testing.T) {
	dir := t.TempDir()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"init", "--data-dir", dir})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "initialized")

	root = NewRootCommand()
	out.Reset()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"seed", "--data-dir", dir})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "seeded")

	// Seeded database files exist on disk.
	assert.FileExists(t, filepath.Join(dir, "booking.db"))
	assert.FileExists(t, filepath.Join(dir, "recommendation.db"))
}
