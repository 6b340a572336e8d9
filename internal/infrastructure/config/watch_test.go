package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, jumpStrength string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "physics.yaml"), []byte("jump:\n  strength: "+jumpStrength+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unlocks.yaml"), []byte("{}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "controls.yaml"), []byte("{}\n"), 0o644))
	return dir
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_SwapKeepsOldSnapshotIntact(t *testing.T) {
	first := DefaultGameConfig()
	store := NewStore(first)
	assert.Same(t, first, store.Current())

	second := DefaultGameConfig()
	second.Physics.Jump.Strength = 30
	old := store.Swap(second)

	assert.Same(t, first, old)
	assert.Equal(t, 18.0, old.Physics.Jump.Strength)
	assert.Equal(t, 30.0, store.Current().Physics.Jump.Strength)
}

func TestReload_RejectsInvalidConfig(t *testing.T) {
	dir := writeConfigDir(t, "20")
	loader := NewLoader(dir)
	initial, err := loader.LoadAll()
	require.NoError(t, err)
	store := NewStore(initial)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "physics.yaml"), []byte("dash:\n  time: -3\n"), 0o644))
	assert.False(t, Reload(loader, store, discardLogger(), "physics.yaml"))
	assert.Same(t, initial, store.Current())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "physics.yaml"), []byte("jump:\n  strength: 25\n"), 0o644))
	assert.True(t, Reload(loader, store, discardLogger(), "physics.yaml"))
	assert.Equal(t, 25.0, store.Current().Physics.Jump.Strength)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := writeConfigDir(t, "20")
	loader := NewLoader(dir)
	initial, err := loader.LoadAll()
	require.NoError(t, err)
	store := NewStore(initial)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, loader, store, discardLogger()) }()

	// give the watcher time to register before writing
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "physics.yaml"), []byte("jump:\n  strength: 27\n"), 0o644))

	assert.Eventually(t, func() bool {
		return store.Current().Physics.Jump.Strength == 27
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestIsConfigFile(t *testing.T) {
	assert.True(t, isConfigFile("physics.yaml"))
	assert.True(t, isConfigFile("stages/demo.YML"))
	assert.False(t, isConfigFile("physics.yaml.swp"))
	assert.False(t, isConfigFile("notes.txt"))
}
