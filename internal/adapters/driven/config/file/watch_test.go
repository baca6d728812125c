package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[match]\nengine = \"builtin\"\n"), 0o600))

	store, err := NewConfigStoreAt(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloaded, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[match]\nengine = \"fzf\"\n"), 0o600))

	select {
	case <-reloaded:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for config reload")
	}
	// a truncating write can surface as more than one event
	assert.Eventually(t, func() bool {
		return store.GetString("match.engine") == "fzf"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConfigStore_WatchClosesOnCancel(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloaded, err := store.Watch(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-reloaded:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestConfigStore_WatchMissingDirectory(t *testing.T) {
	store, err := NewConfigStoreAt(filepath.Join(t.TempDir(), "missing", "config.toml"))
	require.NoError(t, err)

	_, err = store.Watch(context.Background())

	assert.Error(t, err)
}

func TestConfigStore_Affects(t *testing.T) {
	store := &ConfigStore{filePath: "/tmp/skym/config.toml"}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: "/tmp/skym/config.toml", Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: "/tmp/skym/config.toml", Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: "/tmp/skym/config.toml", Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: "/tmp/skym/config.toml", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/tmp/skym/other.toml", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.affects(tt.event))
		})
	}
}
