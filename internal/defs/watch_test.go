package defs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsContentFile(t *testing.T) {
	assert.True(t, isContentFile("content/waves.yaml"))
	assert.True(t, isContentFile("MAPS.YML"))
	assert.False(t, isContentFile("notes.txt"))
	assert.False(t, isContentFile("waves.yaml.swp"))
}

func TestWatcher_ReportsContentChange(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, WavesFile), []byte("[]"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, WavesFile, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for a changed content file")
	}

	// create и write одного файла попадают в одно окно debounce
	select {
	case name := <-w.Events:
		t.Fatalf("unexpected second event for %q", name)
	case <-time.After(reloadDebounce / 2):
	}
}

func TestWatcher_CloseEndsEvents(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Events not closed after Close")
	}
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
