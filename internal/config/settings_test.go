package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
logLevel: debug
seed: 42
storage:
  path: /tmp/saves.db
  slot: slot3
game:
  speed: 2
  startMap: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "social_defense.yaml"), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "/tmp/saves.db", s.Storage.Path)
	assert.Equal(t, "slot3", s.Storage.Slot)
	assert.Equal(t, 2.0, s.Game.Speed)
	assert.Equal(t, 1, s.Game.StartMap)
	assert.Equal(t, "debug", GetString("logLevel"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, int64(0), s.Seed)
	assert.Equal(t, "", s.ContentDir)
	assert.False(t, s.WatchContent)
	assert.Equal(t, "./social_defense.db", s.Storage.Path)
	assert.Equal(t, "slot1", s.Storage.Slot)
	assert.Equal(t, 1.0, s.Game.Speed)
	assert.Equal(t, -1, s.Game.StartMap)
	assert.True(t, s.Game.Autosave)
}

func TestLoad_InvalidSpeedFallsBack(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "social_defense.yaml"), []byte("game:\n  speed: 3\n"), 0644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Game.Speed)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "social_defense.yaml"), []byte("logLevel: [unclosed"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
