package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
terrain:
  seed: 99
  width: 8
  height: 16
  scale: 8.0
  noise: perlin
window:
  title: Test Window
`), 0644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(99), conf.Terrain.Seed)
	assert.Equal(t, int32(8), conf.Terrain.Width)
	assert.Equal(t, int32(16), conf.Terrain.Height)
	assert.Equal(t, NoisePerlin, conf.Terrain.Noise)
	assert.Equal(t, "Test Window", conf.Window.Title)
	// Untouched keys keep their defaults.
	assert.Equal(t, 800, conf.Window.Width)
}

func TestLoadRejectsUnknownNoiseBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terrain:\n  noise: worley\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worley")
}

func TestGetSeedEnvFallback(t *testing.T) {
	terrain := Default().Terrain
	assert.Equal(t, uint32(1337), terrain.GetSeed())

	t.Setenv("VOXEL_SEED", "7777")
	assert.Equal(t, uint32(7777), terrain.GetSeed())

	t.Setenv("VOXEL_SEED", "not-a-number")
	assert.Equal(t, uint32(1337), terrain.GetSeed())
}
