package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Noise backend names accepted in the terrain section.
const (
	NoiseSimplex = "simplex"
	NoisePerlin  = "perlin"
)

type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Window  WindowConfig  `yaml:"window"`
	Export  ExportConfig  `yaml:"export"`
}

type TerrainConfig struct {
	Seed   uint32  `yaml:"seed"`
	Width  int32   `yaml:"width"`
	Height int32   `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Noise  string  `yaml:"noise"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ExportConfig struct {
	GltfPath string `yaml:"gltf_path"`
}

// Default is the reference instance: a 16x32x16 chunk shaped by
// OpenSimplex noise, seed 1337, horizontal scale 16.
func Default() Config {
	return Config{
		Terrain: TerrainConfig{
			Seed:   1337,
			Width:  16,
			Height: 32,
			Scale:  16.0,
			Noise:  NoiseSimplex,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Voxel Terrain",
		},
	}
}

// Load reads a YAML config. A missing file is not an error, it just
// means defaults.
func Load(path string) (Config, error) {
	conf := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return conf, nil
	}
	if err != nil {
		return conf, errors.Wrapf(err, "read %s", path)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "parse %s", path)
	}
	if err := conf.validate(); err != nil {
		return conf, errors.Wrapf(err, "validate %s", path)
	}
	return conf, nil
}

func (c Config) validate() error {
	if c.Terrain.Noise != NoiseSimplex && c.Terrain.Noise != NoisePerlin {
		return errors.Errorf("unknown noise backend %q", c.Terrain.Noise)
	}
	if c.Terrain.Scale <= 0 {
		return errors.Errorf("terrain scale must be positive, got %v", c.Terrain.Scale)
	}
	return nil
}

// GetSeed returns the configured seed, overridable through the
// VOXEL_SEED environment variable.
func (t *TerrainConfig) GetSeed() uint32 {
	if env := os.Getenv("VOXEL_SEED"); env != "" {
		if seed, err := strconv.ParseUint(env, 10, 32); err == nil {
			return uint32(seed)
		}
	}
	return t.Seed
}
