package voxel

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// HeightSampler is a coherent 2D noise source: nearby inputs yield
// nearby outputs, values stay roughly within [-1, 1], and the same
// seed reproduces the same field on every run and platform.
type HeightSampler interface {
	Sample(x, z float64) float64
}

// SimplexSampler samples OpenSimplex noise, the backend the terrain
// was designed against.
type SimplexSampler struct {
	noise opensimplex.Noise
}

func NewSimplexSampler(seed uint32) *SimplexSampler {
	return &SimplexSampler{noise: opensimplex.New(int64(seed))}
}

func (s *SimplexSampler) Sample(x, z float64) float64 {
	return s.noise.Eval2(x, z)
}

// Perlin parameters: smoothing, frequency and octave count.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// PerlinSampler is an alternative HeightSampler backend producing a
// slightly harsher height field than OpenSimplex.
type PerlinSampler struct {
	noise *perlin.Perlin
}

func NewPerlinSampler(seed uint32) *PerlinSampler {
	return &PerlinSampler{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, int64(seed))}
}

func (p *PerlinSampler) Sample(x, z float64) float64 {
	return p.noise.Noise2D(x, z)
}
