package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplexSamplerIsDeterministic(t *testing.T) {
	a := NewSimplexSampler(1337)
	b := NewSimplexSampler(1337)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			fx, fz := float64(x)/16.0, float64(z)/16.0
			assert.Equal(t, a.Sample(fx, fz), b.Sample(fx, fz), "(%v,%v)", fx, fz)
		}
	}
}

func TestSimplexSamplerSeedsDiffer(t *testing.T) {
	a := NewSimplexSampler(1337)
	b := NewSimplexSampler(42)
	differs := false
	for x := 0; x < 16 && !differs; x++ {
		for z := 0; z < 16; z++ {
			fx, fz := float64(x)/16.0, float64(z)/16.0
			if a.Sample(fx, fz) != b.Sample(fx, fz) {
				differs = true
				break
			}
		}
	}
	assert.True(t, differs, "different seeds should produce different fields")
}

func TestSimplexSamplerStaysInRange(t *testing.T) {
	s := NewSimplexSampler(99)
	for x := -32; x < 32; x++ {
		for z := -32; z < 32; z++ {
			v := s.Sample(float64(x)/7.3, float64(z)/7.3)
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestPerlinSamplerIsDeterministic(t *testing.T) {
	a := NewPerlinSampler(1337)
	b := NewPerlinSampler(1337)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			fx, fz := float64(x)/16.0, float64(z)/16.0
			assert.Equal(t, a.Sample(fx, fz), b.Sample(fx, fz), "(%v,%v)", fx, fz)
		}
	}
}
