package voxel

// DefaultScale is the horizontal stretch of the height field: column
// coordinates are divided by it before sampling, so larger values
// give gentler slopes.
const DefaultScale = 16.0

// Generator shapes chunks from a height field, heightmap style: one
// surface per column, everything at or below the sampled height is
// stone, everything above is air. No caves, no overhangs.
type Generator struct {
	sampler HeightSampler
	scale   float64
}

func NewGenerator(sampler HeightSampler, scale float64) *Generator {
	return &Generator{sampler: sampler, scale: scale}
}

// Generate builds a fully populated chunk. The comparison
// float64(y) > signal stays well-defined when the signal dips below
// zero (fully air column) or beyond the chunk top (fully stone
// column).
func (g *Generator) Generate(width, height int32) (*Chunk, error) {
	chunk, err := NewChunk(width, height)
	if err != nil {
		return nil, err
	}
	for x := int32(0); x < width; x++ {
		for z := int32(0); z < width; z++ {
			signal := g.sampler.Sample(float64(x)/g.scale, float64(z)/g.scale) * float64(height)
			for y := int32(0); y < height; y++ {
				if float64(y) > signal {
					chunk.SetBlock(x, y, z, NewAirBlock())
				} else {
					chunk.SetBlock(x, y, z, NewBlock(Stone))
				}
			}
		}
	}
	return chunk, nil
}
