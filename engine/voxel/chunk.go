package voxel

import (
	"github.com/pkg/errors"
)

// ErrInvalidExtents is returned when a chunk is requested with
// non-positive dimensions.
var ErrInvalidExtents = errors.New("chunk extents must be positive")

// Chunk is a fixed-extent block grid, width x height x width cells,
// stored flat with index x + z*width + y*width*width. Extents are set
// at construction and never change.
type Chunk struct {
	width  int32
	height int32
	blocks []Block
}

func NewChunk(width, height int32) (*Chunk, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidExtents, "requested %dx%d", width, height)
	}
	return &Chunk{
		width:  width,
		height: height,
		blocks: make([]Block, int(width)*int(height)*int(width)),
	}, nil
}

func (c *Chunk) Width() int32 {
	return c.width
}

func (c *Chunk) Height() int32 {
	return c.height
}

func (c *Chunk) blockIndex(x, y, z int32) int32 {
	return x + z*c.width + y*c.width*c.width
}

func (c *Chunk) Contains(x, y, z int32) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height && z >= 0 && z < c.width
}

func (c *Chunk) GetBlock(x, y, z int32) Block {
	return c.blocks[c.blockIndex(x, y, z)]
}

func (c *Chunk) SetBlock(x, y, z int32, block Block) {
	c.blocks[c.blockIndex(x, y, z)] = block
}

// IsSolidAt treats out-of-bounds cells as air, so faces on the chunk
// boundary always render. With a single chunk that is the wanted
// behaviour; a multi-chunk world would have to consult the
// neighbouring chunk's grid here instead.
func (c *Chunk) IsSolidAt(x, y, z int32) bool {
	return c.Contains(x, y, z) && !c.blocks[c.blockIndex(x, y, z)].IsAir()
}
