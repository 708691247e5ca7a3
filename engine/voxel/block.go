package voxel

// BlockType identifies what occupies a cell. Air is the empty sentinel
// every visibility test compares against.
type BlockType uint8

const (
	Air BlockType = iota
	Stone
)

// HalfBlockSize is half the edge length of a block in world units.
// Block centers sit 2*HalfBlockSize apart on every axis.
const HalfBlockSize float32 = 0.25

// Block is one cell of a chunk. A block occupies space iff its Type is
// not Air. IsActive is reserved for gameplay state and has no effect
// on meshing.
type Block struct {
	IsActive bool
	Type     BlockType
}

func NewAirBlock() Block {
	return Block{Type: Air}
}

func NewBlock(blockType BlockType) Block {
	return Block{Type: blockType}
}

func (b Block) IsAir() bool {
	return b.Type == Air
}
