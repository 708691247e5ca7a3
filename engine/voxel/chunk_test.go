package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChunkRejectsBadExtents(t *testing.T) {
	for _, extents := range [][2]int32{{0, 32}, {16, 0}, {-1, 32}, {16, -4}, {0, 0}} {
		chunk, err := NewChunk(extents[0], extents[1])
		require.ErrorIs(t, err, ErrInvalidExtents, "extents %v", extents)
		require.Nil(t, chunk)
	}
}

func TestChunkBlockRoundTrip(t *testing.T) {
	chunk, err := NewChunk(4, 8)
	require.NoError(t, err)

	assert.True(t, chunk.GetBlock(3, 7, 2).IsAir(), "fresh chunks start out as air")

	chunk.SetBlock(3, 7, 2, NewBlock(Stone))
	assert.Equal(t, Stone, chunk.GetBlock(3, 7, 2).Type)
	assert.True(t, chunk.GetBlock(2, 7, 3).IsAir(), "neighbour cells stay untouched")
}

func TestChunkContains(t *testing.T) {
	chunk, err := NewChunk(4, 8)
	require.NoError(t, err)

	assert.True(t, chunk.Contains(0, 0, 0))
	assert.True(t, chunk.Contains(3, 7, 3))
	assert.False(t, chunk.Contains(4, 0, 0))
	assert.False(t, chunk.Contains(0, 8, 0))
	assert.False(t, chunk.Contains(0, 0, 4))
	assert.False(t, chunk.Contains(-1, 0, 0))
}

func TestIsSolidAtTreatsOutOfBoundsAsAir(t *testing.T) {
	chunk, err := NewChunk(2, 2)
	require.NoError(t, err)
	chunk.SetBlock(0, 0, 0, NewBlock(Stone))

	assert.True(t, chunk.IsSolidAt(0, 0, 0))
	assert.False(t, chunk.IsSolidAt(1, 0, 0), "air cell")
	assert.False(t, chunk.IsSolidAt(-1, 0, 0), "beyond the chunk is open air")
	assert.False(t, chunk.IsSolidAt(0, -1, 0))
	assert.False(t, chunk.IsSolidAt(0, 0, 2))
}

func TestIsActiveDoesNotAffectSolidity(t *testing.T) {
	chunk, err := NewChunk(2, 2)
	require.NoError(t, err)
	chunk.SetBlock(0, 0, 0, Block{IsActive: true, Type: Air})
	chunk.SetBlock(1, 0, 0, Block{IsActive: false, Type: Stone})

	assert.False(t, chunk.IsSolidAt(0, 0, 0))
	assert.True(t, chunk.IsSolidAt(1, 0, 0))
}
