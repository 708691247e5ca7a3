package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidChunk(t *testing.T, width, height int32) *Chunk {
	t.Helper()
	chunk, err := NewChunk(width, height)
	require.NoError(t, err)
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			for z := int32(0); z < width; z++ {
				chunk.SetBlock(x, y, z, NewBlock(Stone))
			}
		}
	}
	return chunk
}

func TestSingleIsolatedBlock(t *testing.T) {
	chunk := solidChunk(t, 1, 1)

	mesh, err := chunk.CreateMesh()
	require.NoError(t, err)

	// Eight corner vertices shared across all six faces, six indices
	// per face.
	assert.Len(t, mesh.Vertices, 8)
	assert.Len(t, mesh.Indices, 36)
	assert.Equal(t, 12, mesh.TriangleCount())
}

func TestSharedFaceIsCulled(t *testing.T) {
	chunk, err := NewChunk(2, 1)
	require.NoError(t, err)
	chunk.SetBlock(0, 0, 0, NewBlock(Stone))
	chunk.SetBlock(1, 0, 0, NewBlock(Stone))

	mesh, err := chunk.CreateMesh()
	require.NoError(t, err)

	// 6+6 faces minus the two that hide each other.
	assert.Len(t, mesh.Indices, 10*6)
	assert.Len(t, mesh.Vertices, 16)
}

func TestEnclosedBlockContributesNothing(t *testing.T) {
	chunk := solidChunk(t, 3, 3)

	mesh, err := chunk.CreateMesh()
	require.NoError(t, err)

	// The center block is hidden on all six sides, so only the 26
	// shell blocks emit vertices: 26*8. Visible faces are the 9 quads
	// on each of the cube's 6 sides.
	assert.Len(t, mesh.Vertices, 26*8)
	assert.Len(t, mesh.Indices, 54*6)
}

func TestFaceVisibilitySoundness(t *testing.T) {
	chunk, err := NewGenerator(NewSimplexSampler(1337), DefaultScale).Generate(16, 32)
	require.NoError(t, err)

	mesh, err := chunk.CreateMesh()
	require.NoError(t, err)

	wantFaces := 0
	wantEmittingBlocks := 0
	for y := int32(0); y < chunk.Height(); y++ {
		for x := int32(0); x < chunk.Width(); x++ {
			for z := int32(0); z < chunk.Width(); z++ {
				if chunk.GetBlock(x, y, z).IsAir() {
					continue
				}
				visible := 0
				for _, fn := range faceNeighbors {
					if !chunk.IsSolidAt(x+fn.dx, y+fn.dy, z+fn.dz) {
						visible++
					}
				}
				wantFaces += visible
				if visible > 0 {
					wantEmittingBlocks++
				}
			}
		}
	}

	assert.Equal(t, wantFaces*6, len(mesh.Indices), "one quad (six indices) per visible face")
	assert.Equal(t, wantEmittingBlocks*8, len(mesh.Vertices), "eight vertices per emitting block")
}

func TestIndexValidity(t *testing.T) {
	chunk, err := NewGenerator(NewSimplexSampler(1337), DefaultScale).Generate(16, 32)
	require.NoError(t, err)

	mesh, err := chunk.CreateMesh()
	require.NoError(t, err)

	require.NotEmpty(t, mesh.Indices)
	assert.Zero(t, len(mesh.Indices)%3, "indices always form whole triangles")
	for _, idx := range mesh.Indices {
		require.Less(t, int(idx), len(mesh.Vertices))
	}
}

func TestMeshIsDeterministic(t *testing.T) {
	build := func() *Mesh {
		chunk, err := NewGenerator(NewSimplexSampler(1337), DefaultScale).Generate(16, 32)
		require.NoError(t, err)
		mesh, err := chunk.CreateMesh()
		require.NoError(t, err)
		return mesh
	}

	require.Equal(t, build(), build(), "regenerating must reproduce vertex and index sequences exactly")
}

func TestMeshOverflow(t *testing.T) {
	// 66*66*2 blocks all touch the top or bottom boundary, so all of
	// them emit: 8712*8 vertices blows the 16-bit index space.
	chunk := solidChunk(t, 66, 2)

	mesh, err := chunk.CreateMesh()
	require.ErrorIs(t, err, ErrMeshOverflow)
	require.Nil(t, mesh, "no partial mesh on overflow")
}

func TestMeshExactlyFillsIndexSpace(t *testing.T) {
	// 64*64*2 emitting blocks are exactly MaxMeshVertices vertices;
	// the highest index is 65535 and still representable.
	chunk := solidChunk(t, 64, 2)

	mesh, err := chunk.CreateMesh()
	require.NoError(t, err)
	assert.Len(t, mesh.Vertices, MaxMeshVertices)
}
