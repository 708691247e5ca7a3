package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type FaceType int32

const (
	XP FaceType = iota // +x, right
	XN                 // -x, left
	YP                 // +y, top
	YN                 // -y, bottom
	ZP                 // +z, back
	ZN                 // -z, front
)

// MaxMeshVertices is how many vertices the 16-bit index buffer can
// address. Widening the index type means changing this constant and
// the Mesh index type together.
const MaxMeshVertices = 1 << 16

// ErrMeshOverflow means the chunk produced more vertices than the
// index format can address. The build is abandoned as a whole, no
// partial mesh is returned.
var ErrMeshOverflow = errors.New("mesh exceeds 16-bit index space")

// Vertex matches the GPU vertex layout: three position floats
// followed by three color floats.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Mesh is the derived render artifact. Every index is below
// len(Vertices), which never exceeds MaxMeshVertices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// baseIndices holds the two clockwise-front triangles of each face as
// offsets into a block's eight corner vertices (front quad 0-3, back
// quad 4-7, see blockCorners).
var baseIndices = [6][6]uint16{
	XP: {1, 4, 2, 2, 4, 7},
	XN: {5, 0, 6, 6, 0, 3},
	YP: {3, 2, 6, 6, 2, 7},
	YN: {5, 4, 0, 0, 4, 1},
	ZP: {4, 5, 7, 7, 5, 6},
	ZN: {0, 1, 3, 3, 1, 2},
}

// faceNeighbors lists the faces in emission order together with the
// grid step towards the cell that would hide them.
var faceNeighbors = [6]struct {
	face       FaceType
	dx, dy, dz int32
}{
	{ZP, 0, 0, 1},
	{ZN, 0, 0, -1},
	{XP, 1, 0, 0},
	{XN, -1, 0, 0},
	{YP, 0, 1, 0},
	{YN, 0, -1, 0},
}

// CreateMesh walks the grid y-outer, then x, then z, and emits every
// visible face of every stone block exactly once. A face is visible
// unless the neighbouring cell in its direction is inside the grid
// and solid. The traversal and emission orders are fixed, so repeated
// builds of the same grid are byte-identical.
func (c *Chunk) CreateMesh() (*Mesh, error) {
	mesh := &Mesh{}
	for y := int32(0); y < c.height; y++ {
		for x := int32(0); x < c.width; x++ {
			for z := int32(0); z < c.width; z++ {
				if c.GetBlock(x, y, z).IsAir() {
					continue
				}
				if err := c.appendBlock(mesh, x, y, z); err != nil {
					return nil, errors.Wrapf(err, "block (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
	return mesh, nil
}

// appendBlock emits the block's visible faces, or nothing at all when
// every face is hidden. Skipping vertex emission for fully enclosed
// blocks keeps unreferenced vertices out of the buffer.
func (c *Chunk) appendBlock(mesh *Mesh, x, y, z int32) error {
	var visible [6]FaceType
	visibleCount := 0
	for _, fn := range faceNeighbors {
		if c.IsSolidAt(x+fn.dx, y+fn.dy, z+fn.dz) {
			continue
		}
		visible[visibleCount] = fn.face
		visibleCount++
	}
	if visibleCount == 0 {
		return nil
	}

	base := len(mesh.Vertices)
	if base+8 > MaxMeshVertices {
		return ErrMeshOverflow
	}
	for i := 0; i < visibleCount; i++ {
		for _, idx := range baseIndices[visible[i]] {
			mesh.Indices = append(mesh.Indices, idx+uint16(base))
		}
	}
	mesh.Vertices = append(mesh.Vertices, c.blockCorners(base, x, y, z)...)
	return nil
}

// blockCorners returns the block's eight corner vertices, front quad
// first. The color is a debug gradient over the emission order, red
// on the front group and blue on the back group. Cosmetic, but
// deterministic for a given grid.
func (c *Chunk) blockCorners(base int, x, y, z int32) []Vertex {
	shade := float32(base) / float32(int(c.height)*int(c.width)*36*8)

	px := float32(x) * 2 * HalfBlockSize
	py := float32(y) * 2 * HalfBlockSize
	pz := float32(z) * 2 * HalfBlockSize

	front := mgl32.Vec3{shade, 0, 0}
	back := mgl32.Vec3{0, 0, shade}

	return []Vertex{
		{Position: mgl32.Vec3{px - HalfBlockSize, py - HalfBlockSize, pz - HalfBlockSize}, Color: front},
		{Position: mgl32.Vec3{px + HalfBlockSize, py - HalfBlockSize, pz - HalfBlockSize}, Color: front},
		{Position: mgl32.Vec3{px + HalfBlockSize, py + HalfBlockSize, pz - HalfBlockSize}, Color: front},
		{Position: mgl32.Vec3{px - HalfBlockSize, py + HalfBlockSize, pz - HalfBlockSize}, Color: front},
		{Position: mgl32.Vec3{px + HalfBlockSize, py - HalfBlockSize, pz + HalfBlockSize}, Color: back},
		{Position: mgl32.Vec3{px - HalfBlockSize, py - HalfBlockSize, pz + HalfBlockSize}, Color: back},
		{Position: mgl32.Vec3{px - HalfBlockSize, py + HalfBlockSize, pz + HalfBlockSize}, Color: back},
		{Position: mgl32.Vec3{px + HalfBlockSize, py + HalfBlockSize, pz + HalfBlockSize}, Color: back},
	}
}
