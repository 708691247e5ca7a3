package render

import (
	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/voxelforge/terrain/engine/voxel"
)

// SizeOfFloat32 and SizeOfUint16 are the byte widths backing the
// buffer layout below.
const (
	SizeOfFloat32 = 4
	SizeOfUint16  = 2
)

// floatsPerVertex: three position floats, three color floats,
// interleaved.
const floatsPerVertex = 6

// MeshBuffer owns the GPU-side copy of a chunk mesh: one vertex array
// with an interleaved position/color buffer and a 16-bit element
// buffer. Construct it on the main thread with a current GL context.
type MeshBuffer struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

func NewMeshBuffer(mesh *voxel.Mesh) *MeshBuffer {
	flat := make([]float32, 0, len(mesh.Vertices)*floatsPerVertex)
	for _, v := range mesh.Vertices {
		flat = append(flat, v.Position.X(), v.Position.Y(), v.Position.Z(), v.Color.X(), v.Color.Y(), v.Color.Z())
	}

	b := &MeshBuffer{indexCount: int32(len(mesh.Indices))}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(flat)*SizeOfFloat32, gl.Ptr(flat), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*SizeOfUint16, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * SizeOfFloat32)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*SizeOfFloat32)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return b
}

func (b *MeshBuffer) TriangleCount() int {
	return int(b.indexCount) / 3
}

func (b *MeshBuffer) Draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_SHORT, gl.Ptr(nil))
	gl.BindVertexArray(0)
}

func (b *MeshBuffer) Release() {
	mainthread.CallNonBlock(func() {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
	})
}
