package export

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxelforge/terrain/engine/voxel"
)

// SaveGLTF writes the mesh as a glTF document with POSITION and
// COLOR_0 attributes, mirroring the renderer's vertex layout. Handy
// for inspecting a build in any glTF viewer without a GPU attached.
func SaveGLTF(mesh *voxel.Mesh, filename string) error {
	if len(mesh.Vertices) == 0 {
		return errors.New("refusing to export an empty mesh")
	}

	positions := make([][3]float32, len(mesh.Vertices))
	colors := make([][3]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
		colors[i] = v.Color
	}

	doc := gltf.NewDocument()
	positionAccessor := modeler.WritePosition(doc, positions)
	colorAccessor := modeler.WriteColor(doc, colors)
	indexAccessor := modeler.WriteIndices(doc, mesh.Indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "chunk",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indexAccessor),
			Attributes: map[string]uint32{
				gltf.POSITION: positionAccessor,
				gltf.COLOR_0:  colorAccessor,
			},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: "terrain",
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	if err := gltf.Save(doc, filename); err != nil {
		return errors.Wrapf(err, "save %s", filename)
	}
	return nil
}
