package main

import (
	_ "embed"

	"github.com/voxelforge/terrain/engine/render"
)

var (
	//go:embed shader/terrain.vert
	terrainVertexShaderSource string

	//go:embed shader/terrain.frag
	terrainFragmentShaderSource string
)

func loadTerrainShader() *render.Shader {
	shader, err := render.NewShader(terrainVertexShaderSource, terrainFragmentShaderSource)
	if err != nil {
		panic(err)
	}
	return shader
}
