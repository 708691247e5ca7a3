package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/faiface/mainthread"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelforge/terrain/engine/config"
	"github.com/voxelforge/terrain/engine/export"
	"github.com/voxelforge/terrain/engine/render"
	"github.com/voxelforge/terrain/engine/util"
	"github.com/voxelforge/terrain/engine/voxel"
)

const moveSpeed = 4.0

type TerrainApp struct {
	*util.GlApplication
	camera     *util.FPSCamera
	shader     *render.Shader
	terrain    *render.MeshBuffer
	moveDir    [2]int
	lastMouseX float64
	lastMouseY float64
	mouseMoved bool
}

func runGame() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	seedOverride := flag.Uint64("seed", 0, "terrain seed, overrides config when non-zero")
	exportPath := flag.String("export", "", "write the mesh as glTF to this path and exit")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		util.LogSystemError(err.Error())
		os.Exit(1)
	}
	if *seedOverride != 0 {
		conf.Terrain.Seed = uint32(*seedOverride)
	}

	mesh := buildTerrain(conf.Terrain)

	gltfPath := conf.Export.GltfPath
	if *exportPath != "" {
		gltfPath = *exportPath
	}
	if gltfPath != "" {
		if err := export.SaveGLTF(mesh, gltfPath); err != nil {
			util.LogIOError(err.Error())
			os.Exit(1)
		}
		util.LogSystemInfo(fmt.Sprintf("Wrote %s", gltfPath))
		return
	}

	app := newTerrainApp(conf, mesh)
	app.Run()
}

// buildTerrain runs the whole generation pipeline: noise -> block
// grid -> mesh. It happens once, before the window even opens, and
// the resulting mesh is immutable from here on.
func buildTerrain(terrain config.TerrainConfig) *voxel.Mesh {
	seed := terrain.GetSeed()

	var sampler voxel.HeightSampler
	switch terrain.Noise {
	case config.NoisePerlin:
		sampler = voxel.NewPerlinSampler(seed)
	default:
		sampler = voxel.NewSimplexSampler(seed)
	}

	chunk, err := voxel.NewGenerator(sampler, terrain.Scale).Generate(terrain.Width, terrain.Height)
	if err != nil {
		util.LogVoxelError(err.Error())
		os.Exit(1)
	}
	mesh, err := chunk.CreateMesh()
	if err != nil {
		util.LogVoxelError(err.Error())
		os.Exit(1)
	}
	util.LogVoxelInfo(fmt.Sprintf("Sending to GPU: %d vertices and %d indices", len(mesh.Vertices), len(mesh.Indices)))
	return mesh
}

func newTerrainApp(conf config.Config, mesh *voxel.Mesh) *TerrainApp {
	width := conf.Window.Width
	height := conf.Window.Height

	app := &TerrainApp{}
	mainthread.Call(func() {
		window, terminateFunc := util.InitOpenGL(conf.Window.Title, width, height)
		app.GlApplication = &util.GlApplication{
			WindowWidth:   width,
			WindowHeight:  height,
			Window:        window,
			TerminateFunc: terminateFunc,
		}
		window.SetKeyCallback(app.KeyCallback)
		window.SetCursorPosCallback(app.MousePosCallback)
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

		app.shader = loadTerrainShader()
		app.terrain = render.NewMeshBuffer(mesh)
		util.CheckForGLError()
	})

	// Start behind and above the chunk, looking down onto it.
	chunkCenter := float32(conf.Terrain.Width) * voxel.HalfBlockSize
	app.camera = util.NewFPSCamera(mgl32.Vec3{chunkCenter, float32(conf.Terrain.Height) * voxel.HalfBlockSize, -6}, width, height)

	app.UpdateFunc = app.Update
	app.DrawFunc = app.Draw
	app.KeyHandler = app.handleKeyEvents
	app.MousePosHandler = app.handleMousePosEvents
	return app
}

func (a *TerrainApp) Update(elapsed float64) {
	if a.moveDir[0] != 0 || a.moveDir[1] != 0 {
		a.camera.MoveInDirection(float32(elapsed)*moveSpeed, a.moveDir)
	}
}

func (a *TerrainApp) Draw(elapsed float64) {
	a.shader.Begin()
	a.shader.SetUniformMat4("projection", a.camera.GetProjectionMatrix())
	a.shader.SetUniformMat4("view", a.camera.GetViewMatrix())
	a.terrain.Draw()
	a.shader.End()
}

func (a *TerrainApp) handleKeyEvents(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		a.Window.SetShouldClose(true)
		return
	}

	pressed := action != glfw.Release
	switch key {
	case glfw.KeyW:
		a.setMove(&a.moveDir[1], 1, pressed)
	case glfw.KeyS:
		a.setMove(&a.moveDir[1], -1, pressed)
	case glfw.KeyD:
		a.setMove(&a.moveDir[0], 1, pressed)
	case glfw.KeyA:
		a.setMove(&a.moveDir[0], -1, pressed)
	}
}

func (a *TerrainApp) setMove(axis *int, dir int, pressed bool) {
	if pressed {
		*axis = dir
	} else if *axis == dir {
		*axis = 0
	}
}

func (a *TerrainApp) handleMousePosEvents(xpos float64, ypos float64) {
	if !a.mouseMoved {
		a.lastMouseX, a.lastMouseY = xpos, ypos
		a.mouseMoved = true
		return
	}
	dx := float32(xpos - a.lastMouseX)
	dy := float32(a.lastMouseY - ypos)
	a.lastMouseX, a.lastMouseY = xpos, ypos
	a.camera.ChangeAngles(dx, dy)
}
