package util

import (
	"fmt"
	"math"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GlApplication owns the window and the frame loop. Update and draw
// logic is plugged in through the exported function fields.
type GlApplication struct {
	Window          *glfw.Window
	TerminateFunc   func()
	UpdateFunc      func(elapsed float64)
	DrawFunc        func(elapsed float64)
	KeyHandler      func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	MousePosHandler func(xpos float64, ypos float64)
	WindowWidth     int
	WindowHeight    int
	ticks           uint64
	FramesPerSecond float64
	FPSRunningAvg   float64
	FPSMin          float64
	FPSMax          float64
}

func (a *GlApplication) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if a.KeyHandler != nil {
		a.KeyHandler(key, scancode, action, mods)
	}
}

func (a *GlApplication) MousePosCallback(w *glfw.Window, xpos float64, ypos float64) {
	if a.MousePosHandler != nil {
		a.MousePosHandler(xpos, ypos)
	}
}

// Run drives the frame loop until the window closes. Every frame body
// executes on the main thread, which is where GLFW and OpenGL want to
// be called.
func (a *GlApplication) Run() {
	defer a.TerminateFunc()
	previousTime := glfw.GetTime()
	shouldQuit := false
	for !shouldQuit {
		mainthread.Call(func() {
			if a.Window.ShouldClose() {
				shouldQuit = true
			}

			gl.ClearColor(0.078, 0.078, 0.121, 1)
			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

			time := glfw.GetTime()
			elapsed := time - previousTime
			previousTime = time
			a.UpdateFunc(elapsed)

			a.DrawFunc(elapsed)

			a.FramesPerSecond = 1.0 / elapsed
			if a.ticks%60 == 0 {
				sixtyTicksAverage := a.FPSRunningAvg
				a.Window.SetTitle(fmt.Sprintf("FPS: %.0f (Avg: %.0f, Min: %.0f, Max: %.0f) / Elapsed: %.3f", a.FramesPerSecond, sixtyTicksAverage, a.FPSMin, a.FPSMax, elapsed*1000))
				a.FPSRunningAvg = a.FramesPerSecond * (1.0 / 60.0)
				a.FPSMin = math.MaxFloat64
				a.FPSMax = 0
			} else {
				a.FPSRunningAvg = a.FPSRunningAvg + a.FramesPerSecond*(1.0/60.0)
				if a.FramesPerSecond < a.FPSMin {
					a.FPSMin = a.FramesPerSecond
				}
				if a.FramesPerSecond > a.FPSMax {
					a.FPSMax = a.FramesPerSecond
				}
			}
			a.ticks++

			a.Window.SwapBuffers()
			glfw.PollEvents()
		})
	}
}

func InitOpenGL(title string, width, height int) (*glfw.Window, func()) {
	var win *glfw.Window
	glErr := glfw.Init()
	if glErr != nil {
		println("glfw: ", glErr.Error())
		panic(glErr)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var err error

	win, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // enable (1) vsync

	if err = gl.Init(); err != nil {
		panic(err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	LogGlInfo(fmt.Sprintf("OpenGL version %s", version))

	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.DEPTH_TEST)

	// The terrain mesh winds its front faces clockwise.
	gl.FrontFace(gl.CW)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	return win, func() {
		glfw.Terminate()
	}
}
