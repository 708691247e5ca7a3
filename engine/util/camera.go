package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FPSCamera is a free-flying first person camera: yaw/pitch from the
// mouse, planar movement from the keyboard.
type FPSCamera struct {
	position        mgl32.Vec3
	cameraFront     mgl32.Vec3
	cameraRight     mgl32.Vec3
	cameraUp        mgl32.Vec3
	rotatex         float32
	rotatey         float32
	lookSensitivity float32
	fov             float32
	nearPlane       float32
	farPlane        float32
	windowWidth     int
	windowHeight    int
}

func NewFPSCamera(pos mgl32.Vec3, windowWidth, windowHeight int) *FPSCamera {
	c := &FPSCamera{
		position:        pos,
		lookSensitivity: 0.08,
		rotatex:         90, // facing +z
		rotatey:         -20,
		fov:             45,
		nearPlane:       0.15,
		farPlane:        100.0,
		windowWidth:     windowWidth,
		windowHeight:    windowHeight,
	}
	c.updateAngles()
	return c
}

func (c *FPSCamera) GetPosition() mgl32.Vec3 {
	return c.position
}

func (c *FPSCamera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

func (c *FPSCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.cameraFront), c.cameraUp)
}

func (c *FPSCamera) GetProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.windowWidth) / float32(c.windowHeight)
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.nearPlane, c.farPlane)
}

func (c *FPSCamera) GetProjectionViewMatrix() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

// ChangeAngles applies a mouse delta to yaw and pitch. Pitch is
// clamped short of the poles to keep the view matrix well-defined.
func (c *FPSCamera) ChangeAngles(dx, dy float32) {
	c.rotatex += dx * c.lookSensitivity
	c.rotatey += dy * c.lookSensitivity
	if c.rotatey > 89 {
		c.rotatey = 89
	}
	if c.rotatey < -89 {
		c.rotatey = -89
	}
	c.updateAngles()
}

// MoveInDirection moves on the view plane: dir[0] strafes, dir[1]
// goes forward or backward.
func (c *FPSCamera) MoveInDirection(delta float32, dir [2]int) {
	moveVector := mgl32.Vec3{0, 0, 0}
	if dir[0] != 0 {
		moveVector = moveVector.Add(c.cameraRight.Mul(float32(dir[0]) * delta))
	}
	if dir[1] != 0 {
		moveVector = moveVector.Add(c.cameraFront.Mul(float32(dir[1]) * delta))
	}
	c.position = c.position.Add(moveVector)
}

func (c *FPSCamera) updateAngles() {
	yaw := float64(mgl32.DegToRad(c.rotatex))
	pitch := float64(mgl32.DegToRad(c.rotatey))
	front := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}
	c.cameraFront = front.Normalize()
	worldUp := mgl32.Vec3{0, 1, 0}
	c.cameraRight = c.cameraFront.Cross(worldUp).Normalize()
	c.cameraUp = c.cameraRight.Cross(c.cameraFront).Normalize()
}
