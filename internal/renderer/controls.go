package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitControls swings the camera around a fixed target. Configured for the
// globe scene: rotation only (zoom and pan stay disabled), damped drag, and a
// slow constant auto-rotation that keeps going with no input.
type OrbitControls struct {
	Target mgl32.Vec3
	Radius float32
	Yaw    float32 // radians around Y
	Pitch  float32 // radians above the equator

	RotateSpeed     float32
	DampingFactor   float32 // fraction of velocity kept each frame, e.g. 0.95
	AutoRotate      bool
	AutoRotateSpeed float32 // radians per second
	EnableZoom      bool
	EnablePan       bool

	MinPitch float32
	MaxPitch float32

	yawVelocity   float32
	pitchVelocity float32
	lastX, lastY  float64
	firstMouse    bool

	camera *Camera
}

func NewOrbitControls(camera *Camera, radius float32) *OrbitControls {
	oc := &OrbitControls{
		Target:          mgl32.Vec3{0, 0, 0},
		Radius:          radius,
		RotateSpeed:     0.005,
		DampingFactor:   0.92,
		AutoRotate:      true,
		AutoRotateSpeed: 0.15,
		EnableZoom:      false,
		EnablePan:       false,
		MinPitch:        -1.45,
		MaxPitch:        1.45,
		firstMouse:      true,
		camera:          camera,
	}
	oc.Apply()
	return oc
}

// HandleMouseMove feeds a cursor position into the controller. Movement only
// registers while pressed; the first sample after a press is swallowed so the
// camera does not jump.
func (oc *OrbitControls) HandleMouseMove(x, y float64, pressed bool) {
	if !pressed {
		oc.firstMouse = true
		return
	}
	if oc.firstMouse {
		oc.lastX, oc.lastY = x, y
		oc.firstMouse = false
		return
	}
	dx := float32(x-oc.lastX) * oc.RotateSpeed
	dy := float32(y-oc.lastY) * oc.RotateSpeed
	oc.lastX, oc.lastY = x, y

	oc.yawVelocity -= dx
	oc.pitchVelocity += dy
}

// Zoom is disabled for this scene; the call is accepted and ignored.
func (oc *OrbitControls) Zoom(delta float32) {
	if !oc.EnableZoom {
		return
	}
	oc.Radius -= delta
}

// Pan is disabled for this scene; the call is accepted and ignored.
func (oc *OrbitControls) Pan(dx, dy float32) {
	if !oc.EnablePan {
		return
	}
	oc.Target = oc.Target.Add(mgl32.Vec3{dx, dy, 0})
}

// Update advances damping and auto-rotation, then repositions the camera.
func (oc *OrbitControls) Update(deltaTime float32) {
	if oc.AutoRotate {
		oc.Yaw += oc.AutoRotateSpeed * deltaTime
	}

	oc.Yaw += oc.yawVelocity
	oc.Pitch += oc.pitchVelocity
	oc.yawVelocity *= oc.DampingFactor
	oc.pitchVelocity *= oc.DampingFactor

	oc.Pitch = mgl32.Clamp(oc.Pitch, oc.MinPitch, oc.MaxPitch)

	oc.Apply()
}

// Apply writes the spherical position through to the camera.
func (oc *OrbitControls) Apply() {
	if oc.camera == nil {
		return
	}
	cosPitch := float32(math.Cos(float64(oc.Pitch)))
	position := mgl32.Vec3{
		float32(math.Sin(float64(oc.Yaw))) * cosPitch * oc.Radius,
		float32(math.Sin(float64(oc.Pitch))) * oc.Radius,
		float32(math.Cos(float64(oc.Yaw))) * cosPitch * oc.Radius,
	}
	oc.camera.Position = oc.Target.Add(position)
	oc.camera.LookAt(oc.Target)
}
