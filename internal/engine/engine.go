package engine

import (
	"errors"
	"runtime"

	"Terra3D/internal/anim"
	"Terra3D/internal/assets"
	"Terra3D/internal/logger"
	"Terra3D/internal/renderer"
	"Terra3D/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// ErrNoSurface means the window or GL context could not be created; nothing
// renders and Run returns early.
var ErrNoSurface = errors.New("no rendering surface")

type Terra struct {
	Width  int32
	Height int32
	Title  string

	window      *glfw.Window
	rendererAPI *renderer.OpenGLRenderer
	scene       *scene.Scene
	entrance    *anim.Timeline
}

func New() *Terra {
	logger.Init()
	logger.Log.Info("Terra3D initializing...")
	return &Terra{
		Width:       1024,
		Height:      768,
		Title:       "Terra3D",
		rendererAPI: renderer.NewOpenGLRenderer(),
	}
}

// Run owns the program from window creation to shutdown: fetch the texture
// batch, build the scene once, then loop until the window closes. x, y is
// the initial window position.
func (t *Terra) Run(x, y int) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return ErrNoSurface
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(t.Width), int(t.Height), t.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create window", zap.Error(err))
		return ErrNoSurface
	}
	t.window = window
	window.MakeContextCurrent()
	window.SetPos(x, y)

	if err := t.rendererAPI.Init(t.Width, t.Height); err != nil {
		logger.Log.Error("Renderer initialization failed", zap.Error(err))
		return ErrNoSurface
	}

	// The scene builder never runs before every texture future has settled;
	// LoadAll blocks until the whole batch is done, success or failure.
	set := assets.LoadAll(scene.Manifest())
	t.scene = scene.Build(t.Width, t.Height, set)

	for _, model := range t.scene.Models {
		t.rendererAPI.AddModel(model)
	}
	t.rendererAPI.AddOverlay(t.scene.NavBar)
	t.rendererAPI.AddOverlay(t.scene.Title)

	window.SetCursorPosCallback(t.mouseCallback)

	t.entrance = anim.NewEntrance(t.scene)

	t.renderLoop()
	t.rendererAPI.Cleanup()
	return nil
}

func (t *Terra) renderLoop() {
	lastTime := glfw.GetTime()
	lastWidth, lastHeight := t.Width, t.Height

	for !t.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := float32(currentTime - lastTime)
		lastTime = currentTime

		actualWidth, actualHeight := t.window.GetSize()
		t.Width, t.Height = int32(actualWidth), int32(actualHeight)
		if t.Width != lastWidth || t.Height != lastHeight {
			t.handleResize(t.Width, t.Height)
			lastWidth, lastHeight = t.Width, t.Height
		}

		t.scene.Controls.Update(deltaTime)

		// Fixed per-frame increments; rotation speed follows the
		// display refresh rate.
		t.scene.Group.RotateY(scene.GroupRotationStep)
		if t.scene.Clouds != nil {
			t.scene.Clouds.Rotate(0, scene.CloudRotationStep, 0)
		}

		viewVector := t.scene.Camera.Position.Sub(t.scene.Glow.Position)
		t.scene.Glow.SetUniform("viewVector", viewVector)

		t.entrance.Update(deltaTime)

		t.rendererAPI.Render(t.scene.Camera, t.scene.Lights)

		t.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// handleResize keeps projection, viewport and the full-width overlays in step
// with the window. Idempotent; no debouncing.
func (t *Terra) handleResize(width, height int32) {
	if height == 0 {
		return
	}
	t.rendererAPI.UpdateViewport(width, height)
	t.scene.Camera.SetAspectRatio(float32(width) / float32(height))
	t.scene.NavBar.Width = float32(width)
	t.scene.Title.X = float32(width)/2 - t.scene.Title.Width/2
}

// Dragging with the left button orbits the camera; everything else is
// ignored (zoom and pan stay disabled on the controls).
func (t *Terra) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	pressed := w.GetAttrib(glfw.Focused) == glfw.True &&
		w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	t.scene.Controls.HandleMouseMove(xpos, ypos, pressed)
}
