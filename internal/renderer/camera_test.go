package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}

	expected := float32(800) / float32(600)
	if cam.AspectRatio != expected {
		t.Errorf("Expected aspect ratio %f, got %f", expected, cam.AspectRatio)
	}
}

func TestCameraSetAspectRatio(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	before := cam.Projection

	cam.SetAspectRatio(1920.0 / 1080.0)

	if cam.AspectRatio != 1920.0/1080.0 {
		t.Errorf("Expected aspect ratio %f, got %f", 1920.0/1080.0, cam.AspectRatio)
	}
	if cam.Projection == before {
		t.Error("Projection should be rebuilt when the aspect ratio changes")
	}
}

func TestCameraResizeIsIdempotent(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	cam.SetAspectRatio(2.0)
	first := cam.Projection
	cam.SetAspectRatio(2.0)

	if cam.Projection != first {
		t.Error("Resizing to the same dimensions should not change the projection")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 4}

	cam.LookAt(mgl32.Vec3{0, 0, 0})

	expected := mgl32.Vec3{0, 0, -1}
	if cam.Front.Sub(expected).Len() > 1e-5 {
		t.Errorf("Expected front %v, got %v", expected, cam.Front)
	}

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}
}

func TestRimIntensityPerpendicular(t *testing.T) {
	// A normal at right angles to the view direction contributes nothing
	intensity := RimIntensity(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0})

	if intensity != 0 {
		t.Errorf("Expected 0 intensity for perpendicular normal, got %f", intensity)
	}
}

func TestRimIntensityFacing(t *testing.T) {
	// A vertex facing the camera head-on glows at full strength
	intensity := RimIntensity(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1})

	if math.Abs(float64(intensity)-1.0) > 1e-6 {
		t.Errorf("Expected intensity 1 for facing normal, got %f", intensity)
	}
}

func TestRimIntensityFalloff(t *testing.T) {
	view := mgl32.Vec3{0, 0, 1}
	angled := mgl32.Vec3{0, 1, 1} // 45 degrees off

	intensity := RimIntensity(view, angled)
	expected := float32(math.Pow(math.Cos(math.Pi/4), float64(GlowExponent)))

	if math.Abs(float64(intensity-expected)) > 1e-5 {
		t.Errorf("Expected intensity %f at 45 degrees, got %f", expected, intensity)
	}
}

func TestRimIntensityBehindIsClamped(t *testing.T) {
	intensity := RimIntensity(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, -1})

	if intensity != 0 {
		t.Errorf("A normal facing away should clamp to 0, got %f", intensity)
	}
}

func TestFrustumContainsOrigin(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 10}
	cam.LookAt(mgl32.Vec3{0, 0, 0})

	frustum := cam.CalculateFrustum()

	if !frustum.IntersectsSphere(mgl32.Vec3{0, 0, 0}, 1.0) {
		t.Error("A sphere at the look-at target should intersect the frustum")
	}
}

func TestFrustumRejectsSphereBehindCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 10}
	cam.LookAt(mgl32.Vec3{0, 0, 0})

	frustum := cam.CalculateFrustum()

	if frustum.IntersectsSphere(mgl32.Vec3{0, 0, 100}, 1.0) {
		t.Error("A sphere behind the camera should be culled")
	}
}
