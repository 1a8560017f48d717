// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera. Its position is driven by the orbit
// controls each frame; the projection is rebuilt whenever aspect/fov/near/far
// change (window resizes go through SetAspectRatio).
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Projection  mgl32.Mat4
	Fov         float32
	Near        float32
	Far         float32
	AspectRatio float32
}

func NewDefaultCamera(width, height int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0, 0, 4},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Fov:         45.0,
		Near:        0.1,
		Far:         1000.0,
		AspectRatio: float32(width) / float32(height),
	}
	camera.UpdateProjection()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetNear(near float32) {
	c.Near = near
	c.UpdateProjection()
}

func (c *Camera) SetFar(far float32) {
	c.Far = far
	c.UpdateProjection()
}

// LookAt points the camera at target without moving it.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() == 0 {
		return
	}
	c.Front = direction.Normalize()
	right := c.Front.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() < 1e-6 {
		// Looking straight up or down, keep the old up vector
		return
	}
	c.Up = right.Normalize().Cross(c.Front).Normalize()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

type Frustum struct {
	Planes [6]Plane
}

func (p *Plane) DistanceToPoint(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}

// CalculateFrustum extracts the six clip planes from the view-projection
// matrix (Gribb/Hartmann row combination).
func (c *Camera) CalculateFrustum() Frustum {
	var frustum Frustum
	vp := c.GetViewProjection()

	rows := [4]mgl32.Vec4{vp.Row(0), vp.Row(1), vp.Row(2), vp.Row(3)}
	combine := func(sign float32, row mgl32.Vec4) Plane {
		v := rows[3].Add(row.Mul(sign))
		return Plane{
			Normal:   mgl32.Vec3{v.X(), v.Y(), v.Z()},
			Distance: v.W(),
		}
	}

	frustum.Planes[0] = combine(1, rows[0])  // left
	frustum.Planes[1] = combine(-1, rows[0]) // right
	frustum.Planes[2] = combine(1, rows[1])  // bottom
	frustum.Planes[3] = combine(-1, rows[1]) // top
	frustum.Planes[4] = combine(1, rows[2])  // near
	frustum.Planes[5] = combine(-1, rows[2]) // far

	for i := range frustum.Planes {
		length := frustum.Planes[i].Normal.Len()
		if length == 0 {
			continue
		}
		frustum.Planes[i].Normal = frustum.Planes[i].Normal.Mul(1.0 / length)
		frustum.Planes[i].Distance /= length
	}
	return frustum
}

// RimIntensity mirrors the glow shader's vertex stage on the CPU: the
// view-dependent halo term for a vertex with the given normal.
func RimIntensity(viewVector, normal mgl32.Vec3) float32 {
	if viewVector.Len() == 0 || normal.Len() == 0 {
		return 0
	}
	d := viewVector.Normalize().Dot(normal.Normalize())
	if d < 0 {
		d = 0
	}
	return float32(math.Pow(float64(d), float64(GlowExponent)))
}
