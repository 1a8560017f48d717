package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Model struct {
	// HOT DATA - touched every frame by the render loop
	ModelMatrix    mgl32.Mat4
	Position       mgl32.Vec3
	Scale          mgl32.Vec3
	Rotation       mgl32.Quat
	Material       *Material
	Shader         Shader // custom shader; zero value means the default shader
	CustomUniforms map[string]interface{}
	VAO            uint32
	VBO            uint32
	EBO            uint32
	IsDirty        bool
	uploaded       bool
	group          *Group

	BoundingSphereCenter mgl32.Vec3
	BoundingSphereRadius float32

	// COLD DATA - initialization only
	Name            string
	Vertices        []float32 // flat xyz positions
	Faces           []int32
	InterleavedData []float32 // pos(3) uv(2) normal(3)
}

// Group is a transform shared by several models; the world matrix of a child
// is group * model. The rotating Earth group and its shells use this instead
// of per-shell rotation bookkeeping.
type Group struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Quat
	children []*Model
}

func NewGroup() *Group {
	return &Group{
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
	}
}

func (g *Group) Add(models ...*Model) {
	for _, m := range models {
		m.group = g
		g.children = append(g.children, m)
	}
}

func (g *Group) Children() []*Model {
	return g.children
}

// RotateY spins the group around its own Y axis by angle radians.
func (g *Group) RotateY(angle float32) {
	g.Rotation = g.Rotation.Mul(mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}))
}

func (g *Group) SetScale(s float32) {
	g.Scale = mgl32.Vec3{s, s, s}
}

func (g *Group) Matrix() mgl32.Mat4 {
	scale := mgl32.Scale3D(g.Scale[0], g.Scale[1], g.Scale[2])
	rotation := g.Rotation.Mat4()
	translation := mgl32.Translate3D(g.Position[0], g.Position[1], g.Position[2])
	return translation.Mul4(rotation).Mul4(scale)
}

func (m *Model) X() float32 { return m.Position[0] }
func (m *Model) Y() float32 { return m.Position[1] }
func (m *Model) Z() float32 { return m.Position[2] }

// Rotate applies incremental rotation in radians around each axis.
func (m *Model) Rotate(angleX, angleY, angleZ float32) {
	if m.Rotation == (mgl32.Quat{}) {
		m.Rotation = mgl32.QuatIdent()
	}
	if angleX != 0 {
		m.Rotation = m.Rotation.Mul(mgl32.QuatRotate(angleX, mgl32.Vec3{1, 0, 0}))
	}
	if angleY != 0 {
		m.Rotation = m.Rotation.Mul(mgl32.QuatRotate(angleY, mgl32.Vec3{0, 1, 0}))
	}
	if angleZ != 0 {
		m.Rotation = m.Rotation.Mul(mgl32.QuatRotate(angleZ, mgl32.Vec3{0, 0, 1}))
	}
	m.updateModelMatrix()
}

func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
}

// Matrix multiplication order: translation * rotation * scale, so vertices
// are scaled first, then rotated, then translated.
func (m *Model) updateModelMatrix() {
	scale := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	rotation := m.Rotation.Mat4()
	translation := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	m.ModelMatrix = translation.Mul4(rotation).Mul4(scale)
	m.IsDirty = true
}

// WorldMatrix composes the owning group's transform, if any.
func (m *Model) WorldMatrix() mgl32.Mat4 {
	if m.group != nil {
		return m.group.Matrix().Mul4(m.ModelMatrix)
	}
	return m.ModelMatrix
}

// CalculateBoundingSphere fits a sphere around the model in world space, used
// by frustum culling.
func (m *Model) CalculateBoundingSphere() {
	var maxDistSq float32
	numVertices := len(m.Vertices) / 3
	for i := 0; i < numVertices; i++ {
		v := mgl32.Vec3{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
		if d := v.LenSqr(); d > maxDistSq {
			maxDistSq = d
		}
	}
	maxScale := m.Scale[0]
	for _, s := range []float32{m.Scale[1], m.Scale[2]} {
		if s > maxScale {
			maxScale = s
		}
	}
	world := m.WorldMatrix()
	m.BoundingSphereCenter = world.Col(3).Vec3()
	m.BoundingSphereRadius = float32(math.Sqrt(float64(maxDistSq))) * maxScale
}

func (m *Model) SetUniform(name string, value interface{}) {
	if m.CustomUniforms == nil {
		m.CustomUniforms = make(map[string]interface{})
	}
	m.CustomUniforms[name] = value
}
