package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NewSphere builds a UV sphere model with interleaved pos/uv/normal data.
// inward flips both the normals and the triangle winding, for shells viewed
// from inside (the tinted inner shell and the background sphere).
func NewSphere(name string, radius float32, segments, rings int, inward bool) *Model {
	vertexCount := (rings + 1) * (segments + 1)
	vertices := make([]float32, 0, vertexCount*3)
	interleaved := make([]float32, 0, vertexCount*8)

	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * math.Pi / float64(rings)
		sinTheta := float32(math.Sin(theta))
		cosTheta := float32(math.Cos(theta))

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2.0 * math.Pi / float64(segments)
			sinPhi := float32(math.Sin(phi))
			cosPhi := float32(math.Cos(phi))

			// Unit-sphere point doubles as the outward normal
			x := cosPhi * sinTheta
			y := cosTheta
			z := sinPhi * sinTheta

			vertices = append(vertices, x*radius, y*radius, z*radius)

			u := float32(seg) / float32(segments)
			v := float32(ring) / float32(rings)

			nx, ny, nz := x, y, z
			if inward {
				nx, ny, nz = -x, -y, -z
			}
			interleaved = append(interleaved,
				x*radius, y*radius, z*radius,
				u, v,
				nx, ny, nz)
		}
	}

	faces := make([]int32, 0, rings*segments*6)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := int32(ring*(segments+1) + seg)
			next := current + int32(segments) + 1

			if inward {
				faces = append(faces, current, current+1, next)
				faces = append(faces, current+1, next+1, next)
			} else {
				faces = append(faces, current, next, current+1)
				faces = append(faces, current+1, next, next+1)
			}
		}
	}

	model := &Model{
		Name:            name,
		Position:        mgl32.Vec3{0, 0, 0},
		Rotation:        mgl32.QuatIdent(),
		Scale:           mgl32.Vec3{1, 1, 1},
		Vertices:        vertices,
		Faces:           faces,
		InterleavedData: interleaved,
	}
	model.updateModelMatrix()
	return model
}
