package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSphereVertexCount(t *testing.T) {
	sphere := NewSphere("test", 1.0, 16, 8, false)

	expected := (8 + 1) * (16 + 1)
	if got := len(sphere.Vertices) / 3; got != expected {
		t.Errorf("Expected %d vertices, got %d", expected, got)
	}
	if got := len(sphere.InterleavedData) / 8; got != expected {
		t.Errorf("Expected %d interleaved records, got %d", expected, got)
	}
}

func TestNewSphereFaceCount(t *testing.T) {
	sphere := NewSphere("test", 1.0, 16, 8, false)

	expected := 16 * 8 * 6
	if len(sphere.Faces) != expected {
		t.Errorf("Expected %d indices, got %d", expected, len(sphere.Faces))
	}
}

func TestNewSphereVerticesOnRadius(t *testing.T) {
	const radius = 2.5
	sphere := NewSphere("test", radius, 16, 8, false)

	for i := 0; i < len(sphere.Vertices); i += 3 {
		v := mgl32.Vec3{sphere.Vertices[i], sphere.Vertices[i+1], sphere.Vertices[i+2]}
		if math.Abs(float64(v.Len()-radius)) > 1e-4 {
			t.Fatalf("Vertex %d at distance %f, want %f", i/3, v.Len(), radius)
		}
	}
}

func TestNewSphereOutwardNormals(t *testing.T) {
	sphere := NewSphere("test", 1.0, 16, 8, false)

	for i := 0; i < len(sphere.InterleavedData); i += 8 {
		pos := mgl32.Vec3{sphere.InterleavedData[i], sphere.InterleavedData[i+1], sphere.InterleavedData[i+2]}
		normal := mgl32.Vec3{sphere.InterleavedData[i+5], sphere.InterleavedData[i+6], sphere.InterleavedData[i+7]}

		if pos.Len() == 0 {
			continue
		}
		if pos.Dot(normal) < 0 {
			t.Fatalf("Outward sphere has an inward normal at record %d", i/8)
		}
		if math.Abs(float64(normal.Len())-1.0) > 1e-4 {
			t.Fatalf("Normal should be unit length, got %f", normal.Len())
		}
	}
}

func TestNewSphereInwardNormals(t *testing.T) {
	sphere := NewSphere("test", 1.0, 16, 8, true)

	for i := 0; i < len(sphere.InterleavedData); i += 8 {
		pos := mgl32.Vec3{sphere.InterleavedData[i], sphere.InterleavedData[i+1], sphere.InterleavedData[i+2]}
		normal := mgl32.Vec3{sphere.InterleavedData[i+5], sphere.InterleavedData[i+6], sphere.InterleavedData[i+7]}

		if pos.Len() == 0 {
			continue
		}
		if pos.Dot(normal) > 0 {
			t.Fatalf("Inward sphere has an outward normal at record %d", i/8)
		}
	}
}

func TestNewSphereIndicesInRange(t *testing.T) {
	sphere := NewSphere("test", 1.0, 12, 6, false)

	vertexCount := int32(len(sphere.Vertices) / 3)
	for _, index := range sphere.Faces {
		if index < 0 || index >= vertexCount {
			t.Fatalf("Index %d out of range [0, %d)", index, vertexCount)
		}
	}
}
