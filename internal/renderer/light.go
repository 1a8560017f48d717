package renderer

import "github.com/go-gl/mathgl/mgl32"

type LightKind int

const (
	POINT_LIGHT LightKind = iota
	AMBIENT_LIGHT
)

type Light struct {
	Kind      LightKind
	Position  mgl32.Vec3 // ignored for ambient lights
	Color     mgl32.Vec3
	Intensity float32
}

func CreatePointLight(position mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	return &Light{
		Kind:      POINT_LIGHT,
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

func CreateAmbientLight(color mgl32.Vec3, intensity float32) *Light {
	return &Light{
		Kind:      AMBIENT_LIGHT,
		Color:     color,
		Intensity: intensity,
	}
}
