package scene

import "Terra3D/internal/assets"

// Scene parameters are compiled-in constants; there is no config file or CLI.
const (
	EarthRadius      float32 = 1.0
	InnerShellRadius float32 = 0.98
	CloudShellRadius float32 = 1.02
	GlowShellRadius  float32 = 1.18
	BackgroundRadius float32 = 200.0

	SphereSegments = 64
	SphereRings    = 32

	StarCount               = 200
	StarFieldExtent float32 = 50.0 // stars scatter within [-extent, extent] per axis
	StarRadius      float32 = 0.08
	StarSegments            = 8
	StarRings               = 6

	CameraDistance float32 = 4.0

	// Fixed per-frame rotation increments, deliberately not scaled by frame
	// time. Rotation speed tracks the display refresh rate.
	GroupRotationStep float32 = 0.001
	CloudRotationStep float32 = 0.0005

	CloudAlpha float32 = 0.45

	PointLightIntensity   float32 = 1.3
	AmbientLightIntensity float32 = 0.25

	NavBarHeight float32 = 56
	TitleWidth   float32 = 420
	TitleHeight  float32 = 80

	// Shared default duration for the three entrance tweens, seconds.
	EntranceTweenDuration float32 = 1.0

	placeholderTextureWidth  = 1024
	placeholderTextureHeight = 512
)

var (
	GlowColor      = [3]float32{0.3, 0.6, 1.0}
	InnerShellTint = [3]float32{0.35, 0.55, 0.95}
	StarColor      = [3]float32{0.95, 0.95, 1.0}
	NavBarColor    = [3]float32{0.08, 0.1, 0.16}
	TitleColor     = [3]float32{0.12, 0.16, 0.24}
	LightPosition  = [3]float32{5, 3, 5}
	LightColor     = [3]float32{1.0, 1.0, 1.0}
	AmbientColor   = [3]float32{0.6, 0.7, 1.0}
)

// Manifest lists the five texture slots the scene wants. Any failure flips
// the whole batch to placeholder materials.
func Manifest() []assets.Slot {
	return []assets.Slot{
		{Name: "earth", URL: "assets/textures/earth_atmos_2048.jpg"},
		{Name: "clouds", URL: "assets/textures/earth_clouds_1024.png"},
		{Name: "bump", URL: "assets/textures/earth_bump_2048.jpg"},
		{Name: "specular", URL: "assets/textures/earth_specular_2048.jpg"},
		{Name: "background", URL: "assets/textures/milky_way_4096.jpg"},
	}
}
