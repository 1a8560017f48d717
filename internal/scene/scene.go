// Package scene builds the Earth scene graph: shells, glow, stars, lights,
// overlays and the orbit camera. Construction is pure - no GL calls - so the
// whole graph is testable; the renderer uploads everything lazily on the
// first frame.
package scene

import (
	"math/rand"

	"Terra3D/internal/assets"
	"Terra3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene holds the built graph plus the direct references the render loop
// needs afterward. The cloud and glow shells are kept by reference here;
// nothing ever goes looking for them by material properties.
type Scene struct {
	Placeholder bool

	Camera   *renderer.Camera
	Controls *renderer.OrbitControls

	Group      *renderer.Group
	Earth      *renderer.Model
	InnerShell *renderer.Model
	Clouds     *renderer.Model // nil in placeholder mode
	Glow       *renderer.Model
	Background *renderer.Model // nil in placeholder mode
	Stars      []*renderer.Model

	Lights []*renderer.Light

	NavBar *renderer.Overlay
	Title  *renderer.Overlay

	// Models lists every mesh in draw-registration order.
	Models []*renderer.Model
}

// Build constructs the scene exactly once per program run, in either
// full-fidelity or placeholder mode depending on how the texture batch
// settled.
func Build(width, height int32, set *assets.Set) *Scene {
	s := &Scene{Placeholder: set.Placeholder}

	s.Camera = renderer.NewDefaultCamera(width, height)
	s.Camera.Position = mgl32.Vec3{0, 0, CameraDistance}

	s.buildBackground(set)
	s.buildShells(set)
	s.buildGlow()
	s.buildStars()
	s.buildLights()
	s.buildOverlays(width, height)

	s.Controls = renderer.NewOrbitControls(s.Camera, CameraDistance)

	return s
}

// Background sphere, skipped entirely in placeholder mode.
func (s *Scene) buildBackground(set *assets.Set) {
	texture := set.Get("background")
	if texture == nil {
		return
	}
	background := renderer.NewSphere("background", BackgroundRadius, SphereSegments, SphereRings, true)
	material := renderer.NewUnlitMaterial("background", 1, 1, 1)
	material.DiffuseMap = texture.Image
	material.Cull = renderer.CullNone
	material.DepthWrite = false
	background.Material = material

	s.Background = background
	s.Models = append(s.Models, background)
}

func (s *Scene) buildShells(set *assets.Set) {
	s.Group = renderer.NewGroup()

	earth := renderer.NewSphere("earth", EarthRadius, SphereSegments, SphereRings, false)
	earthMat := renderer.NewMaterial("earth")
	if s.Placeholder {
		earthMat.DiffuseMap = assets.PlaceholderEarth(placeholderTextureWidth, placeholderTextureHeight)
	} else {
		earthMat.DiffuseMap = set.Get("earth").Image
		if bump := set.Get("bump"); bump != nil {
			earthMat.BumpMap = bump.Image
			earthMat.BumpScale = 0.02
		}
		if specular := set.Get("specular"); specular != nil {
			earthMat.SpecularMap = specular.Image
		}
	}
	earth.Material = earthMat

	inner := renderer.NewSphere("inner-shell", InnerShellRadius, SphereSegments, SphereRings, true)
	innerMat := renderer.NewMaterial("inner-shell")
	innerMat.SetDiffuseColor(InnerShellTint[0], InnerShellTint[1], InnerShellTint[2])
	inner.Material = innerMat

	s.Earth = earth
	s.InnerShell = inner
	s.Group.Add(earth, inner)
	s.Models = append(s.Models, earth, inner)

	// Cloud shell only exists in full-fidelity mode
	if clouds := set.Get("clouds"); clouds != nil {
		cloud := renderer.NewSphere("clouds", CloudShellRadius, SphereSegments, SphereRings, false)
		cloudMat := renderer.NewMaterial("clouds")
		cloudMat.DiffuseMap = clouds.Image
		cloudMat.Alpha = CloudAlpha
		cloudMat.Blend = renderer.BlendAlpha
		cloudMat.DepthWrite = false
		cloud.Material = cloudMat

		s.Clouds = cloud
		s.Group.Add(cloud)
		s.Models = append(s.Models, cloud)
	}
}

// The glow shell sits outside the rotating group; rotating a view-dependent
// halo would be invisible anyway, and the viewVector uniform is recomputed
// per frame from the camera.
func (s *Scene) buildGlow() {
	glow := renderer.NewSphere("glow", GlowShellRadius, SphereSegments, SphereRings, false)
	material := renderer.NewMaterial("glow")
	material.Blend = renderer.BlendAdditive
	material.Cull = renderer.CullFront // halo comes from the back faces only
	material.DepthWrite = false
	glow.Material = material
	glow.Shader = renderer.InitGlowShader()
	glow.SetUniform("glowColor", mgl32.Vec3{GlowColor[0], GlowColor[1], GlowColor[2]})
	glow.SetUniform("viewVector", mgl32.Vec3{0, 0, CameraDistance})

	s.Glow = glow
	s.Models = append(s.Models, glow)
}

func (s *Scene) buildStars() {
	s.Stars = make([]*renderer.Model, 0, StarCount)
	for i := 0; i < StarCount; i++ {
		star := renderer.NewSphere("star", StarRadius, StarSegments, StarRings, false)
		star.Material = renderer.NewUnlitMaterial("star", StarColor[0], StarColor[1], StarColor[2])
		star.SetPosition(
			randomExtent(), randomExtent(), randomExtent(),
		)
		s.Stars = append(s.Stars, star)
		s.Models = append(s.Models, star)
	}
}

func randomExtent() float32 {
	return (rand.Float32()*2 - 1) * StarFieldExtent
}

func (s *Scene) buildLights() {
	point := renderer.CreatePointLight(
		mgl32.Vec3{LightPosition[0], LightPosition[1], LightPosition[2]},
		mgl32.Vec3{LightColor[0], LightColor[1], LightColor[2]},
		PointLightIntensity,
	)
	ambient := renderer.CreateAmbientLight(
		mgl32.Vec3{AmbientColor[0], AmbientColor[1], AmbientColor[2]},
		AmbientLightIntensity,
	)
	s.Lights = []*renderer.Light{point, ambient}
}

// Overlays start invisible offscreen; the entrance timeline animates them in.
func (s *Scene) buildOverlays(width, height int32) {
	s.NavBar = &renderer.Overlay{
		Name:    "nav",
		X:       0,
		Y:       0,
		Width:   float32(width),
		Height:  NavBarHeight,
		OffsetY: -(NavBarHeight + 8),
		Color:   NavBarColor,
		Alpha:   0.85,
		Visible: true,
	}
	s.Title = &renderer.Overlay{
		Name:    "title",
		X:       float32(width)/2 - TitleWidth/2,
		Y:       float32(height) * 0.72,
		Width:   TitleWidth,
		Height:  TitleHeight,
		Color:   TitleColor,
		Alpha:   0, // fades in
		Visible: true,
	}
}
