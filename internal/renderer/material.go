package renderer

import "image"

type BlendMode int

const (
	BlendOpaque BlendMode = iota
	BlendAlpha
	BlendAdditive
)

type CullMode int

const (
	CullBack CullMode = iota
	CullFront // draws back faces only; the glow shell wants exactly this
	CullNone
)

type Material struct {
	// HOT DATA - read every draw call
	DiffuseColor  [3]float32
	SpecularColor [3]float32
	Shininess     float32
	Alpha         float32
	BumpScale     float32
	Blend         BlendMode
	Cull          CullMode
	DepthWrite    bool
	Lit           bool

	// Texture maps. CPU-side images are uploaded lazily by the renderer on
	// first use; the IDs stay zero until then.
	DiffuseMap  *image.RGBA
	SpecularMap *image.RGBA
	BumpMap     *image.RGBA
	diffuseID   uint32
	specularID  uint32
	bumpID      uint32

	// COLD DATA
	Name string
}

// NewMaterial returns an opaque, lit, white material.
func NewMaterial(name string) *Material {
	return &Material{
		Name:          name,
		DiffuseColor:  [3]float32{1, 1, 1},
		SpecularColor: [3]float32{1, 1, 1},
		Shininess:     32.0,
		Alpha:         1.0,
		Cull:          CullBack,
		DepthWrite:    true,
		Lit:           true,
	}
}

// NewUnlitMaterial is flat-shaded; stars and the background sphere use it.
func NewUnlitMaterial(name string, r, g, b float32) *Material {
	m := NewMaterial(name)
	m.Lit = false
	m.DiffuseColor = [3]float32{r, g, b}
	return m
}

func (m *Material) SetDiffuseColor(r, g, b float32) {
	m.DiffuseColor = [3]float32{r, g, b}
}

func (m *Material) SetSpecularColor(r, g, b float32) {
	m.SpecularColor = [3]float32{r, g, b}
}

// HasTexture reports whether a diffuse map is present (either still CPU-side
// or already uploaded).
func (m *Material) HasTexture() bool {
	return m.DiffuseMap != nil || m.diffuseID != 0
}

func (m *Material) HasSpecularMap() bool {
	return m.SpecularMap != nil || m.specularID != 0
}

func (m *Material) HasBumpMap() bool {
	return m.BumpMap != nil || m.bumpID != 0
}
