package renderer

import "github.com/go-gl/gl/v4.1-core/gl"

// Overlay is a flat colored quad drawn in screen space after the 3D pass.
// The entrance animation drives OffsetY (nav bar sliding in) and Alpha
// (title fading in); the scene never removes an overlay once added.
type Overlay struct {
	Name    string
	X, Y    float32 // top-left corner in pixels, Y grows downward
	Width   float32
	Height  float32
	OffsetY float32 // animated displacement, added to Y
	Color   [3]float32
	Alpha   float32
	Visible bool
}

var overlayVertexShaderSource = `#version 330 core

layout(location = 0) in vec2 inPosition; // unit quad corner

uniform vec2 rectOrigin; // pixels, top-left
uniform vec2 rectSize;   // pixels
uniform vec2 viewport;   // pixels

void main() {
    vec2 pixel = rectOrigin + inPosition * rectSize;
    // pixel space to NDC, flipping Y so the origin sits at the top-left
    vec2 ndc = vec2(pixel.x / viewport.x * 2.0 - 1.0,
                    1.0 - pixel.y / viewport.y * 2.0);
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

var overlayFragmentShaderSource = `#version 330 core

uniform vec3 overlayColor;
uniform float overlayAlpha;

out vec4 FragColor;

void main() {
    FragColor = vec4(overlayColor, overlayAlpha);
}
` + "\x00"

func InitOverlayShader() Shader {
	return Shader{
		vertexSource:   overlayVertexShaderSource,
		fragmentSource: overlayFragmentShaderSource,
	}
}

// overlayQuad is the shared unit quad used by every overlay draw.
type overlayQuad struct {
	vao uint32
	vbo uint32
}

func newOverlayQuad() *overlayQuad {
	quad := &overlayQuad{}
	vertices := []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 0,
		1, 1,
		0, 1,
	}
	gl.GenVertexArrays(1, &quad.vao)
	gl.BindVertexArray(quad.vao)
	gl.GenBuffers(1, &quad.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, quad.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return quad
}

func (q *overlayQuad) cleanup() {
	gl.DeleteVertexArrays(1, &q.vao)
	gl.DeleteBuffers(1, &q.vbo)
}
