package renderer

// GlowExponent is the falloff exponent of the atmosphere halo. Higher values
// pull the glow tighter against the silhouette.
const GlowExponent float32 = 6.0

// The glow shell is rim-lit: the vertex stage measures how closely the vertex
// normal lines up with the camera direction and raises that to GlowExponent,
// the fragment stage tints a fixed color by the result. Rendered back faces
// only, with additive blending, so the effect reads as a halo around the
// silhouette rather than surface shading.
var glowVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;
layout(location = 2) in vec3 inNormal;

uniform mat4 model;
uniform mat4 viewProjection;
uniform vec3 viewVector;

out float intensity;

void main() {
    vec3 normal = normalize(mat3(model) * inNormal);
    intensity = pow(max(dot(normalize(viewVector), normal), 0.0), 6.0);
    gl_Position = viewProjection * model * vec4(inPosition, 1.0);
}
` + "\x00"

var glowFragmentShaderSource = `#version 330 core

in float intensity;

uniform vec3 glowColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(glowColor * intensity, 1.0);
}
` + "\x00"

func InitGlowShader() Shader {
	return Shader{
		vertexSource:   glowVertexShaderSource,
		fragmentSource: glowFragmentShaderSource,
	}
}
