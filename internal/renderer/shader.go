package renderer

import (
	"Terra3D/internal/logger"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
}

func (shader *Shader) IsValid() bool {
	return shader.vertexSource != "" && shader.fragmentSource != ""
}

func (shader *Shader) Compile() {
	vertex := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	fragment := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	shader.program = GenShaderProgram(vertex, fragment)
	shader.isCompiled = true
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	if location != -1 {
		gl.Uniform3f(location, value.X(), value.Y(), value.Z())
	}
}

func (shader *Shader) SetFloat(name string, value float32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	if location != -1 {
		gl.Uniform1f(location, value)
	}
}

func (shader *Shader) SetInt(name string, value int32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	if location != -1 {
		gl.Uniform1i(location, value)
	}
}

func (shader *Shader) SetMat4(name string, value mgl32.Mat4) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	if location != -1 {
		gl.UniformMatrix4fv(location, 1, false, &value[0])
	}
}

var vertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition; // Vertex position
layout(location = 1) in vec2 inTexCoord; // Texture Coordinate
layout(location = 2) in vec3 inNormal;   // Vertex normal

uniform mat4 model;
uniform mat4 viewProjection;
uniform bool hasBumpMap;
uniform sampler2D bumpSampler;
uniform float bumpScale;

out vec2 fragTexCoord;
out vec3 Normal;
out vec3 FragPos;

void main() {
    vec3 position = inPosition;
    if (hasBumpMap) {
        float height = texture(bumpSampler, inTexCoord).r;
        position += inNormal * height * bumpScale;
    }

    FragPos = vec3(model * vec4(position, 1.0));
    Normal = mat3(model) * inNormal;
    fragTexCoord = inTexCoord;

    gl_Position = viewProjection * model * vec4(position, 1.0);
}
` + "\x00"

var fragmentShaderSource = `#version 330 core
in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

uniform sampler2D textureSampler;
uniform sampler2D specularSampler;
uniform bool hasTexture;
uniform bool hasSpecularMap;
uniform struct Light {
    vec3 position;
    vec3 color;
    float intensity;
} light;
uniform vec3 ambientColor;
uniform float ambientIntensity;
uniform vec3 viewPos;
uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float shininess;
uniform float alpha;

out vec4 FragColor;

void main() {
    vec4 texColor = hasTexture ? texture(textureSampler, fragTexCoord) : vec4(1.0);

    vec3 ambient = ambientColor * ambientIntensity * diffuseColor;

    vec3 norm = normalize(Normal);
    vec3 lightDir = normalize(light.position - FragPos);
    float diff = max(dot(norm, lightDir), 0.0);
    vec3 diffuse = diff * light.color * light.intensity * diffuseColor;

    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), shininess);
    float specMask = hasSpecularMap ? texture(specularSampler, fragTexCoord).r : 1.0;
    vec3 specular = spec * specMask * light.color * specularColor;

    vec3 result = ambient + diffuse + specular;
    FragColor = vec4(result, alpha) * texColor;
}
` + "\x00"

// unlitFragmentShaderSource skips lighting entirely; the background sphere and
// the star spheres use it.
var unlitFragmentShaderSource = `#version 330 core
in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

uniform sampler2D textureSampler;
uniform bool hasTexture;
uniform vec3 diffuseColor;
uniform float alpha;

out vec4 FragColor;

void main() {
    vec4 texColor = hasTexture ? texture(textureSampler, fragTexCoord) : vec4(1.0);
    FragColor = vec4(diffuseColor, alpha) * texColor;
}
` + "\x00"

func InitShader() Shader {
	return Shader{
		vertexSource:   vertexShaderSource,
		fragmentSource: fragmentShaderSource,
	}
}

func InitUnlitShader() Shader {
	return Shader{
		vertexSource:   vertexShaderSource,
		fragmentSource: unlitFragmentShaderSource,
	}
}

func GenShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile shader",
			zap.Uint32("type", shaderType),
			zap.String("log", log))
	}
	return shader
}

func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link shader program", zap.String("log", log))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}
