package renderer

import (
	"Terra3D/internal/logger"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var FrustumCullingEnabled bool = false
var Debug bool = false

type OpenGLRenderer struct {
	defaultShader        Shader
	unlitShader          Shader
	overlayShader        Shader
	Models               []*Model
	Overlays             []*Overlay
	quad                 *overlayQuad
	currentShaderProgram uint32
	uniforms             map[uint32]*UniformCache
	width, height        int32
	frustum              Frustum
}

func NewOpenGLRenderer() *OpenGLRenderer {
	return &OpenGLRenderer{uniforms: make(map[uint32]*UniformCache)}
}

// Init compiles the built-in shaders and sets up global GL state. Must run on
// the thread owning the GL context.
func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl init: %w", err)
	}

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	rend.width, rend.height = width, height
	gl.Viewport(0, 0, width, height)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Enable(gl.DEPTH_TEST)

	rend.defaultShader = InitShader()
	rend.defaultShader.Compile()
	rend.unlitShader = InitUnlitShader()
	rend.unlitShader.Compile()
	rend.overlayShader = InitOverlayShader()
	rend.overlayShader.Compile()
	rend.quad = newOverlayQuad()

	logger.Log.Info("OpenGL renderer initialized",
		zap.Int32("width", width), zap.Int32("height", height))
	return nil
}

// AddModel registers a model for drawing. GPU upload is deferred to the first
// frame that draws it, so scene construction stays free of GL calls.
func (rend *OpenGLRenderer) AddModel(model *Model) {
	rend.Models = append(rend.Models, model)
}

func (rend *OpenGLRenderer) RemoveModel(model *Model) {
	for i, m := range rend.Models {
		if m == model {
			rend.Models = append(rend.Models[:i], rend.Models[i+1:]...)
			break
		}
	}
}

func (rend *OpenGLRenderer) AddOverlay(overlay *Overlay) {
	rend.Overlays = append(rend.Overlays, overlay)
}

func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	rend.width, rend.height = width, height
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) uploadModel(model *Model) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.InterleavedData)*4, gl.Ptr(model.InterleavedData), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Faces)*4, gl.Ptr(model.Faces), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo
	model.uploaded = true

	if model.Material != nil {
		rend.uploadMaterial(model.Material)
	}
}

func (rend *OpenGLRenderer) uploadMaterial(mat *Material) {
	if mat.DiffuseMap != nil && mat.diffuseID == 0 {
		mat.diffuseID = uploadImage(mat.DiffuseMap)
	}
	if mat.SpecularMap != nil && mat.specularID == 0 {
		mat.specularID = uploadImage(mat.SpecularMap)
	}
	if mat.BumpMap != nil && mat.bumpID == 0 {
		mat.bumpID = uploadImage(mat.BumpMap)
	}
}

func uploadImage(rgba *image.RGBA) uint32 {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return textureID
}

// Render draws one frame: opaque models front to back of the list, then the
// blended ones (clouds, glow shell), then the screen-space overlays.
func (rend *OpenGLRenderer) Render(camera *Camera, lights []*Light) {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	viewProjection := camera.GetViewProjection()

	if FrustumCullingEnabled {
		rend.frustum = camera.CalculateFrustum()
	}

	var point, ambient *Light
	for _, light := range lights {
		switch light.Kind {
		case POINT_LIGHT:
			if point == nil {
				point = light
			}
		case AMBIENT_LIGHT:
			if ambient == nil {
				ambient = light
			}
		}
	}

	for pass := 0; pass < 2; pass++ {
		for _, model := range rend.Models {
			blended := model.Material != nil && model.Material.Blend != BlendOpaque
			if (pass == 0) == blended {
				continue
			}
			rend.renderModel(model, viewProjection, point, ambient, camera)
		}
	}

	rend.renderOverlays()

	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)
}

func (rend *OpenGLRenderer) renderModel(model *Model, viewProjection mgl32.Mat4, point, ambient *Light, camera *Camera) {
	if !model.uploaded {
		rend.uploadModel(model)
	}

	if FrustumCullingEnabled {
		model.CalculateBoundingSphere()
		if !rend.frustum.IntersectsSphere(model.BoundingSphereCenter, model.BoundingSphereRadius) {
			return
		}
	}

	shader := rend.shaderFor(model)
	if rend.currentShaderProgram != shader.program {
		shader.Use()
		rend.currentShaderProgram = shader.program
	}
	uniforms := rend.cacheFor(shader)

	uniforms.SetMat4("viewProjection", viewProjection)
	uniforms.SetMat4("model", model.WorldMatrix())
	uniforms.SetVec3("viewPos", camera.Position)

	if point != nil {
		uniforms.SetVec3("light.position", point.Position)
		uniforms.SetVec3("light.color", point.Color)
		uniforms.SetFloat("light.intensity", point.Intensity)
	}
	if ambient != nil {
		uniforms.SetVec3("ambientColor", ambient.Color)
		uniforms.SetFloat("ambientIntensity", ambient.Intensity)
	}

	rend.applyMaterial(uniforms, model.Material)
	rend.setShaderSpecificUniforms(uniforms, model)

	gl.BindVertexArray(model.VAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (rend *OpenGLRenderer) shaderFor(model *Model) *Shader {
	if model.Shader.IsValid() {
		if !model.Shader.isCompiled {
			model.Shader.Compile()
		}
		return &model.Shader
	}
	if model.Material != nil && !model.Material.Lit {
		return &rend.unlitShader
	}
	return &rend.defaultShader
}

// cacheFor returns the uniform-location cache for the shader's program,
// creating it on first use.
func (rend *OpenGLRenderer) cacheFor(shader *Shader) *UniformCache {
	cache, ok := rend.uniforms[shader.program]
	if !ok {
		cache = NewUniformCache(shader.program)
		rend.uniforms[shader.program] = cache
	}
	return cache
}

func (rend *OpenGLRenderer) applyMaterial(uniforms *UniformCache, mat *Material) {
	if mat == nil {
		mat = NewMaterial("default")
	}
	rend.uploadMaterial(mat)

	uniforms.SetVec3("diffuseColor", mgl32.Vec3{mat.DiffuseColor[0], mat.DiffuseColor[1], mat.DiffuseColor[2]})
	uniforms.SetVec3("specularColor", mgl32.Vec3{mat.SpecularColor[0], mat.SpecularColor[1], mat.SpecularColor[2]})
	uniforms.SetFloat("shininess", mat.Shininess)
	uniforms.SetFloat("alpha", mat.Alpha)
	uniforms.SetFloat("bumpScale", mat.BumpScale)

	hasTexture := int32(0)
	if mat.diffuseID != 0 {
		hasTexture = 1
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, mat.diffuseID)
		uniforms.SetInt("textureSampler", 0)
	}
	uniforms.SetInt("hasTexture", hasTexture)

	hasSpecular := int32(0)
	if mat.specularID != 0 {
		hasSpecular = 1
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, mat.specularID)
		uniforms.SetInt("specularSampler", 1)
	}
	uniforms.SetInt("hasSpecularMap", hasSpecular)

	hasBump := int32(0)
	if mat.bumpID != 0 {
		hasBump = 1
		gl.ActiveTexture(gl.TEXTURE2)
		gl.BindTexture(gl.TEXTURE_2D, mat.bumpID)
		uniforms.SetInt("bumpSampler", 2)
	}
	uniforms.SetInt("hasBumpMap", hasBump)
	gl.ActiveTexture(gl.TEXTURE0)

	switch mat.Blend {
	case BlendAlpha:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	case BlendAdditive:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	default:
		gl.Disable(gl.BLEND)
	}

	switch mat.Cull {
	case CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	case CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
		gl.FrontFace(gl.CCW)
	default:
		gl.Disable(gl.CULL_FACE)
	}

	gl.DepthMask(mat.DepthWrite)
}

func (rend *OpenGLRenderer) setShaderSpecificUniforms(uniforms *UniformCache, model *Model) {
	for name, value := range model.CustomUniforms {
		switch v := value.(type) {
		case float32:
			uniforms.SetFloat(name, v)
		case int32:
			uniforms.SetInt(name, v)
		case mgl32.Vec3:
			uniforms.SetVec3(name, v)
		case mgl32.Mat4:
			uniforms.SetMat4(name, v)
		}
	}
}

func (rend *OpenGLRenderer) renderOverlays() {
	if len(rend.Overlays) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	rend.overlayShader.Use()
	rend.currentShaderProgram = rend.overlayShader.program
	uniforms := rend.cacheFor(&rend.overlayShader)
	uniforms.SetVec2("viewport", float32(rend.width), float32(rend.height))

	gl.BindVertexArray(rend.quad.vao)
	for _, overlay := range rend.Overlays {
		if !overlay.Visible || overlay.Alpha <= 0 {
			continue
		}
		uniforms.SetVec2("rectOrigin", overlay.X, overlay.Y+overlay.OffsetY)
		uniforms.SetVec2("rectSize", overlay.Width, overlay.Height)
		uniforms.SetVec3("overlayColor", mgl32.Vec3{overlay.Color[0], overlay.Color[1], overlay.Color[2]})
		uniforms.SetFloat("overlayAlpha", overlay.Alpha)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, model := range rend.Models {
		if !model.uploaded {
			continue
		}
		gl.DeleteVertexArrays(1, &model.VAO)
		gl.DeleteBuffers(1, &model.VBO)
		gl.DeleteBuffers(1, &model.EBO)
	}
	if rend.quad != nil {
		rend.quad.cleanup()
	}
}
