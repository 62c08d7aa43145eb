package scene

import (
	"strconv"

	"github.com/bloeys/gglm/gglm"
)

// UniformStore is the write interface of a shader program's uniform values.
// *shaders.ShaderProgram satisfies it; tests substitute a recording store.
type UniformStore interface {
	Activate()

	SetInt32(uniformName string, val int32)
	SetBool(uniformName string, val bool)
	SetFloat32(uniformName string, val float32)
	SetVec2(uniformName string, vec2 *gglm.Vec2)
	SetVec3(uniformName string, vec3 *gglm.Vec3)
	SetVec4(uniformName string, vec4 *gglm.Vec4)
	SetMat4(uniformName string, mat4 *gglm.Mat4)
}

// Uniform names the scene shader exposes. Keeping them in one place
// catches typos at compile time instead of at draw time.
const (
	UnifModel        = "model"
	UnifView         = "view"
	UnifProjection   = "projection"
	UnifViewPosition = "viewPosition"

	UnifObjectColor   = "objectColor"
	UnifObjectTexture = "objectTexture"
	UnifUseTexture    = "bUseTexture"
	UnifUseLighting   = "bUseLighting"
	UnifUVScale       = "UVscale"

	UnifMaterialDiffuse   = "material.diffuseColor"
	UnifMaterialSpecular  = "material.specularColor"
	UnifMaterialShininess = "material.shininess"

	UnifDirLightDirection = "directionalLight.direction"
	UnifDirLightAmbient   = "directionalLight.ambient"
	UnifDirLightDiffuse   = "directionalLight.diffuse"
	UnifDirLightSpecular  = "directionalLight.specular"
	UnifDirLightActive    = "directionalLight.bActive"
)

func pointLightUnif(index int, field string) string {
	return "pointLights[" + strconv.Itoa(index) + "]." + field
}
