package shaders

import (
	"github.com/AlanChumsawang/3d-rendered-scene/logging"
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// GetUnifLoc returns the cached location of a uniform, querying GL on first use.
// An unknown name is reported once and then pushed to location -1, which GL ignores,
// so a misnamed uniform degrades a value instead of crashing the frame.
func (sp *ShaderProgram) GetUnifLoc(uniformName string) int32 {

	loc, ok := sp.unifLocs[uniformName]
	if ok {
		return loc
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(sp.Id, name)
	if loc == -1 {
		logging.WarnLog.Printf("Uniform '%s' doesn't exist on shader program %d\n", uniformName, sp.Id)
	}

	sp.unifLocs[uniformName] = loc
	return loc
}

func (sp *ShaderProgram) SetInt32(uniformName string, val int32) {
	gl.ProgramUniform1i(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetBool(uniformName string, val bool) {

	var i int32
	if val {
		i = 1
	}

	gl.ProgramUniform1i(sp.Id, sp.GetUnifLoc(uniformName), i)
}

func (sp *ShaderProgram) SetFloat32(uniformName string, val float32) {
	gl.ProgramUniform1f(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetVec2(uniformName string, vec2 *gglm.Vec2) {
	gl.ProgramUniform2fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec2.Data[0])
}

func (sp *ShaderProgram) SetVec3(uniformName string, vec3 *gglm.Vec3) {
	gl.ProgramUniform3fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec3.Data[0])
}

func (sp *ShaderProgram) SetVec4(uniformName string, vec4 *gglm.Vec4) {
	gl.ProgramUniform4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec4.Data[0])
}

func (sp *ShaderProgram) SetMat4(uniformName string, mat4 *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, false, &mat4.Data[0][0])
}
