package shaders

import (
	"errors"
	"strings"

	"github.com/AlanChumsawang/3d-rendered-scene/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderProgram is a linked GL program plus a cache of uniform locations.
// It is the concrete uniform store the scene manager pushes its state through.
type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32

	unifLocs map[string]int32
}

func NewShaderProgram() (*ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return nil, errors.New("failed to create shader program")
	}

	return &ShaderProgram{
		Id:       id,
		unifLocs: make(map[string]int32),
	}, nil
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

func (sp *ShaderProgram) Link() error {

	gl.LinkProgram(sp.Id)

	if sp.VertShaderId != 0 {
		gl.DeleteShader(sp.VertShaderId)
	}

	if sp.FragShaderId != 0 {
		gl.DeleteShader(sp.FragShaderId)
	}

	return getProgramLinkErrors(sp.Id)
}

func getProgramLinkErrors(progId uint32) error {

	var linkedSuccessfully int32
	gl.GetProgramiv(progId, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(progId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetProgramInfoLog(progId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Linking of program with id ", progId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}

// Activate makes this program the one subsequent draw calls use
func (sp *ShaderProgram) Activate() {
	gl.UseProgram(sp.Id)
}

func (sp *ShaderProgram) Delete() {
	gl.DeleteProgram(sp.Id)
	sp.Id = 0
}
