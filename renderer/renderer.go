package renderer

import (
	"github.com/AlanChumsawang/3d-rendered-scene/meshes"
)

type Render interface {
	DrawMesh(mesh *meshes.Mesh)
	FrameEnd()
}
