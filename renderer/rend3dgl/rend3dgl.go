package rend3dgl

import (
	"fmt"

	"github.com/AlanChumsawang/3d-rendered-scene/meshes"
	"github.com/AlanChumsawang/3d-rendered-scene/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

type Rend3DGL struct {
	BoundMeshVaoId uint32
}

func (r3d *Rend3DGL) DrawMesh(mesh *meshes.Mesh) {

	if mesh.Vao.Id != r3d.BoundMeshVaoId {
		mesh.Vao.Bind()
		r3d.BoundMeshVaoId = mesh.Vao.Id
	}

	gl.DrawElementsWithOffset(gl.TRIANGLES, mesh.Vao.IndexBuffer.IndexBufCount, gl.UNSIGNED_INT, 0)
}

func (r3d *Rend3DGL) FrameEnd() {
	r3d.BoundMeshVaoId = 0
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}

// ShapeBank owns one GPU mesh per primitive shape and draws them through
// the renderer's VAO cache
type ShapeBank struct {
	Rend   renderer.Render
	Meshes map[meshes.Shape]*meshes.Mesh
}

func (sb *ShapeBank) LoadMesh(shape meshes.Shape) error {

	if _, ok := sb.Meshes[shape]; ok {
		return nil
	}

	if shape <= meshes.ShapeUnknown || shape > meshes.ShapeTorus {
		return fmt.Errorf("can not load mesh for unknown shape '%d'", shape)
	}

	mesh := meshes.NewShapeMesh(shape)
	sb.Meshes[shape] = &mesh
	return nil
}

func (sb *ShapeBank) DrawMesh(shape meshes.Shape) {

	mesh, ok := sb.Meshes[shape]
	if !ok {
		return
	}

	sb.Rend.DrawMesh(mesh)
}

func NewShapeBank(rend renderer.Render) *ShapeBank {
	return &ShapeBank{
		Rend:   rend,
		Meshes: make(map[meshes.Shape]*meshes.Mesh),
	}
}
