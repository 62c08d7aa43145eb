package meshes

import (
	"github.com/AlanChumsawang/3d-rendered-scene/assert"
	"github.com/AlanChumsawang/3d-rendered-scene/buffers"
)

// Shape identifies one of the procedurally generated primitive meshes
type Shape uint8

const (
	ShapeUnknown Shape = iota

	ShapePlane
	ShapeBox
	ShapeSphere
	ShapeCylinder
	ShapeTorus
)

func (s Shape) String() string {

	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	case ShapeTorus:
		return "torus"
	default:
		return "unknown"
	}
}

type Mesh struct {
	Name string
	Vao  buffers.VertexArray
}

// Geometry returns the shape's interleaved vertex data (Pos, Normal, UV0)
// and triangle indices. It does not touch OpenGL.
func (s Shape) Geometry() ([]float32, []uint32) {

	switch s {
	case ShapePlane:
		return planeGeometry()
	case ShapeBox:
		return boxGeometry()
	case ShapeSphere:
		return sphereGeometry()
	case ShapeCylinder:
		return cylinderGeometry()
	case ShapeTorus:
		return torusGeometry()
	default:
		assert.T(false, "Unknown shape passed. Shape '%d'", s)
		return nil, nil
	}
}

// NewShapeMesh generates the shape's geometry and uploads it into a VAO
func NewShapeMesh(shape Shape) Mesh {

	verts, indices := shape.Geometry()

	vbo := buffers.NewVertexBuffer(
		buffers.Element{ElementType: buffers.DataTypeVec3},
		buffers.Element{ElementType: buffers.DataTypeVec3},
		buffers.Element{ElementType: buffers.DataTypeVec2},
	)
	vbo.SetData(verts, buffers.BufUsage_Static_Draw)

	ibo := buffers.NewIndexBuffer()
	ibo.SetData(indices)

	vao := buffers.NewVertexArray()
	vao.AddVertexBuffer(vbo)
	vao.SetIndexBuffer(ibo)
	vao.UnBind()

	return Mesh{
		Name: shape.String(),
		Vao:  vao,
	}
}
