package scene

import (
	"github.com/bloeys/gglm/gglm"
)

// Transform is an object's placement in the scene. Rotations are
// per-axis angles in degrees.
type Transform struct {
	Scale       gglm.Vec3
	RotationDeg gglm.Vec3
	Position    gglm.Vec3
}

// ModelMat composes the object's model matrix as
// Translation * RotationZ * RotationY * RotationX * Scale,
// so vertices are scaled first, rotated X then Y then Z, then translated.
// Reordering these changes the orientation of any object with more
// than one non-zero rotation.
func (t *Transform) ModelMat() *gglm.TrMat {

	m := gglm.NewTrMatId()

	m.Translate(t.Position.X(), t.Position.Y(), t.Position.Z())
	m.Rotate(t.RotationDeg.Z()*gglm.Deg2Rad, 0, 0, 1)
	m.Rotate(t.RotationDeg.Y()*gglm.Deg2Rad, 0, 1, 0)
	m.Rotate(t.RotationDeg.X()*gglm.Deg2Rad, 1, 0, 0)

	// TrMat.Scale only touches the main diagonal, which is wrong once
	// rotations are in the matrix, so the scale goes in as a full multiply
	scaleMat := gglm.NewScaleMat(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	m.Mul(&scaleMat)

	return &m
}

type ProjectionMode uint8

const (
	ProjectionPerspective ProjectionMode = iota
	ProjectionOrthographic
)

func (pm ProjectionMode) String() string {

	switch pm {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

const (
	perspectiveFovDeg float32 = 45
	nearClip          float32 = 0.1
	farClip           float32 = 100

	orthoHalfExtent float32 = 10
)

// ProjectionMat returns a 45 degree perspective projection for the given
// aspect ratio, or a fixed orthographic projection spanning 10 units
// from the origin on each axis
func ProjectionMat(mode ProjectionMode, aspectRatio float32) gglm.Mat4 {

	if mode == ProjectionOrthographic {
		// gglm.Ortho takes top before bottom
		return gglm.Ortho(-orthoHalfExtent, orthoHalfExtent, orthoHalfExtent, -orthoHalfExtent, nearClip, farClip).Mat4
	}

	persp := gglm.Perspective(perspectiveFovDeg*gglm.Deg2Rad, aspectRatio, nearClip, farClip)
	return *persp.Clone()
}
