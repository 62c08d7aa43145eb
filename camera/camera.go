package camera

import (
	"math"

	"github.com/bloeys/gglm/gglm"
)

type Camera struct {
	Pos     gglm.Vec3
	Forward gglm.Vec3
	WorldUp gglm.Vec3

	ViewMat gglm.Mat4
}

// Update recomputes the view matrix from the camera's position and forward direction
func (c *Camera) Update() {
	targetPos := c.Pos.Clone().Add(&c.Forward)
	c.ViewMat = gglm.LookAtRH(&c.Pos, targetPos, &c.WorldUp).Mat4
}

// UpdateRotation sets the camera's forward direction from pitch and yaw angles in radians,
// then updates the view matrix
func (c *Camera) UpdateRotation(pitch, yaw float32) {

	cosPitch := float32(math.Cos(float64(pitch)))

	c.Forward.Data[0] = float32(math.Cos(float64(yaw))) * cosPitch
	c.Forward.Data[1] = float32(math.Sin(float64(pitch)))
	c.Forward.Data[2] = float32(math.Sin(float64(yaw))) * cosPitch
	c.Forward.Normalize()

	c.Update()
}

func NewCamera(pos, forward, worldUp *gglm.Vec3) Camera {

	cam := Camera{
		Pos:     *pos,
		Forward: *forward,
		WorldUp: *worldUp,
	}
	cam.Update()

	return cam
}
