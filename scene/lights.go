package scene

import (
	"github.com/bloeys/gglm/gglm"
)

// MaxPointLights matches the pointLights array length in the scene shader
const MaxPointLights = 5

type DirectionalLight struct {
	Active bool

	Direction     gglm.Vec3
	AmbientColor  gglm.Vec3
	DiffuseColor  gglm.Vec3
	SpecularColor gglm.Vec3
}

type PointLight struct {
	Active bool

	Position      gglm.Vec3
	AmbientColor  gglm.Vec3
	DiffuseColor  gglm.Vec3
	SpecularColor gglm.Vec3
}

// Lights is the full lighting rig of the scene: one directional light
// plus a fixed bank of point lights
type Lights struct {
	Directional DirectionalLight
	Points      [MaxPointLights]PointLight
}

// Apply pushes the whole rig into the shader, including the bActive flag
// of every point light so stale lights from a previous rig are switched off
func (l *Lights) Apply(store UniformStore) {

	store.SetBool(UnifUseLighting, true)

	store.SetVec3(UnifDirLightDirection, &l.Directional.Direction)
	store.SetVec3(UnifDirLightAmbient, &l.Directional.AmbientColor)
	store.SetVec3(UnifDirLightDiffuse, &l.Directional.DiffuseColor)
	store.SetVec3(UnifDirLightSpecular, &l.Directional.SpecularColor)
	store.SetBool(UnifDirLightActive, l.Directional.Active)

	for i := 0; i < len(l.Points); i++ {

		pl := &l.Points[i]

		store.SetVec3(pointLightUnif(i, "position"), &pl.Position)
		store.SetVec3(pointLightUnif(i, "ambient"), &pl.AmbientColor)
		store.SetVec3(pointLightUnif(i, "diffuse"), &pl.DiffuseColor)
		store.SetVec3(pointLightUnif(i, "specular"), &pl.SpecularColor)
		store.SetBool(pointLightUnif(i, "bActive"), pl.Active)
	}
}

// DefaultLights is the lighting rig of the fixed scene: a dim warm sun
// plus two ceiling lights, two lights near the laptop screen, and one
// bright lamp behind the ball
func DefaultLights() Lights {

	return Lights{
		Directional: DirectionalLight{
			Active:        true,
			Direction:     gglm.NewVec3(0, -1, -0.1),
			AmbientColor:  gglm.NewVec3(0.8, 0.8, 0.6),
			DiffuseColor:  gglm.NewVec3(0.07, 0.06, 0.04),
			SpecularColor: gglm.NewVec3(1, 0.9, 0.6),
		},
		Points: [MaxPointLights]PointLight{
			{
				Active:        true,
				Position:      gglm.NewVec3(-4, 8, 0),
				AmbientColor:  gglm.NewVec3(0.05, 0.05, 0.05),
				DiffuseColor:  gglm.NewVec3(0.3, 0.3, 0.1),
				SpecularColor: gglm.NewVec3(0.2, 0.2, 0),
			},
			{
				Active:        true,
				Position:      gglm.NewVec3(4, 8, 0),
				AmbientColor:  gglm.NewVec3(0.05, 0.05, 0.05),
				DiffuseColor:  gglm.NewVec3(0.3, 0.3, 0.1),
				SpecularColor: gglm.NewVec3(0.2, 0.2, 0),
			},
			{
				Active:        true,
				Position:      gglm.NewVec3(3.8, 5.5, 4),
				AmbientColor:  gglm.NewVec3(0.05, 0.05, 0.05),
				DiffuseColor:  gglm.NewVec3(0.2, 0.2, 0),
				SpecularColor: gglm.NewVec3(0.8, 0.8, 0.6),
			},
			{
				Active:        true,
				Position:      gglm.NewVec3(3.8, 3.5, 4),
				AmbientColor:  gglm.NewVec3(0.05, 0.05, 0.05),
				DiffuseColor:  gglm.NewVec3(0.2, 0.2, 0),
				SpecularColor: gglm.NewVec3(0.8, 0.8, 0.6),
			},
			{
				Active:        true,
				Position:      gglm.NewVec3(-3.2, 6, -4),
				AmbientColor:  gglm.NewVec3(0.05, 0.05, 0.05),
				DiffuseColor:  gglm.NewVec3(0.9, 0.9, 0.7),
				SpecularColor: gglm.NewVec3(0.2, 0.2, 0),
			},
		},
	}
}
