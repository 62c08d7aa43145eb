package scene

import (
	"github.com/bloeys/gglm/gglm"
)

// Material holds the Phong surface parameters pushed to the shader
// before an object using it is drawn
type Material struct {
	DiffuseColor  gglm.Vec3
	SpecularColor gglm.Vec3
	Shininess     float32
}

type MaterialEntry struct {
	Tag      string
	Material Material
}

// MaterialRegistry maps string tags to material descriptors.
// Lookup scans in insertion order, so for a duplicated tag the
// first definition wins.
type MaterialRegistry struct {
	entries []MaterialEntry
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

func (mr *MaterialRegistry) Define(tag string, mat Material) {
	mr.entries = append(mr.entries, MaterialEntry{Tag: tag, Material: mat})
}

// Find returns the material stored under the given tag. The second return
// is false when no material has that tag, and the returned material is zero.
func (mr *MaterialRegistry) Find(tag string) (Material, bool) {

	for i := 0; i < len(mr.entries); i++ {
		if mr.entries[i].Tag == tag {
			return mr.entries[i].Material, true
		}
	}

	return Material{}, false
}

func (mr *MaterialRegistry) Count() int {
	return len(mr.entries)
}

// DefaultMaterials returns the material set used by the fixed scene
func DefaultMaterials() []MaterialEntry {

	return []MaterialEntry{
		{
			Tag: "ball",
			Material: Material{
				DiffuseColor:  gglm.NewVec3(0.4, 0.4, 0.4),
				SpecularColor: gglm.NewVec3(0.7, 0.7, 0.6),
				Shininess:     52,
			},
		},
		{
			Tag: "wood",
			Material: Material{
				DiffuseColor:  gglm.NewVec3(0.2, 0.2, 0.3),
				SpecularColor: gglm.NewVec3(0, 0, 0),
				Shininess:     0.1,
			},
		},
		{
			Tag: "mug",
			Material: Material{
				DiffuseColor:  gglm.NewVec3(0.8, 0.5, 0.3),
				SpecularColor: gglm.NewVec3(0.2, 0.2, 0.2),
				Shininess:     10,
			},
		},
		{
			Tag: "metal",
			Material: Material{
				DiffuseColor:  gglm.NewVec3(0.7, 0.7, 0.7),
				SpecularColor: gglm.NewVec3(1, 1, 1),
				Shininess:     100,
			},
		},
	}
}
