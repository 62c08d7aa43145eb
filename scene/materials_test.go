package scene_test

import (
	"testing"

	"github.com/AlanChumsawang/3d-rendered-scene/scene"
	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialRegistryFind(t *testing.T) {

	registry := scene.NewMaterialRegistry()

	registry.Define("wood", scene.Material{
		DiffuseColor:  gglm.NewVec3(0.2, 0.2, 0.3),
		SpecularColor: gglm.NewVec3(0, 0, 0),
		Shininess:     0.1,
	})

	mat, ok := registry.Find("wood")
	require.True(t, ok)
	assert.InDelta(t, 0.1, mat.Shininess, 1e-6)
	assert.InDelta(t, 0.3, mat.DiffuseColor.Z(), 1e-6)
}

func TestMaterialRegistryUnknownTagReturnsZeroAndFalse(t *testing.T) {

	registry := scene.NewMaterialRegistry()
	registry.Define("wood", scene.Material{Shininess: 0.1})

	mat, ok := registry.Find("chrome")
	assert.False(t, ok)
	assert.Equal(t, scene.Material{}, mat)
}

func TestMaterialRegistryDuplicateTagFirstWins(t *testing.T) {

	registry := scene.NewMaterialRegistry()
	registry.Define("wood", scene.Material{Shininess: 1})
	registry.Define("wood", scene.Material{Shininess: 2})

	mat, ok := registry.Find("wood")
	require.True(t, ok)
	assert.Equal(t, float32(1), mat.Shininess)
	assert.Equal(t, 2, registry.Count())
}

func TestDefaultMaterials(t *testing.T) {

	registry := scene.NewMaterialRegistry()
	for _, entry := range scene.DefaultMaterials() {
		registry.Define(entry.Tag, entry.Material)
	}

	require.Equal(t, 4, registry.Count())

	for _, tag := range []string{"ball", "wood", "mug", "metal"} {
		_, ok := registry.Find(tag)
		assert.True(t, ok, "material %s should be defined", tag)
	}

	metal, _ := registry.Find("metal")
	assert.Equal(t, float32(100), metal.Shininess)
}
