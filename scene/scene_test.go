package scene_test

import (
	"path/filepath"
	"testing"

	"github.com/AlanChumsawang/3d-rendered-scene/meshes"
	"github.com/AlanChumsawang/3d-rendered-scene/scene"
	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore records every uniform write in submission order and keeps
// the last value per name, standing in for a real shader program
type recordingStore struct {
	events *[]string

	activations int
	bools       map[string]bool
	ints        map[string]int32
	floats      map[string]float32
	vec2s       map[string]gglm.Vec2
	vec3s       map[string]gglm.Vec3
	vec4s       map[string]gglm.Vec4
	mat4s       map[string]gglm.Mat4
}

func newRecordingStore(events *[]string) *recordingStore {
	return &recordingStore{
		events: events,
		bools:  make(map[string]bool),
		ints:   make(map[string]int32),
		floats: make(map[string]float32),
		vec2s:  make(map[string]gglm.Vec2),
		vec3s:  make(map[string]gglm.Vec3),
		vec4s:  make(map[string]gglm.Vec4),
		mat4s:  make(map[string]gglm.Mat4),
	}
}

func (rs *recordingStore) record(name string) {
	*rs.events = append(*rs.events, "push:"+name)
}

func (rs *recordingStore) Activate() {
	rs.activations++
}

func (rs *recordingStore) SetInt32(name string, val int32) {
	rs.record(name)
	rs.ints[name] = val
}

func (rs *recordingStore) SetBool(name string, val bool) {
	rs.record(name)
	rs.bools[name] = val
}

func (rs *recordingStore) SetFloat32(name string, val float32) {
	rs.record(name)
	rs.floats[name] = val
}

func (rs *recordingStore) SetVec2(name string, v *gglm.Vec2) {
	rs.record(name)
	rs.vec2s[name] = *v
}

func (rs *recordingStore) SetVec3(name string, v *gglm.Vec3) {
	rs.record(name)
	rs.vec3s[name] = *v
}

func (rs *recordingStore) SetVec4(name string, v *gglm.Vec4) {
	rs.record(name)
	rs.vec4s[name] = *v
}

func (rs *recordingStore) SetMat4(name string, m *gglm.Mat4) {
	rs.record(name)
	rs.mat4s[name] = *m
}

type fakeMeshBank struct {
	events *[]string
	loaded []meshes.Shape
	draws  []meshes.Shape
}

func (fb *fakeMeshBank) LoadMesh(shape meshes.Shape) error {
	fb.loaded = append(fb.loaded, shape)
	return nil
}

func (fb *fakeMeshBank) DrawMesh(shape meshes.Shape) {
	*fb.events = append(*fb.events, "draw:"+shape.String())
	fb.draws = append(fb.draws, shape)
}

func newTestSceneManager(t *testing.T) (*scene.SceneManager, *recordingStore, *fakeMeshBank, *fakeTextureDevice, *[]string) {

	t.Helper()

	events := &[]string{}
	store := newRecordingStore(events)
	bank := &fakeMeshBank{events: events}
	device := newFakeTextureDevice()

	sm := scene.NewSceneManager(store, bank, device)

	path := writeTestPNG(t, "tex.png")
	sm.TextureFiles = []scene.TextureFile{
		{Path: path, Tag: "table"},
		{Path: path, Tag: "wall"},
		{Path: path, Tag: "ball"},
		{Path: path, Tag: "window"},
	}

	return sm, store, bank, device, events
}

func TestPrepareSceneLoadsEverything(t *testing.T) {

	sm, store, bank, device, _ := newTestSceneManager(t)

	sm.PrepareScene()

	assert.Equal(t, 4, sm.Textures.Count())
	assert.Len(t, device.bound, 4)

	assert.ElementsMatch(t,
		[]meshes.Shape{meshes.ShapePlane, meshes.ShapeBox, meshes.ShapeSphere, meshes.ShapeCylinder, meshes.ShapeTorus},
		bank.loaded)

	assert.Equal(t, 4, sm.Materials.Count())

	// Lighting is configured on the activated shader
	assert.Equal(t, 1, store.activations)
	assert.True(t, store.bools[scene.UnifUseLighting])
	assert.True(t, store.bools["directionalLight.bActive"])
	assert.True(t, store.bools["pointLights[4].bActive"])

	dir := store.vec3s["directionalLight.direction"]
	assert.InDelta(t, -1, dir.Y(), 1e-6)
}

func TestPrepareSceneSkipsFailedTexture(t *testing.T) {

	sm, _, _, _, _ := newTestSceneManager(t)

	sm.TextureFiles = append([]scene.TextureFile{
		{Path: filepath.Join(t.TempDir(), "missing.png"), Tag: "ghost"},
	}, sm.TextureFiles...)

	sm.PrepareScene()

	// The failed texture takes no slot; the rest shift down
	assert.Equal(t, 4, sm.Textures.Count())
	assert.Equal(t, -1, sm.Textures.FindSlot("ghost"))
	assert.Equal(t, 0, sm.Textures.FindSlot("table"))
}

func TestRenderSceneIssuesOneDrawPerObject(t *testing.T) {

	sm, _, bank, _, events := newTestSceneManager(t)
	sm.PrepareScene()

	*events = (*events)[:0]
	sm.RenderScene()

	require.Len(t, bank.draws, len(sm.Objects))

	// Between draws, every object pushes exactly one model matrix and
	// exactly one appearance (the bUseTexture flag)
	modelPushes := 0
	appearancePushes := 0
	drawIndex := 0

	for _, ev := range *events {

		switch ev {
		case "push:" + scene.UnifModel:
			modelPushes++
		case "push:" + scene.UnifUseTexture:
			appearancePushes++
		default:
			if len(ev) > 5 && ev[:5] == "draw:" {
				require.Equal(t, 1, modelPushes, "object %d model pushes", drawIndex)
				require.Equal(t, 1, appearancePushes, "object %d appearance pushes", drawIndex)
				modelPushes = 0
				appearancePushes = 0
				drawIndex++
			}
		}
	}

	require.Equal(t, len(sm.Objects), drawIndex)
}

func TestRenderSceneTexturedObjectState(t *testing.T) {

	sm, store, bank, _, _ := newTestSceneManager(t)
	sm.PrepareScene()

	// Render only the table so the final uniform values belong to it
	sm.Objects = sm.Objects[:1]
	require.Equal(t, "table", sm.Objects[0].Name)

	sm.RenderScene()

	assert.True(t, store.bools[scene.UnifUseTexture])
	assert.Equal(t, int32(0), store.ints[scene.UnifObjectTexture])

	uvScale := store.vec2s[scene.UnifUVScale]
	assert.InDelta(t, 1, uvScale.X(), 1e-6)

	// Table uses the wood material
	assert.InDelta(t, 0.1, store.floats[scene.UnifMaterialShininess], 1e-6)

	require.Len(t, bank.draws, 1)
	assert.Equal(t, meshes.ShapeBox, bank.draws[0])
}

func TestRenderSceneColoredObjectState(t *testing.T) {

	sm, store, bank, _, _ := newTestSceneManager(t)
	sm.PrepareScene()

	sm.Objects = []scene.RenderObject{
		{
			Name:       "solid",
			Shape:      meshes.ShapeTorus,
			Transform:  scene.Transform{Scale: gglm.NewVec3(1, 1, 1)},
			Appearance: scene.ColorAppearance(0.43, 0.4, 0.49, 1),
		},
	}

	sm.RenderScene()

	assert.False(t, store.bools[scene.UnifUseTexture])

	objColor := store.vec4s[scene.UnifObjectColor]
	assert.InDelta(t, 0.43, objColor.X(), 1e-6)

	require.Len(t, bank.draws, 1)
	assert.Equal(t, meshes.ShapeTorus, bank.draws[0])
}

func TestRenderSceneMissingTextureFallsBackToColor(t *testing.T) {

	sm, store, bank, _, _ := newTestSceneManager(t)
	sm.PrepareScene()

	obj := scene.RenderObject{
		Name:       "ghost",
		Shape:      meshes.ShapeBox,
		Transform:  scene.Transform{Scale: gglm.NewVec3(1, 1, 1)},
		Appearance: scene.TexturedAppearance("not-loaded", 1, 1),
	}
	sm.Objects = []scene.RenderObject{obj}

	sm.RenderScene()

	// Degrades to the flat color path but still draws
	assert.False(t, store.bools[scene.UnifUseTexture])
	require.Len(t, bank.draws, 1)
}

func TestRenderSceneUnknownMaterialSkipsMaterialPush(t *testing.T) {

	sm, store, bank, _, _ := newTestSceneManager(t)
	sm.PrepareScene()

	store.floats = make(map[string]float32)

	sm.Objects = []scene.RenderObject{
		{
			Name:        "odd",
			Shape:       meshes.ShapeBox,
			Transform:   scene.Transform{Scale: gglm.NewVec3(1, 1, 1)},
			Appearance:  scene.ColorAppearance(1, 1, 1, 1),
			MaterialTag: "chrome",
		},
	}

	sm.RenderScene()

	_, pushed := store.floats[scene.UnifMaterialShininess]
	assert.False(t, pushed)
	require.Len(t, bank.draws, 1)
}

func TestUpdateProjectionMatrixActivatesAndPushes(t *testing.T) {

	sm, store, _, _, _ := newTestSceneManager(t)

	sm.UpdateProjectionMatrix(16.0 / 9.0)
	require.Equal(t, 1, store.activations)

	persp := store.mat4s[scene.UnifProjection]

	sm.SetProjectionMode(scene.ProjectionOrthographic)
	assert.Equal(t, scene.ProjectionOrthographic, sm.GetProjectionMode())

	sm.UpdateProjectionMatrix(16.0 / 9.0)
	assert.Equal(t, 2, store.activations)

	ortho := store.mat4s[scene.UnifProjection]
	assert.NotEqual(t, persp, ortho)

	// Every call re-uploads, even with unchanged inputs
	pushes := 0
	sm.UpdateProjectionMatrix(16.0 / 9.0)
	for _, ev := range *store.events {
		if ev == "push:"+scene.UnifProjection {
			pushes++
		}
	}
	assert.Equal(t, 3, pushes)
}

func TestReleaseResourcesIsIdempotent(t *testing.T) {

	sm, _, _, device, _ := newTestSceneManager(t)
	sm.PrepareScene()

	sm.ReleaseResources()
	deletes := len(device.deleted)
	assert.Equal(t, 4, deletes)

	sm.ReleaseResources()
	assert.Len(t, device.deleted, deletes)
}
