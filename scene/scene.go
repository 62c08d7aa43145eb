package scene

import (
	"github.com/AlanChumsawang/3d-rendered-scene/logging"
	"github.com/AlanChumsawang/3d-rendered-scene/meshes"
)

// MeshBank loads primitive meshes into GPU memory and draws them.
// *rend3dgl.ShapeBank satisfies it; tests substitute a fake.
type MeshBank interface {
	LoadMesh(shape meshes.Shape) error
	DrawMesh(shape meshes.Shape)
}

// TextureFile names an image on disk and the tag it is registered under
type TextureFile struct {
	Path string
	Tag  string
}

// DefaultTextureFiles are the textures of the fixed scene
func DefaultTextureFiles() []TextureFile {
	return []TextureFile{
		{Path: "./res/textures/rusticwood.jpg", Tag: "table"},
		{Path: "./res/textures/drywall.jpg", Tag: "wall"},
		{Path: "./res/textures/ball.jpg", Tag: "ball"},
		{Path: "./res/textures/window.jpg", Tag: "window"},
	}
}

// SceneManager owns the scene's resources and drives the per-frame
// state-set + draw sequence. PrepareScene must complete before the
// first RenderScene call, and all calls must come from the render
// thread: the uniform store and texture unit bindings are shared
// context state with no locking.
type SceneManager struct {
	store    UniformStore
	meshBank MeshBank

	Textures  *TextureRegistry
	Materials *MaterialRegistry
	Lights    Lights

	TextureFiles []TextureFile
	Objects      []RenderObject

	projMode ProjectionMode

	// Tags already warned about, so render loop misses log once and not every frame
	warnedTags map[string]bool
}

// NewSceneManager wires the scene to its shader, mesh and texture backends,
// preloaded with the fixed scene content
func NewSceneManager(store UniformStore, meshBank MeshBank, device TextureDevice) *SceneManager {

	return &SceneManager{
		store:    store,
		meshBank: meshBank,

		Textures:  NewTextureRegistry(device),
		Materials: NewMaterialRegistry(),
		Lights:    DefaultLights(),

		TextureFiles: DefaultTextureFiles(),
		Objects:      DefaultObjects(),

		projMode:   ProjectionPerspective,
		warnedTags: make(map[string]bool),
	}
}

func (sm *SceneManager) warnOnce(tag, format string, args ...any) {

	if sm.warnedTags[tag] {
		return
	}

	sm.warnedTags[tag] = true
	logging.WarnLog.Printf(format, args...)
}

// PrepareScene loads textures, meshes and materials and configures lighting,
// in that order. A texture that fails to load is logged and skipped; its
// objects render with their fallback color instead.
func (sm *SceneManager) PrepareScene() {

	for _, tf := range sm.TextureFiles {
		if err := sm.Textures.Load(tf.Path, tf.Tag); err != nil {
			logging.WarnLog.Printf("Loading texture '%s' failed, objects using it will be drawn untextured. Err: %v\n", tf.Tag, err)
		}
	}
	sm.Textures.BindAll()

	for _, shape := range []meshes.Shape{meshes.ShapePlane, meshes.ShapeBox, meshes.ShapeSphere, meshes.ShapeCylinder, meshes.ShapeTorus} {
		if err := sm.meshBank.LoadMesh(shape); err != nil {
			logging.ErrLog.Fatalf("Loading mesh '%s' failed. Err: %v\n", shape, err)
		}
	}

	for _, entry := range DefaultMaterials() {
		sm.Materials.Define(entry.Tag, entry.Material)
	}

	sm.store.Activate()
	sm.Lights.Apply(sm.store)
}

// RenderScene draws every object of the scene in list order
func (sm *SceneManager) RenderScene() {
	for i := 0; i < len(sm.Objects); i++ {
		sm.drawObject(&sm.Objects[i])
	}
}

// drawObject issues the full state-set + draw sequence for one object:
// model matrix, then appearance, then material, then exactly one draw call
func (sm *SceneManager) drawObject(obj *RenderObject) {

	modelMat := obj.Transform.ModelMat()
	sm.store.SetMat4(UnifModel, &modelMat.Mat4)

	sm.applyAppearance(obj)

	if obj.MaterialTag != "" {

		mat, ok := sm.Materials.Find(obj.MaterialTag)
		if ok {
			sm.store.SetVec3(UnifMaterialDiffuse, &mat.DiffuseColor)
			sm.store.SetVec3(UnifMaterialSpecular, &mat.SpecularColor)
			sm.store.SetFloat32(UnifMaterialShininess, mat.Shininess)
		} else {
			sm.warnOnce("material:"+obj.MaterialTag, "Object '%s' references unknown material '%s'\n", obj.Name, obj.MaterialTag)
		}
	}

	sm.meshBank.DrawMesh(obj.Shape)
}

func (sm *SceneManager) applyAppearance(obj *RenderObject) {

	app := &obj.Appearance

	if app.UseTexture {

		slot := sm.Textures.FindSlot(app.TextureTag)
		if slot != -1 {
			sm.store.SetBool(UnifUseTexture, true)
			sm.store.SetInt32(UnifObjectTexture, int32(slot))
			sm.store.SetVec2(UnifUVScale, &app.UVScale)
			return
		}

		sm.warnOnce("texture:"+app.TextureTag, "Object '%s' references unknown texture '%s', drawing untextured\n", obj.Name, app.TextureTag)
	}

	sm.store.SetBool(UnifUseTexture, false)
	sm.store.SetVec4(UnifObjectColor, &app.Color)
}

func (sm *SceneManager) SetProjectionMode(mode ProjectionMode) {
	sm.projMode = mode
}

func (sm *SceneManager) GetProjectionMode() ProjectionMode {
	return sm.projMode
}

// UpdateProjectionMatrix recomputes the projection matrix for the current
// mode and aspect ratio and pushes it unconditionally, activating the
// shader first so the upload can not land on a different program
func (sm *SceneManager) UpdateProjectionMatrix(aspectRatio float32) {

	sm.store.Activate()

	projMat := ProjectionMat(sm.projMode, aspectRatio)
	sm.store.SetMat4(UnifProjection, &projMat)
}

// ReleaseResources frees the scene's GPU textures. Idempotent.
func (sm *SceneManager) ReleaseResources() {
	sm.Textures.ReleaseAll()
}
