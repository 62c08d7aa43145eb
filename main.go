package main

import (
	"math"

	"github.com/AlanChumsawang/3d-rendered-scene/assets"
	"github.com/AlanChumsawang/3d-rendered-scene/camera"
	"github.com/AlanChumsawang/3d-rendered-scene/engine"
	"github.com/AlanChumsawang/3d-rendered-scene/input"
	"github.com/AlanChumsawang/3d-rendered-scene/logging"
	"github.com/AlanChumsawang/3d-rendered-scene/renderer/rend3dgl"
	"github.com/AlanChumsawang/3d-rendered-scene/scene"
	"github.com/AlanChumsawang/3d-rendered-scene/shaders"
	"github.com/AlanChumsawang/3d-rendered-scene/timing"
	"github.com/bloeys/gglm/gglm"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	winWidth  = 1280
	winHeight = 720

	camMoveSpeed float32 = 15
	camRotSpeed  float32 = 0.5
)

type Game struct {
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL

	SceneShader *shaders.ShaderProgram
	Scene       *scene.SceneManager
	Cam         camera.Camera

	pitch float32
	yaw   float32
}

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	rend := rend3dgl.NewRend3DGL()
	window, err := engine.CreateOpenGLWindowCentered("3D Rendered Scene", winWidth, winHeight, engine.WindowFlags_RESIZABLE, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}

	engine.SetMSAA(true)
	engine.SetVSync(true)

	game := &Game{
		Win:  window,
		Rend: rend,
	}

	engine.Run(game, window, rend)
}

func (g *Game) Init() {

	shdr, err := shaders.LoadAndCompileCombinedShader("./res/shaders/scene.glsl")
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load scene shader. Err:", err)
	}
	g.SceneShader = shdr

	g.Scene = scene.NewSceneManager(g.SceneShader, rend3dgl.NewShapeBank(g.Rend), &assets.GLTextures{})
	g.Scene.PrepareScene()

	camPos := gglm.NewVec3(0, 7, 30)
	camForward := gglm.NewVec3(0, 0, -1)
	camWorldUp := gglm.NewVec3(0, 1, 0)
	g.Cam = camera.NewCamera(&camPos, &camForward, &camWorldUp)

	// Matching the initial forward of (0, 0, -1)
	g.yaw = -math.Pi / 2

	g.Win.EventCallbacks = append(g.Win.EventCallbacks, g.handleWindowEvents)

	g.SceneShader.Activate()
	g.updateProjMat()
	g.updateViewMat()
}

func (g *Game) handleWindowEvents(event sdl.Event) {

	e, ok := event.(*sdl.WindowEvent)
	if !ok {
		return
	}

	if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
		g.updateProjMat()
	}
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	if input.KeyClicked(sdl.K_p) {
		g.Scene.SetProjectionMode(scene.ProjectionPerspective)
		g.updateProjMat()
	}

	if input.KeyClicked(sdl.K_o) {
		g.Scene.SetProjectionMode(scene.ProjectionOrthographic)
		g.updateProjMat()
	}

	g.updateCameraLookAround()
	g.updateCameraPos()
}

func (g *Game) updateCameraLookAround() {

	mouseX, mouseY := input.GetMouseMotion()
	if (mouseX == 0 && mouseY == 0) || !input.MouseDown(sdl.BUTTON_RIGHT) {
		return
	}

	const MAX_MOUSE_MOVE = 300
	mouseX = gglm.Clamp(mouseX, -MAX_MOUSE_MOVE, MAX_MOUSE_MOVE)
	mouseY = gglm.Clamp(mouseY, -MAX_MOUSE_MOVE, MAX_MOUSE_MOVE)

	// Yaw
	g.yaw += float32(mouseX) * camRotSpeed * timing.DT()

	// Pitch
	g.pitch += float32(-mouseY) * camRotSpeed * timing.DT()
	if g.pitch > 1.5 {
		g.pitch = 1.5
	}

	if g.pitch < -1.5 {
		g.pitch = -1.5
	}

	g.Cam.UpdateRotation(g.pitch, g.yaw)
	g.updateViewMat()
}

func (g *Game) updateCameraPos() {

	update := false

	if input.KeyDown(sdl.K_w) {
		g.Cam.Pos.Add(g.Cam.Forward.Clone().Scale(camMoveSpeed * timing.DT()))
		update = true
	}

	if input.KeyDown(sdl.K_s) {
		g.Cam.Pos.Add(g.Cam.Forward.Clone().Scale(-camMoveSpeed * timing.DT()))
		update = true
	}

	if input.KeyDown(sdl.K_d) {
		cross := gglm.Cross(&g.Cam.Forward, &g.Cam.WorldUp)
		g.Cam.Pos.Add(cross.Normalize().Scale(camMoveSpeed * timing.DT()))
		update = true
	}

	if input.KeyDown(sdl.K_a) {
		cross := gglm.Cross(&g.Cam.Forward, &g.Cam.WorldUp)
		g.Cam.Pos.Add(cross.Normalize().Scale(-camMoveSpeed * timing.DT()))
		update = true
	}

	if input.KeyDown(sdl.K_q) {
		g.Cam.Pos.Add(g.Cam.WorldUp.Clone().Scale(camMoveSpeed * timing.DT()))
		update = true
	}

	if input.KeyDown(sdl.K_e) {
		g.Cam.Pos.Add(g.Cam.WorldUp.Clone().Scale(-camMoveSpeed * timing.DT()))
		update = true
	}

	if update {
		g.Cam.Update()
		g.updateViewMat()
	}
}

func (g *Game) updateProjMat() {

	width, height := g.Win.SDLWin.GetSize()
	if width <= 0 || height <= 0 {
		return
	}

	g.Scene.UpdateProjectionMatrix(float32(width) / float32(height))
}

func (g *Game) updateViewMat() {
	g.SceneShader.SetMat4(scene.UnifView, &g.Cam.ViewMat)
	g.SceneShader.SetVec3(scene.UnifViewPosition, &g.Cam.Pos)
}

func (g *Game) Render() {
	g.Scene.RenderScene()
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {

	g.Scene.ReleaseResources()
	g.SceneShader.Delete()

	if err := g.Win.Destroy(); err != nil {
		logging.ErrLog.Println("Failed to destroy window. Err:", err)
	}
}
