package engine

import (
	"github.com/AlanChumsawang/3d-rendered-scene/renderer"
	"github.com/AlanChumsawang/3d-rendered-scene/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Game interface {
	Init()

	Update()
	Render()
	FrameEnd()

	DeInit()
}

var shouldQuit = false

// Quit requests the main loop to exit after the current frame
func Quit() {
	shouldQuit = true
}

func Run(game Game, win *Window, rend renderer.Render) {

	game.Init()

	for !shouldQuit {

		timing.FrameStarted()

		win.handleInputs()
		game.Update()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
		game.Render()

		game.FrameEnd()
		rend.FrameEnd()
		win.SDLWin.GLSwap()

		timing.FrameEnded()
	}

	game.DeInit()
}
