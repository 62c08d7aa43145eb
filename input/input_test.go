package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(key sdl.Keycode, state uint8, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Keysym: sdl.Keysym{Sym: key},
		State:  state,
		Repeat: repeat,
	}
}

func TestKeyClickedOnlyOnFirstPress(t *testing.T) {

	EventLoopStart()
	HandleKeyboardEvent(keyEvent(sdl.K_w, sdl.PRESSED, 0))

	assert.True(t, KeyClicked(sdl.K_w))
	assert.True(t, KeyDown(sdl.K_w))
	assert.False(t, KeyUp(sdl.K_w))

	// Held key repeats don't count as new clicks
	EventLoopStart()
	HandleKeyboardEvent(keyEvent(sdl.K_w, sdl.PRESSED, 1))

	assert.False(t, KeyClicked(sdl.K_w))
	assert.True(t, KeyDown(sdl.K_w))

	EventLoopStart()
	HandleKeyboardEvent(keyEvent(sdl.K_w, sdl.RELEASED, 0))

	assert.True(t, KeyReleased(sdl.K_w))
	assert.True(t, KeyUp(sdl.K_w))
	assert.False(t, KeyDown(sdl.K_w))
}

func TestUnknownKeyState(t *testing.T) {

	EventLoopStart()

	assert.False(t, KeyClicked(sdl.K_F24))
	assert.False(t, KeyDown(sdl.K_F24))
	assert.True(t, KeyUp(sdl.K_F24))
}

func TestMouseMotionResetsEachFrame(t *testing.T) {

	EventLoopStart()
	HandleMouseMotionEvent(&sdl.MouseMotionEvent{X: 100, Y: 50, XRel: 10, YRel: -5})

	xDelta, yDelta := GetMouseMotion()
	assert.Equal(t, int32(10), xDelta)
	assert.Equal(t, int32(-5), yDelta)

	x, y := GetMousePos()
	assert.Equal(t, int32(100), x)
	assert.Equal(t, int32(50), y)

	// Deltas clear at frame start, position persists
	EventLoopStart()

	xDelta, yDelta = GetMouseMotion()
	assert.Zero(t, xDelta)
	assert.Zero(t, yDelta)

	x, y = GetMousePos()
	assert.Equal(t, int32(100), x)
	assert.Equal(t, int32(50), y)
}

func TestMouseButtonStates(t *testing.T) {

	EventLoopStart()
	HandleMouseBtnEvent(&sdl.MouseButtonEvent{Button: sdl.BUTTON_RIGHT, State: sdl.PRESSED, Clicks: 1})

	assert.True(t, MouseClicked(sdl.BUTTON_RIGHT))
	assert.True(t, MouseDown(sdl.BUTTON_RIGHT))
	assert.False(t, MouseDoubleClicked(sdl.BUTTON_RIGHT))

	EventLoopStart()

	// Still held, but no longer a fresh click
	assert.False(t, MouseClicked(sdl.BUTTON_RIGHT))
	assert.True(t, MouseDown(sdl.BUTTON_RIGHT))

	HandleMouseBtnEvent(&sdl.MouseButtonEvent{Button: sdl.BUTTON_RIGHT, State: sdl.RELEASED})
	assert.True(t, MouseReleased(sdl.BUTTON_RIGHT))
	assert.True(t, MouseUp(sdl.BUTTON_RIGHT))
}

func TestMouseWheelNorm(t *testing.T) {

	EventLoopStart()
	HandleMouseWheelEvent(&sdl.MouseWheelEvent{X: 0, Y: 3})

	assert.Equal(t, int32(1), GetMouseWheelYNorm())

	EventLoopStart()
	HandleMouseWheelEvent(&sdl.MouseWheelEvent{X: 0, Y: -2})
	assert.Equal(t, int32(-1), GetMouseWheelYNorm())

	EventLoopStart()
	assert.Equal(t, int32(0), GetMouseWheelYNorm())
}

func TestQuitRequestClearsEachFrame(t *testing.T) {

	EventLoopStart()
	HandleQuitEvent(&sdl.QuitEvent{})
	assert.True(t, IsQuitClicked())

	EventLoopStart()
	assert.False(t, IsQuitClicked())
}
