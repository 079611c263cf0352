// The input package tracks mouse and keyboard state fed from the engine
// event pump, exposing held keys plus pressed/released-this-frame edges.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type keyState struct {
	Key                 sdl.Keycode
	State               int
	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
}

type mouseBtnState struct {
	Btn   int
	State int

	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
}

type mouseMotionState struct {
	XDelta int32
	YDelta int32
	XPos   int32
	YPos   int32
}

type mouseWheelState struct {
	XDelta int32
	YDelta int32
}

var (
	mouseWheel  = mouseWheelState{}
	mouseMotion = mouseMotionState{}
	mouseBtnMap = make(map[int]mouseBtnState)
	keyMap      = make(map[sdl.Keycode]keyState)

	isQuitRequested bool
)

// EventLoopStart resets per-frame state and must run before events are
// pumped each frame
func EventLoopStart() {

	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		keyMap[k] = v
	}

	for k, v := range mouseBtnMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		mouseBtnMap[k] = v
	}

	mouseMotion.XDelta = 0
	mouseMotion.YDelta = 0

	mouseWheel.XDelta = 0
	mouseWheel.YDelta = 0

	isQuitRequested = false
}

func HandleQuitEvent(e *sdl.QuitEvent) {
	isQuitRequested = true
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	ks, ok := keyMap[e.Keysym.Sym]
	if !ok {
		ks = keyState{Key: e.Keysym.Sym}
	}

	ks.IsPressedThisFrame = e.Type == sdl.KEYDOWN && ks.State != sdl.PRESSED
	ks.IsReleasedThisFrame = e.Type == sdl.KEYUP

	if e.Type == sdl.KEYDOWN {
		ks.State = sdl.PRESSED
	} else {
		ks.State = sdl.RELEASED
	}

	keyMap[e.Keysym.Sym] = ks
}

func HandleMouseBtnEvent(e *sdl.MouseButtonEvent) {

	bs, ok := mouseBtnMap[int(e.Button)]
	if !ok {
		bs = mouseBtnState{Btn: int(e.Button)}
	}

	bs.IsPressedThisFrame = e.State == sdl.PRESSED && bs.State != sdl.PRESSED
	bs.IsReleasedThisFrame = e.State == sdl.RELEASED

	bs.State = int(e.State)
	mouseBtnMap[int(e.Button)] = bs
}

func HandleMouseMotionEvent(e *sdl.MouseMotionEvent) {

	mouseMotion.XDelta += e.XRel
	mouseMotion.YDelta += e.YRel
	mouseMotion.XPos = e.X
	mouseMotion.YPos = e.Y
}

func HandleMouseWheelEvent(e *sdl.MouseWheelEvent) {
	mouseWheel.XDelta += e.X
	mouseWheel.YDelta += e.Y
}

func GetMousePos() (x, y int32) {
	return mouseMotion.XPos, mouseMotion.YPos
}

func GetMouseMotion() (xDelta, yDelta int32) {
	return mouseMotion.XDelta, mouseMotion.YDelta
}

func GetMouseWheelMotion() (xDelta, yDelta int32) {
	return mouseWheel.XDelta, mouseWheel.YDelta
}

// KeyClicked returns true only on the frame the key went down
func KeyClicked(kc sdl.Keycode) bool {
	return keyMap[kc].IsPressedThisFrame
}

// KeyReleased returns true only on the frame the key went up
func KeyReleased(kc sdl.Keycode) bool {
	return keyMap[kc].IsReleasedThisFrame
}

func KeyDown(kc sdl.Keycode) bool {
	return keyMap[kc].State == sdl.PRESSED
}

func MouseClicked(mb int) bool {
	return mouseBtnMap[mb].IsPressedThisFrame
}

func MouseReleased(mb int) bool {
	return mouseBtnMap[mb].IsReleasedThisFrame
}

func MouseDown(mb int) bool {
	return mouseBtnMap[mb].State == sdl.PRESSED
}
