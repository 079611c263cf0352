package engine

import (
	"runtime"

	"github.com/ericroy/fplbase/assert"
	"github.com/ericroy/fplbase/input"
	"github.com/ericroy/fplbase/renderer"
	"github.com/ericroy/fplbase/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false
)

type WindowFlags uint32

const (
	WindowFlags_OPENGL     WindowFlags = sdl.WINDOW_OPENGL
	WindowFlags_RESIZABLE  WindowFlags = sdl.WINDOW_RESIZABLE
	WindowFlags_FULLSCREEN WindowFlags = sdl.WINDOW_FULLSCREEN
	WindowFlags_HIDDEN     WindowFlags = sdl.WINDOW_HIDDEN
)

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	EventCallbacks []func(sdl.Event)
	Rend           *renderer.Renderer
}

// Game is the object driven by engine.Run once per frame
type Game interface {
	Init()
	Update()
	Render()
	FrameEnd()
	DeInit()
	ShouldRun() bool
}

func Run(g Game, win *Window) {

	g.Init()

	for g.ShouldRun() {

		timing.FrameStarted()

		win.handleInputs()
		win.Rend.Time = timing.ElapsedTime()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

		g.Update()
		g.Render()
		g.FrameEnd()

		win.SDLWin.GLSwap()
		timing.FrameEnded()
	}

	g.DeInit()
}

func (w *Window) handleInputs() {

	input.EventLoopStart()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(w.EventCallbacks); i++ {
			w.EventCallbacks[i](event)
		}

		//Internal processing
		switch e := event.(type) {

		case *sdl.MouseWheelEvent:
			input.HandleMouseWheelEvent(e)

		case *sdl.KeyboardEvent:
			input.HandleKeyboardEvent(e)

		case *sdl.MouseButtonEvent:
			input.HandleMouseBtnEvent(e)

		case *sdl.MouseMotionEvent:
			input.HandleMouseMotionEvent(e)

		case *sdl.WindowEvent:

			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize()
			}

		case *sdl.QuitEvent:
			input.HandleQuitEvent(e)
		}
	}
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	w.Rend.SetViewport(renderer.Viewport{Width: fbWidth, Height: fbHeight})
}

func (w *Window) Destroy() error {
	return w.SDLWin.Destroy()
}

func Init() error {

	runtime.LockOSThread()
	timing.Init()

	if err := initSDL(); err != nil {
		return err
	}

	isInited = true
	return nil
}

// glAttributes is the GL context configuration requested before window
// creation. The context version goes through the GL_CONTEXT_* attributes,
// not the SDL library version macros
var glAttributes = []struct {
	attr  sdl.GLattr
	value int
}{
	{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
	{sdl.GL_CONTEXT_MINOR_VERSION, 1},

	{sdl.GL_RED_SIZE, 8},
	{sdl.GL_GREEN_SIZE, 8},
	{sdl.GL_BLUE_SIZE, 8},
	{sdl.GL_ALPHA_SIZE, 8},

	{sdl.GL_DOUBLEBUFFER, 1},
	{sdl.GL_DEPTH_SIZE, 24},
	{sdl.GL_STENCIL_SIZE, 8},

	{sdl.GL_FRAMEBUFFER_SRGB_CAPABLE, 1},

	{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	for _, a := range glAttributes {
		sdl.GLSetAttribute(a.attr, a.value)
	}

	return nil
}

func CreateOpenGLWindow(title string, x, y, width, height int32, flags WindowFlags, rend *renderer.Renderer) (*Window, error) {
	return createWindow(title, x, y, width, height, WindowFlags_OPENGL|flags, rend)
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags, rend *renderer.Renderer) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags, rend)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags, rend *renderer.Renderer) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
		Rend:           rend,
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		return nil, err
	}

	err = initOpenGL()
	if err != nil {
		return nil, err
	}

	rend.FeatureLevel = detectFeatureLevel()

	// Get rid of the blinding white startup screen (unfortunately there is still one frame of white)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	sdlWin.GLSwap()

	return win, err
}

func initOpenGL() error {

	if err := gl.Init(); err != nil {
		return err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	gl.Enable(gl.BLEND)
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.ClearColor(0, 0, 0, 1)

	return nil
}

// detectFeatureLevel maps the context's major version to the capability
// tier gating VAO and instancing usage
func detectFeatureLevel() renderer.FeatureLevel {

	var major int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)

	if major >= 3 {
		return renderer.FeatureLevel30
	}

	return renderer.FeatureLevel20
}

func SetSrgbFramebuffer(isEnabled bool) {

	if isEnabled {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	} else {
		gl.Disable(gl.FRAMEBUFFER_SRGB)
	}
}

func SetVSync(enabled bool) {

	if enabled {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
}
