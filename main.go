package main

import (
	"encoding/binary"
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/ericroy/fplbase/assets"
	"github.com/ericroy/fplbase/buffers"
	"github.com/ericroy/fplbase/engine"
	"github.com/ericroy/fplbase/input"
	"github.com/ericroy/fplbase/logging"
	"github.com/ericroy/fplbase/materials"
	"github.com/ericroy/fplbase/meshes"
	"github.com/ericroy/fplbase/renderer"
	"github.com/ericroy/fplbase/shaders"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	WINDOW_WIDTH  = 1280
	WINDOW_HEIGHT = 720
)

var (
	cubeFormat = []buffers.Attribute{
		buffers.AttrPosition3f,
		buffers.AttrColor4ub,
		buffers.AttrEnd,
	}
)

type demoGame struct {
	win  *engine.Window
	rend *renderer.Renderer

	shader     shaders.Shader
	cube       meshes.Mesh
	checkerTex assets.Texture
	solidMat   materials.Material
	glowMat    materials.Material

	// Ground triangle drawn through the buffer-less immediate path
	triVerts []byte

	stereo     bool
	shouldQuit bool
}

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	rend := renderer.NewRenderer(renderer.FeatureLevel20)

	window, err := engine.CreateOpenGLWindowCentered("fplbase", WINDOW_WIDTH, WINDOW_HEIGHT, engine.WindowFlags_RESIZABLE, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err: ", err)
	}
	defer window.Destroy()

	engine.SetVSync(true)

	game := &demoGame{
		win:  window,
		rend: rend,
	}

	engine.Run(game, window)
}

func (g *demoGame) Init() {

	g.shader.Init(0, 0, 0, nil, g.rend)
	if ok := g.shader.Reload("assets/shaders/basic", []string{"VERTEX_COLOR", "PULSE", "TEXTURED"}); !ok {
		logging.ErrLog.Fatalln("Failed to load basic shader. Err: ", g.rend.LastError())
	}

	tex, err := assets.LoadTexturePNG("assets/textures/checker.png")
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load checker texture. Err: ", err)
	}
	g.checkerTex = tex

	g.solidMat = materials.NewMaterial("cube-solid", g.checkerTex.TexID)
	g.glowMat = materials.NewMaterial("cube-glow", g.checkerTex.TexID)
	g.glowMat.Blend = materials.BlendMode_Add

	g.cube = meshes.NewMesh("cube", meshes.Primitive_Triangles)
	g.cube.LoadFromMemory(g.rend, cubeVertexData(), 8, 16, cubeFormat, nil, nil)

	// Two chunks so the per-chunk material path is visible: one half of the
	// cube draws opaque, the other additively
	g.cube.AddIndices16([]uint16{
		0, 1, 2, 0, 2, 3, // front
		1, 5, 6, 1, 6, 2, // right
		5, 4, 7, 5, 7, 6, // back
	}, &g.solidMat)
	g.cube.AddIndices16([]uint16{
		4, 0, 3, 4, 3, 7, // left
		3, 2, 6, 3, 6, 7, // top
		4, 5, 1, 4, 1, 0, // bottom
	}, &g.glowMat)

	g.triVerts = triangleVertexData()
}

func (g *demoGame) Update() {

	if input.KeyClicked(sdl.K_ESCAPE) {
		g.shouldQuit = true
	}

	if input.KeyClicked(sdl.K_s) {
		g.stereo = !g.stereo
	}

	if input.KeyClicked(sdl.K_r) {

		if ok := g.shader.Reload(g.shader.Basename, g.shader.Defines); !ok {
			logging.ErrLog.Println("Shader reload failed. Err: ", g.rend.LastError())
		}
	}
}

func (g *demoGame) Render() {

	width, height := g.win.SDLWin.GLGetDrawableSize()
	if width <= 0 || height <= 0 {
		return
	}

	angle := g.rend.Time * 0.5
	camPos := gglm.NewVec3(4*float32(math.Cos(angle)), 2, 4*float32(math.Sin(angle)))
	target := gglm.NewVec3(0, 0, 0)
	up := gglm.NewVec3(0, 1, 0)

	aspect := float32(width) / float32(height)
	if g.stereo {
		aspect /= 2
	}

	projMat := gglm.Perspective(45*gglm.Deg2Rad, aspect, 0.1, 100)

	g.rend.CameraPos = camPos
	g.rend.Color = gglm.NewVec4(1, 1, 1, 1)

	if !g.stereo {

		viewMat := gglm.LookAtRH(&camPos, &target, &up).Mat4
		g.rend.ModelViewProjection = *projMat.Mul(&viewMat)

		g.rend.SetViewport(renderer.Viewport{Width: width, Height: height})
		g.shader.Set(g.rend)
		g.cube.Render(g.rend, false, 1)
		meshes.RenderArray(meshes.Primitive_Triangles, 3, cubeFormat, 16, g.triVerts)
		return
	}

	// Side by side stereo: one half-width viewport per eye, cameras
	// separated along the view right vector
	forward := target.Clone().Sub(&camPos)
	right := gglm.Cross(forward, &up)
	eyeOffset := right.Normalize().Scale(0.1)

	camL := *camPos.Clone().Sub(eyeOffset)
	camR := *camPos.Clone().Add(eyeOffset)
	targetL := *target.Clone().Sub(eyeOffset)
	targetR := *target.Clone().Add(eyeOffset)

	viewL := gglm.LookAtRH(&camL, &targetL, &up).Mat4
	viewR := gglm.LookAtRH(&camR, &targetR, &up).Mat4

	mvps := [2]gglm.Mat4{
		*projMat.Clone().Mul(&viewL),
		*projMat.Clone().Mul(&viewR),
	}
	camPositions := [2]gglm.Vec3{camL, camR}
	viewports := [2]renderer.Viewport{
		{X: 0, Y: 0, Width: width / 2, Height: height},
		{X: width / 2, Y: 0, Width: width / 2, Height: height},
	}

	g.cube.RenderStereo(g.rend, &g.shader, viewports, mvps, camPositions, false, 1)
	g.rend.SetViewport(renderer.Viewport{Width: width, Height: height})
}

func (g *demoGame) FrameEnd() {
}

func (g *demoGame) ShouldRun() bool {
	return !g.shouldQuit && !input.IsQuitClicked()
}

func (g *demoGame) DeInit() {
	g.cube.ClearPlatformDependent()
	g.checkerTex.Delete()
	g.shader.Clear()
}

func cubeVertexData() []byte {

	type vert struct {
		x, y, z    float32
		r, g, b, a uint8
	}

	verts := []vert{
		{-1, -1, 1, 255, 0, 0, 255},
		{1, -1, 1, 0, 255, 0, 255},
		{1, 1, 1, 0, 0, 255, 255},
		{-1, 1, 1, 255, 255, 0, 255},
		{-1, -1, -1, 0, 255, 255, 255},
		{1, -1, -1, 255, 0, 255, 255},
		{1, 1, -1, 255, 255, 255, 255},
		{-1, 1, -1, 128, 128, 128, 255},
	}

	data := make([]byte, 0, len(verts)*16)
	for _, v := range verts {

		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v.x))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v.y))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v.z))
		data = append(data, v.r, v.g, v.b, v.a)
	}

	return data
}

func triangleVertexData() []byte {

	floats := []float32{
		-3, -1.01, -3,
		3, -1.01, -3,
		0, -1.01, 3,
	}

	data := make([]byte, 0, 3*16)
	for i := 0; i < 3; i++ {

		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(floats[i*3]))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(floats[i*3+1]))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(floats[i*3+2]))
		data = append(data, 60, 60, 60, 255)
	}

	return data
}
